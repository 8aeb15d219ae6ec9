package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/prdash/core"
	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// files is the filesystem adapter for the history input and the dashboard output.
var files = contract.NewLocalFiles()

// rootCmd generates the dashboard and is the entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "prdash",
	Short: "Render a Markdown dashboard of AI-generated code in merged pull requests.",
	Long: `prdash reads the AI analysis history of merged pull requests and renders
a static Markdown dashboard with totals, recent pull requests and a per-PR chart.

The history is produced by an external analysis step and is only read here.
A missing history renders an empty dashboard. A malformed history aborts
without touching the previous dashboard.

Examples:
  # Render with the defaults
  prdash

  # Render from a custom history into a docs folder
  prdash --history data/history.json --dashboard docs/AI_CODE_DASHBOARD.md

  # Set the repository shown in the header
  prdash --repo acme/widgets`,
	Version:            version,
	Args:               cobra.NoArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboard(rootCtx, cfg, files, files); err != nil {
			contract.LogFatal("Cannot generate dashboard", err)
		}
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".prdash") // Name of config file (without extension)
		viper.SetConfigType("yaml")    // We'll use YAML format
		viper.AddConfigPath(".")       // Look in the current directory
		viper.AddConfigPath("$HOME")   // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("PRDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// The repository also comes from the variable GitHub Actions sets
	if err := viper.BindEnv("repo", "PRDASH_REPO", "GITHUB_REPOSITORY"); err != nil {
		contract.LogWarn("Cannot bind repo environment", err)
	}

	// Set defaults in Viper
	viper.SetDefault("history", schema.DefaultHistoryFile)
	viper.SetDefault("dashboard", schema.DefaultDashboardFile)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
