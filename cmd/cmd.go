// Package cmd defines the command-line interface for prdash.
package cmd

import (
	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind shared flags to Viper
	rootCmd.PersistentFlags().String("history", schema.DefaultHistoryFile, "Path to the AI analysis history JSON")
	rootCmd.PersistentFlags().String("repo", "", "Repository shown in the header (default $PRDASH_REPO or $GITHUB_REPOSITORY)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rootCmd to Viper
	rootCmd.Flags().String("dashboard", schema.DefaultDashboardFile, "Path of the Markdown dashboard to write")
	rootCmd.Flags().BoolP("quiet", "q", false, "Skip the terminal summary after writing the dashboard")
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dashboard flags", err)
	}

	// Bind all flags of statsCmd to Viper
	statsCmd.Flags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	statsCmd.Flags().String("output-file", "", "Optional path to write output to (required for parquet)")
	if err := viper.BindPFlags(statsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding stats flags", err)
	}
}
