package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/prdash/schema"
)

// DateFormat is the date-only ISO 8601 representation used in the dashboard header.
const DateFormat = time.DateOnly

// ShortDateFormat is the short human date used in the Recent Pull Requests table.
const ShortDateFormat = "Jan 2, 2006"

// Config holds the runtime configuration for a run.
// This struct is the "final, validated" config.
type Config struct {
	HistoryFile   string
	DashboardFile string
	Repo          string

	Output     schema.OutputMode
	OutputFile string

	Width     int  // Terminal width override (0 = auto-detect)
	Quiet     bool // Skip the terminal summary after writing the dashboard
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	History string `mapstructure:"history"`
	Repo    string `mapstructure:"repo"`
	Width   int    `mapstructure:"width"`
	Color   string `mapstructure:"color"`

	// --- Fields from rootCmd.Flags() ---
	Dashboard string `mapstructure:"dashboard"`
	Quiet     bool   `mapstructure:"quiet"`

	// --- Fields from statsCmd.Flags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validatePaths(cfg, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return validateOutput(cfg, input)
}

// validatePaths resolves the input and output locations plus the repository name.
func validatePaths(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryFile = strings.TrimSpace(input.History)
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = schema.DefaultHistoryFile
	}

	cfg.DashboardFile = strings.TrimSpace(input.Dashboard)
	if cfg.DashboardFile == "" {
		cfg.DashboardFile = schema.DefaultDashboardFile
	}

	if cfg.HistoryFile == cfg.DashboardFile {
		return fmt.Errorf("dashboard and history must be different files. Both resolve to %q", cfg.HistoryFile)
	}

	cfg.Repo = strings.TrimSpace(input.Repo)
	if cfg.Repo == "" {
		cfg.Repo = schema.DefaultRepo
	}
	return nil
}

// validateSimpleInputs processes the terminal related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Quiet = input.Quiet

	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colorStr := input.Color
	if colorStr == "" {
		colorStr = "yes"
	}
	colors, err := ParseBoolString(colorStr)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	return nil
}

// validateOutput checks the stats output format and its destination.
func validateOutput(cfg *Config, input *ConfigRawInput) error {
	output := strings.ToLower(strings.TrimSpace(input.Output))
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(output)
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required when using %s output", schema.ParquetOut)
	}
	return nil
}
