package cmd

import (
	"github.com/huangsam/prdash/core"
	"github.com/huangsam/prdash/internal/contract"
	"github.com/spf13/cobra"
)

// statsCmd prints the aggregate stats without writing the dashboard.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate AI generation stats for merged pull requests.",
	Long: `Aggregate the analysis history and print the results.

The text format shows the same totals as the dashboard plus every pull request
with its tier. The machine formats are meant for further processing:
- json: stats and enriched records in one document
- csv: one row per pull request
- parquet: one row per pull request, written to --output-file

Examples:
  # Show the stats in the terminal
  prdash stats

  # Export per-PR rows for DuckDB or pandas
  prdash stats --output parquet --output-file prs.parquet

  # Feed the totals into another tool
  prdash stats --output json | jq .stats`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, files); err != nil {
			contract.LogFatal("Cannot print stats", err)
		}
	},
}
