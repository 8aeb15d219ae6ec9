package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeSummaryTable prints a one-line overview followed by the most recent pull requests.
func writeSummaryTable(w io.Writer, d schema.Dashboard, cfg *contract.Config) error {
	s := d.Stats
	if _, err := fmt.Fprintf(w, "📊 %s: %d of %d merged PRs analyzed, %d%% AI overall (average %d%%)\n",
		d.Repo, s.TotalAnalyzedPRs, s.TotalMergedPRs, s.OverallAIPercentage(), s.AverageAIPercentage); err != nil {
		return err
	}
	if len(d.Records) == 0 {
		_, err := fmt.Fprintln(w, "No analyzed pull requests yet.")
		return err
	}
	return writeRecordsTable(w, d.Records[:min(len(d.Records), schema.RecentLimit)], cfg)
}

// writeRecordsTable renders records in input order with a tier label per row.
func writeRecordsTable(w io.Writer, records []schema.AnalysisRecord, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	table.Header([]string{"Rank", "PR", "Title", "Author", "AI %", "Tier"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	titleWidth := getMaxTableTitleWidth(cfg)

	var data [][]string
	for i, r := range records {
		pct := "-"
		if r.Analyzed() {
			pct = fmt.Sprintf("%d%%", r.Percentage())
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("#%d", r.PullRequest),
			contract.TruncateText(chartLineReplacer.Replace(r.Title), titleWidth),
			r.Author,
			pct,
			label(r.Percentage()),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
