package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/internal/parquet"
	"github.com/huangsam/prdash/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStats outputs the aggregate stats, dispatching based on the output format configured.
func PrintStats(d schema.Dashboard, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsJSON(w, d)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsCSV(w, d.Records)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertEnrichedRecords(d.Repo, schema.EnrichRecords(d.Records))
		if err := parquet.WritePullRequestsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		contract.LogInfo(fmt.Sprintf("💾 Exported %d pull requests to %s", len(rows), cfg.OutputFile))
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsText(w, d, cfg)
		}, "Wrote table")
	}
	return nil
}

// writeStatsText prints the metric table followed by every record.
func writeStatsText(w io.Writer, d schema.Dashboard, cfg *contract.Config) error {
	s := d.Stats
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Total Merged PRs", formatCount(s.TotalMergedPRs)},
		{"Analyzed PRs", formatCount(s.TotalAnalyzedPRs)},
		{"Files Analyzed", formatCount(s.TotalFiles)},
		{"Total Characters", formatCount(s.TotalCharacters)},
		{"AI-Generated Characters", formatCount(s.TotalAICharacters)},
		{"Human Characters", formatCount(s.HumanCharacters())},
		{"Overall AI Percentage", fmt.Sprintf("%d%%", s.OverallAIPercentage())},
		{"Average AI Percentage", fmt.Sprintf("%d%%", s.AverageAIPercentage)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(d.Records) == 0 {
		_, err := fmt.Fprintf(w, "No analyzed pull requests yet for %s\n", d.Repo)
		return err
	}
	if err := writeRecordsTable(w, d.Records, cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d pull requests for %s\n", len(d.Records), d.Repo)
	return err
}

// writeStatsJSON writes the stats and enriched records as one JSON document.
func writeStatsJSON(w io.Writer, d schema.Dashboard) error {
	output := schema.StatsOutput{
		Repo:                d.Repo,
		OverallAIPercentage: d.Stats.OverallAIPercentage(),
		HumanCharacters:     d.Stats.HumanCharacters(),
		Stats:               d.Stats,
		Records:             schema.EnrichRecords(d.Records),
	}
	return writeJSON(w, output)
}

// writeStatsCSV writes one row per record.
func writeStatsCSV(w io.Writer, records []schema.AnalysisRecord) error {
	header := []string{
		"rank",
		"pull_request",
		"title",
		"author",
		"date",
		"analyzed",
		"files",
		"ai_characters",
		"total_characters",
		"percentage",
		"tier",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range schema.EnrichRecords(records) {
			rec := []string{
				strconv.Itoa(r.Rank),
				strconv.Itoa(r.PullRequest),
				r.Title,
				r.Author,
				r.Date,
				strconv.FormatBool(r.IsAnalyzed),
				strconv.Itoa(r.FileCount()),
				strconv.Itoa(r.AICharacters()),
				strconv.Itoa(r.TotalCharacters()),
				strconv.Itoa(r.Percentage()),
				string(r.Tier),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
