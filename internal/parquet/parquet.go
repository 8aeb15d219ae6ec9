// Package parquet provides data structures and functions for exporting prdash
// pull request analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/prdash/schema"
	"github.com/parquet-go/parquet-go"
)

// PullRequestRow represents one analyzed pull request in the export.
type PullRequestRow struct {
	// Repo is the repository the dashboard was generated for
	Repo string `parquet:"repo,snappy"`

	// Rank is the 1-based position in the history, most recent first
	Rank int32 `parquet:"rank,snappy"`

	// PullRequest is the pull request number
	PullRequest int64 `parquet:"pull_request,snappy"`

	// Title is the pull request title
	Title string `parquet:"title,snappy"`

	// URL links to the pull request
	URL string `parquet:"url,snappy"`

	// Author is the handle of the pull request author
	Author string `parquet:"author,snappy"`

	// MergedAt is when the pull request was merged (nullable when absent or unparseable)
	MergedAt *time.Time `parquet:"merged_at,optional,snappy"`

	// Analyzed is false only when the history marks the record as not analyzed
	Analyzed bool `parquet:"analyzed,snappy"`

	// FileCount is the number of files attached to the analysis
	FileCount int32 `parquet:"file_count,snappy"`

	// AICharacters is the number of characters attributed to AI generation
	AICharacters int64 `parquet:"ai_characters,snappy"`

	// TotalCharacters is the number of characters considered by the analysis
	TotalCharacters int64 `parquet:"total_characters,snappy"`

	// Percentage is the AI share of the pull request (0-100)
	Percentage int32 `parquet:"percentage,snappy"`

	// Tier is the label bucket of Percentage
	Tier string `parquet:"tier,snappy"`
}

// WritePullRequestsParquet writes a slice of PullRequestRow structs to a Parquet file.
func WritePullRequestsParquet(data []PullRequestRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the PullRequestRow struct tags
	writer := parquet.NewGenericWriter[PullRequestRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertEnrichedRecords converts schema.EnrichedRecord to PullRequestRow for Parquet export.
func ConvertEnrichedRecords(repo string, records []schema.EnrichedRecord) []PullRequestRow {
	result := make([]PullRequestRow, len(records))
	for i, record := range records {
		var mergedAt *time.Time
		if t, ok := record.DisplayTime(); ok {
			utc := t.UTC()
			mergedAt = &utc
		}
		result[i] = PullRequestRow{
			Repo:            repo,
			Rank:            int32(record.Rank),
			PullRequest:     int64(record.PullRequest),
			Title:           record.Title,
			URL:             record.URL,
			Author:          record.Author,
			MergedAt:        mergedAt,
			Analyzed:        record.IsAnalyzed,
			FileCount:       int32(record.FileCount()),
			AICharacters:    int64(record.AICharacters()),
			TotalCharacters: int64(record.TotalCharacters()),
			Percentage:      int32(record.Percentage()),
			Tier:            string(record.Tier),
		}
	}
	return result
}
