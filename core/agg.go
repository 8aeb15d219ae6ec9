package core

import (
	"time"

	"github.com/huangsam/prdash/schema"
)

// Aggregate reduces a history document into summary statistics.
// Records explicitly marked as not analyzed are skipped for every analyzed total.
func Aggregate(doc schema.HistoryDocument) schema.StatsSummary {
	stats := schema.StatsSummary{TotalMergedPRs: doc.TotalMergedPRs}

	percentageSum := 0
	for _, r := range doc.Analyses {
		if !r.Analyzed() {
			continue
		}
		stats.TotalAnalyzedPRs++
		stats.TotalFiles += r.FileCount()
		stats.TotalCharacters += r.TotalCharacters()
		stats.TotalAICharacters += r.AICharacters()
		percentageSum += r.Percentage()
	}

	stats.AverageAIPercentage = schema.RoundMean(percentageSum, stats.TotalAnalyzedPRs)
	return stats
}

// BuildDashboard pairs the aggregate stats with the records to display.
// Records keep their input order, which is most recent first.
func BuildDashboard(doc schema.HistoryDocument, repo string, now time.Time) schema.Dashboard {
	records := doc.Analyses
	if records == nil {
		records = []schema.AnalysisRecord{}
	}
	return schema.Dashboard{
		Stats:       Aggregate(doc),
		Records:     records,
		Repo:        repo,
		GeneratedAt: now,
	}
}
