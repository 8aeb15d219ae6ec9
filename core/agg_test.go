package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/huangsam/prdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		doc      schema.HistoryDocument
		expected schema.StatsSummary
	}{
		{
			name:     "empty history",
			doc:      schema.HistoryDocument{},
			expected: schema.StatsSummary{},
		},
		{
			name: "unanalyzed records contribute nothing",
			doc: schema.HistoryDocument{
				TotalMergedPRs: 3,
				Analyses: []schema.AnalysisRecord{
					{
						PullRequest: 1,
						HasAnalysis: boolPtr(true),
						Files:       []json.RawMessage{json.RawMessage(`"a"`), json.RawMessage(`"b"`)},
						Summary:     &schema.Summary{Percentage: 80, AICharacters: 800, TotalCharacters: 1000},
					},
					{
						PullRequest: 2,
						HasAnalysis: boolPtr(false),
						Files:       []json.RawMessage{json.RawMessage(`"c"`)},
						Summary:     &schema.Summary{Percentage: 10, AICharacters: 5, TotalCharacters: 50},
					},
				},
			},
			expected: schema.StatsSummary{
				TotalMergedPRs:      3,
				TotalAnalyzedPRs:    1,
				TotalFiles:          2,
				TotalCharacters:     1000,
				TotalAICharacters:   800,
				AverageAIPercentage: 80,
			},
		},
		{
			name: "absent flag counts as analyzed and absent summary as zero",
			doc: schema.HistoryDocument{
				TotalMergedPRs: 2,
				Analyses: []schema.AnalysisRecord{
					{PullRequest: 1},
					{PullRequest: 2, Summary: &schema.Summary{Percentage: 51, AICharacters: 51, TotalCharacters: 100}},
				},
			},
			expected: schema.StatsSummary{
				TotalMergedPRs:      2,
				TotalAnalyzedPRs:    2,
				TotalCharacters:     100,
				TotalAICharacters:   51,
				AverageAIPercentage: 26, // 25.5 rounds up
			},
		},
		{
			name: "average and weighted percentage diverge",
			doc: schema.HistoryDocument{
				TotalMergedPRs: 2,
				Analyses: []schema.AnalysisRecord{
					{Summary: &schema.Summary{Percentage: 100, AICharacters: 10, TotalCharacters: 10}},
					{Summary: &schema.Summary{Percentage: 0, AICharacters: 0, TotalCharacters: 990}},
				},
			},
			expected: schema.StatsSummary{
				TotalMergedPRs:      2,
				TotalAnalyzedPRs:    2,
				TotalCharacters:     1000,
				TotalAICharacters:   10,
				AverageAIPercentage: 50,
			},
		},
		{
			name: "only unanalyzed records",
			doc: schema.HistoryDocument{
				TotalMergedPRs: 4,
				Analyses: []schema.AnalysisRecord{
					{PullRequest: 1, HasAnalysis: boolPtr(false)},
				},
			},
			expected: schema.StatsSummary{TotalMergedPRs: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.doc))
		})
	}
}

func TestAggregate_OverallPercentage(t *testing.T) {
	stats := Aggregate(schema.HistoryDocument{
		Analyses: []schema.AnalysisRecord{
			{Summary: &schema.Summary{Percentage: 100, AICharacters: 10, TotalCharacters: 10}},
			{Summary: &schema.Summary{Percentage: 0, AICharacters: 0, TotalCharacters: 990}},
		},
	})
	assert.Equal(t, 1, stats.OverallAIPercentage())
	assert.Equal(t, 50, stats.AverageAIPercentage)

	assert.Equal(t, 0, Aggregate(schema.HistoryDocument{}).OverallAIPercentage())
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("keeps record order", func(t *testing.T) {
		doc := schema.HistoryDocument{
			TotalMergedPRs: 3,
			Analyses: []schema.AnalysisRecord{
				{PullRequest: 3}, {PullRequest: 1}, {PullRequest: 2},
			},
		}
		d := BuildDashboard(doc, "acme/widgets", now)

		require.Len(t, d.Records, 3)
		assert.Equal(t, 3, d.Records[0].PullRequest)
		assert.Equal(t, 1, d.Records[1].PullRequest)
		assert.Equal(t, 2, d.Records[2].PullRequest)
		assert.Equal(t, "acme/widgets", d.Repo)
		assert.Equal(t, now, d.GeneratedAt)
		assert.Equal(t, 3, d.Stats.TotalAnalyzedPRs)
	})

	t.Run("empty history has no records", func(t *testing.T) {
		d := BuildDashboard(schema.HistoryDocument{}, schema.DefaultRepo, now)
		assert.NotNil(t, d.Records)
		assert.Empty(t, d.Records)
		assert.Equal(t, schema.StatsSummary{}, d.Stats)
	})
}
