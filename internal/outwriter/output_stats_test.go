package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() *contract.Config {
	return &contract.Config{
		Repo:      "acme/widgets",
		Output:    schema.TextOut,
		Width:     120,
		UseColors: false,
	}
}

func TestWriteStatsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStatsJSON(&buf, exampleDashboard()))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, "acme/widgets", result["repo"])
	assert.Equal(t, float64(80), result["overallAiPercentage"])
	assert.Equal(t, float64(200), result["humanCharacters"])

	stats, ok := result["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), stats["totalMergedPRs"])
	assert.Equal(t, float64(1), stats["totalAnalyzedPRs"])
	assert.Equal(t, float64(80), stats["averageAiPercentage"])

	records, ok := result["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, 2)
	first := records[0].(map[string]any)
	assert.Equal(t, float64(1), first["rank"])
	assert.Equal(t, "Full", first["tier"])
	assert.Equal(t, true, first["analyzed"])
	assert.Equal(t, "2024-03-05", first["date"])
	second := records[1].(map[string]any)
	assert.Equal(t, false, second["analyzed"])
}

func TestWriteStatsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStatsCSV(&buf, exampleDashboard().Records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 rows

	assert.Equal(t, "rank", rows[0][0])
	assert.Equal(t, "tier", rows[0][len(rows[0])-1])
	assert.Equal(t, []string{"1", "1", "Add login page", "alice", "2024-03-05", "true", "2", "800", "1000", "80", "Full"}, rows[1])
	assert.Equal(t, []string{"2", "2", "Update README", "bob", "", "false", "0", "0", "0", "0", "Low"}, rows[2])
}

func TestWriteStatsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeStatsText(&buf, exampleDashboard(), plainConfig()))
	out := buf.String()

	assert.Contains(t, out, "Total Merged PRs")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "Human Characters")
	assert.Contains(t, out, "Add login page")
	assert.Contains(t, out, "Full")
	assert.Contains(t, out, "Showing 2 pull requests for acme/widgets")
}

func TestWriteStatsText_Empty(t *testing.T) {
	var buf bytes.Buffer
	d := schema.Dashboard{Repo: schema.DefaultRepo}
	require.NoError(t, writeStatsText(&buf, d, plainConfig()))
	assert.Contains(t, buf.String(), "No analyzed pull requests yet for unknown/repository")
}

func TestWriteSummaryTable(t *testing.T) {
	t.Run("limits rows to the recent table size", func(t *testing.T) {
		d := exampleDashboard()
		d.Records = manyRecords(15)

		var buf bytes.Buffer
		require.NoError(t, writeSummaryTable(&buf, d, plainConfig()))
		out := buf.String()

		assert.Contains(t, out, "📊 acme/widgets: 1 of 3 merged PRs analyzed, 80% AI overall (average 80%)")
		assert.Contains(t, out, "#15")
		assert.Contains(t, out, "#6")
		assert.NotContains(t, out, "#5 ")
		assert.Contains(t, out, "High")
	})

	t.Run("no records", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummaryTable(&buf, schema.Dashboard{Repo: "acme/widgets"}, plainConfig()))
		assert.Contains(t, buf.String(), "No analyzed pull requests yet.")
	})
}

func TestPrintStats_ToFile(t *testing.T) {
	tests := []struct {
		name   string
		output schema.OutputMode
		check  func(t *testing.T, data []byte)
	}{
		{
			name:   "json",
			output: schema.JSONOut,
			check: func(t *testing.T, data []byte) {
				assert.True(t, json.Valid(data))
			},
		},
		{
			name:   "csv",
			output: schema.CSVOut,
			check: func(t *testing.T, data []byte) {
				assert.True(t, strings.HasPrefix(string(data), "rank,pull_request,title"))
			},
		},
		{
			name:   "text",
			output: schema.TextOut,
			check: func(t *testing.T, data []byte) {
				assert.Contains(t, string(data), "Average AI Percentage")
			},
		},
		{
			name:   "parquet",
			output: schema.ParquetOut,
			check: func(t *testing.T, data []byte) {
				assert.True(t, bytes.HasPrefix(data, []byte("PAR1")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := plainConfig()
			cfg.Output = tt.output
			cfg.OutputFile = filepath.Join(t.TempDir(), "stats."+string(tt.output))

			require.NoError(t, PrintStats(exampleDashboard(), cfg))

			data, err := os.ReadFile(cfg.OutputFile)
			require.NoError(t, err)
			tt.check(t, data)
		})
	}
}
