package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the stats output.
	OutputMode string

	// Tier represents the color bucket a percentage falls into.
	Tier string
)

// All output modes supported by the stats command.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All tiers, from most to least AI-generated.
const (
	FullTier   Tier = "Full"   // >= 80
	HighTier   Tier = "High"   // 50-79
	MediumTier Tier = "Medium" // 21-49
	LowTier    Tier = "Low"    // <= 20
)

// Display limits for the dashboard.
const (
	RecentLimit      = 10 // rows in the Recent Pull Requests table
	ChartLimit       = 20 // rows in the detail chart
	TitleMaxChars    = 27 // runes kept from a chart title that had to be cut
	TitleColumnWidth = 30 // chart title column width; longer titles are cut
	CompactBarWidth  = 10 // quick stats bars
	RowBarWidth      = 15 // recent table bars
	ChartBarWidth    = 40 // detail chart bars
)

// Defaults for the driver.
const (
	DefaultHistoryFile   = ".github/ai-analysis/history.json"
	DefaultDashboardFile = "AI_CODE_DASHBOARD.md"
	DefaultRepo          = "unknown/repository"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// recordTimeLayouts are tried in order when parsing mergedAt or timestamp.
var recordTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// GetTier returns the tier a percentage falls into.
func GetTier(percentage int) Tier {
	switch {
	case percentage >= 80:
		return FullTier
	case percentage >= 50:
		return HighTier
	case percentage > 20:
		return MediumTier
	default:
		return LowTier
	}
}
