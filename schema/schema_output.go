package schema

// EnrichedRecord adds presentation data to an AnalysisRecord for machine-readable output.
type EnrichedRecord struct {
	Rank       int    `json:"rank"`
	Tier       Tier   `json:"tier"`
	IsAnalyzed bool   `json:"analyzed"`
	Date       string `json:"date"`
	AnalysisRecord
}

// EnrichRecords adds rank, tier and the analyzed flag to a list of records.
// The rank is the position in input order, which is most-recent-first.
func EnrichRecords(records []AnalysisRecord) []EnrichedRecord {
	output := make([]EnrichedRecord, len(records))
	for i, r := range records {
		date := r.RawTime()
		if t, ok := r.DisplayTime(); ok {
			date = t.UTC().Format("2006-01-02")
		}
		output[i] = EnrichedRecord{
			Rank:           i + 1,
			Tier:           GetTier(r.Percentage()),
			IsAnalyzed:     r.Analyzed(),
			Date:           date,
			AnalysisRecord: r,
		}
	}
	return output
}

// StatsOutput is the machine-readable shape of a stats run.
type StatsOutput struct {
	Repo                string           `json:"repo"`
	OverallAIPercentage int              `json:"overallAiPercentage"`
	HumanCharacters     int              `json:"humanCharacters"`
	Stats               StatsSummary     `json:"stats"`
	Records             []EnrichedRecord `json:"records"`
}
