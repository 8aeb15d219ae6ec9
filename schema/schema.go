// Package schema has models, constants and shared helpers for all parts of prdash.
package schema

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrParse is wrapped by every error caused by a history document that exists
// but cannot be decoded into a HistoryDocument.
var ErrParse = errors.New("malformed history document")

// Summary holds the character-level results of analyzing a single pull request.
type Summary struct {
	Percentage      int `json:"percentage"`      // AI share of the PR, 0-100
	AICharacters    int `json:"aiCharacters"`    // Characters attributed to AI generation
	TotalCharacters int `json:"totalCharacters"` // All characters considered by the analysis
}

// UnmarshalJSON accepts fractional numbers, which some producers emit, and rounds them half-up.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var raw struct {
		Percentage      float64 `json:"percentage"`
		AICharacters    float64 `json:"aiCharacters"`
		TotalCharacters float64 `json:"totalCharacters"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Summary{
		Percentage:      RoundHalfUp(raw.Percentage),
		AICharacters:    RoundHalfUp(raw.AICharacters),
		TotalCharacters: RoundHalfUp(raw.TotalCharacters),
	}
	return nil
}

// AnalysisRecord represents one merged pull request as written by the external analysis process.
// Optional fields are modeled explicitly and read through the accessor methods below,
// which apply the zero defaults.
type AnalysisRecord struct {
	PullRequest int               `json:"pullRequest"`
	Title       string            `json:"prTitle"`
	URL         string            `json:"prUrl"`
	Author      string            `json:"author"`
	MergedAt    string            `json:"mergedAt,omitempty"`
	Timestamp   string            `json:"timestamp,omitempty"`
	HasAnalysis *bool             `json:"hasAnalysis,omitempty"`
	Files       []json.RawMessage `json:"files,omitempty"`
	Summary     *Summary          `json:"summary,omitempty"`
}

// HistoryDocument is the persisted input produced by the external analysis process.
// Analyses are ordered most-recent-first and that order is never changed.
type HistoryDocument struct {
	TotalMergedPRs int              `json:"totalMergedPRs"`
	Analyses       []AnalysisRecord `json:"analyses"`
}

// StatsSummary is derived from a HistoryDocument on every run and never persisted.
type StatsSummary struct {
	TotalMergedPRs      int `json:"totalMergedPRs"`
	TotalAnalyzedPRs    int `json:"totalAnalyzedPRs"`
	TotalFiles          int `json:"totalFiles"`
	TotalCharacters     int `json:"totalCharacters"`
	TotalAICharacters   int `json:"totalAiCharacters"`
	AverageAIPercentage int `json:"averageAiPercentage"`
}

// Dashboard is everything the renderer needs to produce the Markdown document.
type Dashboard struct {
	Stats       StatsSummary
	Records     []AnalysisRecord
	Repo        string
	GeneratedAt time.Time
}

// Analyzed reports whether the record counts toward the aggregate totals.
// Only an explicit false excludes it.
func (r AnalysisRecord) Analyzed() bool {
	return r.HasAnalysis == nil || *r.HasAnalysis
}

// Percentage returns the AI percentage, or 0 when no summary exists.
func (r AnalysisRecord) Percentage() int {
	if r.Summary == nil {
		return 0
	}
	return r.Summary.Percentage
}

// AICharacters returns the AI character count, or 0 when no summary exists.
func (r AnalysisRecord) AICharacters() int {
	if r.Summary == nil {
		return 0
	}
	return r.Summary.AICharacters
}

// TotalCharacters returns the total character count, or 0 when no summary exists.
func (r AnalysisRecord) TotalCharacters() int {
	if r.Summary == nil {
		return 0
	}
	return r.Summary.TotalCharacters
}

// FileCount returns the number of file descriptors attached to the record.
func (r AnalysisRecord) FileCount() int {
	return len(r.Files)
}

// RawTime returns mergedAt when present and timestamp otherwise.
func (r AnalysisRecord) RawTime() string {
	if r.MergedAt != "" {
		return r.MergedAt
	}
	return r.Timestamp
}

// DisplayTime parses RawTime leniently. The boolean is false when the value is
// absent or in a layout we do not recognize.
func (r AnalysisRecord) DisplayTime() (time.Time, bool) {
	raw := r.RawTime()
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range recordTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OverallAIPercentage is the character-weighted AI share, rounded to the nearest integer.
// It is 0 when there are no characters at all.
func (s StatsSummary) OverallAIPercentage() int {
	return RoundPercent(s.TotalAICharacters, s.TotalCharacters)
}

// HumanCharacters returns the characters not attributed to AI. The result is not clamped.
func (s StatsSummary) HumanCharacters() int {
	return s.TotalCharacters - s.TotalAICharacters
}

// CharacterRatio returns the AI and human shares as two integers that sum to 100.
// With no characters the whole share is human.
func (s StatsSummary) CharacterRatio() (ai int, human int) {
	ai = s.OverallAIPercentage()
	return ai, 100 - ai
}
