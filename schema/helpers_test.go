package schema

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		whole    int
		expected int
	}{
		{"zero whole", 10, 0, 0},
		{"zero both", 0, 0, 0},
		{"exact", 800, 1000, 80},
		{"round down", 1, 3, 33},
		{"round up", 2, 3, 67},
		{"half rounds up", 1, 200, 1},
		{"all", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundPercent(tt.part, tt.whole))
		})
	}
}

func TestRoundMean(t *testing.T) {
	assert.Equal(t, 0, RoundMean(0, 0))
	assert.Equal(t, 80, RoundMean(80, 1))
	assert.Equal(t, 51, RoundMean(101, 2)) // 50.5
	assert.Equal(t, 33, RoundMean(100, 3))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 67, RoundHalfUp(66.7))
	assert.Equal(t, 67, RoundHalfUp(66.5))
	assert.Equal(t, 66, RoundHalfUp(66.49))
	assert.Equal(t, 0, RoundHalfUp(0))
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		width      int
		expected   int
	}{
		{"empty", 0, 10, 0},
		{"full", 100, 10, 10},
		{"half of fifteen rounds up", 50, 15, 8},
		{"eighty of forty", 80, 40, 32},
		{"five of ten rounds up", 5, 10, 1},
		{"four of ten rounds down", 4, 10, 0},
		{"over one hundred is clamped", 150, 10, 10},
		{"negative is clamped", -20, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilledCells(tt.percentage, tt.width))
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	t.Run("long title is cut with ellipsis", func(t *testing.T) {
		title := "Refactor the aggregation pipeline" // 33 chars
		title += "!!"                                // 35 chars
		got := TruncateTitle(title)
		assert.Equal(t, title[:27]+"...", got)
		assert.Equal(t, 30, utf8.RuneCountInString(got))
	})

	t.Run("short title is padded", func(t *testing.T) {
		title := "Fix flaky login test" // 20 chars
		got := TruncateTitle(title)
		assert.Equal(t, title+strings.Repeat(" ", 10), got)
		assert.Equal(t, TitleColumnWidth, utf8.RuneCountInString(got))
	})

	t.Run("titles that fit the column are kept whole", func(t *testing.T) {
		for _, n := range []int{TitleMaxChars, 28, 29, TitleColumnWidth} {
			title := strings.Repeat("a", n)
			got := TruncateTitle(title)
			assert.Equal(t, title+strings.Repeat(" ", TitleColumnWidth-n), got, "length %d", n)
			assert.NotContains(t, got, "...")
		}
	})

	t.Run("one past the column is cut", func(t *testing.T) {
		title := strings.Repeat("b", TitleColumnWidth+1)
		assert.Equal(t, strings.Repeat("b", TitleMaxChars)+"...", TruncateTitle(title))
	})

	t.Run("multibyte titles count runes", func(t *testing.T) {
		title := strings.Repeat("é", 31)
		got := TruncateTitle(title)
		assert.Equal(t, strings.Repeat("é", 27)+"...", got)
	})

	t.Run("empty title", func(t *testing.T) {
		assert.Equal(t, strings.Repeat(" ", TitleColumnWidth), TruncateTitle(""))
	})
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a \| b`, EscapeCell("a | b"))
	assert.Equal(t, "line one line two", EscapeCell("line one\r\nline two"))
	assert.Equal(t, "plain", EscapeCell("plain"))
}

func TestGetTier(t *testing.T) {
	tests := []struct {
		input    int
		expected Tier
	}{
		{0, LowTier},
		{20, LowTier},
		{21, MediumTier},
		{49, MediumTier},
		{50, HighTier},
		{79, HighTier},
		{80, FullTier},
		{100, FullTier},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetTier(tt.input), "percentage %d", tt.input)
	}
}
