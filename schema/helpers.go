package schema

import (
	"math"
	"strings"
)

// RoundPercent returns part/whole as a percentage rounded half-up.
// A zero whole yields 0 instead of NaN.
func RoundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(whole)*100 + 0.5))
}

// RoundHalfUp rounds a non-negative decoded number to the nearest integer.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RoundMean returns the arithmetic mean of sum over count rounded half-up, or 0 for no values.
func RoundMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(count) + 0.5))
}

// FilledCells returns how many of width cells a percentage fills, clamped to [0, width].
func FilledCells(percentage, width int) int {
	filled := int(math.Floor(float64(percentage)/100*float64(width) + 0.5))
	return max(0, min(filled, width))
}

// TruncateTitle cuts a title that does not fit TitleColumnWidth runes down to
// TitleMaxChars runes plus an ellipsis, and right-pads the rest with spaces.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > TitleColumnWidth {
		return string(runes[:TitleMaxChars]) + "..."
	}
	return title + strings.Repeat(" ", TitleColumnWidth-len(runes))
}

// EscapeCell makes a value safe to place inside a Markdown table cell.
func EscapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
