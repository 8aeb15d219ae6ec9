package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/prdash/schema"
)

// Color variables for console output.
var (
	FullColor   = color.New(color.FgGreen, color.Bold)  // FullColor marks mostly AI-generated work.
	HighColor   = color.New(color.FgYellow, color.Bold) // HighColor marks a majority share.
	MediumColor = color.New(color.FgHiRed)              // MediumColor is the orange-ish middle tier.
	LowColor    = color.New(color.FgRed)                // LowColor marks little AI involvement.
)

// GetPlainLabel returns the plain tier label for a percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(percentage int) string {
	return string(schema.GetTier(percentage))
}

// GetColorLabel returns a colored tier label for console output (table).
func GetColorLabel(percentage int) string {
	tier := schema.GetTier(percentage)
	text := string(tier)

	switch tier {
	case schema.FullTier:
		return FullColor.Sprint(text)
	case schema.HighTier:
		return HighColor.Sprint(text)
	case schema.MediumTier:
		return MediumColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs an informational message to stderr.
// Stdout stays reserved for command output.
func LogInfo(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
