package outwriter

import (
	"os"

	"github.com/huangsam/prdash/internal/contract"
	"golang.org/x/term"
)

// getMaxTableTitleWidth calculates the maximum width for PR titles in table output
// based on terminal width and table configuration.
func getMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + PR + Author + AI % + Tier with borders/padding
	baseWidth := 55

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}
