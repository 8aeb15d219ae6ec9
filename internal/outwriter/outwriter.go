// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// RenderDashboard produces the Markdown document for a dashboard.
func (ow *OutWriter) RenderDashboard(d schema.Dashboard) string {
	return RenderDashboard(d)
}

// WriteSummary prints the post-generation console summary to stdout.
func (ow *OutWriter) WriteSummary(d schema.Dashboard, cfg *contract.Config) error {
	return writeSummaryTable(os.Stdout, d, cfg)
}

// WriteStats prints aggregate stats using the configured output format.
func (ow *OutWriter) WriteStats(d schema.Dashboard, cfg *contract.Config) error {
	return PrintStats(d, cfg)
}
