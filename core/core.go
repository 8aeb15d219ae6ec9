// Package core has core logic for loading, aggregating and publishing the dashboard.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing the prdash commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteDashboard loads the history, renders the dashboard and replaces the output file.
// Nothing is written when loading or parsing fails, so a previous dashboard stays untouched.
func ExecuteDashboard(ctx context.Context, cfg *contract.Config, reader contract.HistoryReader, writer contract.DashboardWriter) error {
	doc, err := LoadHistory(reader, cfg.HistoryFile)
	if err != nil {
		return err
	}

	dashboard := BuildDashboard(doc, cfg.Repo, time.Now())
	ow := outwriter.NewOutWriter()
	content := ow.RenderDashboard(dashboard)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writer.WriteDashboard(cfg.DashboardFile, content); err != nil {
		return fmt.Errorf("failed to write dashboard: %w", err)
	}
	contract.LogInfo(fmt.Sprintf("💾 Wrote dashboard to %s", cfg.DashboardFile))

	if cfg.Quiet {
		return nil
	}
	return ow.WriteSummary(dashboard, cfg)
}

// ExecuteStats loads the history and prints the aggregate stats in the configured format.
func ExecuteStats(ctx context.Context, cfg *contract.Config, reader contract.HistoryReader) error {
	doc, err := LoadHistory(reader, cfg.HistoryFile)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dashboard := BuildDashboard(doc, cfg.Repo, time.Now())
	return outwriter.NewOutWriter().WriteStats(dashboard, cfg)
}
