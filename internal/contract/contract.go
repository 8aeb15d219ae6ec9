// Package contract provides interfaces and shared utilities for internal architecture.
package contract

// HistoryReader defines how the history document reaches the aggregator.
// This allows the core logic to be tested without touching the filesystem.
type HistoryReader interface {
	// ReadHistory returns the raw bytes of the history document at path.
	// A missing document is reported with an error satisfying errors.Is(err, fs.ErrNotExist).
	ReadHistory(path string) ([]byte, error)
}

// DashboardWriter defines how the rendered dashboard is persisted.
type DashboardWriter interface {
	// WriteDashboard replaces whatever is stored at path with content.
	WriteDashboard(path string, content string) error
}
