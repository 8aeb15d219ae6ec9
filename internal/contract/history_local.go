package contract

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalFiles implements HistoryReader and DashboardWriter on the local filesystem.
type LocalFiles struct{}

var (
	_ HistoryReader   = &LocalFiles{} // Compile-time check
	_ DashboardWriter = &LocalFiles{} // Compile-time check
)

// NewLocalFiles creates a new instance of the local filesystem adapter.
func NewLocalFiles() *LocalFiles {
	return &LocalFiles{}
}

// ReadHistory implements the HistoryReader interface.
func (l *LocalFiles) ReadHistory(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read history %q: %w", path, err)
	}
	return data, nil
}

// WriteDashboard implements the DashboardWriter interface.
// The file is truncated first, so the previous dashboard is fully replaced.
func (l *LocalFiles) WriteDashboard(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory for %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot write dashboard %q: %w", path, err)
	}
	return nil
}
