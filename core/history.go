package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
)

// LoadHistory reads and decodes the history document at path.
// A missing document is the normal "no data yet" state and yields an empty document.
// A document that exists but cannot be decoded yields an error wrapping schema.ErrParse.
func LoadHistory(reader contract.HistoryReader, path string) (schema.HistoryDocument, error) {
	var doc schema.HistoryDocument

	data, err := reader.ReadHistory(path)
	if errors.Is(err, fs.ErrNotExist) {
		contract.LogInfo(fmt.Sprintf("No history found at %s, rendering an empty dashboard", path))
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to load history: %w", err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return schema.HistoryDocument{}, fmt.Errorf("%w in %s: %v", schema.ErrParse, path, err)
	}
	return doc, nil
}
