package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"promptatlas/internal/domain"
	"promptatlas/internal/platform/logger"
)

// LoadRecords reads the raw metadata JSON array. An unreadable or
// unparseable file is fatal; individual records that do not decode or that
// carry no id are skipped with a warning.
func LoadRecords(path string, log *logger.Logger) ([]domain.RawRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse input file %s: %w", path, err)
	}

	records := make([]domain.RawRecord, 0, len(entries))
	for i, entry := range entries {
		var rec domain.RawRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			log.Warn("skipping malformed record", "index", i, "error", err)
			continue
		}
		if rec.ID == 0 {
			log.Warn("skipping record without id", "index", i)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteDataset persists the dataset as indented JSON, creating parent
// directories as needed.
func WriteDataset(path string, ds *domain.Dataset) error {
	out, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
