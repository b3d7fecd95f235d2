package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// SaveTable persists both data.json and meta.json atomically
func SaveTable(t *schema.Table) error {
	if t == nil || t.Path == "" {
		return fmt.Errorf("cannot save table: nil or missing path")
	}

	tableName := t.Name
	basePath := t.Path

	// Lock table for reading during snapshot
	t.RLock()

	meta := TableMeta{
		Name:       tableName,
		Meta:       t.Meta,
		RowCount:   int64(len(t.Rows)),
		SummaryRow: -1,
	}

	rows := make([]RowJSON, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = RowJSON{
			Data: row.Data,
			Meta: row.Meta,
		}
		if t.IsSummary(row) {
			meta.SummaryRow = i
		}
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		t.RUnlock()
		return fmt.Errorf("failed to marshal table meta for %s: %w", tableName, err)
	}

	dataBytes, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		t.RUnlock()
		return fmt.Errorf("failed to marshal rows for %s: %w", tableName, err)
	}

	t.RUnlock()

	// Write both files using temp + atomic rename
	files := []struct {
		path string
		data []byte
		name string
	}{
		{filepath.Join(basePath, "meta.json"), metaBytes, "meta.json"},
		{filepath.Join(basePath, "data.json"), dataBytes, "data.json"},
	}

	for _, f := range files {
		tmpPath := f.path + ".tmp"

		if err := os.WriteFile(tmpPath, f.data, 0644); err != nil {
			return fmt.Errorf("failed to write temp file %s for table %s: %w", f.name, tableName, err)
		}

		if err := os.Rename(tmpPath, f.path); err != nil {
			return fmt.Errorf("failed to rename temp → %s for table %s: %w", f.name, tableName, err)
		}
	}

	t.Lock()
	t.Dirty = false
	t.Unlock()

	slog.Info("Table saved successfully",
		slog.String("table", tableName),
		slog.String("path", basePath),
		slog.Int64("row_count", meta.RowCount),
	)

	return nil
}
