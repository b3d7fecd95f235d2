package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmuriuki/reportkit/internal/domain/data"
	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// LoadTable reads meta.json and data.json from a table directory and
// rebuilds the table. Rows get fresh identities; the summary row is
// re-designated from its recorded position.
func LoadTable(path string) (*schema.Table, error) {
	metaPath := filepath.Join(path, "meta.json")
	dataPath := filepath.Join(path, "data.json")

	metaBytes, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse meta.json at %s: %w", path, err)
	}

	dataBytes, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, err
	}

	var rows []RowJSON
	if err := json.Unmarshal(dataBytes, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse data.json at %s: %w", path, err)
	}

	table := schema.NewTable(meta.Name)
	table.Path = path
	if meta.Meta != nil {
		table.Meta = meta.Meta
	}

	for i, r := range rows {
		row := data.NewRow(r.Data)
		for k, v := range r.Meta {
			row.Meta[k] = v
		}
		table.AppendRow(row)
		if i == meta.SummaryRow {
			table.DesignateSummary(row)
		}
	}

	table.Dirty = false
	return table, nil
}
