package storage

// TableMeta is the on-disk shape of meta.json
type TableMeta struct {
	Name       string                 `json:"name"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
	RowCount   int64                  `json:"row_count,omitempty"`
	SummaryRow int                    `json:"summary_row"` // row position, -1 when the table has none
}

// RowJSON is the on-disk shape of one data.json entry
type RowJSON struct {
	Data map[string]interface{} `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}
