package data

import (
	"github.com/google/uuid"
)

// Row represents a single table row
// Key = column name, Value = cell value
// The ID is assigned at creation and never changes: mutating a row's
// data or metadata in place does not affect its identity.
type Row struct {
	ID   uuid.UUID
	Data map[string]interface{}
	Meta map[string]interface{}
}

// NewRow creates a new Row with the given data and a fresh identity
func NewRow(values map[string]interface{}) *Row {
	if values == nil {
		values = make(map[string]interface{})
	}
	return &Row{
		ID:   uuid.New(),
		Data: values,
		Meta: make(map[string]interface{}),
	}
}

// Copy creates a deep copy of the row's data and metadata under a new
// identity. The copy belongs to no table until appended to one.
func (r *Row) Copy() *Row {
	values := make(map[string]interface{}, len(r.Data))
	for k, v := range r.Data {
		values[k] = v
	}
	cp := NewRow(values)
	for k, v := range r.Meta {
		cp.Meta[k] = v
	}
	return cp
}

// Value returns the row's value for the given column
func (r *Row) Value(column string) (interface{}, bool) {
	v, ok := r.Data[column]
	return v, ok
}

// Set writes the row's value for the given column
func (r *Row) Set(column string, value interface{}) {
	r.Data[column] = value
}

// FoldMeta merges another row's metadata into this row's metadata.
// Incoming values overwrite existing keys, so metadata written by
// later rows is retained when rows are combined.
func (r *Row) FoldMeta(other map[string]interface{}) {
	for k, v := range other {
		r.Meta[k] = v
	}
}
