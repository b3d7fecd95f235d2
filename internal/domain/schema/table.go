package schema

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmuriuki/reportkit/internal/domain/data"
)

// Table represents a report table: an ordered collection of rows plus
// table-level metadata. At most one row may be designated the summary
// row; it participates in ordered iteration but mutating operations
// treat it as reserved (it is never deleted by DeleteRows).
type Table struct {
	mu         sync.RWMutex
	Name       string
	Path       string // filesystem path to table directory
	Meta       map[string]interface{}
	Rows       []*data.Row
	summaryID  uuid.UUID
	hasSummary bool
	Dirty      bool // tracks if table has unsaved changes
}

// NewTable creates an empty table with the given name
func NewTable(name string) *Table {
	return &Table{
		Name: name,
		Meta: make(map[string]interface{}),
		Rows: []*data.Row{},
	}
}

// MarkDirty marks the table as having unsaved changes
// This should be called after any mutation operation
func (t *Table) MarkDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.MarkDirtyUnsafe()
}

// MarkDirtyUnsafe sets dirty flag without acquiring lock
// IMPORTANT: Only call this when you already hold the table lock!
// Use MarkDirty() if you don't hold the lock.
func (t *Table) MarkDirtyUnsafe() {
	t.Dirty = true
}

// Lock acquires an exclusive lock on the table for write operations
func (t *Table) Lock() {
	t.mu.Lock()
}

// Unlock releases the exclusive lock
func (t *Table) Unlock() {
	t.mu.Unlock()
}

// RLock acquires a read lock on the table for read operations
func (t *Table) RLock() {
	t.mu.RLock()
}

// RUnlock releases the read lock
func (t *Table) RUnlock() {
	t.mu.RUnlock()
}

// AppendRow adds a row at the end of the table
func (t *Table) AppendRow(row *data.Row) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Rows = append(t.Rows, row)
	t.MarkDirtyUnsafe()
}

// SetSummary appends a row and designates it the table's summary row.
// A previously designated summary row loses its reserved status.
func (t *Table) SetSummary(row *data.Row) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Rows = append(t.Rows, row)
	t.summaryID = row.ID
	t.hasSummary = true
	t.MarkDirtyUnsafe()
}

// DesignateSummary marks an already-appended row as the summary row
func (t *Table) DesignateSummary(row *data.Row) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.summaryID = row.ID
	t.hasSummary = true
}

// Summary returns the summary row and true if one is designated
func (t *Table) Summary() (*data.Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.hasSummary {
		return nil, false
	}
	for _, row := range t.Rows {
		if row.ID == t.summaryID {
			return row, true
		}
	}
	return nil, false
}

// IsSummary reports whether the given row is this table's summary row
func (t *Table) IsSummary(row *data.Row) bool {
	return t.hasSummary && row.ID == t.summaryID
}

// MetaValue looks up a table-level metadata entry
func (t *Table) MetaValue(key string) (interface{}, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.Meta[key]
	return v, ok
}

// SetMetaValue writes a table-level metadata entry
func (t *Table) SetMetaValue(key string, value interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Meta[key] = value
	t.MarkDirtyUnsafe()
}

// Len returns the number of rows, summary row included
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.Rows)
}

// DeleteRows removes all rows whose IDs appear in the given set, in a
// single compaction pass that preserves the relative order of the
// surviving rows. The summary row is reserved and is never deleted,
// even if its ID is in the set. Returns the number of rows deleted.
func (t *Table) DeleteRows(ids map[uuid.UUID]struct{}) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(ids) == 0 {
		return 0
	}

	deleted := 0
	newRows := make([]*data.Row, 0, len(t.Rows))

	for _, row := range t.Rows {
		if _, doomed := ids[row.ID]; doomed && !(t.hasSummary && row.ID == t.summaryID) {
			deleted++
			continue
		}
		newRows = append(newRows, row)
	}

	if deleted == 0 {
		return 0
	}

	t.Rows = newRows
	t.MarkDirtyUnsafe()

	slog.Debug("DeleteRows operation",
		slog.String("table", t.Name),
		slog.Int("deleted", deleted),
		slog.Int("remaining", len(t.Rows)),
	)

	return deleted
}
