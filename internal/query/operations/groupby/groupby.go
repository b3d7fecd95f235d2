package groupby

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmuriuki/reportkit/internal/domain/data"
	"github.com/dmuriuki/reportkit/internal/domain/errors"
	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// KeyFunc derives a group key from a cell value. The extra args are the
// ones bound at filter construction, passed in declared order on every
// call. The function must be pure for the pass to be deterministic, it
// must not mutate the value it is given (the engine does not copy it),
// and the key it returns must be a comparable value because keys are
// used directly as Go map keys.
type KeyFunc func(value interface{}, args ...interface{}) (interface{}, error)

// Filter collapses rows whose group-by column reduces to the same key.
// The first row seen for a key becomes the group's representative and
// its group-by column is overwritten with the reduced key; every later
// row for that key is merged into the representative using the table's
// per-column aggregation operators and then deleted. The summary row,
// if the table has one, is never grouped, merged, or deleted.
type Filter struct {
	column    string
	key       KeyFunc
	args      []interface{}
	observers []Observer
}

// New configures a group-by filter over the given column.
// The extra args are fixed and forwarded to the key function as-is.
func New(column string, key KeyFunc, args ...interface{}) *Filter {
	return &Filter{
		column: column,
		key:    key,
		args:   args,
	}
}

// AddObserver registers an observer for pass lifecycle events
func (f *Filter) AddObserver(observer Observer) {
	f.observers = append(f.observers, observer)
}

// RemoveObserver unregisters an observer. Observers are matched by ==,
// so implementations must be comparable (register pointers, not values
// holding slices or maps).
func (f *Filter) RemoveObserver(observer Observer) {
	for i, o := range f.observers {
		if o == observer {
			f.observers = append(f.observers[:i], f.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (f *Filter) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range f.observers {
		observer.OnEvent(event)
	}
}

// Apply runs one synchronous pass over the table, mutating it in place.
// Representatives keep their original relative order; victims are
// removed in a single bulk deletion after the full iteration, so the
// row collection is never modified mid-iteration.
//
// A missing group-by column aborts the pass with a ColumnNotFoundError.
// A key function error is returned unmodified. Either way rows already
// merged stay merged and rows not yet visited stay untouched; there is
// no rollback.
func (f *Filter) Apply(t *schema.Table) error {
	spec, err := parseSpec(t)
	if err != nil {
		return err
	}

	f.notify(Event{Type: EventFilterStart, Table: t.Name, Data: f.column})

	reps := make(map[interface{}]*data.Row)
	victims := make(map[uuid.UUID]struct{})

	t.Lock()
	for _, row := range t.Rows {
		if t.IsSummary(row) {
			continue
		}

		raw, ok := row.Value(f.column)
		if !ok {
			t.Unlock()
			return errors.NewColumnNotFound(t.Name, f.column)
		}

		key, err := f.key(raw, f.args...)
		if err != nil {
			t.Unlock()
			return err
		}

		rep, seen := reps[key]
		if !seen {
			// First occurrence: the row survives and holds the
			// reduced key, not the raw pre-reduction value.
			reps[key] = row
			row.Set(f.column, key)
			continue
		}

		if err := mergeRow(t.Name, f.column, rep, row, spec); err != nil {
			t.Unlock()
			return err
		}
		victims[row.ID] = struct{}{}
		f.notify(Event{Type: EventRowMerged, Table: t.Name, Data: key})
	}
	if len(reps) > 0 {
		t.MarkDirtyUnsafe()
	}
	t.Unlock()

	deleted := t.DeleteRows(victims)

	slog.Debug("GroupBy operation",
		slog.String("table", t.Name),
		slog.String("column", f.column),
		slog.Int("groups", len(reps)),
		slog.Int("merged", deleted),
	)

	f.notify(Event{Type: EventFilterEnd, Table: t.Name, Data: deleted})

	return nil
}
