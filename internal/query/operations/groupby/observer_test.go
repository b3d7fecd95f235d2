package groupby

import (
	"testing"

	"github.com/dmuriuki/reportkit/internal/domain/data"
	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	f := New("label", func(v interface{}, args ...interface{}) (interface{}, error) { return v, nil })
	observer := &MockObserver{}

	f.AddObserver(observer)

	if len(f.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(f.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	f := New("label", func(v interface{}, args ...interface{}) (interface{}, error) { return v, nil })
	observer := &MockObserver{}

	f.AddObserver(observer)
	f.RemoveObserver(observer)

	if len(f.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(f.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	f := New("label", func(v interface{}, args ...interface{}) (interface{}, error) { return v, nil })

	// Should not panic
	f.notify(Event{Type: EventFilterStart, Table: "test"})
}

func TestObserverSeesPassLifecycle(t *testing.T) {
	table := schema.NewTable("observed")
	table.AppendRow(data.NewRow(map[string]interface{}{"label": "x", "count": int64(1)}))
	table.AppendRow(data.NewRow(map[string]interface{}{"label": "x", "count": int64(2)}))

	f := New("label", func(v interface{}, args ...interface{}) (interface{}, error) { return v, nil })
	observer := &MockObserver{}
	f.AddObserver(observer)

	if err := f.Apply(table); err != nil {
		t.Fatalf("Expected pass to succeed, got %v", err)
	}

	if len(observer.Events) != 3 {
		t.Fatalf("Expected 3 events (start, merge, end), got %d", len(observer.Events))
	}
	if observer.Events[0].Type != EventFilterStart {
		t.Errorf("Expected first event %s, got %s", EventFilterStart, observer.Events[0].Type)
	}
	if observer.Events[1].Type != EventRowMerged {
		t.Errorf("Expected second event %s, got %s", EventRowMerged, observer.Events[1].Type)
	}
	if observer.Events[2].Type != EventFilterEnd {
		t.Errorf("Expected last event %s, got %s", EventFilterEnd, observer.Events[2].Type)
	}
	for _, e := range observer.Events {
		if e.Table != "observed" {
			t.Errorf("Expected table name on every event, got %q", e.Table)
		}
		if e.Timestamp.IsZero() {
			t.Error("Expected events to carry a timestamp")
		}
	}
}
