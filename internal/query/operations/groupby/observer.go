package groupby

import "time"

// EventType represents the lifecycle phases of one filter pass
type EventType string

const (
	EventFilterStart EventType = "filter_start"
	EventRowMerged   EventType = "row_merged"
	EventFilterEnd   EventType = "filter_end"
)

// Event represents a lifecycle event during a filter pass
type Event struct {
	Type      EventType   // Type of event
	Table     string      // Table being filtered
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., column name, group key, counts)
}

// Observer interface for event subscribers
// Observers receive events at major phases of the pass
type Observer interface {
	OnEvent(event Event)
}
