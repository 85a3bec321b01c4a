package domain

import "fmt"

// LogEntry is one parsed log line.
type LogEntry struct {
	Timestamp Timestamp
	Event     Event
	// Line is the 1-based position of the entry in the input. It breaks
	// timestamp ties and points diagnostics back at the source.
	Line int
}

func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp, e.Event)
}
