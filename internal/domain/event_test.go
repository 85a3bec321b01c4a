package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_KindAndText(t *testing.T) {
	tests := []struct {
		event Event
		kind  EventKind
		text  string
	}{
		{BeginShift{Guard: 10}, EventBeginShift, "Guard #10 begins shift"},
		{FallAsleep{}, EventFallAsleep, "falls asleep"},
		{WakeUp{}, EventWakeUp, "wakes up"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.event.Kind())
			assert.Equal(t, tt.text, tt.event.String())
		})
	}
}

func TestLogEntry_String(t *testing.T) {
	entry := LogEntry{
		Timestamp: Timestamp{Year: 1518, Month: 11, Day: 1, Hour: 23, Minute: 58},
		Event:     BeginShift{Guard: 99},
		Line:      6,
	}
	assert.Equal(t, "[1518-11-01 23:58] Guard #99 begins shift", entry.String())
}
