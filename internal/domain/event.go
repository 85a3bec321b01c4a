package domain

import "fmt"

// GuardID identifies a guard as written after "Guard #" in the log.
type GuardID uint32

// Event is one of BeginShift, FallAsleep or WakeUp. The interface is
// sealed; callers switch on the concrete type.
type Event interface {
	Kind() EventKind
	String() string
	isEvent()
}

// BeginShift puts Guard on duty, replacing whoever was on duty before.
type BeginShift struct {
	Guard GuardID
}

// FallAsleep marks the on-duty guard asleep from the entry's minute.
type FallAsleep struct{}

// WakeUp marks the on-duty guard awake from the entry's minute.
type WakeUp struct{}

func (BeginShift) Kind() EventKind { return EventBeginShift }
func (FallAsleep) Kind() EventKind { return EventFallAsleep }
func (WakeUp) Kind() EventKind     { return EventWakeUp }

func (e BeginShift) String() string { return fmt.Sprintf("Guard #%d begins shift", e.Guard) }
func (FallAsleep) String() string   { return "falls asleep" }
func (WakeUp) String() string       { return "wakes up" }

func (BeginShift) isEvent() {}
func (FallAsleep) isEvent() {}
func (WakeUp) isEvent()     {}
