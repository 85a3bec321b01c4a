package domain

type EventKind string

const (
	EventBeginShift EventKind = "begin_shift"
	EventFallAsleep EventKind = "falls_asleep"
	EventWakeUp     EventKind = "wakes_up"
)

// MinutesPerHour bounds every minute-of-hour index used by the histograms.
const MinutesPerHour = 60
