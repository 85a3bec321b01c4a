package schedule

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/guardlog/internal/domain"
)

var (
	// ErrNoGuardOnDuty indicates a sleep or wake event before any shift began.
	ErrNoGuardOnDuty = errors.New("no guard on duty")

	// ErrAlreadyAsleep indicates a second "falls asleep" without a wake in between.
	ErrAlreadyAsleep = errors.New("guard is already asleep")

	// ErrNotAsleep indicates a "wakes up" with no open sleep interval.
	ErrNotAsleep = errors.New("guard is not asleep")

	// ErrNegativeInterval indicates a wake minute earlier than the sleep minute.
	ErrNegativeInterval = errors.New("wake minute precedes sleep minute")

	// ErrUnclosedInterval indicates a sleep interval that never saw its
	// "wakes up", either because a new shift began or the log ended.
	ErrUnclosedInterval = errors.New("unclosed sleep interval")

	// ErrNoSleepRecorded indicates a selector ran over empty statistics.
	ErrNoSleepRecorded = errors.New("no guard was ever asleep")
)

// ReplayError reports the entry at which reconstruction gave up.
type ReplayError struct {
	// Entry is the offending entry. For an interval left open at the end of
	// the log it is the "falls asleep" entry that opened it.
	Entry domain.LogEntry
	// Guard is the guard on duty, when there is one.
	Guard *domain.GuardID
	Err   error
}

func (e *ReplayError) Error() string {
	if e.Guard != nil {
		return fmt.Sprintf("line %d %q (guard #%d): %v", e.Entry.Line, e.Entry.String(), *e.Guard, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Entry.Line, e.Entry.String(), e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}
