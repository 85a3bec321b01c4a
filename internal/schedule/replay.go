package schedule

import "github.com/alexanderramin/guardlog/internal/domain"

// Reconstruct replays chronologically sorted entries and returns the sleep
// statistics of every guard that closed at least one sleep interval.
//
// The replay tracks which guard is on duty and the minute the open sleep
// interval started. A "wakes up" closes [start, minute) for the on-duty
// guard; the guard's stats are created on its first closed interval.
// Any entry that breaks the shift/sleep/wake sequence aborts the replay
// with a *ReplayError.
func Reconstruct(entries []domain.LogEntry) (domain.GuardStatsMap, error) {
	stats := make(domain.GuardStatsMap)

	var (
		onDuty      domain.GuardID
		hasGuard    bool
		asleepSince int
		sleepEntry  *domain.LogEntry
	)

	fail := func(entry domain.LogEntry, err error) error {
		rerr := &ReplayError{Entry: entry, Err: err}
		if hasGuard {
			g := onDuty
			rerr.Guard = &g
		}
		return rerr
	}

	for i := range entries {
		entry := entries[i]
		switch ev := entry.Event.(type) {
		case domain.BeginShift:
			if sleepEntry != nil {
				return nil, fail(*sleepEntry, ErrUnclosedInterval)
			}
			onDuty, hasGuard = ev.Guard, true

		case domain.FallAsleep:
			if !hasGuard {
				return nil, fail(entry, ErrNoGuardOnDuty)
			}
			if sleepEntry != nil {
				return nil, fail(entry, ErrAlreadyAsleep)
			}
			asleepSince = entry.Timestamp.Minute
			sleepEntry = &entries[i]

		case domain.WakeUp:
			if !hasGuard {
				return nil, fail(entry, ErrNoGuardOnDuty)
			}
			if sleepEntry == nil {
				return nil, fail(entry, ErrNotAsleep)
			}
			if entry.Timestamp.Minute < asleepSince {
				return nil, fail(entry, ErrNegativeInterval)
			}

			gs, ok := stats[onDuty]
			if !ok {
				gs = &domain.GuardStats{}
				stats[onDuty] = gs
			}
			gs.AddInterval(asleepSince, entry.Timestamp.Minute)
			sleepEntry = nil
		}
	}

	if sleepEntry != nil {
		return nil, fail(*sleepEntry, ErrUnclosedInterval)
	}

	return stats, nil
}
