package schedule

import "github.com/alexanderramin/guardlog/internal/domain"

// Selection is the guard/minute pair picked by a strategy.
type Selection struct {
	Guard  domain.GuardID
	Minute int
	// Frequency is how many nights Guard was asleep at Minute.
	Frequency uint64
	// TotalMinutes is Guard's total minutes asleep.
	TotalMinutes uint64
}

// Product is the guard id multiplied by the minute.
func (s Selection) Product() uint64 {
	return uint64(s.Guard) * uint64(s.Minute)
}

// SleepiestGuard picks the guard with the most minutes asleep overall,
// then that guard's most frequent sleep minute. Ties go to the lowest
// guard id, then the lowest minute.
func SleepiestGuard(stats domain.GuardStatsMap) (Selection, error) {
	if len(stats) == 0 {
		return Selection{}, ErrNoSleepRecorded
	}

	var best domain.GuardID
	var bestTotal uint64
	for i, id := range stats.SortedIDs() {
		if total := stats[id].TotalMinutesAsleep; i == 0 || total > bestTotal {
			best, bestTotal = id, total
		}
	}

	minute, freq := stats[best].SleepiestMinute()
	return Selection{
		Guard:        best,
		Minute:       minute,
		Frequency:    freq,
		TotalMinutes: bestTotal,
	}, nil
}

// MostFrequentMinute picks the guard/minute pair with the highest sleep
// frequency across all guards. Guards are visited by ascending id and
// minutes from 0 to 59; the first maximum encountered wins.
func MostFrequentMinute(stats domain.GuardStatsMap) (Selection, error) {
	if len(stats) == 0 {
		return Selection{}, ErrNoSleepRecorded
	}

	var sel Selection
	found := false
	for _, id := range stats.SortedIDs() {
		gs := stats[id]
		for minute, freq := range gs.MinuteFrequency {
			if !found || freq > sel.Frequency {
				sel = Selection{
					Guard:        id,
					Minute:       minute,
					Frequency:    freq,
					TotalMinutes: gs.TotalMinutesAsleep,
				}
				found = true
			}
		}
	}
	return sel, nil
}
