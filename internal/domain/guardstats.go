package domain

import "sort"

// GuardStats accumulates the closed sleep intervals of one guard.
type GuardStats struct {
	TotalMinutesAsleep uint64
	// MinuteFrequency[m] counts the nights minute m fell inside a sleep
	// interval.
	MinuteFrequency [MinutesPerHour]uint64
}

// AddInterval records the half-open interval [start, end). Both counters
// move together so TotalMinutesAsleep always equals the histogram sum.
// Callers guarantee 0 <= start <= end <= MinutesPerHour.
func (s *GuardStats) AddInterval(start, end int) {
	s.TotalMinutesAsleep += uint64(end - start)
	for m := start; m < end; m++ {
		s.MinuteFrequency[m]++
	}
}

// SleepiestMinute returns the minute with the highest frequency. Ties go
// to the lowest minute.
func (s *GuardStats) SleepiestMinute() (minute int, frequency uint64) {
	for m, f := range s.MinuteFrequency {
		if f > frequency {
			minute, frequency = m, f
		}
	}
	return minute, frequency
}

// HistogramSum adds up MinuteFrequency.
func (s *GuardStats) HistogramSum() uint64 {
	var sum uint64
	for _, f := range s.MinuteFrequency {
		sum += f
	}
	return sum
}

// GuardStatsMap holds the statistics of every guard that slept at least once.
type GuardStatsMap map[GuardID]*GuardStats

// SortedIDs returns the guard ids in ascending order.
func (m GuardStatsMap) SortedIDs() []GuardID {
	ids := make([]GuardID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
