package testutil

import (
	"strings"

	"github.com/alexanderramin/guardlog/internal/domain"
)

// SampleLogLines is the canonical five-night log, already in chronological
// order. Guard #10 sleeps 50 minutes (most often at minute 24); guard #99
// sleeps 30 minutes but is asleep at minute 45 on all three of its nights.
var SampleLogLines = []string{
	"[1518-11-01 00:00] Guard #10 begins shift",
	"[1518-11-01 00:05] falls asleep",
	"[1518-11-01 00:25] wakes up",
	"[1518-11-01 00:30] falls asleep",
	"[1518-11-01 00:55] wakes up",
	"[1518-11-01 23:58] Guard #99 begins shift",
	"[1518-11-02 00:40] falls asleep",
	"[1518-11-02 00:50] wakes up",
	"[1518-11-03 00:05] Guard #10 begins shift",
	"[1518-11-03 00:24] falls asleep",
	"[1518-11-03 00:29] wakes up",
	"[1518-11-04 00:02] Guard #99 begins shift",
	"[1518-11-04 00:36] falls asleep",
	"[1518-11-04 00:46] wakes up",
	"[1518-11-05 00:03] Guard #99 begins shift",
	"[1518-11-05 00:45] falls asleep",
	"[1518-11-05 00:55] wakes up",
}

// ShuffledSampleLogLines holds the same lines as SampleLogLines in a fixed
// scrambled order.
var ShuffledSampleLogLines = []string{
	"[1518-11-04 00:46] wakes up",
	"[1518-11-01 00:30] falls asleep",
	"[1518-11-05 00:03] Guard #99 begins shift",
	"[1518-11-01 00:00] Guard #10 begins shift",
	"[1518-11-02 00:50] wakes up",
	"[1518-11-03 00:24] falls asleep",
	"[1518-11-01 23:58] Guard #99 begins shift",
	"[1518-11-05 00:55] wakes up",
	"[1518-11-01 00:25] wakes up",
	"[1518-11-04 00:02] Guard #99 begins shift",
	"[1518-11-03 00:05] Guard #10 begins shift",
	"[1518-11-01 00:55] wakes up",
	"[1518-11-04 00:36] falls asleep",
	"[1518-11-02 00:40] falls asleep",
	"[1518-11-05 00:45] falls asleep",
	"[1518-11-01 00:05] falls asleep",
	"[1518-11-03 00:29] wakes up",
}

// Log joins lines into newline-terminated log text.
func Log(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Entry options
type EntryOption func(*domain.LogEntry)

func WithLine(n int) EntryOption {
	return func(e *domain.LogEntry) {
		e.Line = n
	}
}

func OnDay(day int) EntryOption {
	return func(e *domain.LogEntry) {
		e.Timestamp.Day = day
	}
}

func AtHour(hour int) EntryOption {
	return func(e *domain.LogEntry) {
		e.Timestamp.Hour = hour
	}
}

// NewTestEntry builds an entry on 1518-11-01 at 00:<minute>.
func NewTestEntry(minute int, event domain.Event, opts ...EntryOption) domain.LogEntry {
	e := domain.LogEntry{
		Timestamp: domain.Timestamp{Year: 1518, Month: 11, Day: 1, Hour: 0, Minute: minute},
		Event:     event,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Shift returns the entries of one night: the guard begins its shift at
// 23:58 the evening before, then sleeps each [start, end) pair in order.
// Entry Line numbers continue from firstLine.
func Shift(day int, guard domain.GuardID, firstLine int, intervals ...[2]int) []domain.LogEntry {
	entries := []domain.LogEntry{
		NewTestEntry(58, domain.BeginShift{Guard: guard}, OnDay(day-1), AtHour(23), WithLine(firstLine)),
	}
	line := firstLine + 1
	for _, iv := range intervals {
		entries = append(entries,
			NewTestEntry(iv[0], domain.FallAsleep{}, OnDay(day), WithLine(line)),
			NewTestEntry(iv[1], domain.WakeUp{}, OnDay(day), WithLine(line+1)),
		)
		line += 2
	}
	return entries
}
