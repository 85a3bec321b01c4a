package schedule

import (
	"strings"
	"testing"

	"github.com/alexanderramin/guardlog/internal/domain"
	"github.com/alexanderramin/guardlog/internal/importer"
	"github.com/alexanderramin/guardlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, lines ...string) []domain.LogEntry {
	t.Helper()
	entries, err := importer.ReadLog(strings.NewReader(testutil.Log(lines...)))
	require.NoError(t, err)
	return entries
}

func renderAll(entries []domain.LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

func TestSortEntries_ShuffledSample(t *testing.T) {
	entries := readLines(t, testutil.ShuffledSampleLogLines...)
	require.False(t, IsChronological(entries))

	SortEntries(entries)

	assert.True(t, IsChronological(entries))
	assert.Equal(t, testutil.SampleLogLines, renderAll(entries))
}

func TestSortEntries_SortedInputIsNoop(t *testing.T) {
	entries := readLines(t, testutil.SampleLogLines...)
	require.True(t, IsChronological(entries))

	before := append([]domain.LogEntry(nil), entries...)
	SortEntries(entries)
	assert.Equal(t, before, entries)

	SortEntries(entries)
	assert.Equal(t, before, entries, "sorting twice must not change the order")
}

func TestSortEntries_TiesKeepInputOrder(t *testing.T) {
	entries := []domain.LogEntry{
		testutil.NewTestEntry(10, domain.WakeUp{}, testutil.WithLine(1)),
		testutil.NewTestEntry(5, domain.FallAsleep{}, testutil.WithLine(2)),
		testutil.NewTestEntry(5, domain.BeginShift{Guard: 7}, testutil.WithLine(3)),
		testutil.NewTestEntry(5, domain.WakeUp{}, testutil.WithLine(4)),
	}

	SortEntries(entries)

	lines := make([]int, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	assert.Equal(t, []int{2, 3, 4, 1}, lines)
}

func TestSortEntries_MidnightCrossing(t *testing.T) {
	entries := readLines(t,
		"[1518-11-02 00:40] falls asleep",
		"[1518-11-01 23:58] Guard #99 begins shift",
		"[1518-11-02 00:50] wakes up",
	)

	SortEntries(entries)

	assert.Equal(t, domain.BeginShift{Guard: 99}, entries[0].Event)
	assert.Equal(t, domain.FallAsleep{}, entries[1].Event)
	assert.Equal(t, domain.WakeUp{}, entries[2].Event)
}

func TestSortEntries_Empty(t *testing.T) {
	var entries []domain.LogEntry
	SortEntries(entries)
	assert.True(t, IsChronological(entries))
}
