package schedule

import (
	"sort"

	"github.com/alexanderramin/guardlog/internal/domain"
)

// SortEntries orders entries chronologically in place. Entries with equal
// timestamps keep their input order, so the result is fully determined
// by the input.
func SortEntries(entries []domain.LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}

// IsChronological reports whether entries are already in timestamp order.
func IsChronological(entries []domain.LogEntry) bool {
	return sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}
