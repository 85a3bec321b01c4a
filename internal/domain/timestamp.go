package domain

import "fmt"

// Timestamp is the bracketed time of a log line. It is only ever compared
// and rendered; no calendar arithmetic is done on it.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Compare orders timestamps lexicographically by year, month, day, hour
// and minute. It returns -1, 0 or +1.
func (t Timestamp) Compare(o Timestamp) int {
	fields := [5][2]int{
		{t.Year, o.Year},
		{t.Month, o.Month},
		{t.Day, o.Day},
		{t.Hour, o.Hour},
		{t.Minute, o.Minute},
	}
	for _, f := range fields {
		switch {
		case f[0] < f[1]:
			return -1
		case f[0] > f[1]:
			return 1
		}
	}
	return 0
}

func (t Timestamp) Before(o Timestamp) bool {
	return t.Compare(o) < 0
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute)
}
