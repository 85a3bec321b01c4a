package importer

import (
	"fmt"

	"github.com/alexanderramin/guardlog/internal/domain"
)

type fieldRange struct {
	name     string
	value    int
	min, max int
}

// validateTimestamp checks each calendar field against its range. The
// minute bound is load-bearing: it indexes the 60-slot histograms.
func validateTimestamp(ts domain.Timestamp) error {
	checks := []fieldRange{
		{"month", ts.Month, 1, 12},
		{"day", ts.Day, 1, 31},
		{"hour", ts.Hour, 0, 23},
		{"minute", ts.Minute, 0, domain.MinutesPerHour - 1},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%w: %s %d not in [%d,%d]", ErrFieldOutOfRange, c.name, c.value, c.min, c.max)
		}
	}
	return nil
}
