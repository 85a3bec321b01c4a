package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/guardlog/internal/domain"
)

const (
	textWakeUp     = "wakes up"
	textFallAsleep = "falls asleep"
	guardPrefix    = "Guard #"
	guardSuffix    = " begins shift"
)

// linePattern captures the five timestamp fields and the event text.
// Fields are matched loosely so that non-numeric values surface as
// ErrInvalidNumber instead of a generic shape mismatch.
var linePattern = regexp.MustCompile(`^\[([^\s\]-]+)-([^\s\]-]+)-([^\s\]-]+) ([^\s\]:]+):([^\s\]:]+)\] (.+)$`)

// ParseLine converts one raw log line into a LogEntry. The returned entry
// has Line set to zero; ReadLog fills it in.
func ParseLine(line string) (domain.LogEntry, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return domain.LogEntry{}, ErrMalformedLine
	}

	ts, err := parseTimestamp(m[1:6])
	if err != nil {
		return domain.LogEntry{}, err
	}

	event, err := parseEvent(m[6])
	if err != nil {
		return domain.LogEntry{}, err
	}

	return domain.LogEntry{Timestamp: ts, Event: event}, nil
}

func parseTimestamp(fields []string) (domain.Timestamp, error) {
	names := [5]string{"year", "month", "day", "hour", "minute"}
	var values [5]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return domain.Timestamp{}, fmt.Errorf("%w: %s %q", ErrInvalidNumber, names[i], f)
		}
		values[i] = int(v)
	}

	ts := domain.Timestamp{
		Year:   values[0],
		Month:  values[1],
		Day:    values[2],
		Hour:   values[3],
		Minute: values[4],
	}
	if err := validateTimestamp(ts); err != nil {
		return domain.Timestamp{}, err
	}
	return ts, nil
}

func parseEvent(text string) (domain.Event, error) {
	switch text {
	case textWakeUp:
		return domain.WakeUp{}, nil
	case textFallAsleep:
		return domain.FallAsleep{}, nil
	}

	rest, ok := strings.CutPrefix(text, guardPrefix)
	if !ok {
		return nil, fmt.Errorf("%w in %q", ErrMissingGuardMarker, text)
	}
	idText, ok := strings.CutSuffix(rest, guardSuffix)
	if !ok {
		return nil, fmt.Errorf("%w: expected %q after guard id in %q", ErrMalformedLine, guardSuffix, text)
	}
	id, err := strconv.ParseUint(idText, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: guard id %q", ErrInvalidNumber, idText)
	}
	return domain.BeginShift{Guard: domain.GuardID(id)}, nil
}
