package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a line that does not have the
	// "[YYYY-MM-DD HH:MM] <text>" shape.
	ErrMalformedLine = errors.New("malformed log line")

	// ErrInvalidNumber indicates a non-numeric or overflowing numeric field.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrFieldOutOfRange indicates a timestamp field outside its calendar range.
	ErrFieldOutOfRange = errors.New("timestamp field out of range")

	// ErrMissingGuardMarker indicates shift text without the "Guard #" prefix.
	ErrMissingGuardMarker = errors.New(`missing "Guard #" marker`)
)

// ParseError ties a parse failure to the input line that caused it.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
