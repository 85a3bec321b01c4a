package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/guardlog/internal/domain"
)

// ReadLog parses every non-blank line of r in input order. It stops at the
// first bad line and returns a *ParseError naming it.
func ReadLog(r io.Reader) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		entry, err := ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		entry.Line = lineNo
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	return entries, nil
}
