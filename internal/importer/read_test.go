package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/guardlog/internal/domain"
	"github.com/alexanderramin/guardlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLog_SampleInInputOrder(t *testing.T) {
	entries, err := ReadLog(strings.NewReader(testutil.Log(testutil.ShuffledSampleLogLines...)))
	require.NoError(t, err)
	require.Len(t, entries, len(testutil.ShuffledSampleLogLines))

	for i, e := range entries {
		assert.Equal(t, i+1, e.Line)
		assert.Equal(t, testutil.ShuffledSampleLogLines[i], e.String())
	}
}

func TestReadLog_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	input := "[1518-11-01 00:00] Guard #10 begins shift\r\n\n   \n[1518-11-01 00:05] falls asleep\r\n"

	entries, err := ReadLog(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.BeginShift{Guard: 10}, entries[0].Event)
	assert.Equal(t, 1, entries[0].Line)
	assert.Equal(t, domain.FallAsleep{}, entries[1].Event)
	assert.Equal(t, 4, entries[1].Line, "line numbers count blank lines")
}

func TestReadLog_NoTrailingNewline(t *testing.T) {
	entries, err := ReadLog(strings.NewReader("[1518-11-01 00:25] wakes up"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.WakeUp{}, entries[0].Event)
}

func TestReadLog_Empty(t *testing.T) {
	entries, err := ReadLog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadLog_MalformedLineIsFatal(t *testing.T) {
	input := testutil.Log(
		"[1518-11-01 00:00] Guard #10 begins shift",
		"not a valid log entry",
		"[1518-11-01 00:05] falls asleep",
	)

	entries, err := ReadLog(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, entries, "no partial result on failure")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "not a valid log entry", perr.Text)
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), `line 2 "not a valid log entry"`)
	assert.Contains(t, err.Error(), "malformed log line")
}

func TestReadLog_MissingGuardMarkerSurfacesCause(t *testing.T) {
	_, err := ReadLog(strings.NewReader("[1518-11-01 00:00] Elf #10 begins shift\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingGuardMarker)
	assert.Contains(t, err.Error(), "Elf #10 begins shift")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadLog_ReaderError(t *testing.T) {
	_, err := ReadLog(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading log")
	assert.Contains(t, err.Error(), "disk on fire")
}
