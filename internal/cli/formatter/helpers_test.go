package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0m"},
		{20, "20m"},
		{60, "1h"},
		{90, "1h 30m"},
		{125, "2h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.in))
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 night", Plural(1, "night", "nights"))
	assert.Equal(t, "0 nights", Plural(0, "night", "nights"))
	assert.Equal(t, "3 nights", Plural(3, "night", "nights"))
}

func TestGuardLabel(t *testing.T) {
	assert.Equal(t, "#1201", GuardLabel(1201))
}

func TestRenderBox_ContainsTitleAndContent(t *testing.T) {
	out := stripANSI(RenderBox("Guard sleep report", "hello"))
	assert.Contains(t, out, "GUARD SLEEP REPORT")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}
