package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"GUARD", "MINUTES"},
		[][]string{{"#10", "50"}, {"#1201", "7"}},
		AlignLeft, AlignRight,
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "GUARD  MINUTES", lines[0])
	assert.Equal(t, "─────  ───────", lines[1])
	assert.Equal(t, "#10         50", lines[2])
	assert.Equal(t, "#1201        7", lines[3])
}

func TestRenderTable_DefaultsToLeftAlign(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"long", "x"}}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "A     B", lines[0])
	assert.Equal(t, "long  x", lines[2])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
