package formatter

import (
	"strconv"
	"strings"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders one cell per value, scaled against the largest value.
// Zero values render as a blank so sleep-free minutes stand out.
func Sparkline(values []uint64) string {
	var peak uint64
	for _, v := range values {
		peak = max(peak, v)
	}

	var b strings.Builder
	levels := uint64(len(sparkLevels))
	for _, v := range values {
		if v == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(sparkLevels[(v*levels-1)/peak])
	}
	return b.String()
}

// MinuteRuler labels every tenth column of a width-wide histogram.
func MinuteRuler(width int) string {
	ruler := []byte(strings.Repeat(" ", width))
	for m := 0; m < width; m += 10 {
		label := strconv.Itoa(m)
		if m+len(label) > width {
			break
		}
		copy(ruler[m:], label)
	}
	return string(ruler)
}

// TickLine marks every fifth column, matching MinuteRuler.
func TickLine(width int) string {
	var b strings.Builder
	for m := range width {
		if m%5 == 0 {
			b.WriteString("┬")
		} else {
			b.WriteString("─")
		}
	}
	return b.String()
}
