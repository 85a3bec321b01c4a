package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/guardlog/internal/contract"
	"github.com/alexanderramin/guardlog/internal/domain"
)

// FormatEntry renders an entry in its log display form with the event colored.
func FormatEntry(e domain.LogEntry) string {
	ts := Dim("[" + e.Timestamp.String() + "]")
	return ts + " " + EventStyle(e.Event.Kind()).Render(e.Event.String())
}

// FormatStrategy renders a strategy outcome as "(guard, minute, product)".
func FormatStrategy(r contract.StrategyResult) string {
	return fmt.Sprintf("(%d, %d, %d)", r.Guard, r.Minute, r.Product)
}

// FormatReport formats a full ReportResponse into a styled CLI report.
func FormatReport(resp *contract.ReportResponse) string {
	var b strings.Builder

	// Preview of the chronologically sorted log.
	if len(resp.FirstEntries) > 0 {
		b.WriteString(Header(fmt.Sprintf("First %d entries", len(resp.FirstEntries))) + "\n")
		for _, e := range resp.FirstEntries {
			b.WriteString(FormatEntry(e) + "\n")
		}
		if rest := resp.EntryCount - len(resp.FirstEntries); rest > 0 {
			b.WriteString(Dim(fmt.Sprintf("… %d more", rest)) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Spot check") + "\n")
	b.WriteString(formatSpot(resp.Spot) + "\n\n")

	b.WriteString(Header("Guards") + "\n")
	b.WriteString(formatGuardTable(resp.Guards))
	b.WriteString("\n")

	s1 := resp.Strategy1
	b.WriteString(Header("Strategy 1: sleepiest guard") + "\n")
	b.WriteString(fmt.Sprintf("Guard %s slept the most overall: %s\n",
		Bold(GuardLabel(uint32(s1.Guard))), FormatMinutes(s1.TotalMinutes)))
	b.WriteString(fmt.Sprintf("Most often asleep at minute %d (%s)\n",
		s1.Minute, Plural(s1.Frequency, "night", "nights")))
	b.WriteString("Result: " + StyleGreen.Render(FormatStrategy(s1)) + "\n\n")

	s2 := resp.Strategy2
	b.WriteString(Header("Strategy 2: most frequent minute") + "\n")
	b.WriteString(fmt.Sprintf("Guard %s was asleep at minute %d more often than any guard at any minute (%s)\n",
		Bold(GuardLabel(uint32(s2.Guard))), s2.Minute, Plural(s2.Frequency, "night", "nights")))
	b.WriteString("Result: " + StyleGreen.Render(FormatStrategy(s2)) + "\n")

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d entries, %d guards asleep at least once · run %s",
		resp.EntryCount, resp.GuardCount, resp.RunID)))

	return RenderBox("Guard sleep report", b.String()) + "\n"
}

func formatSpot(spot contract.SpotCheck) string {
	label := Bold(GuardLabel(uint32(spot.Guard)))
	if !spot.Found {
		return fmt.Sprintf("Guard %s %s", label, StyleYellow.Render("has no recorded sleep"))
	}
	return fmt.Sprintf("Guard %s: %s asleep, asleep at minute %d on %s",
		label, FormatMinutes(spot.TotalMinutes), spot.Minute, Plural(spot.MinuteFrequency, "night", "nights"))
}

func formatGuardTable(guards []contract.GuardSummary) string {
	headers := []string{"GUARD", "ASLEEP", "MINUTES", "PEAK MINUTE", "NIGHTS"}
	rows := make([][]string, 0, len(guards))
	for _, g := range guards {
		rows = append(rows, []string{
			GuardLabel(uint32(g.Guard)),
			FormatMinutes(g.TotalMinutes),
			fmt.Sprintf("%d", g.TotalMinutes),
			fmt.Sprintf("%d", g.SleepiestMinute),
			fmt.Sprintf("%d", g.SleepiestFrequency),
		})
	}
	return RenderTable(headers, rows, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight)
}

// FormatEntries formats a chronological listing of log entries.
func FormatEntries(resp *contract.EntriesResponse) string {
	var b strings.Builder
	for _, e := range resp.Entries {
		b.WriteString(FormatEntry(e) + "\n")
	}
	if len(resp.Entries) < resp.Total {
		b.WriteString(Dim(fmt.Sprintf("Showing %d of %d entries", len(resp.Entries), resp.Total)) + "\n")
	}
	return b.String()
}

// FormatGuardDetail formats one guard's totals and minute histogram.
func FormatGuardDetail(resp *contract.GuardDetailResponse) string {
	var b strings.Builder
	s := resp.Summary

	b.WriteString(fmt.Sprintf("Total asleep: %s (%d minutes)\n", Bold(FormatMinutes(s.TotalMinutes)), s.TotalMinutes))
	b.WriteString(fmt.Sprintf("Peak minute:  %d (%s)\n\n", s.SleepiestMinute, Plural(s.SleepiestFrequency, "night", "nights")))

	b.WriteString(Header("Nights asleep per minute") + "\n")
	freq := resp.Stats.MinuteFrequency[:]
	b.WriteString(StylePurple.Render(Sparkline(freq)) + "\n")
	b.WriteString(Dim(TickLine(len(freq))) + "\n")
	b.WriteString(Dim(MinuteRuler(len(freq))))

	return RenderBox("Guard "+GuardLabel(uint32(s.Guard)), b.String()) + "\n"
}
