package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/guardlog/internal/app"
	"github.com/alexanderramin/guardlog/internal/domain"
	"github.com/alexanderramin/guardlog/internal/importer"
	"github.com/alexanderramin/guardlog/internal/schedule"
	"github.com/rs/zerolog"
)

var errNoSource = errors.New("no input source")

// loadEntries parses the whole source and returns its entries in
// chronological order.
func loadEntries(logger zerolog.Logger, src io.Reader, name string) ([]domain.LogEntry, error) {
	if src == nil {
		return nil, stageError(app.StageParse, name, errNoSource)
	}

	entries, err := importer.ReadLog(src)
	if err != nil {
		return nil, stageError(app.StageParse, name, err)
	}
	logger.Debug().Int("entries", len(entries)).Msg("log parsed")

	if !schedule.IsChronological(entries) {
		schedule.SortEntries(entries)
		logger.Debug().Msg("entries reordered chronologically")
	}
	return entries, nil
}

// loadStats runs the full pipeline up to the per-guard statistics.
func loadStats(logger zerolog.Logger, src io.Reader, name string) ([]domain.LogEntry, domain.GuardStatsMap, error) {
	entries, err := loadEntries(logger, src, name)
	if err != nil {
		return nil, nil, err
	}

	stats, err := schedule.Reconstruct(entries)
	if err != nil {
		return nil, nil, stageError(app.StageReplay, name, err)
	}
	logger.Debug().Int("guards", len(stats)).Msg("schedule reconstructed")

	return entries, stats, nil
}

// stageError classifies a pipeline failure into a ReportError.
func stageError(stage app.ReportStage, source string, err error) error {
	code := app.ReportErrInputMalformed
	switch {
	case errors.Is(err, schedule.ErrNoSleepRecorded):
		code = app.ReportErrNoSleepRecorded
	case stage == app.StageReplay:
		code = app.ReportErrScheduleInvalid
	case stage == app.StageLookup:
		code = app.ReportErrGuardNotFound
	}
	return &app.ReportError{Code: code, Stage: stage, Source: source, Err: err}
}

func summarize(id domain.GuardID, gs *domain.GuardStats) app.GuardSummary {
	minute, freq := gs.SleepiestMinute()
	return app.GuardSummary{
		Guard:              id,
		TotalMinutes:       gs.TotalMinutesAsleep,
		SleepiestMinute:    minute,
		SleepiestFrequency: freq,
	}
}

func strategyResult(name app.StrategyName, sel schedule.Selection) app.StrategyResult {
	return app.StrategyResult{
		Strategy:     name,
		Guard:        sel.Guard,
		Minute:       sel.Minute,
		Frequency:    sel.Frequency,
		TotalMinutes: sel.TotalMinutes,
		Product:      sel.Product(),
	}
}

func guardNotFound(id domain.GuardID) error {
	return fmt.Errorf("guard #%d has no recorded sleep", id)
}
