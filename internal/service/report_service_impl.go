package service

import (
	"context"
	"time"

	"github.com/alexanderramin/guardlog/internal/app"
	"github.com/alexanderramin/guardlog/internal/domain"
	"github.com/alexanderramin/guardlog/internal/schedule"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type reportService struct {
	logger   zerolog.Logger
	observer UseCaseObserver
	now      func() time.Time
	newRunID func() string
}

func NewReportService(logger zerolog.Logger, observers ...UseCaseObserver) ReportService {
	return &reportService{
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
		newRunID: func() string { return uuid.New().String() },
	}
}

func (s *reportService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func (s *reportService) BuildReport(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	start := s.now()
	runID := s.newRunID()
	logger := s.logger.With().Str("run_id", runID).Logger()
	fields := map[string]any{"run_id": runID, "source": req.SourceName}
	defer func() { s.observe(ctx, "report.build", start, err, fields) }()

	entries, stats, err := loadStats(logger, req.Source, req.SourceName)
	if err != nil {
		return nil, err
	}
	fields["entries"] = len(entries)
	fields["guards"] = len(stats)

	s1, err := schedule.SleepiestGuard(stats)
	if err != nil {
		return nil, stageError(app.StageStrategy, req.SourceName, err)
	}
	s2, err := schedule.MostFrequentMinute(stats)
	if err != nil {
		return nil, stageError(app.StageStrategy, req.SourceName, err)
	}

	head := min(max(req.Head, 0), len(entries))

	resp = &app.ReportResponse{
		RunID:        runID,
		SourceName:   req.SourceName,
		GeneratedAt:  start,
		EntryCount:   len(entries),
		GuardCount:   len(stats),
		FirstEntries: entries[:head:head],
		Spot:         spotCheck(stats, req.SpotGuard, req.SpotMinute),
		Guards:       make([]app.GuardSummary, 0, len(stats)),
		Strategy1:    strategyResult(app.StrategySleepiestGuard, s1),
		Strategy2:    strategyResult(app.StrategyMostFrequentMinute, s2),
	}
	for _, id := range stats.SortedIDs() {
		resp.Guards = append(resp.Guards, summarize(id, stats[id]))
	}

	fields["strategy1_product"] = resp.Strategy1.Product
	fields["strategy2_product"] = resp.Strategy2.Product
	return resp, nil
}

func (s *reportService) ListEntries(ctx context.Context, req app.EntriesRequest) (resp *app.EntriesResponse, err error) {
	start := s.now()
	runID := s.newRunID()
	logger := s.logger.With().Str("run_id", runID).Logger()
	fields := map[string]any{"run_id": runID, "source": req.SourceName}
	defer func() { s.observe(ctx, "entries.list", start, err, fields) }()

	entries, err := loadEntries(logger, req.Source, req.SourceName)
	if err != nil {
		return nil, err
	}
	fields["entries"] = len(entries)

	total := len(entries)
	if req.Limit > 0 && req.Limit < total {
		entries = entries[:req.Limit]
	}

	return &app.EntriesResponse{
		RunID:      runID,
		SourceName: req.SourceName,
		Total:      total,
		Entries:    entries,
	}, nil
}

func (s *reportService) GuardDetail(ctx context.Context, req app.GuardRequest) (resp *app.GuardDetailResponse, err error) {
	start := s.now()
	runID := s.newRunID()
	logger := s.logger.With().Str("run_id", runID).Logger()
	fields := map[string]any{"run_id": runID, "source": req.SourceName, "guard": uint32(req.Guard)}
	defer func() { s.observe(ctx, "guard.detail", start, err, fields) }()

	_, stats, err := loadStats(logger, req.Source, req.SourceName)
	if err != nil {
		return nil, err
	}

	gs, ok := stats[req.Guard]
	if !ok {
		return nil, stageError(app.StageLookup, req.SourceName, guardNotFound(req.Guard))
	}

	return &app.GuardDetailResponse{
		RunID:      runID,
		SourceName: req.SourceName,
		Summary:    summarize(req.Guard, gs),
		Stats:      *gs,
	}, nil
}

func spotCheck(stats domain.GuardStatsMap, id domain.GuardID, minute int) app.SpotCheck {
	spot := app.SpotCheck{Guard: id, Minute: minute}
	gs, ok := stats[id]
	if !ok {
		return spot
	}
	spot.Found = true
	spot.TotalMinutes = gs.TotalMinutesAsleep
	if minute >= 0 && minute < domain.MinutesPerHour {
		spot.MinuteFrequency = gs.MinuteFrequency[minute]
	}
	return spot
}
