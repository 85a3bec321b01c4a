package app

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/guardlog/internal/domain"
)

type ReportRequest struct {
	Source     io.Reader
	SourceName string
	// Head is how many sorted entries to echo back. Zero disables the preview.
	Head       int
	SpotGuard  domain.GuardID
	SpotMinute int
}

func NewReportRequest() ReportRequest {
	return ReportRequest{
		SourceName: "-",
		Head:       5,
		SpotGuard:  1201,
		SpotMinute: 16,
	}
}

type EntriesRequest struct {
	Source     io.Reader
	SourceName string
	// Limit caps the number of entries returned; zero returns all of them.
	Limit int
}

type GuardRequest struct {
	Source     io.Reader
	SourceName string
	Guard      domain.GuardID
}

type StrategyName string

const (
	StrategySleepiestGuard     StrategyName = "sleepiest_guard"
	StrategyMostFrequentMinute StrategyName = "most_frequent_minute"
)

type StrategyResult struct {
	Strategy     StrategyName
	Guard        domain.GuardID
	Minute       int
	Frequency    uint64
	TotalMinutes uint64
	Product      uint64
}

type SpotCheck struct {
	Guard           domain.GuardID
	Minute          int
	Found           bool
	TotalMinutes    uint64
	MinuteFrequency uint64
}

type GuardSummary struct {
	Guard              domain.GuardID
	TotalMinutes       uint64
	SleepiestMinute    int
	SleepiestFrequency uint64
}

type ReportResponse struct {
	RunID        string
	SourceName   string
	GeneratedAt  time.Time
	EntryCount   int
	GuardCount   int
	FirstEntries []domain.LogEntry
	Spot         SpotCheck
	Guards       []GuardSummary
	Strategy1    StrategyResult
	Strategy2    StrategyResult
}

type EntriesResponse struct {
	RunID      string
	SourceName string
	Total      int
	Entries    []domain.LogEntry
}

type GuardDetailResponse struct {
	RunID      string
	SourceName string
	Summary    GuardSummary
	Stats      domain.GuardStats
}

type ReportErrorCode string

const (
	ReportErrInputMalformed  ReportErrorCode = "INPUT_MALFORMED"
	ReportErrScheduleInvalid ReportErrorCode = "SCHEDULE_INVALID"
	ReportErrNoSleepRecorded ReportErrorCode = "NO_SLEEP_RECORDED"
	ReportErrGuardNotFound   ReportErrorCode = "GUARD_NOT_FOUND"
)

type ReportStage string

const (
	StageParse    ReportStage = "parse"
	StageReplay   ReportStage = "replay"
	StageStrategy ReportStage = "strategy"
	StageLookup   ReportStage = "lookup"
)

// ReportError is the single failure a report run surfaces. The message
// names the stage and carries the underlying cause.
type ReportError struct {
	Code   ReportErrorCode
	Stage  ReportStage
	Source string
	Err    error
}

func (e *ReportError) Error() string {
	if e.Source != "" && e.Source != "-" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
