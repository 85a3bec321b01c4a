package contract

import "github.com/alexanderramin/guardlog/internal/app"

type ReportRequest = app.ReportRequest

func NewReportRequest() ReportRequest {
	return app.NewReportRequest()
}

type EntriesRequest = app.EntriesRequest

type GuardRequest = app.GuardRequest

type StrategyName = app.StrategyName

const (
	StrategySleepiestGuard     StrategyName = app.StrategySleepiestGuard
	StrategyMostFrequentMinute StrategyName = app.StrategyMostFrequentMinute
)

type StrategyResult = app.StrategyResult

type SpotCheck = app.SpotCheck

type GuardSummary = app.GuardSummary

type ReportResponse = app.ReportResponse

type EntriesResponse = app.EntriesResponse

type GuardDetailResponse = app.GuardDetailResponse

type ReportErrorCode = app.ReportErrorCode

const (
	ReportErrInputMalformed  ReportErrorCode = app.ReportErrInputMalformed
	ReportErrScheduleInvalid ReportErrorCode = app.ReportErrScheduleInvalid
	ReportErrNoSleepRecorded ReportErrorCode = app.ReportErrNoSleepRecorded
	ReportErrGuardNotFound   ReportErrorCode = app.ReportErrGuardNotFound
)

type ReportStage = app.ReportStage

const (
	StageParse    ReportStage = app.StageParse
	StageReplay   ReportStage = app.StageReplay
	StageStrategy ReportStage = app.StageStrategy
	StageLookup   ReportStage = app.StageLookup
)

type ReportError = app.ReportError
