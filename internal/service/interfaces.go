package service

import (
	"context"

	"github.com/alexanderramin/guardlog/internal/contract"
)

type ReportService interface {
	BuildReport(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
	ListEntries(ctx context.Context, req contract.EntriesRequest) (*contract.EntriesResponse, error)
	GuardDetail(ctx context.Context, req contract.GuardRequest) (*contract.GuardDetailResponse, error)
}
