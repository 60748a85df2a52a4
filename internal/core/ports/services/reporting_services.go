package services

import (
	"context"

	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
)

// ReportingSvcFacade computes finance and KPI summaries.
type ReportingSvcFacade interface {
	GetRevenueReport(ctx context.Context) (*models.RevenueSummary, error)
	GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
}
