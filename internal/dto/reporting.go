package dto

import (
	"github.com/caterops/staffdesk/internal/models"
	"github.com/shopspring/decimal"
)

// RevenueReportResponse is the finance summary served to the Payments page.
type RevenueReportResponse struct {
	Monthly       []models.MonthlyRevenue `json:"monthly"`
	TotalRevenue  decimal.Decimal         `json:"totalRevenue"`
	TotalExpense  decimal.Decimal         `json:"totalExpense"`
	TotalWagePaid decimal.Decimal         `json:"totalWagePaid"`
}

// DashboardSummaryResponse is the KPI block on the dashboard landing page.
type DashboardSummaryResponse struct {
	TotalBoys       int             `json:"totalBoys"`
	ActiveEvents    int             `json:"activeEvents"`
	PendingBookings int             `json:"pendingBookings"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

// ListPaymentsResponse wraps the payment transactions list.
type ListPaymentsResponse struct {
	Payments []models.Payment `json:"payments"`
}
