package services

import (
	"context"
	"fmt"

	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/shopspring/decimal"
)

type ReportingService struct {
	reportingRepo ports.ReportingRepository
	staffRepo     ports.StaffRepository
	eventRepo     ports.EventRepository
	bookingRepo   ports.BookingRepository
}

func NewReportingService(reportingRepo ports.ReportingRepository, staffRepo ports.StaffRepository, eventRepo ports.EventRepository, bookingRepo ports.BookingRepository) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		staffRepo:     staffRepo,
		eventRepo:     eventRepo,
		bookingRepo:   bookingRepo,
	}
}

// GetRevenueReport aggregates the monthly series; totals are always recomputed
// from the series so they cannot drift from it.
func (s *ReportingService) GetRevenueReport(ctx context.Context) (*models.RevenueSummary, error) {
	monthly, err := s.reportingRepo.FindMonthlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly revenue: %w", err)
	}

	totalRevenue := decimal.Zero
	totalExpense := decimal.Zero
	for _, m := range monthly {
		totalRevenue = totalRevenue.Add(m.Revenue)
		totalExpense = totalExpense.Add(m.Expense)
	}

	payments, err := s.reportingRepo.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	totalWagePaid := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentPaid {
			totalWagePaid = totalWagePaid.Add(p.Amount)
		}
	}

	return &models.RevenueSummary{
		Monthly:       monthly,
		TotalRevenue:  totalRevenue,
		TotalExpense:  totalExpense,
		TotalWagePaid: totalWagePaid,
	}, nil
}

// GetDashboardSummary computes the KPI block for the dashboard landing page.
func (s *ReportingService) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	boys, err := s.staffRepo.FindStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}
	events, err := s.eventRepo.FindEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	bookings, err := s.bookingRepo.FindBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	revenue, err := s.GetRevenueReport(ctx)
	if err != nil {
		return nil, err
	}

	activeEvents := 0
	for _, e := range events {
		if e.TotalBooked() < e.TotalSlots() {
			activeEvents++
		}
	}
	pendingBookings := 0
	for _, b := range bookings {
		if b.Status == models.BookingPending {
			pendingBookings++
		}
	}

	return &dto.DashboardSummaryResponse{
		TotalBoys:       len(boys),
		ActiveEvents:    activeEvents,
		PendingBookings: pendingBookings,
		TotalRevenue:    revenue.TotalRevenue,
	}, nil
}

func (s *ReportingService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.reportingRepo.FindPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
