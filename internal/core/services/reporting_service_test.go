package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caterops/staffdesk/internal/repositories/memory"
)

func newReportingService(t *testing.T) *ReportingService {
	t.Helper()
	repos := memory.NewSeededProvider()
	return NewReportingService(repos.Reporting(), repos.Staff(), repos.Event(), repos.Booking())
}

func TestRevenueTotalsEqualSumOfMonthlySeries(t *testing.T) {
	svc := newReportingService(t)

	report, err := svc.GetRevenueReport(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, report.Monthly)

	wantRevenue := decimal.Zero
	wantExpense := decimal.Zero
	for _, m := range report.Monthly {
		wantRevenue = wantRevenue.Add(m.Revenue)
		wantExpense = wantExpense.Add(m.Expense)
	}

	assert.True(t, report.TotalRevenue.Equal(wantRevenue),
		"total revenue %s != series sum %s", report.TotalRevenue, wantRevenue)
	assert.True(t, report.TotalExpense.Equal(wantExpense),
		"total expense %s != series sum %s", report.TotalExpense, wantExpense)
}

func TestWagePaidCountsOnlyPaidPayments(t *testing.T) {
	repos := memory.NewSeededProvider()
	svc := NewReportingService(repos.Reporting(), repos.Staff(), repos.Event(), repos.Booking())

	report, err := svc.GetRevenueReport(context.Background())
	require.NoError(t, err)

	payments, err := repos.Reporting().FindPayments(context.Background())
	require.NoError(t, err)

	want := decimal.Zero
	for _, p := range payments {
		if p.Status == "Paid" {
			want = want.Add(p.Amount)
		}
	}
	assert.True(t, report.TotalWagePaid.Equal(want))
	// The seed data includes a Processing payment, so the two must differ.
	all := decimal.Zero
	for _, p := range payments {
		all = all.Add(p.Amount)
	}
	assert.False(t, report.TotalWagePaid.Equal(all))
}

func TestDashboardSummaryKPIs(t *testing.T) {
	svc := newReportingService(t)

	summary, err := svc.GetDashboardSummary(context.Background())
	require.NoError(t, err)

	// Seed data: 4 boys, one event with free slots and one full, one
	// pending booking.
	assert.Equal(t, 4, summary.TotalBoys)
	assert.Equal(t, 1, summary.ActiveEvents)
	assert.Equal(t, 1, summary.PendingBookings)
	assert.True(t, summary.TotalRevenue.IsPositive())
}
