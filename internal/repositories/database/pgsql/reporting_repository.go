package pgsql

import (
	"context"
	"fmt"

	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newReportingRepository(db *pgxpool.Pool) ports.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ ports.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) FindPayments(ctx context.Context) ([]models.Payment, error) {
	query := `SELECT payment_id, boy_id, event_id, pay_date, amount, status FROM payments ORDER BY pay_date DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.PaymentID, &p.BoyID, &p.EventID, &p.Date, &p.Amount, &p.Status); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// FindMonthlyRevenue aggregates paid revenue and expense per calendar month.
func (r *PgxReportingRepository) FindMonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenue, error) {
	query := `
        SELECT month, revenue, expense
        FROM monthly_revenue
        ORDER BY sort_order;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}
	defer rows.Close()

	var monthly []models.MonthlyRevenue
	for rows.Next() {
		var m models.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Expense); err != nil {
			return nil, err
		}
		monthly = append(monthly, m)
	}
	return monthly, rows.Err()
}
