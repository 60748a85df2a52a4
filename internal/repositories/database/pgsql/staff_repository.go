package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStaffRepository struct {
	db *pgxpool.Pool
}

func newStaffRepository(db *pgxpool.Pool) ports.StaffRepository {
	return &PgxStaffRepository{db: db}
}

var _ ports.StaffRepository = (*PgxStaffRepository)(nil)

const staffColumns = `boy_id, name, category, wage, status, booking_count, performance, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, boy models.StaffMember) error {
	query := `
        INSERT INTO boys (` + staffColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (boy_id) DO UPDATE SET
            name = EXCLUDED.name,
            category = EXCLUDED.category,
            wage = EXCLUDED.wage,
            status = EXCLUDED.status,
            booking_count = EXCLUDED.booking_count,
            performance = EXCLUDED.performance,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		boy.BoyID, boy.Name, boy.Category, boy.Wage, boy.Status,
		boy.BookingCount, boy.Performance,
		boy.CreatedAt, boy.CreatedBy, boy.LastUpdatedAt, boy.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff member: %w", err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, boyID string) (*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM boys WHERE boy_id = $1;`
	boy, err := scanStaff(r.db.QueryRow(ctx, query, boyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return boy, nil
}

func (r *PgxStaffRepository) FindStaff(ctx context.Context) ([]models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM boys ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var boys []models.StaffMember
	for rows.Next() {
		boy, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		boys = append(boys, *boy)
	}
	return boys, rows.Err()
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, boy models.StaffMember) error {
	return r.SaveStaff(ctx, boy)
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, boyID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM boys WHERE boy_id = $1;`, boyID)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

func scanStaff(row pgx.Row) (*models.StaffMember, error) {
	var boy models.StaffMember
	err := row.Scan(
		&boy.BoyID, &boy.Name, &boy.Category, &boy.Wage, &boy.Status,
		&boy.BookingCount, &boy.Performance,
		&boy.CreatedAt, &boy.CreatedBy, &boy.LastUpdatedAt, &boy.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &boy, nil
}
