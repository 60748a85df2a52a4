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

type PgxBookingRepository struct {
	db *pgxpool.Pool
}

func newBookingRepository(db *pgxpool.Pool) ports.BookingRepository {
	return &PgxBookingRepository{db: db}
}

var _ ports.BookingRepository = (*PgxBookingRepository)(nil)

const bookingColumns = `booking_id, boy_id, event_id, status, attendance, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking models.Booking) error {
	query := `
        INSERT INTO bookings (` + bookingColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (booking_id) DO UPDATE SET
            status = EXCLUDED.status,
            attendance = EXCLUDED.attendance,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		booking.BookingID, booking.BoyID, booking.EventID, booking.Status, booking.Attendance,
		booking.CreatedAt, booking.CreatedBy, booking.LastUpdatedAt, booking.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1;`
	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return booking, nil
}

func (r *PgxBookingRepository) FindBookings(ctx context.Context) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

func (r *PgxBookingRepository) UpdateBooking(ctx context.Context, booking models.Booking) error {
	return r.SaveBooking(ctx, booking)
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.BookingID, &booking.BoyID, &booking.EventID, &booking.Status, &booking.Attendance,
		&booking.CreatedAt, &booking.CreatedBy, &booking.LastUpdatedAt, &booking.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
