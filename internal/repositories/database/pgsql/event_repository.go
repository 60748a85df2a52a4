package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEventRepository struct {
	db *pgxpool.Pool
}

func newEventRepository(db *pgxpool.Pool) ports.EventRepository {
	return &PgxEventRepository{db: db}
}

var _ ports.EventRepository = (*PgxEventRepository)(nil)

const eventColumns = `event_id, title, place, event_date, event_time, description, status, slots, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event models.Event) error {
	slots, err := json.Marshal(event.Slots)
	if err != nil {
		return fmt.Errorf("failed to encode slots: %w", err)
	}
	query := `
        INSERT INTO events (` + eventColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (event_id) DO UPDATE SET
            title = EXCLUDED.title,
            place = EXCLUDED.place,
            event_date = EXCLUDED.event_date,
            event_time = EXCLUDED.event_time,
            description = EXCLUDED.description,
            status = EXCLUDED.status,
            slots = EXCLUDED.slots,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err = r.db.Exec(ctx, query,
		event.EventID, event.Title, event.Place, event.Date, event.Time,
		event.Description, event.Status, slots,
		event.CreatedAt, event.CreatedBy, event.LastUpdatedAt, event.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	event, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

func (r *PgxEventRepository) FindEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date, created_at;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event models.Event) error {
	return r.SaveEvent(ctx, event)
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	var slots []byte
	err := row.Scan(
		&event.EventID, &event.Title, &event.Place, &event.Date, &event.Time,
		&event.Description, &event.Status, &slots,
		&event.CreatedAt, &event.CreatedBy, &event.LastUpdatedAt, &event.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &event.Slots); err != nil {
			return nil, fmt.Errorf("failed to decode slots: %w", err)
		}
	}
	return &event, nil
}
