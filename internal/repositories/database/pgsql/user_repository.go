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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newUserRepository(db *pgxpool.Pool) ports.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ ports.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user models.User) error {
	query := `
        INSERT INTO users (user_id, name, email, phone, place, password_hash, role, category, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (user_id) DO UPDATE SET
            name = EXCLUDED.name,
            phone = EXCLUDED.phone,
            place = EXCLUDED.place,
            role = EXCLUDED.role,
            category = EXCLUDED.category;
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.Phone,
		user.Place,
		user.PasswordHash,
		user.Role,
		nullableCategory(user.Category),
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
        SELECT user_id, name, email, phone, place, password_hash, role, category, created_at, deleted_at
        FROM users WHERE user_id = $1 AND deleted_at IS NULL;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT user_id, name, email, phone, place, password_hash, role, category, created_at, deleted_at
        FROM users WHERE email = $1 AND deleted_at IS NULL;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]models.User, error) {
	query := `
        SELECT user_id, name, email, phone, place, password_hash, role, category, created_at, deleted_at
        FROM users WHERE deleted_at IS NULL ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUserFromRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	query := `
        UPDATE users SET name = $2, phone = $3, place = $4, role = $5, category = $6
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	_, err := r.db.Exec(ctx, query, user.UserID, user.Name, user.Phone, user.Place, user.Role, nullableCategory(user.Category))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	query := `UPDATE users SET deleted_at = now() WHERE user_id = $1 AND deleted_at IS NULL;`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*models.User, error) {
	user, err := scanUserFromRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func scanUserFromRow(row pgx.Row) (*models.User, error) {
	var user models.User
	var category *string
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Place,
		&user.PasswordHash,
		&user.Role,
		&category,
		&user.CreatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if category != nil {
		user.Category = models.CategoryID(*category)
	}
	return &user, nil
}

func nullableCategory(category models.CategoryID) *string {
	if category == "" {
		return nil
	}
	s := string(category)
	return &s
}
