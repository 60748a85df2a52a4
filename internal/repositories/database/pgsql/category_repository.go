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

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newCategoryRepository(db *pgxpool.Pool) ports.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

var _ ports.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category models.Category) error {
	query := `
        INSERT INTO categories (category_id, name, default_wage, privileges)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (category_id) DO UPDATE SET
            name = EXCLUDED.name,
            default_wage = EXCLUDED.default_wage,
            privileges = EXCLUDED.privileges;
    `
	_, err := r.db.Exec(ctx, query, category.CategoryID, category.Name, category.DefaultWage, category.Privileges)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID models.CategoryID) (*models.Category, error) {
	query := `SELECT category_id, name, default_wage, privileges FROM categories WHERE category_id = $1;`
	category, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT category_id, name, default_wage, privileges FROM categories ORDER BY category_id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	return r.SaveCategory(ctx, category)
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID models.CategoryID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var category models.Category
	err := row.Scan(&category.CategoryID, &category.Name, &category.DefaultWage, &category.Privileges)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
