package dto

import (
	"github.com/caterops/staffdesk/internal/models"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the payload for creating a staffing category.
type CreateCategoryRequest struct {
	ID          string          `json:"id" binding:"required,oneof=A B C"`
	Name        string          `json:"name" binding:"required"`
	DefaultWage decimal.Decimal `json:"defaultWage"`
	Privileges  []string        `json:"privileges"`
}

// UpdateCategoryRequest defines the mutable fields of a category.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name"`
	DefaultWage *decimal.Decimal `json:"defaultWage"`
	Privileges  *[]string        `json:"privileges"`
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DefaultWage decimal.Decimal `json:"defaultWage"`
	Privileges  []string        `json:"privileges"`
}

// ListCategoriesResponse wraps the category list.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a models.Category to its wire representation.
func ToCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          string(c.CategoryID),
		Name:        c.Name,
		DefaultWage: c.DefaultWage,
		Privileges:  c.Privileges,
	}
}

// ToListCategoriesResponse converts a slice of models.Category to ListCategoriesResponse.
func ToListCategoriesResponse(categories []models.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: out}
}
