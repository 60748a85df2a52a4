package services

import (
	"context"

	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
)

// CategorySvcFacade manages staffing categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID models.CategoryID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, categoryID models.CategoryID, req dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID models.CategoryID) error
}
