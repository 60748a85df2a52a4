package services

import (
	"context"
	"fmt"

	"github.com/caterops/staffdesk/internal/apperrors"
	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
)

type CategoryService struct {
	categoryRepo ports.CategoryRepository
}

func NewCategoryService(categoryRepo ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByID(ctx, models.CategoryID(req.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	category := models.Category{
		CategoryID:  models.CategoryID(req.ID),
		Name:        req.Name,
		DefaultWage: req.DefaultWage,
		Privileges:  req.Privileges,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID models.CategoryID) (*models.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID models.CategoryID, req dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category for update: %w", err)
	}
	if category == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.DefaultWage != nil {
		category.DefaultWage = *req.DefaultWage
	}
	if req.Privileges != nil {
		category.Privileges = *req.Privileges
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID models.CategoryID) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load category for delete: %w", err)
	}
	if category == nil {
		return apperrors.ErrNotFound
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
