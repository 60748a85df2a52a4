package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caterops/staffdesk/internal/apperrors"
	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/google/uuid"
)

type StaffService struct {
	staffRepo    ports.StaffRepository
	categoryRepo ports.CategoryRepository
}

func NewStaffService(staffRepo ports.StaffRepository, categoryRepo ports.CategoryRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo, categoryRepo: categoryRepo}
}

func (s *StaffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, creatorUserID string) (*models.StaffMember, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, models.CategoryID(req.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		// Every staff member must reference an existing category.
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}

	wage := category.DefaultWage
	if req.Wage != nil {
		wage = *req.Wage
	}
	status := models.StaffActive
	if req.Status != "" {
		status = models.StaffStatus(req.Status)
	}

	now := time.Now()
	boy := models.StaffMember{
		BoyID:       uuid.NewString(),
		Name:        req.Name,
		Category:    category.CategoryID,
		Wage:        wage,
		Status:      status,
		Performance: req.Performance,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.staffRepo.SaveStaff(ctx, boy); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &boy, nil
}

func (s *StaffService) GetStaffByID(ctx context.Context, boyID string) (*models.StaffMember, error) {
	boy, err := s.staffRepo.FindStaffByID(ctx, boyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if boy == nil {
		return nil, apperrors.ErrNotFound
	}
	return boy, nil
}

func (s *StaffService) ListStaff(ctx context.Context) ([]models.StaffMember, error) {
	boys, err := s.staffRepo.FindStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return boys, nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, boyID string, req dto.UpdateStaffRequest, updaterUserID string) (*models.StaffMember, error) {
	boy, err := s.staffRepo.FindStaffByID(ctx, boyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff member for update: %w", err)
	}
	if boy == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		boy.Name = *req.Name
	}
	if req.Category != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, models.CategoryID(*req.Category))
		if err != nil {
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		if category == nil {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, *req.Category)
		}
		boy.Category = category.CategoryID
	}
	if req.Wage != nil {
		boy.Wage = *req.Wage
	}
	if req.Status != nil {
		boy.Status = models.StaffStatus(*req.Status)
	}
	if req.Performance != nil {
		boy.Performance = *req.Performance
	}
	boy.LastUpdatedAt = time.Now()
	boy.LastUpdatedBy = updaterUserID

	if err := s.staffRepo.UpdateStaff(ctx, *boy); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return boy, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, boyID string) error {
	boy, err := s.staffRepo.FindStaffByID(ctx, boyID)
	if err != nil {
		return fmt.Errorf("failed to load staff member for delete: %w", err)
	}
	if boy == nil {
		return apperrors.ErrNotFound
	}
	return s.staffRepo.DeleteStaff(ctx, boyID)
}
