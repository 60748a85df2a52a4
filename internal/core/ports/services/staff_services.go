package services

import (
	"context"

	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
)

// StaffSvcFacade manages the staff ("boys") roster.
type StaffSvcFacade interface {
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest, creatorUserID string) (*models.StaffMember, error)
	GetStaffByID(ctx context.Context, boyID string) (*models.StaffMember, error)
	ListStaff(ctx context.Context) ([]models.StaffMember, error)
	UpdateStaff(ctx context.Context, boyID string, req dto.UpdateStaffRequest, updaterUserID string) (*models.StaffMember, error)
	DeleteStaff(ctx context.Context, boyID string) error
}
