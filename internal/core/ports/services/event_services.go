package services

import (
	"context"

	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
)

// EventSvcFacade manages catering events and their staffing slots.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*models.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
