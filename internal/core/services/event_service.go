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

type EventService struct {
	eventRepo ports.EventRepository
	statusSet models.EventStatusSet
}

func NewEventService(eventRepo ports.EventRepository, statusSet models.EventStatusSet) *EventService {
	return &EventService{eventRepo: eventRepo, statusSet: statusSet}
}

// defaultSlots is the three-category staffing template used when a payload
// carries no slot information at all.
func defaultSlots() []models.EventSlot {
	return []models.EventSlot{
		{Name: "A"},
		{Name: "B"},
		{Name: "C"},
	}
}

func (s *EventService) validate(status string, slots []models.EventSlot) error {
	if status != "" && !s.statusSet.Contains(status) {
		return fmt.Errorf("%w: status %q not in configured vocabulary %v", apperrors.ErrValidation, status, s.statusSet.Statuses())
	}
	for _, slot := range slots {
		if slot.Total < 0 || slot.Booked < 0 {
			return fmt.Errorf("%w: slot %q has negative counts", apperrors.ErrValidation, slot.Name)
		}
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*models.Event, error) {
	slots := req.NormalizedSlots()
	if len(slots) == 0 {
		slots = defaultSlots()
	}
	status := req.Status
	if status == "" {
		status = s.statusSet.Statuses()[0]
	}
	if err := s.validate(status, slots); err != nil {
		return nil, err
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = creatorUserID
	}

	now := time.Now()
	event := models.Event{
		EventID:     uuid.NewString(),
		Title:       req.Title,
		Place:       req.NormalizedPlace(),
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		Status:      status,
		Slots:       slots,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *EventService) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, apperrors.ErrNotFound
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.FindEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*models.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event for update: %w", err)
	}
	if event == nil {
		return nil, apperrors.ErrNotFound
	}

	createReq := dto.CreateEventRequest(req)
	slots := createReq.NormalizedSlots()
	if len(slots) == 0 {
		slots = event.Slots
	}
	status := req.Status
	if status == "" {
		status = event.Status
	}
	if err := s.validate(status, slots); err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Place = createReq.NormalizedPlace()
	event.Date = req.Date
	event.Time = req.Time
	event.Description = req.Description
	event.Status = status
	event.Slots = slots
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = updaterUserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load event for delete: %w", err)
	}
	if event == nil {
		return apperrors.ErrNotFound
	}
	return s.eventRepo.DeleteEvent(ctx, eventID)
}
