package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caterops/staffdesk/internal/apperrors"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/caterops/staffdesk/internal/repositories/memory"
)

func newEventService(t *testing.T) *EventService {
	t.Helper()
	return NewEventService(memory.NewProvider().Event(), models.StatusSetUpcomingFull)
}

func TestCreateEventDefaultsSlotsAndStatus(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title: "Gala",
		Date:  "2025-11-15",
	}, "user-admin")
	require.NoError(t, err)

	assert.Equal(t, "Upcoming", event.Status)
	require.Len(t, event.Slots, 3)
	assert.Equal(t, "A", event.Slots[0].Name)
	assert.Equal(t, "user-admin", event.CreatedBy)
	assert.NotEmpty(t, event.EventID)
}

func TestCreateEventRejectsStatusOutsideVocabulary(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title:  "Gala",
		Date:   "2025-11-15",
		Status: "active",
	}, "user-admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateEventAcceptsAlternateVocabularyWhenConfigured(t *testing.T) {
	svc := NewEventService(memory.NewProvider().Event(), models.StatusSetActiveInactive)

	event, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title:  "Gala",
		Date:   "2025-11-15",
		Status: "active",
	}, "user-admin")
	require.NoError(t, err)
	assert.Equal(t, "active", event.Status)
}

func TestCreateEventConvertsCategoryMapsToSlots(t *testing.T) {
	svc := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title:    "Gala",
		Location: "Banquet Hall", // legacy alias for place
		Date:     "2025-11-15",
		Required: map[string]int{"B": 10, "A": 5},
		Booked:   map[string]int{"A": 2},
	}, "user-admin")
	require.NoError(t, err)

	assert.Equal(t, "Banquet Hall", event.Place)
	require.Len(t, event.Slots, 2)
	assert.Equal(t, models.EventSlot{Name: "A", Total: 5, Booked: 2}, event.Slots[0])
	assert.Equal(t, models.EventSlot{Name: "B", Total: 10, Booked: 0}, event.Slots[1])
}

func TestUpdateEventMissingIDReturnsNotFound(t *testing.T) {
	svc := newEventService(t)

	_, err := svc.UpdateEvent(context.Background(), "missing", dto.UpdateEventRequest{
		Title: "Gala",
		Date:  "2025-11-15",
	}, "user-admin")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteEventMissingIDReturnsNotFound(t *testing.T) {
	svc := newEventService(t)
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), "missing"), apperrors.ErrNotFound)
}

func TestUpdateEventKeepsExistingSlotsWhenPayloadHasNone(t *testing.T) {
	svc := newEventService(t)

	created, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title: "Gala",
		Date:  "2025-11-15",
		Slots: []dto.EventSlotInput{{Name: "A", Total: 5, Booked: 1}},
	}, "user-admin")
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(context.Background(), created.EventID, dto.UpdateEventRequest{
		Title: "Gala Renamed",
		Date:  "2025-11-16",
	}, "user-admin")
	require.NoError(t, err)

	assert.Equal(t, "Gala Renamed", updated.Title)
	require.Len(t, updated.Slots, 1)
	assert.Equal(t, 5, updated.Slots[0].Total)
}
