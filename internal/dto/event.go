package dto

import (
	"sort"

	"github.com/caterops/staffdesk/internal/models"
)

// EventSlotInput is one named capacity bucket in a create/update payload.
type EventSlotInput struct {
	Name   string `json:"name" binding:"required"`
	Total  int    `json:"total" binding:"min=0"`
	Booked int    `json:"booked" binding:"min=0"`
}

// CreateEventRequest accepts both event shapes the dashboard has shipped with:
// the canonical named-slots list, and the legacy required/booked category maps.
// When Slots is empty the maps are converted, so either client keeps working.
type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Place       string           `json:"place"`
	Location    string           `json:"location"` // legacy alias for Place
	Date        string           `json:"date" binding:"required"`
	Time        string           `json:"time"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Slots       []EventSlotInput `json:"slots" binding:"omitempty,dive"`
	Required    map[string]int   `json:"required"`
	Booked      map[string]int   `json:"booked"`
	CreatedBy   string           `json:"created_by"`
}

// UpdateEventRequest mirrors CreateEventRequest for PUT updates.
type UpdateEventRequest CreateEventRequest

// NormalizedSlots returns the canonical slot list for the request.
func (r CreateEventRequest) NormalizedSlots() []models.EventSlot {
	if len(r.Slots) > 0 {
		slots := make([]models.EventSlot, len(r.Slots))
		for i, s := range r.Slots {
			slots[i] = models.EventSlot{Name: s.Name, Total: s.Total, Booked: s.Booked}
		}
		return slots
	}
	if len(r.Required) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Required))
	for name := range r.Required {
		names = append(names, name)
	}
	sort.Strings(names)
	slots := make([]models.EventSlot, 0, len(names))
	for _, name := range names {
		slots = append(slots, models.EventSlot{
			Name:   name,
			Total:  r.Required[name],
			Booked: r.Booked[name],
		})
	}
	return slots
}

// NormalizedPlace resolves the place/location alias pair.
func (r CreateEventRequest) NormalizedPlace() string {
	if r.Place != "" {
		return r.Place
	}
	return r.Location
}

// EventResponse is the wire representation of an event.
type EventResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Place       string             `json:"place"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	Slots       []models.EventSlot `json:"slots"`
	CreatedBy   string             `json:"created_by"`
}

// ListEventsResponse wraps the event list. The dashboard unwraps the "events"
// key (it also tolerates "data" and a bare array, but this is the shape served).
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a models.Event to its wire representation.
func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.EventID,
		Title:       e.Title,
		Place:       e.Place,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Status:      e.Status,
		Slots:       e.Slots,
		CreatedBy:   e.CreatedBy,
	}
}

// ToListEventsResponse converts a slice of models.Event to ListEventsResponse.
func ToListEventsResponse(events []models.Event) ListEventsResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: out}
}
