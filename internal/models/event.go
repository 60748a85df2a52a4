package models

// EventStatusSet names one of the two event status vocabularies observed in the
// wild. Which one is accepted is configuration, not code.
type EventStatusSet string

const (
	StatusSetUpcomingFull   EventStatusSet = "upcoming_full"
	StatusSetActiveInactive EventStatusSet = "active_inactive"
)

// Statuses returns the accepted status values for the set.
func (s EventStatusSet) Statuses() []string {
	switch s {
	case StatusSetActiveInactive:
		return []string{"active", "inactive"}
	default:
		return []string{"Upcoming", "Full"}
	}
}

// Contains reports whether status belongs to the set's vocabulary.
func (s EventStatusSet) Contains(status string) bool {
	for _, v := range s.Statuses() {
		if v == status {
			return true
		}
	}
	return false
}

// EventSlot is a named capacity bucket within an event: how many workers of a
// category are needed and how many are already booked.
type EventSlot struct {
	Name   string `json:"name" db:"name"`
	Total  int    `json:"total" db:"total"`
	Booked int    `json:"booked" db:"booked"`
}

// Event represents a catering engagement with its staffing slots.
// The named-slots list is the canonical shape; the legacy category->count maps
// are converted to slots at the DTO boundary.
type Event struct {
	EventID     string      `json:"id" db:"event_id"`
	Title       string      `json:"title" db:"title"`
	Place       string      `json:"place" db:"place"`
	Date        string      `json:"date" db:"event_date"` // YYYY-MM-DD
	Time        string      `json:"time" db:"event_time"` // HH:MM
	Description string      `json:"description" db:"description"`
	Status      string      `json:"status" db:"status"`
	Slots       []EventSlot `json:"slots" db:"slots"`
	AuditFields
}

// TotalSlots sums the required head count across all slots.
func (e Event) TotalSlots() int {
	total := 0
	for _, s := range e.Slots {
		total += s.Total
	}
	return total
}

// TotalBooked sums the booked head count across all slots.
func (e Event) TotalBooked() int {
	booked := 0
	for _, s := range e.Slots {
		booked += s.Booked
	}
	return booked
}
