package store

import "github.com/caterops/staffdesk/pkg/apiclient"

// Seed installs the demo dataset the dashboard ships with, replacing any
// existing collections. Useful for local development without a backend.
func (s *Store) Seed() {
	s.mu.Lock()
	s.state.Boys = []apiclient.Boy{
		{ID: "b1", Name: "Rahul Kumar", Category: "A", Wage: "1200", Status: "Active", BookingCount: 24, Performance: 4.5},
		{ID: "b2", Name: "Amit Sharma", Category: "B", Wage: "800", Status: "Active", BookingCount: 18, Performance: 4.1},
		{ID: "b3", Name: "Suresh Yadav", Category: "C", Wage: "500", Status: "Inactive", BookingCount: 9, Performance: 3.6},
		{ID: "b4", Name: "Vicky Singh", Category: "A", Wage: "1200", Status: "Active", BookingCount: 31, Performance: 4.8},
	}
	s.state.Events = []apiclient.Event{
		{
			ID: "e1", Title: "Grand Wedding Reception", Place: "Sunrise Banquet Hall",
			Date: "2025-11-15", Time: "18:00", Status: "Upcoming",
			Slots: []apiclient.EventSlot{
				{Name: "A", Total: 5, Booked: 3},
				{Name: "B", Total: 10, Booked: 8},
				{Name: "C", Total: 15, Booked: 12},
			},
		},
		{
			ID: "e2", Title: "Corporate Gala Dinner", Place: "Imperial Convention Center",
			Date: "2025-10-02", Time: "19:30", Status: "Full",
			Slots: []apiclient.EventSlot{
				{Name: "A", Total: 3, Booked: 3},
				{Name: "B", Total: 6, Booked: 6},
				{Name: "C", Total: 8, Booked: 8},
			},
		},
	}
	s.state.Bookings = []apiclient.Booking{
		{ID: "bk1", BoyID: "b1", EventID: "e1", Status: "Approved", Attendance: "Pending"},
		{ID: "bk2", BoyID: "b3", EventID: "e2", Status: "Pending", Attendance: "Pending"},
	}
	s.mu.Unlock()

	s.notify()
}
