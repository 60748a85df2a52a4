package apiclient

// EventSlot is a named capacity bucket within an event.
type EventSlot struct {
	Name   string `json:"name"`
	Total  int    `json:"total"`
	Booked int    `json:"booked"`
}

// Event is the wire representation of a catering event.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Place       string      `json:"place"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Slots       []EventSlot `json:"slots"`
	CreatedBy   string      `json:"created_by,omitempty"`
}

// Boy is the wire representation of a staff roster entry.
type Boy struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Wage         string  `json:"wage"`
	Status       string  `json:"status"`
	BookingCount int     `json:"bookingCount"`
	Performance  float64 `json:"performance"`
}

// User is the wire representation of a portal user.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Place     string `json:"place,omitempty"`
	UserType  string `json:"usertype"`
	Password  string `json:"password,omitempty"`
	CreatedAt string `json:"createdat,omitempty"`
}

// Booking is the wire representation of a staff-to-event booking.
type Booking struct {
	ID         string `json:"id"`
	BoyID      string `json:"boyId"`
	EventID    string `json:"eventId"`
	Status     string `json:"status"`
	Attendance string `json:"attendance"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
