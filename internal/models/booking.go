package models

// BookingStatus is the approval state of a booking request.
type BookingStatus string

const (
	BookingPending  BookingStatus = "Pending"
	BookingApproved BookingStatus = "Approved"
	BookingRejected BookingStatus = "Rejected"
)

// AttendanceStatus records whether the worker showed up for the event.
type AttendanceStatus string

const (
	AttendancePending AttendanceStatus = "Pending"
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// Booking links a staff member to an event. Many-to-many junction.
type Booking struct {
	BookingID  string           `json:"id" db:"booking_id"`
	BoyID      string           `json:"boyId" db:"boy_id"`
	EventID    string           `json:"eventId" db:"event_id"`
	Status     BookingStatus    `json:"status" db:"status"`
	Attendance AttendanceStatus `json:"attendance" db:"attendance"`
	AuditFields
}
