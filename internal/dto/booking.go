package dto

import "github.com/caterops/staffdesk/internal/models"

// CreateBookingRequest assigns a boy to an event.
type CreateBookingRequest struct {
	BoyID   string `json:"boyId" binding:"required"`
	EventID string `json:"eventId" binding:"required"`
}

// UpdateBookingStatusRequest changes the approval state of a booking.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
}

// BookingResponse is the wire representation of a booking.
type BookingResponse struct {
	ID         string `json:"id"`
	BoyID      string `json:"boyId"`
	EventID    string `json:"eventId"`
	Status     string `json:"status"`
	Attendance string `json:"attendance"`
}

// ListBookingsResponse wraps the booking list.
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToBookingResponse converts a models.Booking to its wire representation.
func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.BookingID,
		BoyID:      b.BoyID,
		EventID:    b.EventID,
		Status:     string(b.Status),
		Attendance: string(b.Attendance),
	}
}

// ToListBookingsResponse converts a slice of models.Booking to ListBookingsResponse.
func ToListBookingsResponse(bookings []models.Booking) ListBookingsResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return ListBookingsResponse{Bookings: out}
}
