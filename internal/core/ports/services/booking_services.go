package services

import (
	"context"

	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/models"
)

// BookingSvcFacade manages staff-to-event bookings.
type BookingSvcFacade interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus, updaterUserID string) (*models.Booking, error)
}
