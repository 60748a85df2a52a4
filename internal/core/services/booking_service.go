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

type BookingService struct {
	bookingRepo ports.BookingRepository
	staffRepo   ports.StaffRepository
	eventRepo   ports.EventRepository
}

func NewBookingService(bookingRepo ports.BookingRepository, staffRepo ports.StaffRepository, eventRepo ports.EventRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, staffRepo: staffRepo, eventRepo: eventRepo}
}

func (s *BookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*models.Booking, error) {
	// A booking must reference an existing staff member and event.
	boy, err := s.staffRepo.FindStaffByID(ctx, req.BoyID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up staff member: %w", err)
	}
	if boy == nil {
		return nil, fmt.Errorf("%w: unknown boy %q", apperrors.ErrValidation, req.BoyID)
	}
	event, err := s.eventRepo.FindEventByID(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: unknown event %q", apperrors.ErrValidation, req.EventID)
	}

	now := time.Now()
	booking := models.Booking{
		BookingID:  uuid.NewString(),
		BoyID:      req.BoyID,
		EventID:    req.EventID,
		Status:     models.BookingPending,
		Attendance: models.AttendancePending,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	boy.BookingCount++
	boy.LastUpdatedAt = now
	boy.LastUpdatedBy = creatorUserID
	if err := s.staffRepo.UpdateStaff(ctx, *boy); err != nil {
		return nil, fmt.Errorf("failed to bump booking count: %w", err)
	}

	return &booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, bookingID string, status models.BookingStatus, updaterUserID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking for update: %w", err)
	}
	if booking == nil {
		return nil, apperrors.ErrNotFound
	}

	booking.Status = status
	booking.LastUpdatedAt = time.Now()
	booking.LastUpdatedBy = updaterUserID

	if err := s.bookingRepo.UpdateBooking(ctx, *booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}
