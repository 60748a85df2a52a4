package ports

import (
	"context"

	"github.com/caterops/staffdesk/internal/models"
)

// StaffRepository persists staff members.
type StaffRepository interface {
	SaveStaff(ctx context.Context, boy models.StaffMember) error
	FindStaffByID(ctx context.Context, boyID string) (*models.StaffMember, error)
	FindStaff(ctx context.Context) ([]models.StaffMember, error)
	UpdateStaff(ctx context.Context, boy models.StaffMember) error
	DeleteStaff(ctx context.Context, boyID string) error
}

// CategoryRepository persists staffing categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category models.Category) error
	FindCategoryByID(ctx context.Context, categoryID models.CategoryID) (*models.Category, error)
	FindCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, categoryID models.CategoryID) error
}

// EventRepository persists events and their staffing slots.
type EventRepository interface {
	SaveEvent(ctx context.Context, event models.Event) error
	FindEventByID(ctx context.Context, eventID string) (*models.Event, error)
	FindEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// BookingRepository persists staff-to-event bookings.
type BookingRepository interface {
	SaveBooking(ctx context.Context, booking models.Booking) error
	FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, booking models.Booking) error
}

// UserRepository persists portal users.
type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// ReportingRepository reads finance data for summaries.
type ReportingRepository interface {
	FindPayments(ctx context.Context) ([]models.Payment, error)
	FindMonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenue, error)
}
