package services

import (
	"github.com/caterops/staffdesk/internal/core/ports"
	portssvc "github.com/caterops/staffdesk/internal/core/ports/services"
	"github.com/caterops/staffdesk/internal/platform/config"
)

// RepositoryProvider supplies every repository the services need, regardless
// of whether the backing store is Postgres or the seeded in-memory mock.
type RepositoryProvider interface {
	Staff() ports.StaffRepository
	Category() ports.CategoryRepository
	Event() ports.EventRepository
	Booking() ports.BookingRepository
	User() ports.UserRepository
	Reporting() ports.ReportingRepository
}

// NewServiceContainer wires every service against the given repositories.
func NewServiceContainer(repos RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      NewAuthService(repos.User(), cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		User:      NewUserService(repos.User()),
		Staff:     NewStaffService(repos.Staff(), repos.Category()),
		Category:  NewCategoryService(repos.Category()),
		Event:     NewEventService(repos.Event(), cfg.EventStatusSet),
		Booking:   NewBookingService(repos.Booking(), repos.Staff(), repos.Event()),
		Reporting: NewReportingService(repos.Reporting(), repos.Staff(), repos.Event(), repos.Booking()),
	}
}
