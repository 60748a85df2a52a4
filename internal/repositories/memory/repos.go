// Package memory provides map-backed repositories. It is the default backing
// store when no database is configured, matching the dashboard's original
// mock-state mode of operation.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/caterops/staffdesk/internal/core/ports"
	"github.com/caterops/staffdesk/internal/models"
)

// Provider owns all in-memory collections behind a single lock.
type Provider struct {
	mu sync.RWMutex

	boys       map[string]models.StaffMember
	categories map[models.CategoryID]models.Category
	events     map[string]models.Event
	bookings   map[string]models.Booking
	users      map[string]models.User
	payments   []models.Payment
	monthly    []models.MonthlyRevenue

	// insertion order, so listings are stable
	boyOrder     []string
	eventOrder   []string
	bookingOrder []string
	userOrder    []string
}

// NewProvider returns an empty provider. Use NewSeededProvider for the
// dashboard's mock dataset.
func NewProvider() *Provider {
	return &Provider{
		boys:       make(map[string]models.StaffMember),
		categories: make(map[models.CategoryID]models.Category),
		events:     make(map[string]models.Event),
		bookings:   make(map[string]models.Booking),
		users:      make(map[string]models.User),
	}
}

func (p *Provider) Staff() ports.StaffRepository         { return (*staffRepository)(p) }
func (p *Provider) Category() ports.CategoryRepository   { return (*categoryRepository)(p) }
func (p *Provider) Event() ports.EventRepository         { return (*eventRepository)(p) }
func (p *Provider) Booking() ports.BookingRepository     { return (*bookingRepository)(p) }
func (p *Provider) User() ports.UserRepository           { return (*userRepository)(p) }
func (p *Provider) Reporting() ports.ReportingRepository { return (*reportingRepository)(p) }

// --- staff ---

type staffRepository Provider

func (r *staffRepository) SaveStaff(ctx context.Context, boy models.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.boys[boy.BoyID]; !exists {
		r.boyOrder = append(r.boyOrder, boy.BoyID)
	}
	r.boys[boy.BoyID] = boy
	return nil
}

func (r *staffRepository) FindStaffByID(ctx context.Context, boyID string) (*models.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	boy, ok := r.boys[boyID]
	if !ok {
		return nil, nil
	}
	return &boy, nil
}

func (r *staffRepository) FindStaff(ctx context.Context) ([]models.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.StaffMember, 0, len(r.boyOrder))
	for _, id := range r.boyOrder {
		out = append(out, r.boys[id])
	}
	return out, nil
}

func (r *staffRepository) UpdateStaff(ctx context.Context, boy models.StaffMember) error {
	return r.SaveStaff(ctx, boy)
}

func (r *staffRepository) DeleteStaff(ctx context.Context, boyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.boys, boyID)
	for i, id := range r.boyOrder {
		if id == boyID {
			r.boyOrder = append(r.boyOrder[:i], r.boyOrder[i+1:]...)
			break
		}
	}
	return nil
}

// --- categories ---

type categoryRepository Provider

func (r *categoryRepository) SaveCategory(ctx context.Context, category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.CategoryID] = category
	return nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID models.CategoryID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[categoryID]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *categoryRepository) FindCategories(ctx context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	return r.SaveCategory(ctx, category)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID models.CategoryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, categoryID)
	return nil
}

// --- events ---

type eventRepository Provider

func (r *eventRepository) SaveEvent(ctx context.Context, event models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.events[event.EventID]; !exists {
		r.eventOrder = append(r.eventOrder, event.EventID)
	}
	r.events[event.EventID] = event
	return nil
}

func (r *eventRepository) FindEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[eventID]
	if !ok {
		return nil, nil
	}
	return &event, nil
}

func (r *eventRepository) FindEvents(ctx context.Context) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Event, 0, len(r.eventOrder))
	for _, id := range r.eventOrder {
		out = append(out, r.events[id])
	}
	return out, nil
}

func (r *eventRepository) UpdateEvent(ctx context.Context, event models.Event) error {
	return r.SaveEvent(ctx, event)
}

func (r *eventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, eventID)
	for i, id := range r.eventOrder {
		if id == eventID {
			r.eventOrder = append(r.eventOrder[:i], r.eventOrder[i+1:]...)
			break
		}
	}
	return nil
}

// --- bookings ---

type bookingRepository Provider

func (r *bookingRepository) SaveBooking(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[booking.BookingID]; !exists {
		r.bookingOrder = append(r.bookingOrder, booking.BookingID)
	}
	r.bookings[booking.BookingID] = booking
	return nil
}

func (r *bookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *bookingRepository) FindBookings(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.bookingOrder))
	for _, id := range r.bookingOrder {
		out = append(out, r.bookings[id])
	}
	return out, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, booking models.Booking) error {
	return r.SaveBooking(ctx, booking)
}

// --- users ---

type userRepository Provider

func (r *userRepository) SaveUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.UserID]; !exists {
		r.userOrder = append(r.userOrder, user.UserID)
	}
	r.users[user.UserID] = user
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.userOrder {
		if u := r.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		out = append(out, r.users[id])
	}
	return out, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	return r.SaveUser(ctx, user)
}

func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	for i, id := range r.userOrder {
		if id == userID {
			r.userOrder = append(r.userOrder[:i], r.userOrder[i+1:]...)
			break
		}
	}
	return nil
}

// --- reporting ---

type reportingRepository Provider

func (r *reportingRepository) FindPayments(ctx context.Context) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Payment, len(r.payments))
	copy(out, r.payments)
	return out, nil
}

func (r *reportingRepository) FindMonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.MonthlyRevenue, len(r.monthly))
	copy(out, r.monthly)
	return out, nil
}
