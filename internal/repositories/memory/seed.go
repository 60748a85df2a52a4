package memory

import (
	"time"

	"github.com/caterops/staffdesk/internal/models"
	"github.com/caterops/staffdesk/internal/utils"
	"github.com/shopspring/decimal"
)

// NewSeededProvider returns a provider preloaded with the demo dataset the
// dashboard ships with, plus a default admin account
// (admin@staffdesk.local / admin123) so the portal is usable out of the box.
func NewSeededProvider() *Provider {
	p := NewProvider()
	now := time.Now()
	audit := models.AuditFields{CreatedAt: now, CreatedBy: "seed", LastUpdatedAt: now, LastUpdatedBy: "seed"}

	for _, c := range []models.Category{
		{CategoryID: models.CategoryA, Name: "Skilled Worker", DefaultWage: decimal.NewFromInt(1200), Privileges: []string{"All access", "Team Lead"}},
		{CategoryID: models.CategoryB, Name: "Server", DefaultWage: decimal.NewFromInt(800), Privileges: []string{"Serving area"}},
		{CategoryID: models.CategoryC, Name: "Helper", DefaultWage: decimal.NewFromInt(500), Privileges: []string{"Kitchen help"}},
	} {
		p.categories[c.CategoryID] = c
	}

	for _, b := range []models.StaffMember{
		{BoyID: "boy-1", Name: "Rahul Sharma", Category: models.CategoryA, Wage: decimal.NewFromInt(1200), Status: models.StaffActive, BookingCount: 15, Performance: 4.8, AuditFields: audit},
		{BoyID: "boy-2", Name: "Amit Kumar", Category: models.CategoryB, Wage: decimal.NewFromInt(800), Status: models.StaffActive, BookingCount: 22, Performance: 4.5, AuditFields: audit},
		{BoyID: "boy-3", Name: "Suresh Singh", Category: models.CategoryC, Wage: decimal.NewFromInt(500), Status: models.StaffInactive, BookingCount: 8, Performance: 3.9, AuditFields: audit},
		{BoyID: "boy-4", Name: "Vicky Verma", Category: models.CategoryA, Wage: decimal.NewFromInt(1300), Status: models.StaffActive, BookingCount: 30, Performance: 4.9, AuditFields: audit},
	} {
		p.boys[b.BoyID] = b
		p.boyOrder = append(p.boyOrder, b.BoyID)
	}

	for _, e := range []models.Event{
		{
			EventID: "event-1", Title: "Grand Wedding Reception", Place: "Taj Hotel, Mumbai",
			Date: "2026-03-15", Time: "18:00", Description: "Massive wedding event for 500+ guests.",
			Status: "Upcoming",
			Slots: []models.EventSlot{
				{Name: "A", Total: 5, Booked: 3},
				{Name: "B", Total: 10, Booked: 8},
				{Name: "C", Total: 15, Booked: 12},
			},
			AuditFields: audit,
		},
		{
			EventID: "event-2", Title: "Corporate Gala Dinner", Place: "Sahara Star, Mumbai",
			Date: "2026-03-20", Time: "19:30", Description: "Annual corporate event for Tech Corp.",
			Status: "Full",
			Slots: []models.EventSlot{
				{Name: "A", Total: 2, Booked: 2},
				{Name: "B", Total: 5, Booked: 5},
				{Name: "C", Total: 5, Booked: 5},
			},
			AuditFields: audit,
		},
	} {
		p.events[e.EventID] = e
		p.eventOrder = append(p.eventOrder, e.EventID)
	}

	for _, b := range []models.Booking{
		{BookingID: "booking-1", BoyID: "boy-1", EventID: "event-1", Status: models.BookingApproved, Attendance: models.AttendancePending, AuditFields: audit},
		{BookingID: "booking-2", BoyID: "boy-2", EventID: "event-1", Status: models.BookingPending, Attendance: models.AttendancePending, AuditFields: audit},
	} {
		p.bookings[b.BookingID] = b
		p.bookingOrder = append(p.bookingOrder, b.BookingID)
	}

	p.payments = []models.Payment{
		{PaymentID: "pay-1", BoyID: "boy-1", EventID: "event-1", Date: "2026-02-10", Amount: decimal.NewFromInt(1200), Status: models.PaymentPaid},
		{PaymentID: "pay-2", BoyID: "boy-2", EventID: "event-1", Date: "2026-02-10", Amount: decimal.NewFromInt(800), Status: models.PaymentProcessing},
		{PaymentID: "pay-3", BoyID: "boy-3", EventID: "event-2", Date: "2026-02-05", Amount: decimal.NewFromInt(500), Status: models.PaymentPaid},
	}

	p.monthly = []models.MonthlyRevenue{
		{Month: "Jan", Revenue: decimal.NewFromInt(45000), Expense: decimal.NewFromInt(32000)},
		{Month: "Feb", Revenue: decimal.NewFromInt(52000), Expense: decimal.NewFromInt(38000)},
		{Month: "Mar", Revenue: decimal.NewFromInt(48000), Expense: decimal.NewFromInt(35000)},
		{Month: "Apr", Revenue: decimal.NewFromInt(61000), Expense: decimal.NewFromInt(42000)},
		{Month: "May", Revenue: decimal.NewFromInt(55000), Expense: decimal.NewFromInt(40000)},
		{Month: "Jun", Revenue: decimal.NewFromInt(67000), Expense: decimal.NewFromInt(45000)},
	}

	hash, err := utils.HashPassword("admin123")
	if err == nil {
		admin := models.User{
			UserID:       "user-admin",
			Name:         "Portal Admin",
			Email:        "admin@staffdesk.local",
			Phone:        "9999999999",
			Place:        "Mumbai",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			CreatedAt:    now,
		}
		p.users[admin.UserID] = admin
		p.userOrder = append(p.userOrder, admin.UserID)
	}

	return p
}
