package models

import (
	"github.com/shopspring/decimal"
)

// CategoryID classifies a staff member into one of the staffing tiers.
type CategoryID string

const (
	CategoryA CategoryID = "A"
	CategoryB CategoryID = "B"
	CategoryC CategoryID = "C"
)

// StaffStatus is the availability state of a staff member.
type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
)

// StaffMember represents a catering worker ("boy") that can be booked onto events.
type StaffMember struct {
	BoyID        string          `json:"id" db:"boy_id"`
	Name         string          `json:"name" db:"name"`
	Category     CategoryID      `json:"category" db:"category"`
	Wage         decimal.Decimal `json:"wage" db:"wage"` // per event
	Status       StaffStatus     `json:"status" db:"status"`
	BookingCount int             `json:"bookingCount" db:"booking_count"`
	Performance  float64         `json:"performance" db:"performance"` // 0.0 - 5.0 rating
	AuditFields
}

// Category is the staffing classification reference data: a tier with a
// default wage and the privileges granted to workers of that tier.
type Category struct {
	CategoryID  CategoryID      `json:"id" db:"category_id"`
	Name        string          `json:"name" db:"name"`
	DefaultWage decimal.Decimal `json:"defaultWage" db:"default_wage"`
	Privileges  []string        `json:"privileges" db:"privileges"`
}
