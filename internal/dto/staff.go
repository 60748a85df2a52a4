package dto

import (
	"github.com/caterops/staffdesk/internal/models"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest defines the payload for registering a new boy.
// Wage is optional; the category default wage applies when omitted.
type CreateStaffRequest struct {
	Name        string           `json:"name" binding:"required"`
	Category    string           `json:"category" binding:"required,oneof=A B C"`
	Wage        *decimal.Decimal `json:"wage"`
	Status      string           `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Performance float64          `json:"performance" binding:"min=0,max=5"`
}

// UpdateStaffRequest defines the mutable fields of a staff record.
type UpdateStaffRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category" binding:"omitempty,oneof=A B C"`
	Wage        *decimal.Decimal `json:"wage"`
	Status      *string          `json:"status" binding:"omitempty,oneof=Active Inactive"`
	Performance *float64         `json:"performance" binding:"omitempty,min=0,max=5"`
}

// StaffResponse is the wire representation of a staff member.
type StaffResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Wage         decimal.Decimal `json:"wage"`
	Status       string          `json:"status"`
	BookingCount int             `json:"bookingCount"`
	Performance  float64         `json:"performance"`
}

// ListStaffResponse wraps the staff list.
type ListStaffResponse struct {
	Boys []StaffResponse `json:"boys"`
}

// ToStaffResponse converts a models.StaffMember to its wire representation.
func ToStaffResponse(b *models.StaffMember) StaffResponse {
	return StaffResponse{
		ID:           b.BoyID,
		Name:         b.Name,
		Category:     string(b.Category),
		Wage:         b.Wage,
		Status:       string(b.Status),
		BookingCount: b.BookingCount,
		Performance:  b.Performance,
	}
}

// ToListStaffResponse converts a slice of models.StaffMember to ListStaffResponse.
func ToListStaffResponse(boys []models.StaffMember) ListStaffResponse {
	out := make([]StaffResponse, len(boys))
	for i := range boys {
		out[i] = ToStaffResponse(&boys[i])
	}
	return ListStaffResponse{Boys: out}
}
