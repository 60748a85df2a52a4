package dto

import (
	"time"

	"github.com/caterops/staffdesk/internal/models"
)

// CreateUserRequest defines the payload for registering a portal user.
// UserType keeps the legacy combined role string the dashboard sends.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Place    string `json:"place"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"usertype" binding:"omitempty,oneof=user Admin 'Boy A' 'Boy B' 'Boy C'"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Place    *string `json:"place"`
	UserType *string `json:"usertype"`
}

// UserResponse is the wire representation of a user. Password hash never leaves
// the server; usertype is the legacy combined string the dashboard expects.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Place     string    `json:"place"`
	UserType  string    `json:"usertype"`
	CreatedAt time.Time `json:"createdat"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a models.User to its wire representation.
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Place:     u.Place,
		UserType:  u.UserType(),
		CreatedAt: u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of models.User to ListUsersResponse.
func ToListUsersResponse(users []models.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
