package dto

// LoginRequest carries the credentials posted to /api/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MessageResponse is the error body shape the login endpoint uses.
// The dashboard reads the "message" key on failure, so this must not change.
type MessageResponse struct {
	Message string `json:"message"`
}
