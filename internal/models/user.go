package models

import "time"

// UserRole is the access-control role of an account. Kept separate from the
// staffing category: the upstream API collapsed both into a single "usertype"
// string, which is split here into two tagged types.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "Admin"
	RoleBoy   UserRole = "Boy"
)

// User represents an account that can sign in to the admin portal or be
// addressed by it. Staff accounts additionally carry a staffing category.
type User struct {
	UserID       string     `json:"id" db:"user_id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	Phone        string     `json:"phone" db:"phone"`
	Place        string     `json:"place" db:"place"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         UserRole   `json:"role" db:"role"`
	Category     CategoryID `json:"category,omitempty" db:"category"` // set only for Boy accounts
	CreatedAt    time.Time  `json:"createdat" db:"created_at"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// UserType renders the legacy combined usertype string the consumed API
// exposes ("user", "Admin", "Boy A", "Boy B", "Boy C").
func (u User) UserType() string {
	if u.Role == RoleBoy && u.Category != "" {
		return string(RoleBoy) + " " + string(u.Category)
	}
	return string(u.Role)
}

// ParseUserType splits a legacy usertype string into role and category.
func ParseUserType(usertype string) (UserRole, CategoryID) {
	switch usertype {
	case "Admin":
		return RoleAdmin, ""
	case "Boy A":
		return RoleBoy, CategoryA
	case "Boy B":
		return RoleBoy, CategoryB
	case "Boy C":
		return RoleBoy, CategoryC
	default:
		return RoleUser, ""
	}
}
