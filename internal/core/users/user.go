package users

import (
	"time"
)

// Role is a user's global permission tier. It is a single attribute of the
// user, not a per-thread assignment.
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles.
// Anything else is invalid state and must be rejected.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User represents a forum user
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role" db:"role"`
	ID        int64     `json:"id" db:"id"`
}

// CreateUserRequest represents the input for creating a new user
type CreateUserRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"` // defaults to member when empty
}
