package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyTaken is returned when attempting to register an email
	// that belongs to another user
	ErrEmailAlreadyTaken = errors.New("email already taken")
)

// InvalidEmailError is returned when an email address fails format validation
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Email)
}

// InvalidRoleError is returned when a role value is not one of the three
// known tiers
type InvalidRoleError struct {
	Role Role
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q: must be member, moderator, or admin", e.Role)
}
