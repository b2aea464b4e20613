package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Pragmatic email check: one @, non-empty local part and domain with a dot.
// Deliverability is the mail provider's problem, not ours.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// CreateUser creates a new user. Role defaults to member when not supplied.
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, &InvalidEmailError{Email: req.Email}
	}

	role := req.Role
	if role == "" {
		role = RoleMember
	}
	if !role.Valid() {
		return nil, &InvalidRoleError{Role: role}
	}

	user := &User{
		Email: email,
		Role:  role,
	}

	// Repository surfaces the unique constraint as ErrEmailAlreadyTaken
	return s.repo.Create(ctx, user)
}

// GetUser retrieves a user by id
func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by their email address
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return s.repo.GetByEmail(ctx, email)
}
