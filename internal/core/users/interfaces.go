package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Delete removes a user. Threads moderated by the user keep existing;
	// the store clears their moderator reference (never dangles).
	Delete(ctx context.Context, id int64) error
}

// Service defines the interface for user business logic
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)

	// GetUser retrieves a user by id. This is how the auth middleware turns
	// a token subject into the authenticated actor for a request.
	GetUser(ctx context.Context, id int64) (*User, error)

	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
