package posts

import (
	"context"
	"time"

	"Agora/internal/core/users"
)

// Service defines the business logic interface for posts
type Service interface {
	// ListOwnPosts returns all posts authored by the actor, newest first
	// (created_at descending, id descending on ties).
	ListOwnPosts(ctx context.Context, actor *users.User) ([]*Post, error)

	// CreatePost creates a post authored by the actor. Any author supplied
	// in the request is ignored.
	CreatePost(ctx context.Context, actor *users.User, req CreatePostRequest) (*Post, error)

	// UpdatePost replaces the post's text if the actor is allowed to:
	// members may edit their own posts, moderators additionally posts in
	// threads they moderate, admins anything. Denial surfaces as
	// ErrPostNotFound.
	UpdatePost(ctx context.Context, actor *users.User, postID int64, text string) (*Post, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	UpdateText(ctx context.Context, id int64, text string) (*Post, error)

	// ListByAuthor returns the author's posts ordered by created_at DESC
	// with id DESC breaking ties, so the ordering is total and stable.
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// ListByThreadSince returns the thread's posts created after the cutoff
	// in storage order (id ascending).
	ListByThreadSince(ctx context.Context, threadID int64, since time.Time) ([]*Post, error)
}
