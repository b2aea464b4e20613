package threads

import (
	"time"
)

// Thread represents a discussion thread. The moderator is a weak reference:
// at most one moderator at a time, and the store clears the reference when
// the referenced user is removed (ON DELETE SET NULL), so it never dangles.
type Thread struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	ModeratorID *int64    `json:"moderatorId,omitempty" db:"moderator_id"`
	Text        string    `json:"text" db:"text"`
	ID          int64     `json:"id" db:"id"`
}

// Subscription is the join row between a user and a thread. Its existence is
// the sole source of truth for "this user is notified about this thread";
// the store enforces at most one row per (user, thread) pair.
type Subscription struct {
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	ThreadID     int64     `json:"threadId" db:"thread_id"`
}

// Subscriber is the delivery-facing view of a subscription: just enough to
// address a digest email.
type Subscriber struct {
	Email  string `json:"email" db:"email"`
	UserID int64  `json:"userId" db:"user_id"`
}
