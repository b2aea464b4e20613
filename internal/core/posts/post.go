package posts

import (
	"time"
)

// MaxTextLength is the upper bound on post text in characters, matching the
// column limit.
const MaxTextLength = 10000

// Post represents a single post inside a thread. Author and thread are set
// at creation and never change. IsDeleted is stored but read by nothing:
// soft-deleted posts still appear in listings and digests until product
// intent says otherwise.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Text      string    `json:"text" db:"text"`
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	ThreadID  int64     `json:"threadId" db:"thread_id"`
	IsDeleted bool      `json:"isDeleted" db:"is_deleted"`
}

// CreatePostRequest represents the input for creating a post. AuthorID is
// accepted on the wire but the service always overwrites it with the
// authenticated actor, so a client cannot author a post as someone else.
type CreatePostRequest struct {
	Text     string `json:"text"`
	ThreadID int64  `json:"threadId"`
	AuthorID int64  `json:"authorId,omitempty"`
}
