package digest

import (
	"context"
	"time"

	"Agora/internal/core/posts"
	"Agora/internal/core/threads"
)

// ThreadSource supplies the threads to scan and their current subscribers.
// Satisfied by the postgres thread repository.
type ThreadSource interface {
	List(ctx context.Context, afterID int64, limit int) ([]*threads.Thread, error)
	ListSubscribers(ctx context.Context, threadID int64) ([]*threads.Subscriber, error)
}

// PostSource supplies the posts created inside the digest window.
// Satisfied by the postgres post repository.
type PostSource interface {
	ListByThreadSince(ctx context.Context, threadID int64, since time.Time) ([]*posts.Post, error)
}

// Sender is the outbound email sink. Delivery guarantees, retries included,
// are the sink's concern; the notifier treats a returned error as final for
// this run.
type Sender interface {
	Send(ctx context.Context, address, body string) error
}
