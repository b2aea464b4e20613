package threads

import "context"

// Repository defines the data access interface for threads and subscriptions
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Thread, error)

	// List returns up to limit threads with id greater than afterID, in id
	// order. Keyset pagination so batch consumers (the digest notifier)
	// never load the whole table at once.
	List(ctx context.Context, afterID int64, limit int) ([]*Thread, error)

	// Subscribe inserts the subscription if absent. Creating a duplicate is
	// a no-op: the uniqueness invariant is enforced by the store, not by an
	// application-level check-then-act, so concurrent identical calls are
	// safe. A missing thread surfaces as ErrThreadNotFound.
	Subscribe(ctx context.Context, sub *Subscription) error

	// Unsubscribe deletes the subscription if present. Deleting a missing
	// row is a no-op, not an error.
	Unsubscribe(ctx context.Context, userID, threadID int64) error

	// ListSubscribers returns the current subscribers of a thread in
	// subscription order.
	ListSubscribers(ctx context.Context, threadID int64) ([]*Subscriber, error)
}

// Service defines the business logic interface for threads
type Service interface {
	GetThread(ctx context.Context, id int64) (*Thread, error)

	// Subscribe idempotently ensures the actor is subscribed to the thread.
	Subscribe(ctx context.Context, actorID, threadID int64) error

	// Unsubscribe idempotently ensures the actor is not subscribed.
	Unsubscribe(ctx context.Context, actorID, threadID int64) error
}
