package threads

import (
	"context"
	"errors"
	"fmt"
)

type threadService struct {
	repo Repository
}

// NewThreadService creates a new thread service
func NewThreadService(repo Repository) Service {
	return &threadService{repo: repo}
}

// GetThread retrieves a thread by id
func (s *threadService) GetThread(ctx context.Context, id int64) (*Thread, error) {
	if id <= 0 {
		return nil, ErrThreadNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Subscribe ensures a subscription exists for (actor, thread). Subscribing
// twice leaves exactly one row; the repository's conflict handling makes the
// duplicate a no-op rather than an error.
func (s *threadService) Subscribe(ctx context.Context, actorID, threadID int64) error {
	if threadID <= 0 {
		return ErrThreadNotFound
	}

	sub := &Subscription{
		UserID:   actorID,
		ThreadID: threadID,
	}
	if err := s.repo.Subscribe(ctx, sub); err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			return err
		}
		return fmt.Errorf("failed to subscribe user %d to thread %d: %w", actorID, threadID, err)
	}
	return nil
}

// Unsubscribe ensures no subscription exists for (actor, thread). The thread
// must exist; removing a non-existent subscription is a no-op.
func (s *threadService) Unsubscribe(ctx context.Context, actorID, threadID int64) error {
	// A delete of zero rows can't distinguish "never subscribed" from
	// "thread doesn't exist", so check the thread first.
	if _, err := s.GetThread(ctx, threadID); err != nil {
		return err
	}

	if err := s.repo.Unsubscribe(ctx, actorID, threadID); err != nil {
		return fmt.Errorf("failed to unsubscribe user %d from thread %d: %w", actorID, threadID, err)
	}
	return nil
}
