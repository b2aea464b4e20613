package threads

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing
type mockRepository struct {
	getByIDFunc     func(ctx context.Context, id int64) (*Thread, error)
	subscribeFunc   func(ctx context.Context, sub *Subscription) error
	unsubscribeFunc func(ctx context.Context, userID, threadID int64) error
	unsubscribes    int
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*Thread, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &Thread{ID: id}, nil
}

func (m *mockRepository) List(ctx context.Context, afterID int64, limit int) ([]*Thread, error) {
	return []*Thread{}, nil
}

func (m *mockRepository) Subscribe(ctx context.Context, sub *Subscription) error {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, sub)
	}
	return nil
}

func (m *mockRepository) Unsubscribe(ctx context.Context, userID, threadID int64) error {
	m.unsubscribes++
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, userID, threadID)
	}
	return nil
}

func (m *mockRepository) ListSubscribers(ctx context.Context, threadID int64) ([]*Subscriber, error) {
	return []*Subscriber{}, nil
}

func TestSubscribe(t *testing.T) {
	var captured *Subscription
	repo := &mockRepository{
		subscribeFunc: func(ctx context.Context, sub *Subscription) error {
			captured = sub
			return nil
		},
	}
	service := NewThreadService(repo)

	require.NoError(t, service.Subscribe(context.Background(), 1, 10))
	require.NotNil(t, captured)
	assert.Equal(t, int64(1), captured.UserID)
	assert.Equal(t, int64(10), captured.ThreadID)

	// Subscribing again is a no-op, not an error: the repository absorbs
	// the duplicate and the service surfaces success both times
	assert.NoError(t, service.Subscribe(context.Background(), 1, 10))
}

func TestSubscribe_ThreadNotFound(t *testing.T) {
	repo := &mockRepository{
		subscribeFunc: func(ctx context.Context, sub *Subscription) error {
			return ErrThreadNotFound
		},
	}
	service := NewThreadService(repo)

	err := service.Subscribe(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestSubscribe_WrappedThreadNotFound(t *testing.T) {
	// The repository may wrap the sentinel; the service must still surface
	// it unmangled
	repo := &mockRepository{
		subscribeFunc: func(ctx context.Context, sub *Subscription) error {
			return fmt.Errorf("insert failed: %w", ErrThreadNotFound)
		},
	}
	service := NewThreadService(repo)

	err := service.Subscribe(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestSubscribe_InvalidThreadID(t *testing.T) {
	service := NewThreadService(&mockRepository{})

	assert.ErrorIs(t, service.Subscribe(context.Background(), 1, 0), ErrThreadNotFound)
	assert.ErrorIs(t, service.Subscribe(context.Background(), 1, -5), ErrThreadNotFound)
}

func TestUnsubscribe_NoOpWhenNotSubscribed(t *testing.T) {
	// Repository reports nothing deleted; still a success for the caller
	repo := &mockRepository{}
	service := NewThreadService(repo)

	assert.NoError(t, service.Unsubscribe(context.Background(), 1, 10))
	assert.Equal(t, 1, repo.unsubscribes)
}

func TestUnsubscribe_ThreadNotFound(t *testing.T) {
	repo := &mockRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*Thread, error) {
			return nil, ErrThreadNotFound
		},
	}
	service := NewThreadService(repo)

	err := service.Unsubscribe(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrThreadNotFound)
	assert.Equal(t, 0, repo.unsubscribes, "must not attempt delete for a missing thread")
}
