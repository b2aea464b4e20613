package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Agora/internal/core/threads"
)

// Subscribe inserts a subscription record. The conflict clause against the
// (user_id, thread_id) unique index makes the duplicate a no-op that still
// returns the existing row, all in one statement, so concurrent identical
// calls can never create two rows and never race a separate lookup. The
// no-op DO UPDATE leaves subscribed_at untouched.
func (r *postgresThreadRepo) Subscribe(ctx context.Context, sub *threads.Subscription) error {
	query := `
		INSERT INTO thread_subscriptions (user_id, thread_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, thread_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, subscribed_at`

	err := r.db.QueryRowContext(ctx, query, sub.UserID, sub.ThreadID).
		Scan(&sub.ID, &sub.SubscribedAt)

	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			if strings.Contains(err.Error(), "thread_subscriptions_thread_id_fkey") {
				return threads.ErrThreadNotFound
			}
			return fmt.Errorf("subscription references missing user: %w", err)
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// Unsubscribe removes a subscription record. Zero rows deleted means the
// subscription didn't exist, which is the idempotent no-op, not an error.
func (r *postgresThreadRepo) Unsubscribe(ctx context.Context, userID, threadID int64) error {
	query := `DELETE FROM thread_subscriptions WHERE user_id = $1 AND thread_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, threadID); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}

// ListSubscribers retrieves the current subscribers of a thread with their
// delivery addresses, oldest subscription first.
func (r *postgresThreadRepo) ListSubscribers(ctx context.Context, threadID int64) ([]*threads.Subscriber, error) {
	query := `
		SELECT u.id, u.email
		FROM thread_subscriptions s
		JOIN users u ON u.id = s.user_id
		WHERE s.thread_id = $1
		ORDER BY s.subscribed_at, s.id`

	rows, err := r.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*threads.Subscriber{}
	for rows.Next() {
		sub := &threads.Subscriber{}
		if scanErr := rows.Scan(&sub.UserID, &sub.Email); scanErr != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", scanErr)
		}
		result = append(result, sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}

	return result, nil
}
