package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Agora/internal/core/threads"
)

type postgresThreadRepo struct {
	db *sql.DB
}

// NewThreadRepository creates a new PostgreSQL thread repository
func NewThreadRepository(db *sql.DB) threads.Repository {
	return &postgresThreadRepo{db: db}
}

// GetByID retrieves a thread by id
func (r *postgresThreadRepo) GetByID(ctx context.Context, id int64) (*threads.Thread, error) {
	thread := &threads.Thread{}
	query := `SELECT id, text, moderator_id, created_at, updated_at FROM threads WHERE id = $1`

	var moderatorID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&thread.ID, &thread.Text, &moderatorID, &thread.CreatedAt, &thread.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, threads.ErrThreadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	if moderatorID.Valid {
		thread.ModeratorID = &moderatorID.Int64
	}

	return thread, nil
}

// List returns up to limit threads with id greater than afterID, in id
// order. Used by the digest notifier to walk the table in bounded batches.
func (r *postgresThreadRepo) List(ctx context.Context, afterID int64, limit int) ([]*threads.Thread, error) {
	query := `
		SELECT id, text, moderator_id, created_at, updated_at
		FROM threads
		WHERE id > $1
		ORDER BY id
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*threads.Thread{}
	for rows.Next() {
		thread := &threads.Thread{}
		var moderatorID sql.NullInt64

		if scanErr := rows.Scan(&thread.ID, &thread.Text, &moderatorID,
			&thread.CreatedAt, &thread.UpdatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", scanErr)
		}
		if moderatorID.Valid {
			thread.ModeratorID = &moderatorID.Int64
		}

		result = append(result, thread)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threads: %w", err)
	}

	return result, nil
}
