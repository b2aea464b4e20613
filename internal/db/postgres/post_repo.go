package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"Agora/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `id, author_id, thread_id, text, is_deleted, created_at, updated_at`

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row scanner) (*posts.Post, error) {
	post := &posts.Post{}
	err := row.Scan(&post.ID, &post.AuthorID, &post.ThreadID, &post.Text,
		&post.IsDeleted, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Create inserts a new post. A missing thread surfaces as the foreign key
// violation and is mapped to the domain error.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, thread_id, text)
		VALUES ($1, $2, $3)
		RETURNING ` + postColumns

	created, err := scanPost(r.db.QueryRowContext(ctx, query, post.AuthorID, post.ThreadID, post.Text))
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			if strings.Contains(err.Error(), "posts_thread_id_fkey") {
				return nil, posts.ErrThreadNotFound
			}
			return nil, fmt.Errorf("post references missing author: %w", err)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// UpdateText replaces a post's text. Author and thread are immutable and
// never touched here.
func (r *postgresPostRepo) UpdateText(ctx context.Context, id int64, text string) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET text = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, text))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// ListByAuthor retrieves an author's posts newest first. The id tie-break
// makes the ordering total, so two posts created in the same instant always
// come back in the same order.
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC`

	return r.list(ctx, query, authorID)
}

// ListByThreadSince retrieves a thread's posts created after the cutoff, in
// storage order (id ascending). This is the digest window query.
func (r *postgresPostRepo) ListByThreadSince(ctx context.Context, threadID int64, since time.Time) ([]*posts.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE thread_id = $1 AND created_at > $2
		ORDER BY id`

	return r.list(ctx, query, threadID, since)
}

func (r *postgresPostRepo) list(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Printf("Failed to close rows: %v", closeErr)
		}
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan post: %w", scanErr)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}
