package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestPost inserts a post with an explicit created_at so ordering and
// window tests control the clock
func createTestPost(t *testing.T, db *sql.DB, authorID, threadID int64, text string, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(
		`INSERT INTO posts (author_id, thread_id, text, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		authorID, threadID, text, createdAt,
	).Scan(&id)
	require.NoError(t, err, "Failed to create test post")
	return id
}

func TestPostRepo_ListByAuthor_Ordering(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "ordering-author@test.agora", "member")
	defer cleanupUser(t, db, authorID)
	threadID := createTestThread(t, db, "ordering thread", nil)
	defer cleanupThread(t, db, threadID)

	repo := NewPostRepository(db)
	ctx := context.Background()

	older := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)

	oldID := createTestPost(t, db, authorID, threadID, "oldest", older)
	// Identical timestamps: the id tie-break must keep the order total
	tieLowID := createTestPost(t, db, authorID, threadID, "tie low id", newer)
	tieHighID := createTestPost(t, db, authorID, threadID, "tie high id", newer)

	listed, err := repo.ListByAuthor(ctx, authorID)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Newest first; within the tie, higher id first
	assert.Equal(t, tieHighID, listed[0].ID)
	assert.Equal(t, tieLowID, listed[1].ID)
	assert.Equal(t, oldID, listed[2].ID)
}

func TestPostRepo_ListByAuthor_OnlyOwnPosts(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "own-author@test.agora", "member")
	defer cleanupUser(t, db, authorID)
	otherID := createTestUser(t, db, "other-author@test.agora", "member")
	defer cleanupUser(t, db, otherID)
	threadID := createTestThread(t, db, "shared thread", nil)
	defer cleanupThread(t, db, threadID)

	now := time.Now().UTC()
	mine := createTestPost(t, db, authorID, threadID, "mine", now)
	createTestPost(t, db, otherID, threadID, "theirs", now)

	listed, err := NewPostRepository(db).ListByAuthor(context.Background(), authorID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, mine, listed[0].ID)
}

func TestPostRepo_ListByThreadSince_Window(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "window-author@test.agora", "member")
	defer cleanupUser(t, db, authorID)
	threadID := createTestThread(t, db, "window thread", nil)
	defer cleanupThread(t, db, threadID)

	cutoff := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	createTestPost(t, db, authorID, threadID, "before cutoff", cutoff.Add(-time.Hour))
	// Exactly at the cutoff: the comparison is strict, so this stays out
	createTestPost(t, db, authorID, threadID, "at cutoff", cutoff)
	firstInID := createTestPost(t, db, authorID, threadID, "first inside", cutoff.Add(time.Hour))
	secondInID := createTestPost(t, db, authorID, threadID, "second inside", cutoff.Add(2*time.Hour))

	listed, err := NewPostRepository(db).ListByThreadSince(context.Background(), threadID, cutoff)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Storage order: id ascending
	assert.Equal(t, firstInID, listed[0].ID)
	assert.Equal(t, "first inside", listed[0].Text)
	assert.Equal(t, secondInID, listed[1].ID)
	assert.Equal(t, "second inside", listed[1].Text)
}

func TestPostRepo_ListByThreadSince_OtherThreadsExcluded(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "crossthread-author@test.agora", "member")
	defer cleanupUser(t, db, authorID)
	threadID := createTestThread(t, db, "watched thread", nil)
	defer cleanupThread(t, db, threadID)
	otherThreadID := createTestThread(t, db, "other thread", nil)
	defer cleanupThread(t, db, otherThreadID)

	now := time.Now().UTC()
	wanted := createTestPost(t, db, authorID, threadID, "in watched thread", now)
	createTestPost(t, db, authorID, otherThreadID, "in other thread", now)

	listed, err := NewPostRepository(db).ListByThreadSince(
		context.Background(), threadID, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, wanted, listed[0].ID)
}
