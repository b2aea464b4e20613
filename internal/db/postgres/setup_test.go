package postgres

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the test database and runs migrations.
// Tests are skipped when TEST_DATABASE_URL is not set.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, goose.SetDialect("postgres"), "Failed to set goose dialect")
	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

// createTestUser inserts a user directly, bypassing the service layer
func createTestUser(t *testing.T, db *sql.DB, email, role string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(
		`INSERT INTO users (email, role) VALUES ($1, $2) RETURNING id`,
		email, role,
	).Scan(&id)
	require.NoError(t, err, "Failed to create test user")
	return id
}

// createTestThread inserts a thread directly, optionally with a moderator
func createTestThread(t *testing.T, db *sql.DB, text string, moderatorID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(
		`INSERT INTO threads (text, moderator_id) VALUES ($1, $2) RETURNING id`,
		text, moderatorID,
	).Scan(&id)
	require.NoError(t, err, "Failed to create test thread")
	return id
}

// cleanupUser removes a test user and everything hanging off it
func cleanupUser(t *testing.T, db *sql.DB, id int64) {
	t.Helper()

	// Subscriptions and posts cascade with the user
	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, id)
	require.NoError(t, err)
}

// cleanupThread removes a test thread; its posts and subscriptions cascade
func cleanupThread(t *testing.T, db *sql.DB, id int64) {
	t.Helper()

	_, err := db.Exec(`DELETE FROM threads WHERE id = $1`, id)
	require.NoError(t, err)
}
