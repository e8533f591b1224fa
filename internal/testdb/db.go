//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mdhasanali39/taskQuest-server/internal/ciutil"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestDatabaseURLEnv names the variable holding the test database URL.
const TestDatabaseURLEnv = ciutil.EnvTestDBURL

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests, or "" when none is
// configured.
func GetTestDatabaseURL() string {
	return ciutil.GetTestDatabaseURL(nil)
}

// GetTestDBWithT returns a migrated database connection for testing.
// It skips the test if TASKQUEST_TEST_DB_URL is not set.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip(TestDatabaseURLEnv + " not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 4*TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL, TestTimeout)
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})
	return db
}

// CleanupDB properly closes a database connection, logging any errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
