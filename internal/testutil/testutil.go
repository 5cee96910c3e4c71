// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"excuses/internal/db"
)

// DatabaseURL returns TEST_DATABASE_URL or skips the test when it is unset.
func DatabaseURL(t *testing.T) string {
	t.Helper()
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}
	return connString
}

// TestDB connects to the test database, applies migrations and empties the
// key-value table before and after the test.
func TestDB(t *testing.T) *db.DB {
	t.Helper()
	connString := DatabaseURL(t)

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	CleanKV(t, database)
	t.Cleanup(func() {
		CleanKV(t, database)
		database.Close()
	})
	return database
}

// CleanKV removes every row from the key-value table.
func CleanKV(t *testing.T, database *db.DB) {
	t.Helper()
	if _, err := database.Pool.Exec(context.Background(), "DELETE FROM kv_store"); err != nil {
		t.Fatalf("failed to clean kv_store: %v", err)
	}
}
