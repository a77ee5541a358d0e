// Package testutil provides shared test utilities for the classification engine.
package testutil

import (
	"context"
	"testing"

	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/service"
	"github.com/C0DE-Z/Drone-Part-Picker-sub000/internal/storage"
)

// SetupTestDB creates a migrated in-memory catalog index with automatic
// cleanup.
func SetupTestDB(t *testing.T) service.Storage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedListings inserts the given catalog rows, failing the test on error.
func SeedListings(t *testing.T, store service.Storage, listings ...service.StoredListing) {
	t.Helper()

	ctx := context.Background()
	for i := range listings {
		if err := store.UpsertListing(ctx, &listings[i]); err != nil {
			t.Fatalf("failed to seed listing %s: %v", listings[i].ID, err)
		}
	}
}
