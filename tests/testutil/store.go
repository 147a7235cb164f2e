package testutil

import (
	"path/filepath"
	"testing"

	"taskapi/store"
)

// NewTestStore creates a throwaway SQLite store with all migrations
// applied. The database lives in the test's temp directory and the
// store is closed when the test completes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
