package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/emogo/internal/record"
)

// createTestStore creates a new initialized store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDraft creates a mood-only draft with the given date and mood.
func createTestDraft(date, mood string) record.Draft {
	return record.Draft{
		Date: date,
		Mood: record.String(mood),
	}
}

// mustInsert inserts d and fails the test on error.
func mustInsert(t *testing.T, s *Store, d record.Draft) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), d)
	if err != nil {
		t.Fatalf("Insert() failed: %v", err)
	}
	return id
}
