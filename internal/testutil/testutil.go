// Package testutil provides shared test helpers for setting up board
// services over temporary stores.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shiian109/loungeup/internal/board"
	"github.com/shiian109/loungeup/internal/storage"
)

// FixedTime is the timestamp every TestService clock reports.
var FixedTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// TestStore creates a store over a temp file that never outlives the test.
func TestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(filepath.Join(t.TempDir(), "board.json"))
}

// TestService creates a board service over a fresh document with a pinned
// clock.
func TestService(t *testing.T) *board.Service {
	t.Helper()
	store := TestStore(t)
	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	clock := board.ClockFunc(func() time.Time { return FixedTime })
	return board.NewService(store, doc, clock, 0)
}
