package testsupport

import (
	"context"
	"testing"

	"mojifix/internal/config"
	"mojifix/internal/journal"
)

// MustOpenJournal opens the journal configured in cfg and registers cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// ListEntries returns up to limit journal entries, newest first.
func ListEntries(t testing.TB, store *journal.Store, limit int) []journal.Entry {
	t.Helper()

	entries, err := store.List(context.Background(), limit)
	if err != nil {
		t.Fatalf("store.List: %v", err)
	}
	return entries
}
