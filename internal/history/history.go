// Package history keeps the generated values of the current session in
// memory. The store is caller-owned: the CLI entry point constructs one
// and threads it through, so nothing here is a package-level singleton.
package history

import (
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

const DefaultLimit = 10

// Store is a bounded, in-memory list of history entries. Oldest entries
// are evicted first once the limit is reached. It is only ever touched
// by the single control thread, so there is no locking.
type Store struct {
	limit   int
	entries []model.HistoryEntry
}

// NewStore creates a store keeping at most limit entries.
// Non-positive limits fall back to DefaultLimit.
func NewStore(limit int) *Store {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Add records a generated value with the current timestamp.
func (s *Store) Add(value string, kind model.EntryKind) {
	s.entries = append(s.entries, model.HistoryEntry{
		Value:     value,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (s *Store) Entries() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries are currently held.
func (s *Store) Len() int {
	return len(s.entries)
}

// Limit reports the maximum number of entries the store keeps.
func (s *Store) Limit() int {
	return s.limit
}
