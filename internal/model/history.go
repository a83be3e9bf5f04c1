package model

import "time"

// EntryKind distinguishes what kind of value a history entry holds.
type EntryKind string

const (
	KindPassword   EntryKind = "password"
	KindPassphrase EntryKind = "passphrase"
)

// HistoryEntry records one generated value for the current session.
// History is never written to disk; it dies with the process.
type HistoryEntry struct {
	Value     string    `json:"value"`
	Kind      EntryKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
