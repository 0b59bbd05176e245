// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// SnapshotVersion is the current schema version of the persisted snapshot.
const SnapshotVersion = 1

// Profile holds the dashboard owner's profile data.
type Profile struct {
	ID          string
	Name        string
	Email       string
	Preferences map[string]any
}

// Snapshot is the full application state persisted as one unit. It is the
// canonical copy of all entities; the in-memory state is a cache reconciled
// with it on load and the sole writer back to it.
type Snapshot struct {
	Version      int
	LastUpdated  time.Time
	LastBackup   time.Time
	Transactions []*Transaction
	Goals        []*Goal
	Profile      Profile
	Settings     map[string]any
}

// NewDefaultSnapshot returns the snapshot persisted on first load: current
// schema version, empty collections, empty profile and settings.
func NewDefaultSnapshot() *Snapshot {
	return &Snapshot{
		Version:      SnapshotVersion,
		LastUpdated:  time.Now().UTC(),
		Transactions: []*Transaction{},
		Goals:        []*Goal{},
		Profile:      Profile{Preferences: map[string]any{}},
		Settings:     map[string]any{},
	}
}
