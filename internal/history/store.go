// Package history records the command lines evaluated by interpreter
// sessions.
package history

import (
	"context"
	"time"
)

// Entry is one evaluated command line
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Line      string    `json:"line"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Query selects history entries
type Query struct {
	SessionID string // Only entries of this session; all sessions if empty
	Limit     int    // Newest N entries; all if <= 0
}

// Store defines the interface for history persistence
type Store interface {
	// Add records an entry and assigns its ID
	Add(ctx context.Context, entry *Entry) error

	// Recent returns the newest entries matching q, oldest first
	Recent(ctx context.Context, q Query) ([]*Entry, error)

	// Count returns the number of entries of a session, or of all sessions
	// if sessionID is empty
	Count(ctx context.Context, sessionID string) (int64, error)

	// Prune keeps only the newest keep entries and returns how many were
	// removed
	Prune(ctx context.Context, keep int) (int64, error)

	// Close releases the store
	Close() error
}

// Record adds the outcome of evaluating line to store
func Record(ctx context.Context, store Store, sessionID, line string, evalErr error) error {
	if store == nil {
		return nil
	}
	entry := &Entry{
		SessionID: sessionID,
		Line:      line,
		OK:        evalErr == nil,
	}
	if evalErr != nil {
		entry.Error = evalErr.Error()
	}
	return store.Add(ctx, entry)
}
