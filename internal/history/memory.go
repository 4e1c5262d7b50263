package history

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store for sessions that do not persist
// history
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
	nextID  int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make([]*Entry, 0),
		nextID:  1,
	}
}

// Add records an entry
func (s *MemoryStore) Add(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.SessionID == "" {
		return fmt.Errorf("session ID is required")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	entry.ID = s.nextID
	s.nextID++

	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

// Recent returns the newest entries matching q, oldest first
func (s *MemoryStore) Recent(ctx context.Context, q Query) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Entry
	for i := len(s.entries) - 1; i >= 0; i-- {
		if q.Limit > 0 && len(results) >= q.Limit {
			break
		}
		entry := s.entries[i]
		if q.SessionID != "" && entry.SessionID != q.SessionID {
			continue
		}
		copied := *entry
		results = append(results, &copied)
	}

	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

// Count returns the number of entries
func (s *MemoryStore) Count(ctx context.Context, sessionID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sessionID == "" {
		return int64(len(s.entries)), nil
	}

	var count int64
	for _, entry := range s.entries {
		if entry.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}

// Prune keeps only the newest keep entries
func (s *MemoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if len(s.entries) <= keep {
		return 0, nil
	}

	deleted := len(s.entries) - keep
	s.entries = append([]*Entry(nil), s.entries[deleted:]...)
	return int64(deleted), nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
