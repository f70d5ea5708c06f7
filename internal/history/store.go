// Package history keeps the most recent mood classifications of a session.
package history

import (
	"slices"
	"sync"

	"github.com/justestif/go-music-vibe-assistant/internal/mood"
)

// DefaultLimit is the number of results a Store keeps.
const DefaultLimit = 10

// Store is an in-memory, newest-first list of classification results
// bounded to a fixed number of entries.
type Store struct {
	mu      sync.RWMutex
	limit   int
	results []mood.Result
}

// New creates an empty Store keeping at most limit results.
// A non-positive limit means DefaultLimit.
func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit:   limit,
		results: make([]mood.Result, 0, limit),
	}
}

// Append inserts r at the front, evicting the oldest entries beyond the limit.
func (s *Store) Append(r mood.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = slices.Insert(s.results, 0, r)
	if len(s.results) > s.limit {
		clear(s.results[s.limit:])
		s.results = s.results[:s.limit]
	}
}

// Clear removes all results.
func (s *Store) Clear() {
	s.mu.Lock()
	clear(s.results)
	s.results = s.results[:0]
	s.mu.Unlock()
}

// SelectByID returns the result with the given ID.
func (s *Store) SelectByID(id string) (mood.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.results, func(r mood.Result) bool {
		return r.ID == id
	})
	if i < 0 {
		return mood.Result{}, false
	}
	return s.results[i], true
}

// List returns a copy of the results, newest first.
func (s *Store) List() []mood.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.results)
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Limit returns the maximum number of results kept.
func (s *Store) Limit() int {
	return s.limit
}
