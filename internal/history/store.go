// Package history keeps completed test results: a small bounded archive per
// user plus the derived summary/statistics views the display layer consumes.
package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mindtype/mindtype/internal/mbti"
)

// DefaultLimit caps how many results are retained per user; older entries
// are dropped when a new one arrives.
const DefaultLimit = 5

// ErrNoResults is returned when a user has no stored results.
var ErrNoResults = errors.New("no results")

// Store archives results per user in insertion order, newest last,
// evicting the oldest beyond the limit.
type Store interface {
	Save(ctx context.Context, userID string, r mbti.Result) error
	// List returns the user's retained results, newest first.
	List(ctx context.Context, userID string) ([]mbti.Result, error)
	// Latest returns the most recently saved result.
	Latest(ctx context.Context, userID string) (mbti.Result, error)
	// Import merges external results, dropping (typeCode, testDate)
	// duplicates, and reports how many new entries were kept.
	Import(ctx context.Context, userID string, results []mbti.Result) (int, error)
	Purge(ctx context.Context, userID string) error
}

type memoryStore struct {
	mu      sync.RWMutex
	limit   int
	byUser  map[string][]mbti.Result
}

// NewInMemoryStore returns a Store backed by process memory. limit <= 0
// means DefaultLimit.
func NewInMemoryStore(limit int) Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &memoryStore{limit: limit, byUser: map[string][]mbti.Result{}}
}

func (m *memoryStore) Save(_ context.Context, userID string, r mbti.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := append(m.byUser[userID], r)
	if len(list) > m.limit {
		list = list[len(list)-m.limit:]
	}
	m.byUser[userID] = list
	return nil
}

func (m *memoryStore) List(_ context.Context, userID string) ([]mbti.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.byUser[userID]
	out := make([]mbti.Result, len(list))
	for i, r := range list {
		out[len(list)-1-i] = r
	}
	return out, nil
}

func (m *memoryStore) Latest(_ context.Context, userID string) (mbti.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.byUser[userID]
	if len(list) == 0 {
		return mbti.Result{}, ErrNoResults
	}
	return list[len(list)-1], nil
}

func (m *memoryStore) Import(_ context.Context, userID string, results []mbti.Result) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.byUser[userID]
	before := len(list)
	merged := Dedupe(append(list, results...))
	if len(merged) > m.limit {
		merged = merged[len(merged)-m.limit:]
	}
	m.byUser[userID] = merged
	added := len(merged) - before
	if added < 0 {
		added = 0
	}
	return added, nil
}

func (m *memoryStore) Purge(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
	return nil
}

// Dedupe drops results repeating an earlier (typeCode, testDate) pair,
// keeping first occurrences in order.
func Dedupe(results []mbti.Result) []mbti.Result {
	seen := make(map[string]bool, len(results))
	out := make([]mbti.Result, 0, len(results))
	for _, r := range results {
		k := r.TypeCode + "|" + r.TestDate.UTC().Format(time.RFC3339Nano)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
