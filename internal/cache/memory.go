package cache

import (
	"context"
	"sync"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

type entry struct {
	items  []activity.Activity
	expiry time.Time
}

// Memory is the in-process Store. Expiry is lazy, checked at read time and
// never swept; entry count is bounded by the number of configured sources.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// NewMemory returns a Memory store with the given TTL. A non-positive TTL
// falls back to DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]activity.Activity, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.now().After(e.expiry) {
		return nil, false
	}
	return e.items, true
}

func (m *Memory) Set(_ context.Context, key string, items []activity.Activity) {
	m.mu.Lock()
	m.entries[key] = entry{items: items, expiry: m.now().Add(m.ttl)}
	m.mu.Unlock()
}
