package session

import (
	"context"
	"maps"
	"time"

	"gatehouse/internal/domain/service"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	data      map[string]string
	expiresAt time.Time
}

// memoryStore keeps sessions in a bounded LRU. The least recently used
// session is evicted once capacity is reached.
type memoryStore struct {
	cache *lru.LRU[string, memoryEntry]
	now   func() time.Time
}

// NewMemoryStore creates an in-process session store. maxTTL bounds how long
// any entry is kept; Save may ask for less.
func NewMemoryStore(capacity int, maxTTL time.Duration) service.SessionStore {
	return newMemoryStore(capacity, maxTTL, time.Now)
}

func newMemoryStore(capacity int, maxTTL time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		cache: lru.NewLRU[string, memoryEntry](capacity, nil, maxTTL),
		now:   now,
	}
}

func (m *memoryStore) Load(ctx context.Context, id string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := m.cache.Get(id)
	if !ok {
		return nil, service.ErrSessionNotFound
	}

	if !m.now().Before(entry.expiresAt) {
		m.cache.Remove(id)

		return nil, service.ErrSessionNotFound
	}

	return maps.Clone(entry.data), nil
}

func (m *memoryStore) Save(ctx context.Context, id string, data map[string]string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		m.cache.Remove(id)

		return nil
	}

	m.cache.Add(id, memoryEntry{data: maps.Clone(data), expiresAt: m.now().Add(ttl)})

	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)

	return nil
}
