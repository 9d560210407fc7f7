package cache

import (
	"context"
	"sync"
	"time"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/domain/port"
)

const (
	// DefaultMaxEntries сколько разметок держит кэш одного процесса
	DefaultMaxEntries = 1024
	sweepInterval     = time.Minute
)

type memoryEntry struct {
	annotation *entity.Annotation
	expiresAt  time.Time // нулевое значение: без срока
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache in-memory кэш разметки для одного процесса.
// Устаревшие записи вычищаются при записи не реже раза в минуту,
// при переполнении вытесняется запись, которая истекает раньше всех.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
	nextSweep  time.Time
	now        func() time.Time
}

// NewMemoryCache создаёт пустой кэш на DefaultMaxEntries записей
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithLimit(DefaultMaxEntries)
}

// NewMemoryCacheWithLimit создаёт кэш с заданным пределом; maxEntries <= 0 означает DefaultMaxEntries
func NewMemoryCacheWithLimit(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get возвращает разметку, устаревшие записи удаляются
func (c *MemoryCache) Get(ctx context.Context, key string) (*entity.Annotation, bool, error) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false, nil
	}

	if entry.expired(c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	return entry.annotation, true, nil
}

// Set сохраняет разметку; ttl <= 0 означает хранение без срока
func (c *MemoryCache) Set(ctx context.Context, key string, annotation *entity.Annotation, ttl time.Duration) error {
	now := c.now()
	entry := memoryEntry{annotation: annotation}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.entries[key]
	if !now.Before(c.nextSweep) || (!exists && len(c.entries) >= c.maxEntries) {
		c.sweep(now)
	}
	if !exists && len(c.entries) >= c.maxEntries {
		c.evictSoonest()
	}
	c.entries[key] = entry

	return nil
}

// Len количество записей, включая ещё не вычищенные устаревшие
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// sweep удаляет устаревшие записи. Вызывается под c.mu.
func (c *MemoryCache) sweep(now time.Time) {
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
		}
	}
	c.nextSweep = now.Add(sweepInterval)
}

// evictSoonest вытесняет запись с ближайшим сроком; бессрочные уходят последними. Вызывается под c.mu.
func (c *MemoryCache) evictSoonest() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for key, entry := range c.entries {
		if !found || earlier(entry.expiresAt, soonest) {
			victim, soonest, found = key, entry.expiresAt, true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

// earlier сравнивает сроки, нулевой срок считается бесконечным
func earlier(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	return b.IsZero() || a.Before(b)
}

// Проверка реализации интерфейса
var _ port.ResultCache = (*MemoryCache)(nil)
