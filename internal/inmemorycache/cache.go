package inmemorycache

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value      V
	ttl        time.Duration
	expiration time.Time
}

type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(key string)
}

// InMemoryCache keeps values for a sliding TTL: every successful Get pushes the
// expiration forward by the TTL the value was stored with.
type InMemoryCache[V any] struct {
	cache           map[string]cacheEntry[V]
	mutex           sync.Mutex
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryCacheProvider[V any](cleanupInterval time.Duration) *InMemoryCache[V] {
	provider := &InMemoryCache[V]{
		cache:           make(map[string]cacheEntry[V]),
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache[V]) Get(key string) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var zero V

	entry, exists := m.cache[key]
	if !exists {
		return zero, false
	}

	now := time.Now()
	if now.After(entry.expiration) {
		delete(m.cache, key)
		return zero, false
	}

	entry.expiration = now.Add(entry.ttl)
	m.cache[key] = entry

	return entry.value, true
}

func (m *InMemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[key] = cacheEntry[V]{
		value:      value,
		ttl:        ttl,
		expiration: time.Now().Add(ttl),
	}
}

func (m *InMemoryCache[V]) Delete(key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.cache, key)
}

func (m *InMemoryCache[V]) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}

// Stop ends the background cleanup. It is safe to call more than once.
func (m *InMemoryCache[V]) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *InMemoryCache[V]) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
