package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// ContentStore is an in-memory key value store for editor drafts and
// open editing sessions. Entries expire so abandoned drafts do not pile
// up between deploys.
type ContentStore struct {
	cache *cache.Cache

	mu        sync.RWMutex
	listeners []func(key string, value interface{})
}

func NewContentStore() *ContentStore {
	// Drafts live for a day; expired items are purged every 10 minutes.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &ContentStore{
		cache: c,
	}
}

func (s *ContentStore) Set(key string, value interface{}) {
	s.cache.Set(key, value, cache.DefaultExpiration)
	s.notify(key, value)
}

func (s *ContentStore) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	s.cache.Set(key, value, ttl)
	s.notify(key, value)
}

func (s *ContentStore) Get(key string) (interface{}, bool) {
	return s.cache.Get(key)
}

func (s *ContentStore) Delete(key string) {
	s.cache.Delete(key)
	s.notify(key, nil)
}

func (s *ContentStore) Keys() []string {
	items := s.cache.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	return keys
}

// OnChange registers a listener invoked after every Set or Delete. A
// Delete is reported with a nil value.
func (s *ContentStore) OnChange(fn func(key string, value interface{})) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *ContentStore) notify(key string, value interface{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.listeners {
		fn(key, value)
	}
}
