package handlers

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

// readCache memoises list and dashboard responses. Any successful write
// flushes it because a single mutation can change several views: a
// transaction moves a debt balance which moves the dashboard.
// A nil *readCache caches nothing.
//
// Readers capture generation() before querying and hand it back to set.
// A result computed before an invalidate carries an old generation and is
// dropped, so a slow read cannot repopulate the cache with stale data.
type readCache struct {
	c   *cache.Cache
	mu  sync.Mutex
	gen atomic.Uint64
}

func newReadCache(ttl time.Duration) *readCache {
	if ttl <= 0 {
		return nil
	}
	return &readCache{c: cache.New(ttl, 2*ttl)}
}

func cacheKey(view, userID string, parts ...any) string {
	key := view + ":" + userID
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

func (rc *readCache) get(key string) (any, bool) {
	if rc == nil {
		return nil, false
	}
	return rc.c.Get(key)
}

func (rc *readCache) generation() uint64 {
	if rc == nil {
		return 0
	}
	return rc.gen.Load()
}

func (rc *readCache) set(key string, value any, gen uint64) {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.gen.Load() != gen {
		return
	}
	rc.c.Set(key, value, cache.DefaultExpiration)
}

func (rc *readCache) invalidate() {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.gen.Add(1)
	rc.c.Flush()
}
