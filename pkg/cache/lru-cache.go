package cache

import (
	"container/list"
	"sync"
	"time"

	"go.uber.org/zap"
)

const cleanupInterval = 3 * time.Second

// LRUCache evicts the least recently accessed item once it is full.
// Each Get moves the item to the most recently used position.
type LRUCache[V any] struct {
	cacheData  map[string]*list.Element
	list       *list.List
	maxSize    int
	defaultTtl time.Duration
	mu         sync.Mutex
	stopOnce   sync.Once
	stopChan   chan struct{}
}

type lruItem[V any] struct {
	key  string
	data CacheData[V]
}

var _ Cache[struct{}] = (*LRUCache[struct{}])(nil)

// NewLRUCache creates a cache holding at most maxSize items and starts its
// cleanup goroutine. A maxSize below 1 is raised to 1.
func NewLRUCache[V any](maxSize int, defaultTtl time.Duration) *LRUCache[V] {
	if maxSize < 1 {
		maxSize = 1
	}

	cache := &LRUCache[V]{
		cacheData:  make(map[string]*list.Element),
		list:       list.New(),
		maxSize:    maxSize,
		defaultTtl: defaultTtl,
		stopChan:   make(chan struct{}),
	}

	go cache.cleanupExpiredKeys()

	return cache
}

func (c *LRUCache[V]) cleanupExpiredKeys() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := c.removeExpired(time.Now()); n > 0 {
				zap.L().Debug("Cleaned up expired LRU cache entries", zap.Int("count", n))
			}
		case <-c.stopChan:
			return
		}
	}
}

func (c *LRUCache[V]) removeExpired(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiredCount := 0
	for e := c.list.Front(); e != nil; {
		next := e.Next()
		item := e.Value.(*lruItem[V])
		if item.data.expired(now) {
			c.list.Remove(e)
			delete(c.cacheData, item.key)
			expiredCount++
		}
		e = next
	}
	return expiredCount
}

// Stop is safe to call more than once.
func (c *LRUCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTtl)
}

func (c *LRUCache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timeout := time.Now().Add(ttl)

	if element, exists := c.cacheData[key]; exists {
		item := element.Value.(*lruItem[V])
		item.data = CacheData[V]{Value: value, Timeout: timeout}
		c.list.MoveToBack(element)
		return
	}

	if c.list.Len() >= c.maxSize {
		if oldest := c.list.Front(); oldest != nil {
			oldestItem := oldest.Value.(*lruItem[V])
			c.list.Remove(oldest)
			delete(c.cacheData, oldestItem.key)
			zap.L().Debug("LRU cache evicted least recently used item")
		}
	}

	item := &lruItem[V]{
		key:  key,
		data: CacheData[V]{Value: value, Timeout: timeout},
	}
	c.cacheData[key] = c.list.PushBack(item)
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	element, exists := c.cacheData[key]
	if !exists {
		return zero, false
	}

	item := element.Value.(*lruItem[V])
	if item.data.expired(time.Now()) {
		c.list.Remove(element)
		delete(c.cacheData, key)
		return zero, false
	}

	c.list.MoveToBack(element)
	return item.data.Value, true
}

func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, exists := c.cacheData[key]; exists {
		c.list.Remove(element)
		delete(c.cacheData, key)
	}
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

func (c *LRUCache[V]) MaxSize() int {
	return c.maxSize
}

func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Init()
	c.cacheData = make(map[string]*list.Element)
}
