package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe in-process key-value store with per-entry TTL and
// tag-based invalidation. Catalog endpoints tag entries so an import can
// flush everything derived from the catalog in one call.
type Cache struct {
	m        sync.Map
	tagIndex sync.Map // tag string -> *sync.Map of keys
}

var (
	once     sync.Once
	instance *Cache
)

func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

// Set stores a value with an optional TTL in seconds (0 = no expiry) and tags.
func (c *Cache) Set(key, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get returns (value, true) if present and not expired.
func (c *Cache) Get(key interface{}) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item, isItem := v.(cacheItem)
	if !isItem {
		return v, true
	}
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// Delete removes a key from the cache.
func (c *Cache) Delete(key interface{}) {
	c.m.Delete(key)
}

func makeCompositeKey(keys ...interface{}) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "|")
}

// SetN stores a value under a composite key.
func (c *Cache) SetN(keys []interface{}, value interface{}, ttl int64, tags []string) {
	c.Set(makeCompositeKey(keys...), value, ttl, tags)
}

// GetN retrieves a value stored under a composite key.
func (c *Cache) GetN(keys ...interface{}) (interface{}, bool) {
	return c.Get(makeCompositeKey(keys...))
}

func (c *Cache) DeleteN(keys ...interface{}) {
	c.Delete(makeCompositeKey(keys...))
}

// TagKey assigns tags to a cache key.
func (c *Cache) TagKey(key interface{}, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		km := val.(*sync.Map)
		km.Store(key, struct{}{})
	}
}

// GetKeysByTag returns all keys assigned to a tag.
func (c *Cache) GetKeysByTag(tag string) []interface{} {
	var keys []interface{}
	if val, ok := c.tagIndex.Load(tag); ok {
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			keys = append(keys, key)
			return true
		})
	}
	return keys
}

// DeleteByTag deletes all entries assigned to a tag.
func (c *Cache) DeleteByTag(tag string) {
	if val, ok := c.tagIndex.Load(tag); ok {
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			c.Delete(key)
			km.Delete(key)
			return true
		})
		c.tagIndex.Delete(tag)
	}
}
