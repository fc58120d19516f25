// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     cache
// Description: Thread-safe in-memory LRU cache with TTL and hit/miss statistics
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cache

import (
	"container/list"
	"sync"
	"time"
)

// Config holds cache configuration
type Config struct {
	MaxItems        int
	TTL             time.Duration
	CleanupInterval time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems:        1000,
		TTL:             10 * time.Minute,
		CleanupInterval: time.Minute,
	}
}

// Stats is a snapshot of cache counters
type Stats struct {
	Size      int     `json:"size"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}

type item struct {
	key     string
	value   interface{}
	expires time.Time // zero: never
}

func (it *item) expired(now time.Time) bool {
	return !it.expires.IsZero() && now.After(it.expires)
}

// Cache holds at most MaxItems entries. When full, the least recently
// read or written entry makes room.
type Cache struct {
	mu    sync.Mutex
	order *list.List // front: most recently used
	index map[string]*list.Element
	max   int
	ttl   time.Duration
	now   func() time.Time

	hits, misses, evictions int64

	stop      chan struct{}
	closeOnce sync.Once
}

// New creates a cache and starts its cleanup goroutine. Close stops it.
func New(cfg Config) *Cache {
	def := DefaultConfig()
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = def.MaxItems
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}

	c := &Cache{
		order: list.New(),
		index: make(map[string]*list.Element),
		max:   cfg.MaxItems,
		ttl:   cfg.TTL,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.sweepEvery(cfg.CleanupInterval)
	return c
}

// Get returns the value stored under key. Expired entries count as misses.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if ok && el.Value.(*item).expired(c.now()) {
		c.remove(el)
		ok = false
	}
	if !ok {
		c.misses++
		return nil, false
	}

	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*item).value, true
}

// Set stores value with the configured TTL
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value for ttl; ttl <= 0 never expires
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it := &item{key: key, value: value}
	if ttl > 0 {
		it.expires = c.now().Add(ttl)
	}

	if el, ok := c.index[key]; ok {
		el.Value = it
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.max {
		c.remove(c.order.Back())
		c.evictions++
	}
	c.index[key] = c.order.PushFront(it)
}

// Clear drops every entry. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.index = make(map[string]*list.Element)
}

// Size returns the number of entries, expired ones included until swept
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the counters; HitRate is a percentage
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Size: c.order.Len(), Hits: c.hits, Misses: c.misses, Evictions: c.evictions}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.stop) })
}

// remove unlinks el; c.mu must be held
func (c *Cache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.index, el.Value.(*item).key)
}

func (c *Cache) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// sweep drops expired entries
func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*item).expired(now) {
			c.remove(el)
		}
		el = prev
	}
}
