// Package cache provides the bounded LRU of previously produced excuses,
// optionally mirrored to a durable key-value store.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"excuses/internal/validation"
)

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 50

// DefaultStoreKey is the single key the snapshot is stored under.
const DefaultStoreKey = "excuseCache"

// ErrStore wraps failures of the durable store. They are logged, never returned.
var ErrStore = errors.New("cache store failure")

// Store is a durable key-value store. Get returns nil, nil for a missing key.
// gofiber storage drivers satisfy it.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Snapshot is the persisted form of the cache.
type Snapshot struct {
	Items map[string]string `json:"items"`
	Keys  []string          `json:"keys"`
}

// LRU is a bounded map from normalized situation to excuse.
type LRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]string
	keys     []string // most recently used first

	store    Store
	storeKey string
	loaded   bool
}

// Option configures an LRU.
type Option func(*LRU)

// WithStore mirrors the cache to a durable store.
func WithStore(s Store) Option {
	return func(c *LRU) {
		c.store = s
	}
}

// WithStoreKey overrides the key the snapshot is stored under.
func WithStoreKey(key string) Option {
	return func(c *LRU) {
		if key != "" {
			c.storeKey = key
		}
	}
}

// New creates an LRU holding at most capacity entries.
func New(capacity int, opts ...Option) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &LRU{
		capacity: capacity,
		items:    make(map[string]string, capacity),
		storeKey: DefaultStoreKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the excuse stored for a situation and marks it most recently used.
// On the first miss against an empty cache the durable snapshot is loaded.
// Put does the same before its first write.
func (c *LRU) Get(situation string) (string, bool) {
	key := validation.NormalizeSituation(situation)

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.items[key]
	if !ok && c.ensureLoaded() {
		value, ok = c.items[key]
	}
	if !ok {
		return "", false
	}

	c.touch(key)
	return value, true
}

// Acceptable reports whether an excuse may be cached. Empty values and
// values containing the literal substrings "error" or "sorry" are refused.
func Acceptable(excuse string) bool {
	return excuse != "" && !strings.Contains(excuse, "error") && !strings.Contains(excuse, "sorry")
}

// Put stores an excuse for a situation, evicting the least recently used
// entry when a new key would exceed capacity. Returns false when refused.
func (c *LRU) Put(situation, excuse string) bool {
	if !Acceptable(excuse) {
		return false
	}
	key := validation.NormalizeSituation(situation)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Merge the durable snapshot first so the save below does not drop it.
	c.ensureLoaded()

	if _, ok := c.items[key]; ok {
		c.items[key] = excuse
		c.touch(key)
	} else {
		if len(c.keys) >= c.capacity {
			oldest := c.keys[len(c.keys)-1]
			c.keys = c.keys[:len(c.keys)-1]
			delete(c.items, oldest)
		}
		c.items[key] = excuse
		c.keys = slices.Insert(c.keys, 0, key)
	}

	c.save()
	return true
}

// Clear empties the cache and its durable snapshot.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]string, c.capacity)
	c.keys = nil
	c.loaded = true

	if c.store == nil {
		return
	}
	if err := c.store.Delete(c.storeKey); err != nil {
		slog.Warn("failed to clear cache snapshot", "key", c.storeKey, "error", fmt.Errorf("%w: %v", ErrStore, err))
	}
}

// Len returns the number of cached entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the maximum number of entries.
func (c *LRU) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys, most recently used first.
func (c *LRU) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.keys)
}

// touch moves key to the front of the recency order. Caller holds mu.
func (c *LRU) touch(key string) {
	if i := slices.Index(c.keys, key); i > 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
		c.keys = slices.Insert(c.keys, 0, key)
	}
}

// ensureLoaded loads the durable snapshot once, while the cache is still
// empty. Reports whether a load was attempted. Caller holds mu.
func (c *LRU) ensureLoaded() bool {
	if c.loaded || len(c.items) > 0 {
		return false
	}
	c.load()
	return true
}

// load restores the durable snapshot. Caller holds mu.
func (c *LRU) load() {
	c.loaded = true
	if c.store == nil {
		return
	}

	data, err := c.store.Get(c.storeKey)
	if err != nil {
		slog.Warn("failed to load cache snapshot", "key", c.storeKey, "error", fmt.Errorf("%w: %v", ErrStore, err))
		return
	}
	if len(data) == 0 {
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("discarding unreadable cache snapshot", "key", c.storeKey, "error", err)
		return
	}

	for _, key := range snap.Keys {
		if len(c.keys) >= c.capacity {
			break
		}
		value, ok := snap.Items[key]
		if !ok || slices.Contains(c.keys, key) {
			continue
		}
		c.items[key] = value
		c.keys = append(c.keys, key)
	}
	slog.Debug("loaded cache snapshot", "key", c.storeKey, "entries", len(c.keys))
}

// save writes the current state to the durable store. Caller holds mu.
func (c *LRU) save() {
	if c.store == nil {
		return
	}

	data, err := json.Marshal(Snapshot{Items: c.items, Keys: c.keys})
	if err != nil {
		slog.Warn("failed to encode cache snapshot", "error", err)
		return
	}
	if err := c.store.Set(c.storeKey, data, 0); err != nil {
		slog.Warn("failed to save cache snapshot", "key", c.storeKey, "error", fmt.Errorf("%w: %v", ErrStore, err))
	}
}
