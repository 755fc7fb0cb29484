// Package status holds session counters written by the loop and systems
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter keys shared by writers and readers
const (
	Ticks       = "engine.ticks"
	Frames      = "engine.frames"
	Lives       = "engine.lives"
	Kills       = "formation.kills"
	EnemyShots  = "formation.shots"
	PlayerShots = "player.shots"
	PlayerHits  = "player.hits"
	BunkerHits  = "bunker.hits"
)

// Registry is a set of named counters
// Writers cache the pointer from Counter once; increments are lock-free
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	r.mu.RLock()
	if ptr, ok := r.items[key]; ok {
		r.mu.RUnlock()
		return ptr
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := r.items[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	r.items[key] = ptr
	return ptr
}

// Value reads a counter without creating it
func (r *Registry) Value(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ptr, ok := r.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Range visits counters in sorted key order
func (r *Registry) Range(fn func(key string, value int64)) {
	r.mu.RLock()
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, r.Value(k))
	}
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
