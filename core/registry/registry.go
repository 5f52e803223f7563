package registry

import "sync"

// Registry is a global key/value store for module registration (API routes,
// cron jobs, CLI commands). Keys can be locked after init so late registration
// fails loudly instead of being silently ignored.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = &Registry{
	values: make(map[string]interface{}),
	locked: make(map[string]bool),
}

// SetGlobal stores a value for a key.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// GetGlobal returns the value for a key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Lock marks a key immutable. Registrars check IsLocked and panic on late writes.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting clears the lock on a key (tests only).
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = false
}
