package session

import (
	"sort"
	"sync"
)

// Registry tracks live coordinators. Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Coordinator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[ID]*Coordinator)}
}

// Register adds a coordinator.
func (r *Registry) Register(c *Coordinator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[c.ID()] = c
}

// Unregister removes a coordinator by id.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]ID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CloseAll closes and unregisters every coordinator.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[ID]*Coordinator)
	r.mu.Unlock()

	for _, c := range all {
		c.Close()
	}
}
