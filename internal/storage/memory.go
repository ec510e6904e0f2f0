package storage

import (
	"context"
	"maps"
	"sync"
)

// Memory is a process-local KV. It backs tests and the degraded mode used when
// the database cannot be opened: the game keeps working but nothing survives
// the process.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]string
	closed   bool
	watchers watchers
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.data[key] = value
	m.mu.Unlock()

	m.watchers.notify(Change{Key: key, Value: value, Origin: OriginFrom(ctx)})
	return nil
}

// Delete implements KV.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	delete(m.data, key)
	m.mu.Unlock()

	m.watchers.notify(Change{Key: key, Deleted: true, Origin: OriginFrom(ctx)})
	return nil
}

// All implements KV.
func (m *Memory) All(_ context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	return maps.Clone(m.data), nil
}

// Watch implements KV.
func (m *Memory) Watch(key string) (<-chan Change, func()) {
	return m.watchers.watch(key)
}

// Close implements KV.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
