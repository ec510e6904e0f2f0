// Package observe provides observable values and event feeds.
// Readers never block writers: every subscriber owns a buffered channel and
// the oldest pending item is dropped when a slow subscriber falls behind.
package observe

import "sync"

// DefaultBuffer is the subscriber buffer used when a caller passes < 1.
const DefaultBuffer = 16

// Reader is the read-only view of a Value handed to presentation code.
type Reader[T any] interface {
	// Get returns the latest committed value.
	Get() T

	// Subscribe returns a channel that receives every subsequent value and a
	// cancel func that closes it. Safe to call cancel multiple times.
	Subscribe(buffer int) (<-chan T, func())
}

// hub fans items out to subscribers without blocking the publisher.
type hub[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func (h *hub[T]) subscribe(buffer int) (<-chan T, func()) {
	if buffer < 1 {
		buffer = DefaultBuffer
	}
	ch := make(chan T, buffer)

	h.mu.Lock()
	if h.subs == nil {
		h.subs = make(map[int]chan T)
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *hub[T]) publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		send(ch, v)
	}
}

func (h *hub[T]) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// send delivers v, dropping the oldest buffered item if the channel is full.
func send[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// Value is a single observable field. Set is reserved for the owning store;
// everyone else should hold it as a Reader.
type Value[T any] struct {
	mu  sync.RWMutex
	val T
	hub hub[T]
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{val: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set replaces the value and notifies subscribers.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.val = val
	v.mu.Unlock()
	v.hub.publish(val)
}

// Subscribe implements Reader.
func (v *Value[T]) Subscribe(buffer int) (<-chan T, func()) {
	return v.hub.subscribe(buffer)
}

// Subscribers reports how many subscriptions are open.
func (v *Value[T]) Subscribers() int {
	return v.hub.count()
}

// Feed is a stream of discrete events with no current value.
type Feed[T any] struct {
	hub hub[T]
}

// NewFeed creates an empty Feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{}
}

// Publish sends ev to every subscriber.
func (f *Feed[T]) Publish(ev T) {
	f.hub.publish(ev)
}

// Subscribe returns a channel of future events and its cancel func.
func (f *Feed[T]) Subscribe(buffer int) (<-chan T, func()) {
	return f.hub.subscribe(buffer)
}

// Subscribers reports how many subscriptions are open.
func (f *Feed[T]) Subscribers() int {
	return f.hub.count()
}
