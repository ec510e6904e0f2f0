// Package storage is the persistence layer of the game: a durable key/value
// store with typed accessors, per-key change notification and an
// asynchronous write queue.
package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/vovakirdan/savekitty/internal/observe"
)

// ErrClosed is returned by operations on a closed backend.
var ErrClosed = errors.New("storage: closed")

// KV is a string key/value store. Values are opaque encoded documents; see Key
// for typed access.
type KV interface {
	// Get returns the raw value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key and notifies watchers of key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key and notifies watchers of key.
	Delete(ctx context.Context, key string) error

	// All returns a copy of every stored pair.
	All(ctx context.Context) (map[string]string, error)

	// Watch returns a channel of changes to key and a cancel func.
	Watch(key string) (<-chan Change, func())

	// Close releases the backend.
	Close() error
}

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
}

// BatchSetter is implemented by backends that can write several keys in one
// transaction. The write queue uses it when available.
type BatchSetter interface {
	SetBatch(ctx context.Context, entries []Entry) error
}

// Change describes a committed write.
type Change struct {
	Key     string
	Value   string
	Deleted bool
	Origin  string // origin tag of the writer, see WithOrigin
}

type originKey struct{}

// WithOrigin tags writes made with ctx so that watchers can recognise their own echoes.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFrom returns the origin tag carried by ctx, or "".
func OriginFrom(ctx context.Context) string {
	origin, _ := ctx.Value(originKey{}).(string)
	return origin
}

// watchers keeps one change feed per key.
type watchers struct {
	mu    sync.Mutex
	feeds map[string]*observe.Feed[Change]
}

func (w *watchers) watch(key string) (<-chan Change, func()) {
	w.mu.Lock()
	if w.feeds == nil {
		w.feeds = make(map[string]*observe.Feed[Change])
	}
	feed, ok := w.feeds[key]
	if !ok {
		feed = observe.NewFeed[Change]()
		w.feeds[key] = feed
	}
	w.mu.Unlock()
	return feed.Subscribe(observe.DefaultBuffer)
}

func (w *watchers) notify(c Change) {
	w.mu.Lock()
	feed := w.feeds[c.Key]
	w.mu.Unlock()
	if feed != nil {
		feed.Publish(c)
	}
}
