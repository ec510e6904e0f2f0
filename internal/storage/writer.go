package storage

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// WriterConfig holds configuration for the write queue.
type WriterConfig struct {
	// Origin tags every write so watchers can skip their own echoes.
	// Generated when empty.
	Origin string

	// WriteTimeout bounds a single batch write.
	WriteTimeout time.Duration

	// Logger receives write failures. Defaults to the charm default logger.
	Logger *log.Logger
}

// DefaultWriterConfig returns sensible defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		WriteTimeout: 5 * time.Second,
	}
}

// Writer is the asynchronous, fire-and-forget write queue between the game
// state and a KV backend. A single goroutine drains it, so writes to the same
// key are never reordered; pending writes to one key coalesce to the latest
// value. Failed writes are logged and dropped.
type Writer struct {
	kv     KV
	config WriterConfig
	logger *log.Logger

	mu      sync.Mutex
	pending map[string]string
	order   []string
	writing bool
	closed  bool
	waiters []chan struct{}

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
}

// NewWriter creates a write queue over kv and starts its goroutine.
func NewWriter(kv KV, cfg WriterConfig) *Writer {
	if cfg.Origin == "" {
		cfg.Origin = fmt.Sprintf("writer-%d-%d", os.Getpid(), time.Now().UnixNano())
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriterConfig().WriteTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := &Writer{
		kv:      kv,
		config:  cfg,
		logger:  logger,
		pending: make(map[string]string),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

// Origin returns the origin tag attached to this writer's writes.
func (w *Writer) Origin() string {
	return w.config.Origin
}

// Enqueue schedules value to be written under key. It never blocks on I/O.
func (w *Writer) Enqueue(key, value string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Debug("write dropped after close", "key", key)
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.pending[key] = value
	w.mu.Unlock()

	w.signal()
}

// Flush blocks until every write enqueued before the call has been attempted.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	if len(w.pending) == 0 && !w.writing {
		w.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	w.waiters = append(w.waiters, ch)
	w.mu.Unlock()

	w.signal()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("storage: flush: %w", ctx.Err())
	}
}

// Close flushes outstanding writes and stops the goroutine.
// Safe to call multiple times.
func (w *Writer) Close(ctx context.Context) error {
	err := w.Flush(ctx)

	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.done)
	})

	select {
	case <-w.stopped:
	case <-ctx.Done():
		if err == nil {
			err = fmt.Errorf("storage: close: %w", ctx.Err())
		}
	}
	return err
}

func (w *Writer) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) run() {
	defer close(w.stopped)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.done:
			w.drain()
			return
		}
	}
}

// drain writes everything pending at the time of the call as one batch.
func (w *Writer) drain() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.releaseWaitersLocked()
		w.mu.Unlock()
		return
	}
	batch := make([]Entry, 0, len(w.order))
	for _, k := range w.order {
		batch = append(batch, Entry{Key: k, Value: w.pending[k]})
	}
	w.pending = make(map[string]string)
	w.order = nil
	w.writing = true
	w.mu.Unlock()

	w.write(batch)

	w.mu.Lock()
	w.writing = false
	if len(w.pending) > 0 {
		w.mu.Unlock()
		w.signal()
		return
	}
	w.releaseWaitersLocked()
	w.mu.Unlock()
}

func (w *Writer) releaseWaitersLocked() {
	for _, ch := range w.waiters {
		close(ch)
	}
	w.waiters = nil
}

func (w *Writer) write(batch []Entry) {
	ctx, cancel := context.WithTimeout(WithOrigin(context.Background(), w.config.Origin), w.config.WriteTimeout)
	defer cancel()

	if bs, ok := w.kv.(BatchSetter); ok {
		if err := bs.SetBatch(ctx, batch); err != nil {
			w.logger.Warn("save failed", "keys", len(batch), "error", err)
		}
		return
	}

	for _, e := range batch {
		if err := w.kv.Set(ctx, e.Key, e.Value); err != nil {
			w.logger.Warn("save failed", "key", e.Key, "error", err)
		}
	}
}
