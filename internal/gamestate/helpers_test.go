package gamestate

import (
	"context"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/savekitty/internal/clock"
	"github.com/vovakirdan/savekitty/internal/config"
	"github.com/vovakirdan/savekitty/internal/storage"
)

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Timer.TickInterval = 5 * time.Millisecond
	return cfg
}

func newTestStore(t *testing.T, kv storage.KV, clk clock.Clock, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithClock(clk),
		WithLogger(log.New(io.Discard)),
		WithConfig(testConfig()),
		WithLocation(time.UTC),
	}
	s, err := New(context.Background(), kv, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func seed(t *testing.T, kv storage.KV, pairs map[string]string) {
	t.Helper()
	for k, v := range pairs {
		if err := kv.Set(context.Background(), k, v); err != nil {
			t.Fatalf("seed %s: %v", k, err)
		}
	}
}

func ms(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func stored(t *testing.T, s *Store, key string) string {
	t.Helper()
	ctx := context.Background()
	if err := s.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	v, _, err := s.kv.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get %s: %v", key, err)
	}
	return v
}

// waitEvent returns the first event of type E, or fails after a timeout.
func waitEvent[E Event](t *testing.T, ch <-chan Event) E {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if e, ok := ev.(E); ok {
				return e
			}
		case <-timeout:
			var zero E
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}
