package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIntKeyDefaults(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	k := IntKey("biscuits", 100)

	v, err := k.Read(ctx, kv)
	if err != nil || v != 100 {
		t.Fatalf("missing key: got %d, %v; want default 100", v, err)
	}

	kv.Set(ctx, "biscuits", "")
	if v, _ := k.Read(ctx, kv); v != 100 {
		t.Errorf("empty value: got %d, want default 100", v)
	}

	kv.Set(ctx, "biscuits", "lots")
	v, err = k.Read(ctx, kv)
	if v != 100 {
		t.Errorf("corrupt value: got %d, want default 100", v)
	}
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("corrupt value: expected ErrCorrupt, got %v", err)
	}

	put(t, kv, k, 42)
	if v, _ := k.Read(ctx, kv); v != 42 {
		t.Errorf("after write: got %d, want 42", v)
	}
}

func TestBoolAndStringKeys(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	first := BoolKey("is_first_run", true)
	if v, _ := first.Read(ctx, kv); !v {
		t.Error("expected default true")
	}
	put(t, kv, first, false)
	if v, _ := first.Read(ctx, kv); v {
		t.Error("expected false after write")
	}

	name := StringKey("cat_name", "Kitty")
	if v, _ := name.Read(ctx, kv); v != "Kitty" {
		t.Errorf("expected default Kitty, got %q", v)
	}
	put(t, kv, name, "Mochi")
	if v, _ := name.Read(ctx, kv); v != "Mochi" {
		t.Errorf("expected Mochi, got %q", v)
	}
}

func TestInstantKey(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	k := InstantKey("timer_target_end")

	v, _ := k.Read(ctx, kv)
	if !v.IsZero() {
		t.Fatalf("expected zero time by default, got %v", v)
	}

	at := time.Date(2025, 3, 1, 9, 30, 0, 123_000_000, time.UTC)
	put(t, kv, k, at)
	raw, _, _ := kv.Get(ctx, "timer_target_end")
	if raw != "1740821400123" {
		t.Errorf("expected unix millis, got %q", raw)
	}
	got, _ := k.Read(ctx, kv)
	if !got.Equal(at) {
		t.Errorf("round trip: got %v want %v", got, at)
	}

	// Zero time is stored as the 0 sentinel.
	put(t, kv, k, time.Time{})
	raw, _, _ = kv.Get(ctx, "timer_target_end")
	if raw != "0" {
		t.Errorf("expected 0 sentinel, got %q", raw)
	}
	if got, _ := k.Read(ctx, kv); !got.IsZero() {
		t.Errorf("expected zero time from sentinel, got %v", got)
	}
}

func TestJSONKeyMissingAndNull(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	k := JSONKey[map[string]int]("food_inventory")

	v, err := k.Read(ctx, kv)
	if err != nil || len(v) != 0 {
		t.Fatalf("missing: got %v, %v", v, err)
	}

	kv.Set(ctx, "food_inventory", "null")
	if v, err := k.Read(ctx, kv); err != nil || len(v) != 0 {
		t.Errorf("null: got %v, %v", v, err)
	}

	kv.Set(ctx, "food_inventory", "{broken")
	if v, err := k.Read(ctx, kv); !errors.Is(err, ErrCorrupt) || len(v) != 0 {
		t.Errorf("broken: got %v, %v", v, err)
	}

	put(t, kv, k, map[string]int{"fish": 2})
	v, _ = k.Read(ctx, kv)
	if v["fish"] != 2 {
		t.Errorf("expected fish=2, got %v", v)
	}
}

func TestMemoryClosed(t *testing.T) {
	kv := NewMemory()
	kv.Close()
	ctx := context.Background()

	if err := kv.Set(ctx, "a", "1"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after close: expected ErrClosed, got %v", err)
	}
	if _, _, err := kv.Get(ctx, "a"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after close: expected ErrClosed, got %v", err)
	}
}

func put[T any](t *testing.T, kv KV, k Key[T], v T) {
	t.Helper()
	raw, err := k.Encode(v)
	if err != nil {
		t.Fatalf("Encode(%s): %v", k.Name, err)
	}
	if err := kv.Set(context.Background(), k.Name, raw); err != nil {
		t.Fatalf("Set(%s): %v", k.Name, err)
	}
}
