package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	// Second close is a no-op.
	if err := store.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
	if store.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", store.Path(), dbPath)
	}
}

func TestStoreSetGet(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "biscuits"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Set(ctx, "biscuits", "100"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(ctx, "biscuits", "95"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(ctx, "biscuits")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "95" {
		t.Errorf("expected last write 95, got %q", v)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "save.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(ctx, "health", "7"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "health")
	if err != nil || !ok || v != "7" {
		t.Errorf("after reopen Get() = %q, %v, %v", v, ok, err)
	}
}

func TestStoreDeleteAndAll(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	store.Set(ctx, "a", "1")
	store.Set(ctx, "b", "2")
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	if len(all) != 1 || all["b"] != "2" {
		t.Errorf("All() = %v, want only b=2", all)
	}
}

func TestStoreSetBatch(t *testing.T) {
	store := openTemp(t)
	ctx := WithOrigin(context.Background(), "batch")

	ch, cancel := store.Watch("fish")
	defer cancel()

	err := store.SetBatch(ctx, []Entry{
		{Key: "biscuits", Value: "95"},
		{Key: "fish", Value: "1"},
	})
	if err != nil {
		t.Fatalf("SetBatch() failed: %v", err)
	}

	all, _ := store.All(ctx)
	if all["biscuits"] != "95" || all["fish"] != "1" {
		t.Errorf("batch not committed: %v", all)
	}

	select {
	case c := <-ch:
		if c.Value != "1" || c.Origin != "batch" {
			t.Errorf("unexpected change %+v", c)
		}
	case <-time.After(time.Second):
		t.Fatal("expected change notification for fish")
	}
}

func TestStoreWatch(t *testing.T) {
	store := openTemp(t)
	ctx := WithOrigin(context.Background(), "tester")

	ch, cancel := store.Watch("health")
	defer cancel()

	store.Set(ctx, "biscuits", "1") // different key, no notification
	store.Set(ctx, "health", "4")
	store.Delete(ctx, "health")

	first := <-ch
	if first.Key != "health" || first.Value != "4" || first.Origin != "tester" || first.Deleted {
		t.Errorf("unexpected first change %+v", first)
	}
	second := <-ch
	if !second.Deleted {
		t.Errorf("expected delete notification, got %+v", second)
	}

	select {
	case extra := <-ch:
		t.Errorf("unexpected extra change %+v", extra)
	default:
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.savekitty/save.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	want := filepath.Join(home, ".savekitty", "save.db")
	if got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
