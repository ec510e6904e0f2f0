package gamestate

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/savekitty/internal/clock"
	"github.com/vovakirdan/savekitty/internal/storage"
)

func TestDecay(t *testing.T) {
	const interval = 6 * time.Hour
	tests := []struct {
		name       string
		last       time.Time
		now        time.Time
		health     int
		wantHealth int
		wantAnchor time.Time
		wantMoved  bool
	}{
		{
			name: "first run anchors", now: epoch, health: 5,
			wantHealth: 5, wantAnchor: epoch, wantMoved: true,
		},
		{
			name: "clock went backwards", last: epoch, now: epoch.Add(-time.Hour), health: 5,
			wantHealth: 5, wantAnchor: epoch.Add(-time.Hour), wantMoved: true,
		},
		{
			name: "under one interval", last: epoch, now: epoch.Add(5*time.Hour + 59*time.Minute), health: 5,
			wantHealth: 5, wantAnchor: epoch,
		},
		{
			name: "one interval", last: epoch, now: epoch.Add(interval), health: 5,
			wantHealth: 4, wantAnchor: epoch.Add(interval), wantMoved: true,
		},
		{
			name: "partial interval carries", last: epoch, now: epoch.Add(13 * time.Hour), health: 5,
			wantHealth: 3, wantAnchor: epoch.Add(12 * time.Hour), wantMoved: true,
		},
		{
			name: "clamps at zero", last: epoch, now: epoch.Add(100 * time.Hour), health: 5,
			wantHealth: 0, wantAnchor: epoch.Add(96 * time.Hour), wantMoved: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decay(tt.last, tt.now, tt.health, interval)
			if got.Health != tt.wantHealth || !got.Anchor.Equal(tt.wantAnchor) || got.AnchorChanged != tt.wantMoved {
				t.Fatalf("Decay = %+v, want health %d anchor %v moved %v", got, tt.wantHealth, tt.wantAnchor, tt.wantMoved)
			}
		})
	}
}

func TestDecayIsIdempotent(t *testing.T) {
	const interval = 6 * time.Hour
	now := epoch.Add(13 * time.Hour)

	first := Decay(epoch, now, 5, interval)
	second := Decay(first.Anchor, now, first.Health, interval)
	if second.Health != first.Health || second.AnchorChanged {
		t.Fatalf("second application = %+v", second)
	}

	// The carried hour counts toward the next interval.
	later := Decay(first.Anchor, epoch.Add(18*time.Hour), first.Health, interval)
	if later.Health != 2 {
		t.Fatalf("accumulated health = %d, want 2", later.Health)
	}
}

func TestStoreAppliesDecayOnStart(t *testing.T) {
	kv := storage.NewMemory()
	seed(t, kv, map[string]string{
		keyHealth:         "5",
		keyLastHealthTime: ms(epoch),
	})
	s := newTestStore(t, kv, clock.NewFake(epoch.Add(13*time.Hour)))

	if got := s.Health().Get(); got != 3 {
		t.Fatalf("health = %d, want 3", got)
	}
	if got := stored(t, s, keyLastHealthTime); got != ms(epoch.Add(12*time.Hour)) {
		t.Fatalf("anchor = %q", got)
	}
	if got := stored(t, s, keyHealth); got != "3" {
		t.Fatalf("stored health = %q", got)
	}
	if evs := s.DrainStartupEvents(); len(evs) != 0 {
		t.Fatalf("unexpected events %v", evs)
	}
}

func TestStoreDecayDepletesHealth(t *testing.T) {
	kv := storage.NewMemory()
	seed(t, kv, map[string]string{
		keyHealth:         "1",
		keyLastHealthTime: ms(epoch),
	})
	s := newTestStore(t, kv, clock.NewFake(epoch.Add(7*time.Hour)))

	if got := s.Health().Get(); got != 0 {
		t.Fatalf("health = %d", got)
	}
	if s.Mood() != MoodHungry {
		t.Fatalf("mood = %v", s.Mood())
	}
	evs := s.DrainStartupEvents()
	if len(evs) != 1 {
		t.Fatalf("events = %v", evs)
	}
	if _, ok := evs[0].(HealthDepleted); !ok {
		t.Fatalf("event = %T", evs[0])
	}
	// Decay never retires the cat on its own.
	if s.CatSkin().Get() != 0 {
		t.Fatal("decay triggered game over")
	}
}

func TestStoreDecaySurvivesRestarts(t *testing.T) {
	kv := storage.NewMemory()
	seed(t, kv, map[string]string{
		keyHealth:         "5",
		keyLastHealthTime: ms(epoch),
	})

	launch := func(at time.Duration) (health int, anchor string) {
		t.Helper()
		s := newTestStore(t, kv, clock.NewFake(epoch.Add(at)))
		health = s.Health().Get()
		if err := s.Close(context.Background()); err != nil {
			t.Fatalf("Close: %v", err)
		}
		v, _, err := kv.Get(context.Background(), keyLastHealthTime)
		if err != nil {
			t.Fatalf("Get anchor: %v", err)
		}
		return health, v
	}

	if h, a := launch(13 * time.Hour); h != 3 || a != ms(epoch.Add(12*time.Hour)) {
		t.Fatalf("first launch: health=%d anchor=%s", h, a)
	}
	// An hour later nothing is due; the carried hour must not be lost.
	if h, a := launch(14 * time.Hour); h != 3 || a != ms(epoch.Add(12*time.Hour)) {
		t.Fatalf("second launch: health=%d anchor=%s", h, a)
	}
	if h, a := launch(18 * time.Hour); h != 2 || a != ms(epoch.Add(18*time.Hour)) {
		t.Fatalf("third launch: health=%d anchor=%s", h, a)
	}
	if got, _, _ := kv.Get(context.Background(), keyHealth); got != "2" {
		t.Fatalf("stored health = %q", got)
	}
}
