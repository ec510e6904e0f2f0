package session

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/clock"
	"github.com/vovakirdan/savekitty/internal/config"
	"github.com/vovakirdan/savekitty/internal/gamestate"
	"github.com/vovakirdan/savekitty/internal/storage"
)

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type recorder struct {
	mu        sync.Mutex
	sounds    []Sound
	vibes     []time.Duration
	notified  int
	scheduled []time.Duration
	cancelled int
	music     bool
	muted     bool
	notify    chan struct{}
}

func newRecorder() *recorder {
	return &recorder{notify: make(chan struct{}, 8)}
}

func (r *recorder) PlaySound(s Sound) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sounds = append(r.sounds, s)
}

func (r *recorder) PlayLoopingMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.music = true
}

func (r *recorder) StopMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.music = false
}

func (r *recorder) SetMuted(m bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.muted = m
}

func (r *recorder) Muted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.muted
}

func (r *recorder) Vibrate(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vibes = append(r.vibes, d)
}

func (r *recorder) ShowTimerCompleteNotification() {
	r.mu.Lock()
	r.notified++
	r.mu.Unlock()
	r.notify <- struct{}{}
}

func (r *recorder) ScheduleReminder(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, d)
}

func (r *recorder) CancelReminder() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled++
}

func (r *recorder) lastSound() Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sounds) == 0 {
		return ""
	}
	return r.sounds[len(r.sounds)-1]
}

func newTestCoordinator(t *testing.T, kv storage.KV, clk *clock.Fake) (*Coordinator, *recorder) {
	t.Helper()
	cfg := config.Default()
	cfg.Timer.TickInterval = 5 * time.Millisecond
	logger := log.New(io.Discard)

	store, err := gamestate.New(context.Background(), kv,
		gamestate.WithClock(clk),
		gamestate.WithConfig(cfg),
		gamestate.WithLogger(logger),
		gamestate.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("gamestate.New: %v", err)
	}

	rec := newRecorder()
	ccfg := DefaultConfig()
	ccfg.Logger = logger
	c := New(store, Services{Audio: rec, Haptics: rec, Notifier: rec}, ccfg)
	c.Start()
	t.Cleanup(func() {
		c.Close()
		_ = store.Close(context.Background())
	})
	return c, rec
}

func TestPurchasesPlayCash(t *testing.T) {
	c, rec := newTestCoordinator(t, storage.NewMemory(), clock.NewFake(epoch))

	if err := c.BuyFish(); err != nil {
		t.Fatal(err)
	}
	if got := rec.lastSound(); got != SoundCash {
		t.Fatalf("sound = %q", got)
	}

	rug, _ := catalog.DecorationByID("rug_red")
	if err := c.BuyDecoration(rug); !errors.Is(err, gamestate.ErrInsufficientFunds) {
		t.Fatalf("unaffordable rug = %v", err)
	}
	rec.mu.Lock()
	n := len(rec.sounds)
	rec.mu.Unlock()
	if n != 1 {
		t.Fatalf("failed purchase played a sound: %v", rec.sounds)
	}

	if err := c.EatFish(); err != nil {
		t.Fatal(err)
	}
	if got := rec.lastSound(); got != SoundEat {
		t.Fatalf("sound = %q", got)
	}
}

func TestTapCatPurrsWhenSleeping(t *testing.T) {
	c, rec := newTestCoordinator(t, storage.NewMemory(), clock.NewFake(epoch))

	mood, err := c.TapCat()
	if err != nil {
		t.Fatal(err)
	}
	if mood != gamestate.MoodSleep || rec.lastSound() != SoundPurr {
		t.Fatalf("mood = %v sound = %q", mood, rec.lastSound())
	}
	if len(rec.vibes) != 1 || rec.vibes[0] != 3*time.Second {
		t.Fatalf("vibes = %v", rec.vibes)
	}

	if err := c.ToggleTimer(); err != nil {
		t.Fatal(err)
	}
	if mood, _ := c.TapCat(); mood != gamestate.MoodSit || rec.lastSound() != SoundMeow {
		t.Fatalf("mood = %v sound = %q", mood, rec.lastSound())
	}
	if got := c.Store().Biscuits().Get(); got != 102 {
		t.Fatalf("biscuits = %d", got)
	}
}

func TestTimerCompletionNotifies(t *testing.T) {
	clk := clock.NewFake(epoch)
	c, rec := newTestCoordinator(t, storage.NewMemory(), clk)

	if err := c.SetTimer(1); err != nil {
		t.Fatal(err)
	}
	if err := c.ToggleTimer(); err != nil {
		t.Fatal(err)
	}
	clk.Advance(2 * time.Minute)

	select {
	case <-rec.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("no completion notification")
	}
	if got := rec.lastSound(); got != SoundLevelUp {
		t.Fatalf("sound = %q", got)
	}
}

func TestStartupCompletionIsReplayed(t *testing.T) {
	kv := storage.NewMemory()
	target := epoch.Add(-time.Minute).UnixMilli()
	if err := kv.Set(context.Background(), "timer_target_end", strconv.FormatInt(target, 10)); err != nil {
		t.Fatal(err)
	}
	_, rec := newTestCoordinator(t, kv, clock.NewFake(epoch))

	select {
	case <-rec.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("completion while closed was not replayed")
	}
}

func TestLifecycle(t *testing.T) {
	c, rec := newTestCoordinator(t, storage.NewMemory(), clock.NewFake(epoch))

	c.AppBackgrounded()
	if len(rec.scheduled) != 1 || rec.scheduled[0] != 24*time.Hour || rec.music {
		t.Fatalf("background: scheduled=%v music=%v", rec.scheduled, rec.music)
	}
	c.AppResumed()
	if rec.cancelled != 1 || !rec.music {
		t.Fatalf("resume: cancelled=%d music=%v", rec.cancelled, rec.music)
	}

	if !c.ToggleMute() || !rec.muted {
		t.Fatal("mute did not engage")
	}
	if c.ToggleMute() {
		t.Fatal("unmute failed")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c, _ := newTestCoordinator(t, storage.NewMemory(), clock.NewFake(epoch))
	c.Close()
	c.Close()
	select {
	case <-c.Done():
	default:
		t.Fatal("done not closed")
	}
}

func TestToggleAfterCompletionStartsAgain(t *testing.T) {
	clk := clock.NewFake(epoch)
	c, rec := newTestCoordinator(t, storage.NewMemory(), clk)

	if err := c.SetTimer(1); err != nil {
		t.Fatal(err)
	}
	if err := c.ToggleTimer(); err != nil {
		t.Fatal(err)
	}
	clk.Advance(2 * time.Minute)
	select {
	case <-rec.notify:
	case <-time.After(2 * time.Second):
		t.Fatal("session never completed")
	}
	if st := c.Store().Timer().Get(); st.Phase != gamestate.PhaseExpired {
		t.Fatalf("timer = %+v, want expired", st)
	}

	if err := c.ToggleTimer(); err != nil {
		t.Fatalf("toggle after completion = %v", err)
	}
	st := c.Store().Timer().Get()
	if !st.Running() || st.Remaining != 60 || !st.TargetEnd.Equal(clk.Now().Add(time.Minute)) {
		t.Fatalf("timer = %+v, want a fresh one minute run", st)
	}
}

func TestCloseEndsViewSubscriptions(t *testing.T) {
	c, _ := newTestCoordinator(t, storage.NewMemory(), clock.NewFake(epoch))

	events, cancel := c.Subscribe(4)
	defer cancel()
	c.Close()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("received an event instead of a closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("view subscription still open after Close")
	}

	late, _ := c.Subscribe(4)
	if _, ok := <-late; ok {
		t.Fatal("subscription after Close is open")
	}
}
