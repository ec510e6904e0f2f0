package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/savekitty/internal/clock"
	"github.com/vovakirdan/savekitty/internal/gamestate"
	"github.com/vovakirdan/savekitty/internal/session"
	"github.com/vovakirdan/savekitty/internal/storage"
)

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestRoom(t *testing.T, kv storage.KV, adopt bool) RoomModel {
	t.Helper()
	logger := log.New(io.Discard)
	store, err := gamestate.New(context.Background(), kv,
		gamestate.WithClock(clock.NewFake(epoch)),
		gamestate.WithLogger(logger),
		gamestate.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("gamestate.New: %v", err)
	}
	if adopt {
		if err := store.SetCatIdentity("Mochi", 0); err != nil {
			t.Fatal(err)
		}
		store.CompleteTutorial()
	}

	cfg := session.DefaultConfig()
	cfg.Logger = logger
	coord := session.New(store, session.Services{}, cfg)
	m := NewRoomModel(coord, 80, 24)
	t.Cleanup(func() {
		if m.cancelEvents != nil {
			m.cancelEvents()
		}
		coord.Close()
		_ = store.Close(context.Background())
	})
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m RoomModel, keys ...string) RoomModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		rm, ok := next.(RoomModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = rm
	}
	return m
}

func TestFirstRunSetupAndTutorial(t *testing.T) {
	m := newTestRoom(t, storage.NewMemory(), false)
	if m.currentScreen() != screenSetup {
		t.Fatalf("screen = %v, want setup", m.currentScreen())
	}

	m = press(t, m, "M", "o", "c", "x", "backspace", "h", "i", "right", "enter")
	id := m.store.Identity()
	if id.Name != "Mochi" || id.SkinID != 1 {
		t.Fatalf("identity = %+v", id)
	}
	if m.currentScreen() != screenTutorial {
		t.Fatalf("screen = %v, want tutorial", m.currentScreen())
	}

	m = press(t, m, "enter")
	if m.currentScreen() != screenRoom || !m.store.TutorialDone().Get() {
		t.Fatalf("screen = %v, tutorial done = %v", m.currentScreen(), m.store.TutorialDone().Get())
	}
	if !strings.Contains(m.View(), "Mochi is sleeping") {
		t.Fatalf("room view:\n%s", m.View())
	}
}

func TestShopBuysAndEquips(t *testing.T) {
	m := newTestRoom(t, storage.NewMemory(), true)

	m = press(t, m, "s", "enter")
	if m.currentScreen() != screenShop {
		t.Fatalf("screen = %v", m.currentScreen())
	}
	if f, b := m.store.Fish().Get(), m.store.Biscuits().Get(); f != 1 || b != 95 {
		t.Fatalf("fish=%d biscuits=%d", f, b)
	}

	// Walk down to the first decoration and buy then place it.
	idx := -1
	for i, it := range m.shop {
		if it.kind == gamestate.KindDecoration {
			idx = i
			break
		}
	}
	keys := make([]string, 0, idx+2)
	for range idx {
		keys = append(keys, "down")
	}
	keys = append(keys, "enter", "e")
	m = press(t, m, keys...)

	item := m.shop[idx].decor
	if m.store.Decorations().Get()[item.ID] != 1 {
		t.Fatalf("decoration %s not owned", item.ID)
	}
	if m.store.PlacedItems().Get()[item.Category] != item.ID {
		t.Fatalf("decoration %s not placed", item.ID)
	}

	m = press(t, m, "esc")
	if m.currentScreen() != screenRoom {
		t.Fatalf("screen = %v", m.currentScreen())
	}
}

func TestTodoScreen(t *testing.T) {
	m := newTestRoom(t, storage.NewMemory(), true)

	m = press(t, m, "t", "a", "enter")
	if len(m.store.Todos().Get()) != 0 || m.toast == "" {
		t.Fatal("blank todo was accepted")
	}

	m = press(t, m, "r", "e", "a", "d", " ", "x", "tab", "enter")
	todos := m.store.Todos().Get()
	if len(todos) != 1 || todos[0].Text != "read x" || !todos[0].Daily {
		t.Fatalf("todos = %+v", todos)
	}

	m = press(t, m, " ")
	if !m.store.Todos().Get()[0].Done {
		t.Fatal("space did not check the todo")
	}
	m = press(t, m, "d")
	if len(m.store.Todos().Get()) != 0 {
		t.Fatal("todo not deleted")
	}
}

func TestRoomTimerKeys(t *testing.T) {
	m := newTestRoom(t, storage.NewMemory(), true)

	m = press(t, m, "+")
	if got := m.store.Timer().Get().Duration; got != 30*60 {
		t.Fatalf("duration = %d", got)
	}
	m = press(t, m, " ")
	if !m.store.Timer().Get().Running() {
		t.Fatal("timer not running")
	}
	if !strings.Contains(m.View(), "focusing") {
		t.Fatalf("view:\n%s", m.View())
	}
	m = press(t, m, "-")
	if !strings.Contains(m.toast, "running") {
		t.Fatalf("toast = %q", m.toast)
	}
	m = press(t, m, " ")
	if m.store.Timer().Get().Running() {
		t.Fatal("timer not paused")
	}
}

func TestGameOverFlow(t *testing.T) {
	kv := storage.NewMemory()
	for k, v := range map[string]string{
		"health":         "0",
		"cat_name":       "Tom",
		"cat_skin":       "0",
		"is_first_run":   "false",
		"tutorial_done":  "true",
		"biscuits":       "40",
		"last_open_date": "0",
	} {
		if err := kv.Set(context.Background(), k, v); err != nil {
			t.Fatal(err)
		}
	}
	m := newTestRoom(t, kv, false)
	if m.currentScreen() != screenGameOver {
		t.Fatalf("screen = %v", m.currentScreen())
	}
	if !strings.Contains(m.View(), "Tom the orange cat") {
		t.Fatalf("view:\n%s", m.View())
	}

	m = press(t, m, "enter")
	if m.currentScreen() != screenSetup {
		t.Fatalf("screen = %v, want setup", m.currentScreen())
	}
	for _, s := range m.skins {
		if s.ID == 0 {
			t.Fatal("retired skin offered for adoption")
		}
	}
	if m.store.Biscuits().Get() != 0 || m.store.Health().Get() != 5 {
		t.Fatal("game over reset not applied")
	}

	m = press(t, m, "enter")
	if m.currentScreen() != screenRoom {
		t.Fatalf("screen = %v, want room after adopting", m.currentScreen())
	}
}

func TestQuit(t *testing.T) {
	m := newTestRoom(t, storage.NewMemory(), true)
	next, cmd := m.Update(keyMsg("q"))
	if !next.(RoomModel).IsQuitting() || cmd == nil {
		t.Fatal("q did not quit")
	}
	if next.(RoomModel).View() != "" {
		t.Fatal("quitting view not empty")
	}
}

func TestEditRunes(t *testing.T) {
	in := editRunes(nil, keyMsg("abc"), 2)
	if string(in) != "ab" {
		t.Fatalf("got %q", string(in))
	}
	in = editRunes(in, keyMsg("backspace"), 2)
	in = editRunes(in, keyMsg(" "), 2)
	if string(in) != "a " {
		t.Fatalf("got %q", string(in))
	}
}

func TestHelpers(t *testing.T) {
	if got := clockText(1500); got != "25:00" {
		t.Errorf("clockText = %q", got)
	}
	if got := hearts(5, 10); !strings.Contains(got, "♥♥♡··") {
		t.Errorf("hearts = %q", got)
	}
	if got := bar(11); got != "███" {
		t.Errorf("bar = %q", got)
	}
}

func TestStatsModel(t *testing.T) {
	empty := NewStatsModel(nil, epoch, 80, 24)
	if !strings.Contains(empty.View(), "No focus sessions yet") {
		t.Fatalf("empty view:\n%s", empty.View())
	}

	history := []gamestate.StudySession{{Timestamp: epoch.Add(-time.Hour), DurationMinutes: 25}}
	m := NewStatsModel(history, epoch, 80, 24)
	if !strings.Contains(m.View(), "Sessions: 1") {
		t.Fatalf("view:\n%s", m.View())
	}
	rows := m.rows()
	if rows[6][0] != "Today" || rows[6][1] != "25" {
		t.Fatalf("today row = %v", rows[6])
	}
}

func TestRoomSubscriptionEndsWithSession(t *testing.T) {
	m := newTestRoom(t, storage.NewMemory(), true)

	// A dropped connection closes the coordinator without the room quitting.
	m.coord.Close()

	select {
	case _, ok := <-m.events:
		if ok {
			t.Fatal("received an event instead of a closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("room still subscribed after its session closed")
	}
	if msg := waitForEvent(m.events)(); msg != nil {
		t.Fatalf("waitForEvent after close = %v, want nil", msg)
	}
}
