// Package tui is the terminal presentation of savekitty: a Bubble Tea room
// model over a session coordinator, and a Wish SSH server that hands each
// connection its own room over one shared game state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/savekitty/internal/gamestate"
)

// uiTickInterval is how often the room refreshes from the store. The timer
// itself runs in the store.
const uiTickInterval = 250 * time.Millisecond

// TickMsg is sent to trigger a view refresh.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// eventMsg carries one store event into the update loop.
type eventMsg struct {
	ev gamestate.Event
}

// waitForEvent blocks for the next store event. It yields nothing once the
// subscription is cancelled.
func waitForEvent(ch <-chan gamestate.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg{ev: ev}
	}
}
