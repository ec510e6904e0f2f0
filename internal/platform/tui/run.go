package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/savekitty/internal/session"
)

// Run starts the room in the local terminal and blocks until the player
// quits. Music plays while the room is open; leaving schedules the reminder.
func Run(coord *session.Coordinator, width, height int) error {
	coord.AppResumed()
	defer coord.AppBackgrounded()

	p := tea.NewProgram(
		NewRoomModel(coord, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
