package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/savekitty/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the room in this terminal",
	Long: `Open your cat's room.

Controls:
  Space      - Start/pause the focus timer
  +/-        - Longer/shorter session
  P          - Pet the cat
  F          - Feed a fish
  S          - Shop
  T          - To-do list
  I          - Statistics
  M          - Mute
  ?          - Help
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return withGame(func(g *game) error {
		coord := g.coordinator()
		coord.Start()
		defer coord.Close()

		return tui.Run(coord, width, height)
	})
}
