package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Control the focus timer",
	Long: `The timer keeps running while the app is closed. Finishing a session earns
biscuits and is recorded in your statistics.

Examples:
  savekitty timer set 25
  savekitty timer start
  savekitty timer status`,
}

var timerSetCmd = &cobra.Command{
	Use:   "set <minutes>",
	Short: "Choose the session length",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid minutes %q", args[0])
		}
		return runGame(func(g *game) error {
			if err := g.coordinator().SetTimer(minutes); err != nil {
				return err
			}
			printTimer(g.store.Timer().Get())
			return nil
		})
	},
}

var timerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or resume the countdown",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			if err := g.coordinator().StartTimer(); err != nil {
				return err
			}
			printTimer(g.store.Timer().Get())
			return nil
		})
	},
}

var timerPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the countdown",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			if err := g.store.PauseTimer(); err != nil {
				return err
			}
			printTimer(g.store.Timer().Get())
			return nil
		})
	},
}

var timerResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rewind to the selected length",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			if err := g.coordinator().ResetTimer(); err != nil {
				return err
			}
			printTimer(g.store.Timer().Get())
			return nil
		})
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			printTimer(g.store.Timer().Get())
			return nil
		})
	},
}

func init() {
	timerCmd.AddCommand(timerSetCmd)
	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerPauseCmd)
	timerCmd.AddCommand(timerResetCmd)
	timerCmd.AddCommand(timerStatusCmd)
}
