package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var adoptCmd = &cobra.Command{
	Use:   "adopt <name> <skin>",
	Short: "Adopt a cat",
	Long: `Name your cat and pick its look. Cats you have lost cannot be adopted again.

Run 'savekitty status' with no cat to see the available skins.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		skin, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid skin %q", args[1])
		}
		return runGame(func(g *game) error {
			if err := g.coordinator().Adopt(args[0], skin); err != nil {
				return err
			}
			id := g.store.Identity()
			fmt.Printf("Welcome home, %s!\n", id.Name)
			return nil
		})
	},
}

var rehomeCmd = &cobra.Command{
	Use:   "rehome",
	Short: "Say goodbye to the current cat",
	Long: `Ends the current cat's story. Its skin is retired and the next
'savekitty adopt' brings a new cat home. Biscuits, fish and pantry food are
lost; the room and statistics are kept.

A cat that is still alive is only rehomed with --force.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			if g.store.Health().Get() > 0 && !g.store.FirstRun().Get() && !flagForce {
				return errors.New("your cat is still alive (use --force to rehome anyway)")
			}
			name := g.store.Identity().Name
			g.coordinator().Rehome()
			fmt.Printf("Goodbye, %s.\n", name)
			fmt.Println()
			printSkins(g.store.Deceased().Get())
			return nil
		})
	},
}

var flagForce bool

func init() {
	rehomeCmd.Flags().BoolVar(&flagForce, "force", false, "Rehome a living cat")
}

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Mark the tutorial as seen",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			if g.store.FirstRun().Get() {
				return errors.New("adopt a cat first")
			}
			g.coordinator().CompleteTutorial()
			return nil
		})
	},
}
