// savekitty is a study-timer pet game for the terminal: focus with the timer,
// earn biscuits, and keep your cat fed.
//
// Usage:
//
//	savekitty play                  - Open the room in this terminal
//	savekitty serve                 - Serve the room over SSH
//	savekitty status                - Show the cat, wallet and timer
//	savekitty catalog               - List everything the shop sells
//	savekitty buy fish|food|decor   - Buy from the shop
//	savekitty eat fish|<food>       - Feed the cat
//	savekitty equip|unequip         - Arrange the room
//	savekitty todo add|list|done|rm - Manage the to-do list
//	savekitty timer set|start|...   - Control the focus timer
//	savekitty stats                 - Show focus statistics
//	savekitty adopt|rehome          - Adopt a cat or give it up
//	savekitty export                - Print the raw save file as YAML
//	savekitty reset --yes           - Erase the save file
//
// Global flags:
//
//	--db <path>      - Set save file path (default: ~/.savekitty/save.db)
//	--config <path>  - Load game tuning from a YAML file
//	--verbose        - Log debug output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "savekitty",
	Short: "Save Kitty - a focus timer with a cat to look after",
	Long: `Save Kitty is a study companion: run focus sessions to earn biscuits,
spend them on food and furniture, and keep your cat healthy.

Your cat gets hungry while you are away. Every command opens the save file,
catches up on the time that passed, and saves again before exiting.

Examples:
  savekitty play
  savekitty timer set 25 && savekitty timer start
  savekitty buy fish && savekitty eat fish
  savekitty todo add "read chapter 3" --daily
  savekitty serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(eatCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(unequipCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(adoptCmd)
	rootCmd.AddCommand(rehomeCmd)
	rootCmd.AddCommand(tutorialCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
