package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/savekitty/internal/gamestate"
)

var flagDaily bool

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the to-do list",
	Long: `Keep a checklist next to your cat. Daily items are unchecked again on the
first open of each day.

Examples:
  savekitty todo add "water the plants" --daily
  savekitty todo list
  savekitty todo done 2
  savekitty todo rm 2`,
}

var todoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add an item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			item, err := g.coordinator().AddTodo(strings.Join(args, " "), flagDaily)
			if err != nil {
				return err
			}
			fmt.Printf("Added: %s\n", item.Text)
			return nil
		})
	},
}

var todoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List items",
	Args:    cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(func(g *game) error {
			printTodos(g.store.Todos().Get())
			return nil
		})
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <n>",
	Short: "Check or uncheck an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			item, err := todoAt(g, args[0])
			if err != nil {
				return err
			}
			return g.coordinator().ToggleTodo(item.ID)
		})
	},
}

var todoRmCmd = &cobra.Command{
	Use:     "rm <n>",
	Aliases: []string{"delete"},
	Short:   "Delete an item",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			item, err := todoAt(g, args[0])
			if err != nil {
				return err
			}
			if err := g.coordinator().DeleteTodo(item.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted: %s\n", item.Text)
			return nil
		})
	},
}

func init() {
	todoAddCmd.Flags().BoolVar(&flagDaily, "daily", false, "Uncheck this item every day")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRmCmd)
}

// todoAt resolves a 1-based position from 'todo list'.
func todoAt(g *game, arg string) (gamestate.TodoItem, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return gamestate.TodoItem{}, fmt.Errorf("invalid item number %q", arg)
	}
	list := g.store.Todos().Get()
	if n < 1 || n > len(list) {
		return gamestate.TodoItem{}, fmt.Errorf("no item %d (list has %d)", n, len(list))
	}
	return list[n-1], nil
}

func printTodos(list []gamestate.TodoItem) {
	if len(list) == 0 {
		fmt.Println("Nothing to do yet.")
		return
	}
	for i, item := range list {
		mark := " "
		if item.Done {
			mark = "x"
		}
		daily := ""
		if item.Daily {
			daily = " (daily)"
		}
		fmt.Printf("  %2d. [%s] %s%s\n", i+1, mark, item.Text, daily)
	}
}
