package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/gamestate"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cat, wallet and timer",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(runStatus)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List everything the shop sells",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		printCatalog()
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus statistics",
	Long:  `Shows total focus sessions, total minutes, and minutes per day for the last week.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runGame(runStats)
	},
}

func runStatus(g *game) error {
	snap := g.store.Snapshot()
	cfg := g.cfg

	switch {
	case snap.Health <= 0:
		fmt.Println("Your cat has passed away.")
		fmt.Println("Run 'savekitty rehome' to give a new cat a home.")
		return nil
	case snap.FirstRun:
		fmt.Println("No cat lives here yet.")
		fmt.Println("Run 'savekitty adopt <name> <skin>' to adopt one.")
		fmt.Println()
		printSkins(snap.Deceased)
		return nil
	}

	fmt.Printf("%s (%s) is %s\n", snap.Cat.Name, skinLabel(snap.Cat.SkinID), snap.Mood)
	fmt.Printf("  Health:   %d/%d\n", snap.Health, cfg.Cat.MaxHealth)
	fmt.Printf("  Biscuits: %d\n", snap.Biscuits)
	fmt.Printf("  Fish:     %d\n", snap.Fish)

	if len(snap.Food) > 0 {
		fmt.Println()
		fmt.Println("Pantry:")
		for _, f := range catalog.Foods() {
			if n := snap.Food[f.ID]; n > 0 {
				fmt.Printf("  %-10s x%d\n", f.ID, n)
			}
		}
	}

	if len(snap.Placed) > 0 {
		fmt.Println()
		fmt.Println("Room:")
		for _, c := range catalog.Categories() {
			if id, ok := snap.Placed[c]; ok {
				fmt.Printf("  %-12s %s\n", c, decorationLabel(id))
			}
		}
	}

	fmt.Println()
	printTimer(snap.Timer)
	return nil
}

func printTimer(t gamestate.TimerState) {
	switch t.Phase {
	case gamestate.PhaseRunning:
		fmt.Printf("Timer: running, %s left (ends %s)\n", clock(t.Remaining), t.TargetEnd.Local().Format("15:04"))
	case gamestate.PhaseExpired:
		fmt.Println("Timer: finished. Run 'savekitty timer start' to go again.")
	default:
		fmt.Printf("Timer: paused at %s of %s\n", clock(t.Remaining), clock(t.Duration))
	}
}

func printCatalog() {
	fmt.Println("Food:")
	fmt.Printf("  %-10s  %-8s  %-6s  %s\n", "ID", "Name", "Price", "Heals")
	fmt.Printf("  %-10s  %-8s  %-6s  %s\n", "--", "----", "-----", "-----")
	for _, f := range catalog.Foods() {
		fmt.Printf("  %-10s  %-8s  %-6d  %d\n", f.ID, f.Name, f.Price, f.HealthPoints)
	}

	fmt.Println()
	fmt.Println("Decorations:")
	fmt.Printf("  %-14s  %-16s  %-12s  %s\n", "ID", "Name", "Slot", "Price")
	fmt.Printf("  %-14s  %-16s  %-12s  %s\n", "--", "----", "----", "-----")
	for _, d := range catalog.Decorations() {
		fmt.Printf("  %-14s  %-16s  %-12s  %d\n", d.ID, d.Name, d.Category, d.Price)
	}

	fmt.Println()
	fmt.Println("Run 'savekitty buy food <id>' or 'savekitty buy decor <id>' to buy.")
}

func printSkins(retired map[int]struct{}) {
	fmt.Println("Available cats:")
	for _, s := range catalog.AvailableSkins(retired) {
		fmt.Printf("  %d  %s\n", s.ID, s.Name)
	}
}

func runStats(g *game) error {
	stats := g.store.Stats(g.store.Now())

	fmt.Println("Focus statistics")
	fmt.Println()
	if stats.TotalSessions == 0 {
		fmt.Println("No focus sessions yet.")
		fmt.Println()
		fmt.Println("Run 'savekitty timer start' to begin your first one!")
		return nil
	}

	fmt.Printf("  Sessions: %d\n", stats.TotalSessions)
	fmt.Printf("  Minutes:  %d\n", stats.TotalMinutes)
	fmt.Println()
	fmt.Println("Last 7 days:")

	today := g.store.Now()
	for i, minutes := range stats.Last7Days {
		day := today.AddDate(0, 0, i-len(stats.Last7Days)+1)
		fmt.Printf("  %s  %4d  %s\n", day.Format("Mon"), minutes, strings.Repeat("#", minutes/5))
	}
	return nil
}

func clock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func skinLabel(id int) string {
	if s, ok := catalog.SkinByID(id); ok {
		return s.Name
	}
	return "unknown"
}

func decorationLabel(id string) string {
	if d, ok := catalog.DecorationByID(id); ok {
		return d.Name
	}
	return id
}
