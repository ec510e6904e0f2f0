package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/savekitty/internal/catalog"
)

var buyCmd = &cobra.Command{
	Use:   "buy fish | buy food <id> | buy decor <id>",
	Short: "Buy from the shop",
	Long: `Spend biscuits in the shop.

Fish is kept as its own stock; other food goes to the pantry. A decoration
can only be bought once.

Examples:
  savekitty buy fish
  savekitty buy food sushi
  savekitty buy decor rug_red`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			return runBuy(g, args)
		})
	},
}

var eatCmd = &cobra.Command{
	Use:   "eat fish | eat <food>",
	Short: "Feed the cat",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			return runEat(g, args[0])
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip <decoration>",
	Short: "Place an owned decoration in its slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			item, ok := catalog.DecorationByID(args[0])
			if !ok {
				return fmt.Errorf("unknown decoration %q", args[0])
			}
			if err := g.coordinator().Equip(item); err != nil {
				return err
			}
			fmt.Printf("Placed %s on the %s.\n", item.Name, item.Category)
			return nil
		})
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip <slot>",
	Short: "Clear a room slot",
	Long: `Removes whatever is placed in the slot. The decoration stays owned.

Slots: clock, top_shelf, small_shelf, big_shelf, sofa, rug, plant`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGame(func(g *game) error {
			c, err := catalog.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if err := g.coordinator().Unequip(c); err != nil {
				return err
			}
			fmt.Printf("Cleared the %s.\n", c)
			return nil
		})
	},
}

func runBuy(g *game, args []string) error {
	coord := g.coordinator()

	switch args[0] {
	case "fish":
		if err := coord.BuyFish(); err != nil {
			return err
		}
		fmt.Printf("Bought a fish. You have %d fish and %d biscuits.\n",
			g.store.Fish().Get(), g.store.Biscuits().Get())
		return nil

	case "food":
		if len(args) < 2 {
			return errors.New("usage: savekitty buy food <id>")
		}
		food, ok := catalog.FoodByID(args[1])
		if !ok {
			return fmt.Errorf("unknown food %q", args[1])
		}
		if err := coord.BuyFood(food); err != nil {
			return err
		}
		fmt.Printf("Bought %s. %d biscuits left.\n", food.Name, g.store.Biscuits().Get())
		return nil

	case "decor":
		if len(args) < 2 {
			return errors.New("usage: savekitty buy decor <id>")
		}
		item, ok := catalog.DecorationByID(args[1])
		if !ok {
			return fmt.Errorf("unknown decoration %q", args[1])
		}
		if err := coord.BuyDecoration(item); err != nil {
			return err
		}
		fmt.Printf("Bought %s. Run 'savekitty equip %s' to place it.\n", item.Name, item.ID)
		return nil

	default:
		return fmt.Errorf("unknown shop section %q (want fish, food or decor)", args[0])
	}
}

func runEat(g *game, id string) error {
	coord := g.coordinator()

	if id == catalog.FishID {
		if err := coord.EatFish(); err != nil {
			return err
		}
	} else {
		food, ok := catalog.FoodByID(id)
		if !ok {
			return fmt.Errorf("unknown food %q", id)
		}
		if err := coord.EatFood(food); err != nil {
			return err
		}
	}

	fmt.Printf("Nom! Health is now %d/%d.\n", g.store.Health().Get(), g.cfg.Cat.MaxHealth)
	return nil
}
