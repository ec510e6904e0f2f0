// Package catalog holds the static shop tables: food, room decorations and
// cat skins. Everything here is read-only reference data keyed by id.
package catalog

import (
	"fmt"
	"sort"
)

// Food is an edible shop item. HealthPoints are half-heart units.
type Food struct {
	ID           string
	Name         string
	Price        int
	HealthPoints int
}

// Category is a fixed placement slot in the room. A slot holds at most one
// decoration at a time.
type Category string

const (
	CategoryClock      Category = "clock"
	CategoryTopShelf   Category = "top_shelf"
	CategorySmallShelf Category = "small_shelf"
	CategoryBigShelf   Category = "big_shelf"
	CategorySofa       Category = "sofa"
	CategoryRug        Category = "rug"
	CategoryPlant      Category = "plant"
)

// categoryOrder is the display order of slots.
var categoryOrder = []Category{
	CategoryClock,
	CategoryTopShelf,
	CategorySmallShelf,
	CategoryBigShelf,
	CategorySofa,
	CategoryRug,
	CategoryPlant,
}

// Valid reports whether c is a known slot.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("catalog: unknown category %q", s)
	}
	return c, nil
}

// Decoration is a room item that occupies one Category slot.
type Decoration struct {
	ID       string
	Name     string
	Price    int
	Category Category
}

// Skin is a selectable cat appearance.
type Skin struct {
	ID   int
	Name string
}

// FishID is the id of the basic food. Fish is also sold as a separate
// counted stock outside the food inventory.
const FishID = "fish"

var foods = []Food{
	{ID: FishID, Name: "Fish", Price: 5, HealthPoints: 1},
	{ID: "milk", Name: "Milk", Price: 15, HealthPoints: 2},
	{ID: "sushi", Name: "Sushi", Price: 30, HealthPoints: 4},
	{ID: "chicken", Name: "Chicken", Price: 50, HealthPoints: 6},
	{ID: "steak", Name: "Steak", Price: 80, HealthPoints: 8},
	{ID: "caviar", Name: "Caviar", Price: 150, HealthPoints: 10},
}

var decorations = []Decoration{
	{ID: "clock_analog", Name: "Classic Clock", Price: 10, Category: CategoryClock},
	{ID: "clock_digital", Name: "Digital Clock", Price: 10, Category: CategoryClock},
	{ID: "clock_cat", Name: "Kitty Clock", Price: 10, Category: CategoryClock},
	{ID: "clock_girls", Name: "Girls Clock", Price: 10, Category: CategoryClock},
	{ID: "clock_boys", Name: "Boys Clock", Price: 10, Category: CategoryClock},
	{ID: "clock_old", Name: "Old Clock", Price: 10, Category: CategoryClock},

	{ID: "top_shelf_1", Name: "Top Shelf I", Price: 10, Category: CategoryTopShelf},
	{ID: "top_shelf_2", Name: "Top Shelf II", Price: 10, Category: CategoryTopShelf},
	{ID: "top_shelf_3", Name: "Top Shelf III", Price: 10, Category: CategoryTopShelf},

	{ID: "small_shelf_2", Name: "Small Shelf II", Price: 10, Category: CategorySmallShelf},
	{ID: "small_shelf_3", Name: "Small Shelf III", Price: 10, Category: CategorySmallShelf},
	{ID: "small_shelf_4", Name: "Small Shelf IV", Price: 10, Category: CategorySmallShelf},

	{ID: "big_shelf_1", Name: "Big Shelf I", Price: 10, Category: CategoryBigShelf},
	{ID: "big_shelf_2", Name: "Big Shelf II", Price: 10, Category: CategoryBigShelf},
	{ID: "big_shelf_3", Name: "Big Shelf III", Price: 10, Category: CategoryBigShelf},

	{ID: "sofa_1", Name: "Pink Sofa", Price: 10, Category: CategorySofa},

	{ID: "rug_red", Name: "Persian Rug", Price: 100, Category: CategoryRug},
	{ID: "rug_blue", Name: "Cozy Mat", Price: 80, Category: CategoryRug},

	{ID: "plant_fern", Name: "Fern", Price: 25, Category: CategoryPlant},
}

var skins = []Skin{
	{ID: 0, Name: "Orange"},
	{ID: 1, Name: "Black & White"},
	{ID: 2, Name: "Grey"},
	{ID: 3, Name: "White"},
}

var (
	foodIndex       = make(map[string]Food, len(foods))
	decorationIndex = make(map[string]Decoration, len(decorations))
)

func init() {
	for _, f := range foods {
		if _, dup := foodIndex[f.ID]; dup {
			panic(fmt.Sprintf("catalog: food %q declared twice", f.ID))
		}
		foodIndex[f.ID] = f
	}
	for _, d := range decorations {
		if _, dup := decorationIndex[d.ID]; dup {
			panic(fmt.Sprintf("catalog: decoration %q declared twice", d.ID))
		}
		decorationIndex[d.ID] = d
	}
}

// Foods returns the food menu in shop order.
func Foods() []Food {
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// FoodByID looks up a food by id.
func FoodByID(id string) (Food, bool) {
	f, ok := foodIndex[id]
	return f, ok
}

// Decorations returns every decoration, grouped by slot and sorted by id.
func Decorations() []Decoration {
	out := make([]Decoration, len(decorations))
	copy(out, decorations)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := categoryRank(out[i].Category), categoryRank(out[j].Category)
		if ci != cj {
			return ci < cj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// DecorationByID looks up a decoration by id.
func DecorationByID(id string) (Decoration, bool) {
	d, ok := decorationIndex[id]
	return d, ok
}

// DecorationsIn returns the decorations that fit the given slot.
func DecorationsIn(c Category) []Decoration {
	var out []Decoration
	for _, d := range Decorations() {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns every slot in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Skins returns every cat skin ordered by id.
func Skins() []Skin {
	out := make([]Skin, len(skins))
	copy(out, skins)
	return out
}

// SkinByID looks up a skin.
func SkinByID(id int) (Skin, bool) {
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

// AvailableSkins returns the skins that are not retired.
func AvailableSkins(retired map[int]struct{}) []Skin {
	out := make([]Skin, 0, len(skins))
	for _, s := range skins {
		if _, dead := retired[s.ID]; dead {
			continue
		}
		out = append(out, s)
	}
	return out
}

func categoryRank(c Category) int {
	for i, known := range categoryOrder {
		if c == known {
			return i
		}
	}
	return len(categoryOrder)
}
