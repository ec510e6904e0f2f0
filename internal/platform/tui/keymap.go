package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines every key binding of the room UI. Screens pick the subset
// they show in help.
type KeyMap struct {
	// room
	Timer   key.Binding
	Longer  key.Binding
	Shorter key.Binding
	Reset   key.Binding
	Pet     key.Binding
	Feed    key.Binding
	BuyFish key.Binding
	Shop    key.Binding
	Todo    key.Binding
	Stats   key.Binding
	Mute    key.Binding
	Help    key.Binding
	Quit    key.Binding

	// lists
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Use    key.Binding
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
	Daily  key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Timer: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Longer: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset timer"),
		),
		Pet: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pet"),
		),
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed fish"),
		),
		BuyFish: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy fish"),
		),
		Shop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shop"),
		),
		Todo: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "todos"),
		),
		Stats: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "stats"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Use: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "eat/place"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "check"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Daily: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "daily"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// roomHelp is the help.KeyMap of the room screen.
type roomHelp struct{ k KeyMap }

func (h roomHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Timer, h.k.Pet, h.k.Feed, h.k.Shop, h.k.Todo, h.k.Help, h.k.Quit}
}

func (h roomHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Timer, h.k.Longer, h.k.Shorter, h.k.Reset},
		{h.k.Pet, h.k.Feed, h.k.BuyFish, h.k.Mute},
		{h.k.Shop, h.k.Todo, h.k.Stats, h.k.Quit},
	}
}

type shopHelp struct{ k KeyMap }

func (h shopHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Select, h.k.Use, h.k.Back}
}

func (h shopHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type todoHelp struct{ k KeyMap }

func (h todoHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Toggle, h.k.Add, h.k.Delete, h.k.Back}
}

func (h todoHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type inputHelp struct{ k KeyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Select, h.k.Daily, h.k.Back}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type statsHelp struct{ k KeyMap }

func (h statsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Back, h.k.Quit}
}

func (h statsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

var (
	_ help.KeyMap = roomHelp{}
	_ help.KeyMap = shopHelp{}
	_ help.KeyMap = todoHelp{}
	_ help.KeyMap = inputHelp{}
	_ help.KeyMap = statsHelp{}
)
