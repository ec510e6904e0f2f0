package gamestate

import "time"

// Event is something that happened to the game state, published on the
// store's event feed for collaborators such as sound and notifications.
type Event interface {
	gameEvent()
}

// ItemKind classifies purchases.
type ItemKind string

const (
	KindFish       ItemKind = "fish"
	KindFood       ItemKind = "food"
	KindDecoration ItemKind = "decoration"
)

// TimerCompleted is published when a focus session runs to zero.
type TimerCompleted struct {
	Minutes     int
	Reward      int
	At          time.Time
	WhileClosed bool // expired while the app was not running
}

func (TimerCompleted) gameEvent() {}

// Purchased is published after a successful purchase.
type Purchased struct {
	ItemID string
	Kind   ItemKind
	Price  int
}

func (Purchased) gameEvent() {}

// Fed is published after the cat eats.
type Fed struct {
	ItemID string
	Health int
}

func (Fed) gameEvent() {}

// HealthDepleted is published when idle decay drops health to zero. The
// presentation decides when to show the game-over flow.
type HealthDepleted struct {
	At time.Time
}

func (HealthDepleted) gameEvent() {}

// GameOver is published when the current cat is retired.
type GameOver struct {
	SkinID int
	Name   string
}

func (GameOver) gameEvent() {}
