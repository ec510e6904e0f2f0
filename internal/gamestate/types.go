package gamestate

import (
	"time"

	"github.com/vovakirdan/savekitty/internal/catalog"
)

// NoSkin marks a cleared cat identity (after game over, before setup).
const NoSkin = -1

// TodoItem is one checklist entry. Daily items are unchecked on the first
// open of each calendar day.
type TodoItem struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Done  bool   `json:"isDone"`
	Daily bool   `json:"isDaily"`
}

// StudySession is one completed focus session. Immutable once recorded.
type StudySession struct {
	Timestamp       time.Time `json:"timestamp"`
	DurationMinutes int       `json:"durationMinutes"`
}

// CatIdentity names the current cat.
type CatIdentity struct {
	Name   string
	SkinID int
}

// TimerPhase is the focus timer state.
type TimerPhase int

const (
	PhaseIdle TimerPhase = iota
	PhaseRunning
	PhaseExpired
)

func (p TimerPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// TimerState is the observable focus timer. TargetEnd is the authoritative
// anchor while running; Remaining is derived from it on every tick.
type TimerState struct {
	Phase     TimerPhase
	Remaining int // seconds
	Duration  int // seconds, the length last selected
	TargetEnd time.Time
}

// Running reports whether the countdown is active.
func (t TimerState) Running() bool {
	return t.Phase == PhaseRunning
}

// Mood is the cat's displayed pose, derived from health and the timer.
type Mood int

const (
	MoodSleep Mood = iota
	MoodSit
	MoodHungry
)

func (m Mood) String() string {
	switch m {
	case MoodSleep:
		return "sleeping"
	case MoodSit:
		return "studying with you"
	case MoodHungry:
		return "hungry"
	default:
		return "unknown"
	}
}

// MoodFor projects health and timer activity onto a pose.
func MoodFor(health int, timerRunning bool, hungryThreshold int) Mood {
	switch {
	case health <= hungryThreshold:
		return MoodHungry
	case timerRunning:
		return MoodSit
	default:
		return MoodSleep
	}
}

// Snapshot is a deep copy of the whole game state.
type Snapshot struct {
	Biscuits     int
	Health       int
	Fish         int
	Food         map[string]int
	Decorations  map[string]int
	Placed       map[catalog.Category]string
	Todos        []TodoItem
	History      []StudySession
	Cat          CatIdentity
	Deceased     map[int]struct{}
	FirstRun     bool
	TutorialDone bool
	Timer        TimerState
	Mood         Mood
}

// StudyStats aggregates the session history.
type StudyStats struct {
	TotalSessions int
	TotalMinutes  int
	// Last7Days holds minutes per day; index 6 is today, index 0 six days ago.
	Last7Days [7]int
}
