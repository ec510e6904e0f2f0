package session

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/gamestate"
)

// ID uniquely identifies a UI session (the local terminal or an SSH
// connection).
type ID string

// Config holds configuration for a coordinator.
type Config struct {
	ID            ID            // generated when empty
	PurrVibration time.Duration // how long a purr vibrates
	ReminderDelay time.Duration // reminder scheduled when the app goes to background
	EventBuffer   int           // store events buffered before dropping
	Logger        *log.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PurrVibration: 3 * time.Second,
		ReminderDelay: 24 * time.Hour,
		EventBuffer:   32,
	}
}

// Coordinator is the per-session façade over the store. Actions are
// synchronous store calls followed by their side effects; store events are
// handled on a background goroutine between Start and Close.
type Coordinator struct {
	id       ID
	config   Config
	store    *gamestate.Store
	services Services
	logger   *log.Logger

	mu      sync.Mutex
	started bool
	cancel  func()
	views   []func() // event subscriptions handed to views
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a coordinator. Call Start to react to store events.
func New(store *gamestate.Store, services Services, cfg Config) *Coordinator {
	if cfg.ID == "" {
		cfg.ID = newID()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{
		id:       cfg.ID,
		config:   cfg,
		store:    store,
		services: services.withDefaults(),
		logger:   logger.With("session", cfg.ID),
		done:     make(chan struct{}),
	}
}

// ID returns the session identifier.
func (c *Coordinator) ID() ID {
	return c.id
}

// Store returns the underlying game state for read access.
func (c *Coordinator) Store() *gamestate.Store {
	return c.store
}

// Done returns a channel that closes when the coordinator is closed.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

// Start subscribes to store events. Events raised while the store was being
// opened are handled first. Calling Start twice is a no-op.
func (c *Coordinator) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true

	events, cancel := c.store.Events(c.config.EventBuffer)
	c.cancel = cancel
	backlog := c.store.DrainStartupEvents()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for _, ev := range backlog {
			c.handleEvent(ev)
		}
		for ev := range events {
			c.handleEvent(ev)
		}
	}()
}

// Subscribe returns store events for a view of this session. The
// subscription ends when the returned cancel func is called or the
// coordinator closes, whichever comes first.
func (c *Coordinator) Subscribe(buffer int) (<-chan gamestate.Event, func()) {
	events, cancel := c.store.Events(buffer)

	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.done:
		cancel()
	default:
		c.views = append(c.views, cancel)
	}
	return events, cancel
}

// Close stops event handling and ends every view subscription. Safe to call
// multiple times.
func (c *Coordinator) Close() {
	c.mu.Lock()
	cancels := c.views
	c.views = nil
	if c.cancel != nil {
		cancels = append(cancels, c.cancel)
		c.cancel = nil
	}
	select {
	case <-c.done:
	default:
		close(c.done)
	}
	c.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	c.wg.Wait()
}

func (c *Coordinator) handleEvent(ev gamestate.Event) {
	switch e := ev.(type) {
	case gamestate.TimerCompleted:
		c.logger.Info("timer completed", "minutes", e.Minutes, "reward", e.Reward, "while_closed", e.WhileClosed)
		c.services.Audio.PlaySound(SoundLevelUp)
		c.services.Notifier.ShowTimerCompleteNotification()
	case gamestate.HealthDepleted:
		c.logger.Warn("cat is starving")
	case gamestate.GameOver:
		c.logger.Info("cat retired", "skin", e.SkinID)
	}
}

// BuyFish buys a fish; plays the cash sound on success.
func (c *Coordinator) BuyFish() error {
	return c.withSound(c.store.BuyFish(), SoundCash)
}

// BuyFood buys one unit of food.
func (c *Coordinator) BuyFood(food catalog.Food) error {
	return c.withSound(c.store.BuyFood(food), SoundCash)
}

// BuyDecoration buys a decoration.
func (c *Coordinator) BuyDecoration(item catalog.Decoration) error {
	return c.withSound(c.store.BuyDecoration(item), SoundCash)
}

// EatFish feeds the cat a fish.
func (c *Coordinator) EatFish() error {
	return c.withSound(c.store.EatFish(), SoundEat)
}

// EatFood feeds the cat from the food inventory.
func (c *Coordinator) EatFood(food catalog.Food) error {
	return c.withSound(c.store.EatFood(food), SoundEat)
}

func (c *Coordinator) withSound(err error, s Sound) error {
	if err == nil {
		c.services.Audio.PlaySound(s)
	}
	return err
}

// TapCat pets the cat. A sleeping cat purrs and the device vibrates;
// otherwise it meows.
func (c *Coordinator) TapCat() (gamestate.Mood, error) {
	mood, err := c.store.TapCat()
	if err != nil {
		return mood, err
	}
	if mood == gamestate.MoodSleep {
		c.services.Audio.PlaySound(SoundPurr)
		c.services.Haptics.Vibrate(c.config.PurrVibration)
	} else {
		c.services.Audio.PlaySound(SoundMeow)
	}
	return mood, nil
}

// ToggleTimer starts or pauses the focus timer.
func (c *Coordinator) ToggleTimer() error {
	if c.store.Timer().Get().Running() {
		return c.store.PauseTimer()
	}
	return c.StartTimer()
}

// StartTimer starts the focus timer. A finished session is rewound to the
// selected length first.
func (c *Coordinator) StartTimer() error {
	if c.store.Timer().Get().Phase == gamestate.PhaseExpired {
		if err := c.store.ResetTimer(); err != nil {
			return err
		}
	}
	return c.store.StartTimer()
}

// SetTimer selects a session length in minutes.
func (c *Coordinator) SetTimer(minutes int) error {
	return c.store.SetTimerDuration(minutes)
}

// ResetTimer restores the full session length.
func (c *Coordinator) ResetTimer() error {
	return c.store.ResetTimer()
}

// Equip places an owned decoration.
func (c *Coordinator) Equip(item catalog.Decoration) error {
	return c.store.EquipDecoration(item)
}

// Unequip empties a room slot.
func (c *Coordinator) Unequip(cat catalog.Category) error {
	return c.store.UnequipDecoration(cat)
}

// AddTodo adds a checklist entry.
func (c *Coordinator) AddTodo(text string, daily bool) (gamestate.TodoItem, error) {
	return c.store.AddTodo(text, daily)
}

// ToggleTodo checks or unchecks a todo.
func (c *Coordinator) ToggleTodo(id int64) error {
	return c.store.ToggleTodo(id)
}

// DeleteTodo removes a todo.
func (c *Coordinator) DeleteTodo(id int64) error {
	return c.store.DeleteTodo(id)
}

// Adopt names the new cat and finishes setup.
func (c *Coordinator) Adopt(name string, skinID int) error {
	return c.store.SetCatIdentity(name, skinID)
}

// CompleteTutorial marks the tutorial as seen.
func (c *Coordinator) CompleteTutorial() {
	c.store.CompleteTutorial()
}

// Rehome acknowledges the game over screen and retires the cat.
func (c *Coordinator) Rehome() {
	c.store.HandleGameOver()
}

// ToggleMute flips the mute switch and reports the new state.
func (c *Coordinator) ToggleMute() bool {
	muted := !c.services.Audio.Muted()
	c.services.Audio.SetMuted(muted)
	if !muted {
		c.services.Audio.PlayLoopingMusic()
	}
	return muted
}

// AppBackgrounded stops the music and schedules the reminder.
func (c *Coordinator) AppBackgrounded() {
	c.services.Audio.StopMusic()
	c.services.Notifier.ScheduleReminder(c.config.ReminderDelay)
}

// AppResumed restarts the music and cancels the reminder.
func (c *Coordinator) AppResumed() {
	if !c.services.Audio.Muted() {
		c.services.Audio.PlayLoopingMusic()
	}
	c.services.Notifier.CancelReminder()
}

func newID() ID {
	return ID(uuid.NewString())
}
