// Package gamestate is the single source of truth for a savekitty game: the
// wallet, the cat, the room, the todo list, study history and the focus
// timer. Every field is an observable value; every mutation is serialized
// under one lock, applied in memory first and mirrored to storage through an
// asynchronous write queue.
package gamestate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/clock"
	"github.com/vovakirdan/savekitty/internal/config"
	"github.com/vovakirdan/savekitty/internal/observe"
	"github.com/vovakirdan/savekitty/internal/storage"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	clock    clock.Clock
	logger   *log.Logger
	cfg      config.Config
	location *time.Location
	writer   storage.WriterConfig
}

// WithClock sets the time source. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger shared with the write queue.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConfig sets the game tuning. Defaults to config.Default().
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLocation sets the time zone used for calendar-day rollover.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithWriterConfig overrides the write queue settings.
func WithWriterConfig(cfg storage.WriterConfig) Option {
	return func(o *options) { o.writer = cfg }
}

// Store owns the game state. Create one per process with New and release it
// with Close.
type Store struct {
	cfg      config.Config
	clock    clock.Clock
	logger   *log.Logger
	location *time.Location
	kv       storage.KV
	writer   *storage.Writer
	keys     schema

	mu         sync.Mutex
	closed     bool
	starting   bool
	startup    []Event
	lastTodoID int64
	tickCancel context.CancelFunc
	unwatch    []func()
	loops      sync.WaitGroup

	biscuits     *observe.Value[int]
	health       *observe.Value[int]
	fish         *observe.Value[int]
	food         *observe.Value[map[string]int]
	decor        *observe.Value[map[string]int]
	placed       *observe.Value[map[catalog.Category]string]
	todos        *observe.Value[[]TodoItem]
	history      *observe.Value[[]StudySession]
	catName      *observe.Value[string]
	catSkin      *observe.Value[int]
	deceased     *observe.Value[map[int]struct{}]
	firstRun     *observe.Value[bool]
	tutorialDone *observe.Value[bool]
	timer        *observe.Value[TimerState]
	events       *observe.Feed[Event]
}

// New hydrates a store from kv, then applies the cold-start rules in order:
// timer reconciliation, idle health decay and daily todo rollover.
func New(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("gamestate: nil storage")
	}

	o := options{
		clock:    clock.Real{},
		cfg:      config.Default(),
		location: time.Local,
		writer:   storage.DefaultWriterConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gamestate: %w", err)
	}
	if o.writer.Logger == nil {
		o.writer.Logger = o.logger
	}

	s := &Store{
		cfg:      o.cfg,
		clock:    o.clock,
		logger:   o.logger,
		location: o.location,
		kv:       kv,
		writer:   storage.NewWriter(kv, o.writer),
		keys:     newSchema(o.cfg),

		biscuits:     observe.NewValue(0),
		health:       observe.NewValue(0),
		fish:         observe.NewValue(0),
		food:         observe.NewValue(map[string]int{}),
		decor:        observe.NewValue(map[string]int{}),
		placed:       observe.NewValue(map[catalog.Category]string{}),
		todos:        observe.NewValue([]TodoItem{}),
		history:      observe.NewValue([]StudySession{}),
		catName:      observe.NewValue(""),
		catSkin:      observe.NewValue(0),
		deceased:     observe.NewValue(map[int]struct{}{}),
		firstRun:     observe.NewValue(true),
		tutorialDone: observe.NewValue(false),
		timer:        observe.NewValue(TimerState{}),
		events:       observe.NewFeed[Event](),
	}

	bindings := s.bindings()
	for _, b := range bindings {
		s.project(b)
	}

	s.mu.Lock()
	s.starting = true
	for _, b := range bindings {
		b.load(ctx)
	}
	now := s.clock.Now()
	s.reconcileTimerLocked(ctx, now)
	s.applyDecayLocked(ctx, now)
	s.applyRolloverLocked(ctx, now)
	s.starting = false
	s.mu.Unlock()

	s.logger.Debug("game state loaded",
		"biscuits", s.biscuits.Get(),
		"health", s.health.Get(),
		"timer", s.timer.Get().Phase,
	)
	return s, nil
}

// Close stops the timer loop and external projections, then flushes pending
// writes. Safe to call multiple times.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.stopTickLocked()
	unwatch := s.unwatch
	s.unwatch = nil
	s.mu.Unlock()

	for _, cancel := range unwatch {
		cancel()
	}
	s.loops.Wait()
	return s.writer.Close(ctx)
}

// Flush blocks until every write made so far has reached storage.
func (s *Store) Flush(ctx context.Context) error {
	return s.writer.Flush(ctx)
}

// Config returns the tuning the store was built with.
func (s *Store) Config() config.Config {
	return s.cfg
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Observable readers. Collections are shared snapshots and must be treated
// as read-only; use Snapshot for a private copy.

func (s *Store) Biscuits() observe.Reader[int] {
	return s.biscuits
}

func (s *Store) Health() observe.Reader[int] {
	return s.health
}

func (s *Store) Fish() observe.Reader[int] {
	return s.fish
}

func (s *Store) FoodInventory() observe.Reader[map[string]int] {
	return s.food
}

func (s *Store) Decorations() observe.Reader[map[string]int] {
	return s.decor
}

func (s *Store) PlacedItems() observe.Reader[map[catalog.Category]string] {
	return s.placed
}

func (s *Store) Todos() observe.Reader[[]TodoItem] {
	return s.todos
}

func (s *Store) History() observe.Reader[[]StudySession] {
	return s.history
}

func (s *Store) CatName() observe.Reader[string] {
	return s.catName
}

func (s *Store) CatSkin() observe.Reader[int] {
	return s.catSkin
}

func (s *Store) Deceased() observe.Reader[map[int]struct{}] {
	return s.deceased
}

func (s *Store) FirstRun() observe.Reader[bool] {
	return s.firstRun
}

func (s *Store) TutorialDone() observe.Reader[bool] {
	return s.tutorialDone
}

func (s *Store) Timer() observe.Reader[TimerState] {
	return s.timer
}

// Events subscribes to the store's event feed.
func (s *Store) Events(buffer int) (<-chan Event, func()) {
	return s.events.Subscribe(buffer)
}

// DrainStartupEvents returns the events raised while New was running, before
// anyone could subscribe, and forgets them.
func (s *Store) DrainStartupEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	evs := s.startup
	s.startup = nil
	return evs
}

// Identity returns the current cat.
func (s *Store) Identity() CatIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CatIdentity{Name: s.catName.Get(), SkinID: s.catSkin.Get()}
}

// Mood derives the cat's pose from health and the timer.
func (s *Store) Mood() Mood {
	return MoodFor(s.health.Get(), s.timer.Get().Running(), s.cfg.Cat.HungryThreshold)
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer := s.timer.Get()
	return Snapshot{
		Biscuits:     s.biscuits.Get(),
		Health:       s.health.Get(),
		Fish:         s.fish.Get(),
		Food:         maps.Clone(s.food.Get()),
		Decorations:  maps.Clone(s.decor.Get()),
		Placed:       maps.Clone(s.placed.Get()),
		Todos:        slices.Clone(s.todos.Get()),
		History:      slices.Clone(s.history.Get()),
		Cat:          CatIdentity{Name: s.catName.Get(), SkinID: s.catSkin.Get()},
		Deceased:     maps.Clone(s.deceased.Get()),
		FirstRun:     s.firstRun.Get(),
		TutorialDone: s.tutorialDone.Get(),
		Timer:        timer,
		Mood:         MoodFor(s.health.Get(), timer.Running(), s.cfg.Cat.HungryThreshold),
	}
}

func (s *Store) publishLocked(ev Event) {
	if s.starting {
		s.startup = append(s.startup, ev)
	}
	s.events.Publish(ev)
}

// save encodes v and hands it to the write queue.
func save[T any](s *Store, k storage.Key[T], v T) {
	raw, err := k.Encode(v)
	if err != nil {
		s.logger.Error("encode failed", "key", k.Name, "err", err)
		return
	}
	s.writer.Enqueue(k.Name, raw)
}

// load reads one key outside the bindings, falling back to its default.
func load[T any](ctx context.Context, s *Store, k storage.Key[T]) T {
	v, err := k.Read(ctx, s.kv)
	if err != nil {
		s.logger.Warn("load failed, using default", "key", k.Name, "err", err)
	}
	return v
}

// binding ties one stored key to its in-memory value.
type binding struct {
	key   string
	load  func(ctx context.Context)
	apply func(c storage.Change)
}

func bind[T any](s *Store, k storage.Key[T], dst *observe.Value[T], norm func(T) T) binding {
	set := func(v T) {
		if norm != nil {
			v = norm(v)
		}
		dst.Set(v)
	}
	return binding{
		key: k.Name,
		load: func(ctx context.Context) {
			v, err := k.Read(ctx, s.kv)
			if err != nil {
				s.logger.Warn("load failed, using default", "key", k.Name, "err", err)
			}
			set(v)
		},
		apply: func(c storage.Change) {
			v := k.Default
			if !c.Deleted {
				var err error
				if v, err = k.Decode(c.Value); err != nil {
					s.logger.Warn("ignoring corrupt change", "key", k.Name, "err", err)
				}
			}
			s.mu.Lock()
			set(v)
			s.mu.Unlock()
		},
	}
}

func (s *Store) bindings() []binding {
	maxHealth := s.cfg.Cat.MaxHealth
	return []binding{
		bind(s, s.keys.biscuits, s.biscuits, nonNegative),
		bind(s, s.keys.health, s.health, func(v int) int { return min(max(v, 0), maxHealth) }),
		bind(s, s.keys.fish, s.fish, nonNegative),
		bind(s, s.keys.food, s.food, nonNilMap[string, int]),
		bind(s, s.keys.decor, s.decor, nonNilMap[string, int]),
		bind(s, s.keys.placed, s.placed, nonNilMap[catalog.Category, string]),
		bind(s, s.keys.todos, s.todos, nonNilSlice[TodoItem]),
		bind(s, s.keys.history, s.history, nonNilSlice[StudySession]),
		bind(s, s.keys.catName, s.catName, nil),
		bind(s, s.keys.catSkin, s.catSkin, nil),
		bind(s, s.keys.deceased, s.deceased, nonNilMap[int, struct{}]),
		bind(s, s.keys.firstRun, s.firstRun, nil),
		bind(s, s.keys.tutorialDone, s.tutorialDone, nil),
	}
}

// project applies changes made by other writers to the same storage.
func (s *Store) project(b binding) {
	ch, cancel := s.kv.Watch(b.key)
	s.unwatch = append(s.unwatch, cancel)

	origin := s.writer.Origin()
	s.loops.Add(1)
	go func() {
		defer s.loops.Done()
		for c := range ch {
			if c.Origin == origin {
				continue
			}
			s.logger.Debug("external change", "key", c.Key, "origin", c.Origin)
			b.apply(c)
		}
	}()
}

func nonNegative(v int) int { return max(v, 0) }

func nonNilMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
