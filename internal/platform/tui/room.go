package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/gamestate"
	"github.com/vovakirdan/savekitty/internal/session"
)

// screen is the page the room model is showing.
type screen int

const (
	screenRoom screen = iota
	screenShop
	screenTodo
	screenStats
	screenSetup
	screenTutorial
	screenGameOver
)

const (
	toastDuration   = 3 * time.Second
	timerStep  = 5 // minutes per +/- press
	maxNameLen = 20
	maxTodoLen = 60
)

// shopItem is one row of the shop.
type shopItem struct {
	kind  gamestate.ItemKind
	food  catalog.Food
	decor catalog.Decoration
}

func (it shopItem) title() string {
	switch it.kind {
	case gamestate.KindFish:
		return "Fish"
	case gamestate.KindFood:
		return it.food.Name
	default:
		return it.decor.Name
	}
}

func (it shopItem) price(fishPrice int) int {
	switch it.kind {
	case gamestate.KindFish:
		return fishPrice
	case gamestate.KindFood:
		return it.food.Price
	default:
		return it.decor.Price
	}
}

func shopItems() []shopItem {
	items := []shopItem{{kind: gamestate.KindFish}}
	for _, f := range catalog.Foods() {
		if f.ID == catalog.FishID {
			continue
		}
		items = append(items, shopItem{kind: gamestate.KindFood, food: f})
	}
	for _, d := range catalog.Decorations() {
		items = append(items, shopItem{kind: gamestate.KindDecoration, decor: d})
	}
	return items
}

// RoomModel is the Bubble Tea model of one player session: the cat's room
// with its shop, todo list, stats and the first-run and game-over flows.
type RoomModel struct {
	coord  *session.Coordinator
	store  *gamestate.Store
	keys   KeyMap
	help   help.Model
	snap   gamestate.Snapshot
	screen screen
	width  int
	height int

	events       <-chan gamestate.Event
	cancelEvents func()

	toast      string
	toastUntil time.Time

	shop       []shopItem
	shopCursor int

	todoCursor int
	typing     bool
	input      []rune
	inputDaily bool

	skins      []catalog.Skin
	skinCursor int

	stats    StatsModel
	quitting bool
}

// NewRoomModel creates a room over coord. Its event subscription is released
// on quit or when coord closes.
func NewRoomModel(coord *session.Coordinator, width, height int) RoomModel {
	store := coord.Store()
	events, cancel := coord.Subscribe(16)

	h := help.New()
	h.Width = width

	m := RoomModel{
		coord:        coord,
		store:        store,
		keys:         DefaultKeyMap(),
		help:         h,
		width:        width,
		height:       height,
		events:       events,
		cancelEvents: cancel,
		shop:         shopItems(),
	}
	m.refresh()
	return m
}

// Init starts the refresh tick and the event listener.
func (m RoomModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(uiTickInterval), waitForEvent(m.events))
}

// Update handles messages and updates the model state.
func (m RoomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.stats, _ = m.stats.Update(msg)
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tickCmd(uiTickInterval)

	case eventMsg:
		m.onEvent(msg.ev)
		m.refresh()
		return m, waitForEvent(m.events)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
		if !m.quitting {
			m.refresh()
		}
		return m, cmd
	}
	return m, nil
}

// refresh re-reads the store and applies the flow gates: a starving cat
// shows the game over screen, a first run shows setup, then the tutorial.
func (m *RoomModel) refresh() {
	m.snap = m.store.Snapshot()
	if m.toast != "" && m.store.Now().After(m.toastUntil) {
		m.toast = ""
	}

	switch {
	case m.snap.Health <= 0:
		m.screen = screenGameOver
	case m.snap.FirstRun:
		if m.screen != screenSetup {
			m.enterSetup()
		}
	case !m.snap.TutorialDone:
		m.screen = screenTutorial
	case m.screen == screenGameOver || m.screen == screenSetup || m.screen == screenTutorial:
		m.screen = screenRoom
	}
	m.todoCursor = min(m.todoCursor, max(len(m.snap.Todos)-1, 0))
}

func (m *RoomModel) enterSetup() {
	m.screen = screenSetup
	m.skins = catalog.AvailableSkins(m.snap.Deceased)
	m.skinCursor = 0
	m.input = nil
}

func (m *RoomModel) say(format string, args ...any) {
	m.toast = fmt.Sprintf(format, args...)
	m.toastUntil = m.store.Now().Add(toastDuration)
}

// complain shows a rejected action.
func (m *RoomModel) complain(err error) {
	m.say("%s", strings.TrimPrefix(err.Error(), "gamestate: "))
}

func (m *RoomModel) onEvent(ev gamestate.Event) {
	switch e := ev.(type) {
	case gamestate.TimerCompleted:
		if e.WhileClosed {
			m.say("Your session finished while you were away: +%d biscuits", e.Reward)
		} else {
			m.say("Session complete! +%d biscuits", e.Reward)
		}
	case gamestate.HealthDepleted:
		m.say("%s is starving!", m.snap.Cat.Name)
	}
}

// handleKey processes keyboard input.
func (m RoomModel) handleKey(msg tea.KeyMsg) (RoomModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.screen {
	case screenSetup:
		return m.handleSetupKey(msg)
	case screenTutorial:
		if key.Matches(msg, m.keys.Select, m.keys.Timer) {
			m.coord.CompleteTutorial()
		}
		return m, nil
	case screenGameOver:
		if key.Matches(msg, m.keys.Select) {
			m.coord.Rehome()
		}
		return m, nil
	case screenShop:
		return m.handleShopKey(msg)
	case screenTodo:
		return m.handleTodoKey(msg)
	case screenStats:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		if key.Matches(msg, m.keys.Back) {
			m.screen = screenRoom
			return m, nil
		}
		var cmd tea.Cmd
		m.stats, cmd = m.stats.Update(msg)
		return m, cmd
	default:
		return m.handleRoomKey(msg)
	}
}

func (m RoomModel) quit() (RoomModel, tea.Cmd) {
	m.quitting = true
	if m.cancelEvents != nil {
		m.cancelEvents()
	}
	return m, tea.Quit
}

func (m RoomModel) handleRoomKey(msg tea.KeyMsg) (RoomModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Timer):
		if err := m.coord.ToggleTimer(); err != nil {
			m.complain(err)
		}

	case key.Matches(msg, m.keys.Longer), key.Matches(msg, m.keys.Shorter):
		minutes := m.snap.Timer.Duration / 60
		if key.Matches(msg, m.keys.Longer) {
			limit := int(m.store.Config().Timer.MaxDuration / time.Minute)
			minutes = min(minutes+timerStep, limit)
		} else {
			minutes = max(minutes-timerStep, timerStep)
		}
		if err := m.coord.SetTimer(minutes); err != nil {
			m.complain(err)
		}

	case key.Matches(msg, m.keys.Reset):
		if err := m.coord.ResetTimer(); err != nil {
			m.complain(err)
		}

	case key.Matches(msg, m.keys.Pet):
		mood, _ := m.coord.TapCat()
		if mood == gamestate.MoodSleep {
			m.say("purrrr... +%d", m.store.Config().Economy.TapReward)
		} else {
			m.say("meow! +%d", m.store.Config().Economy.TapReward)
		}

	case key.Matches(msg, m.keys.Feed):
		if err := m.coord.EatFish(); err != nil {
			m.complain(err)
		} else {
			m.say("nom nom")
		}

	case key.Matches(msg, m.keys.BuyFish):
		if err := m.coord.BuyFish(); err != nil {
			m.complain(err)
		} else {
			m.say("bought a fish")
		}

	case key.Matches(msg, m.keys.Shop):
		m.screen = screenShop

	case key.Matches(msg, m.keys.Todo):
		m.screen = screenTodo

	case key.Matches(msg, m.keys.Stats):
		m.stats = NewStatsModel(m.snap.History, m.store.Now(), m.width, m.height)
		m.screen = screenStats

	case key.Matches(msg, m.keys.Mute):
		if m.coord.ToggleMute() {
			m.say("sound off")
		} else {
			m.say("sound on")
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m RoomModel) handleShopKey(msg tea.KeyMsg) (RoomModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.screen = screenRoom
	case key.Matches(msg, m.keys.Up):
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.shopCursor < len(m.shop)-1 {
			m.shopCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.buy(m.shop[m.shopCursor])
	case key.Matches(msg, m.keys.Use):
		m.use(m.shop[m.shopCursor])
	}
	return m, nil
}

func (m *RoomModel) buy(it shopItem) {
	var err error
	switch it.kind {
	case gamestate.KindFish:
		err = m.coord.BuyFish()
	case gamestate.KindFood:
		err = m.coord.BuyFood(it.food)
	default:
		err = m.coord.BuyDecoration(it.decor)
	}
	if err != nil {
		m.complain(err)
		return
	}
	m.say("bought %s", it.title())
}

func (m *RoomModel) use(it shopItem) {
	var err error
	switch it.kind {
	case gamestate.KindFish:
		err = m.coord.EatFish()
	case gamestate.KindFood:
		err = m.coord.EatFood(it.food)
	default:
		if m.snap.Placed[it.decor.Category] == it.decor.ID {
			err = m.coord.Unequip(it.decor.Category)
		} else {
			err = m.coord.Equip(it.decor)
		}
	}
	if err != nil {
		m.complain(err)
	}
}

func (m RoomModel) handleTodoKey(msg tea.KeyMsg) (RoomModel, tea.Cmd) {
	if m.typing {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.typing, m.input = false, nil
		case key.Matches(msg, m.keys.Daily):
			m.inputDaily = !m.inputDaily
		case key.Matches(msg, m.keys.Select):
			if _, err := m.coord.AddTodo(string(m.input), m.inputDaily); err != nil {
				m.complain(err)
				return m, nil
			}
			m.typing, m.input = false, nil
			m.todoCursor = len(m.snap.Todos)
		default:
			m.input = editRunes(m.input, msg, maxTodoLen)
		}
		return m, nil
	}

	todos := m.snap.Todos
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.screen = screenRoom
	case key.Matches(msg, m.keys.Up):
		if m.todoCursor > 0 {
			m.todoCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.todoCursor < len(todos)-1 {
			m.todoCursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.typing, m.input, m.inputDaily = true, nil, false
	case key.Matches(msg, m.keys.Toggle):
		if len(todos) > 0 {
			_ = m.coord.ToggleTodo(todos[m.todoCursor].ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if len(todos) > 0 {
			_ = m.coord.DeleteTodo(todos[m.todoCursor].ID)
		}
	}
	return m, nil
}

func (m RoomModel) handleSetupKey(msg tea.KeyMsg) (RoomModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.skinCursor > 0 {
			m.skinCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.skinCursor < len(m.skins)-1 {
			m.skinCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.skins) == 0 {
			return m, nil
		}
		if err := m.coord.Adopt(string(m.input), m.skins[m.skinCursor].ID); err != nil {
			m.complain(err)
			m.skins = catalog.AvailableSkins(m.snap.Deceased)
			m.skinCursor = 0
		}
	default:
		m.input = editRunes(m.input, msg, maxNameLen)
	}
	return m, nil
}

// editRunes applies a typing key to a line of input.
func editRunes(in []rune, msg tea.KeyMsg, limit int) []rune {
	switch msg.Type {
	case tea.KeyBackspace:
		if len(in) > 0 {
			in = in[:len(in)-1]
		}
	case tea.KeySpace:
		if len(in) < limit {
			in = append(in, ' ')
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if len(in) >= limit || !utf8.ValidRune(r) {
				break
			}
			in = append(in, r)
		}
	}
	return in
}

func (m RoomModel) currentScreen() screen {
	return m.screen
}

// IsQuitting returns true if the user asked to leave.
func (m RoomModel) IsQuitting() bool {
	return m.quitting
}
