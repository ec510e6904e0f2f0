package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/gamestate"
)

// View renders the current screen.
func (m RoomModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenSetup:
		body = m.viewSetup()
	case screenTutorial:
		body = m.viewTutorial()
	case screenGameOver:
		body = m.viewGameOver()
	case screenShop:
		body = m.viewShop()
	case screenTodo:
		body = m.viewTodo()
	case screenStats:
		body = m.stats.View() + "\n\n" + dimStyle.Render(m.help.View(statsHelp{m.keys}))
	default:
		body = m.viewRoom()
	}

	var b strings.Builder
	b.WriteString(m.viewStatus())
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toastStyle.Render(m.toast))
	}
	b.WriteString("\n")
	return b.String()
}

func (m RoomModel) viewStatus() string {
	s := m.snap
	maxHealth := m.store.Config().Cat.MaxHealth
	name := s.Cat.Name
	if name == "" {
		name = "no cat yet"
	}
	return fmt.Sprintf("%s  %s  %s  biscuits %d  fish %d",
		titleStyle.Render("SAVE KITTY"), name, hearts(s.Health, maxHealth), s.Biscuits, s.Fish)
}

func (m RoomModel) viewRoom() string {
	s := m.snap
	var b strings.Builder

	b.WriteString(renderCat(s.Mood, s.Cat.SkinID))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s is %s.\n\n", s.Cat.Name, s.Mood)

	timer := clockText(s.Timer.Remaining)
	switch s.Timer.Phase {
	case gamestate.PhaseRunning:
		timer = titleStyle.Render(timer) + "  focusing"
	case gamestate.PhaseExpired:
		timer += "  done! press r to go again"
	default:
		timer += dimStyle.Render(fmt.Sprintf("  %d min session", s.Timer.Duration/60))
	}
	b.WriteString(panelStyle.Render(timer))
	b.WriteString("\n")

	if len(s.Placed) > 0 {
		parts := make([]string, 0, len(s.Placed))
		for _, c := range catalog.Categories() {
			if id, ok := s.Placed[c]; ok {
				if d, ok := catalog.DecorationByID(id); ok {
					parts = append(parts, d.Name)
				}
			}
		}
		b.WriteString(dimStyle.Render("room: " + strings.Join(parts, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(roomHelp{m.keys})))
	return b.String()
}

func (m RoomModel) viewShop() string {
	s := m.snap
	fishPrice := m.store.Config().Economy.FishPrice

	var b strings.Builder
	b.WriteString(titleStyle.Render("SHOP"))
	b.WriteString("\n\n")

	for i, it := range m.shop {
		var note string
		switch it.kind {
		case gamestate.KindFish:
			note = fmt.Sprintf("have %d", s.Fish)
		case gamestate.KindFood:
			note = fmt.Sprintf("+%d  have %d", it.food.HealthPoints, s.Food[it.food.ID])
		default:
			switch {
			case s.Placed[it.decor.Category] == it.decor.ID:
				note = "placed"
			case s.Decorations[it.decor.ID] > 0:
				note = "owned"
			default:
				note = string(it.decor.Category)
			}
		}
		line := fmt.Sprintf("%-16s %4d  %s", it.title(), it.price(fishPrice), dimStyle.Render(note))
		b.WriteString(cursorLine(i == m.shopCursor, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(shopHelp{m.keys})))
	return b.String()
}

func (m RoomModel) viewTodo() string {
	todos := m.snap.Todos
	var b strings.Builder
	b.WriteString(titleStyle.Render("TODO"))
	b.WriteString("\n\n")

	if len(todos) == 0 && !m.typing {
		b.WriteString(dimStyle.Render("Nothing to do. Press a to add a task."))
		b.WriteString("\n")
	}
	for i, t := range todos {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		line := box + " " + t.Text
		if t.Daily {
			line += dimStyle.Render("  daily")
		}
		b.WriteString(cursorLine(i == m.todoCursor && !m.typing, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.typing {
		daily := "one-off"
		if m.inputDaily {
			daily = "daily"
		}
		fmt.Fprintf(&b, "new task (%s): %s_\n\n", daily, string(m.input))
		b.WriteString(dimStyle.Render(m.help.View(inputHelp{m.keys})))
		return b.String()
	}
	b.WriteString(dimStyle.Render(m.help.View(todoHelp{m.keys})))
	return b.String()
}

func (m RoomModel) viewSetup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ADOPT A CAT"))
	b.WriteString("\n\n")

	if len(m.skins) == 0 {
		b.WriteString("Every cat has found its rest. There are no cats left to adopt.\n")
		return b.String()
	}

	skin := m.skins[m.skinCursor]
	b.WriteString(renderCat(gamestate.MoodSit, skin.ID))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "< %s >  (%d of %d)\n\n", skin.Name, m.skinCursor+1, len(m.skins))

	name := string(m.input)
	if name == "" {
		name = dimStyle.Render(m.store.Config().Cat.DefaultName)
	}
	fmt.Fprintf(&b, "name: %s_\n\n", name)
	b.WriteString(dimStyle.Render("type a name, left/right to choose, enter to adopt"))
	return b.String()
}

func (m RoomModel) viewTutorial() string {
	cfg := m.store.Config()
	lines := []string{
		titleStyle.Render("HOW TO KEEP YOUR CAT HAPPY"),
		"",
		fmt.Sprintf("Study with the focus timer: every finished session earns %d biscuits.", cfg.Economy.SessionReward),
		fmt.Sprintf("Your cat loses half a heart every %s you are away.", cfg.Decay.Interval),
		"Buy fish and food in the shop and feed your cat before its hearts run out.",
		"Spend spare biscuits on decorations for the room.",
		"",
		dimStyle.Render("press enter to start"),
	}
	return strings.Join(lines, "\n")
}

func (m RoomModel) viewGameOver() string {
	s := m.snap
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s the %s cat ran out of hearts and went to live on a farm.\n",
		s.Cat.Name, strings.ToLower(skinName(s.Cat.SkinID)))
	b.WriteString("Your biscuits and pantry go with it. The room stays.\n\n")

	if len(s.Deceased) > 0 {
		ids := make([]int, 0, len(s.Deceased))
		for id := range s.Deceased {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = skinName(id)
		}
		b.WriteString(dimStyle.Render("remembered: " + strings.Join(names, ", ")))
		b.WriteString("\n\n")
	}
	b.WriteString(dimStyle.Render("press enter to adopt a new cat"))
	return b.String()
}
