package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/savekitty/internal/catalog"
	"github.com/vovakirdan/savekitty/internal/gamestate"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	heartStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	toastStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// skinColors maps skin ids to a fur color.
var skinColors = map[int]lipgloss.Color{
	0: lipgloss.Color("208"),
	1: lipgloss.Color("250"),
	2: lipgloss.Color("245"),
	3: lipgloss.Color("231"),
}

var catArt = map[gamestate.Mood]string{
	gamestate.MoodSleep: strings.Join([]string{
		"                      z",
		"      |\\      _,,,--,,_   z",
		"      /,.-'''    -,  ;-;;,_",
		"     |,4-  ) )-,_. ,\\ (  ''-'",
		"    '---''(_/--'  '-'\\_)",
	}, "\n"),
	gamestate.MoodSit: strings.Join([]string{
		"      /\\_/\\",
		"     ( o.o )   __",
		"      > ^ <   |  |",
		"     /     \\  |__|",
		"    (_______)",
	}, "\n"),
	gamestate.MoodHungry: strings.Join([]string{
		"      /\\_/\\",
		"     ( ;_; )",
		"      > ~ <    feed me...",
		"     /     \\",
		"    (_______)",
	}, "\n"),
}

// renderCat draws the cat for mood in its skin color.
func renderCat(mood gamestate.Mood, skinID int) string {
	style := lipgloss.NewStyle()
	if c, ok := skinColors[skinID]; ok {
		style = style.Foreground(c)
	}
	return style.Render(catArt[mood])
}

// hearts renders half-heart health units as whole hearts.
func hearts(health, maxHealth int) string {
	var b strings.Builder
	for i := 0; i < (maxHealth+1)/2; i++ {
		switch units := health - 2*i; {
		case units >= 2:
			b.WriteString("♥")
		case units == 1:
			b.WriteString("♡")
		default:
			b.WriteString("·")
		}
	}
	return heartStyle.Render(b.String())
}

// clockText formats seconds as mm:ss.
func clockText(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func skinName(id int) string {
	if s, ok := catalog.SkinByID(id); ok {
		return s.Name
	}
	return "?"
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// cursorLine prefixes a list row with the selection marker.
func cursorLine(selected bool, text string) string {
	if selected {
		return selectedStyle.Render("> " + text)
	}
	return "  " + text
}
