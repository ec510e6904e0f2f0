package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/savekitty/internal/gamestate"
)

// Stats layout constants
const (
	barMinutesPerBlock = 5  // one bar block per five minutes studied
	maxBarWidth        = 30 // bar column cap
)

// StatsModel shows study totals and a seven-day table.
type StatsModel struct {
	stats  gamestate.StudyStats
	now    time.Time
	table  table.Model
	width  int
	height int
}

// NewStatsModel builds the stats view for history as of now.
func NewStatsModel(history []gamestate.StudySession, now time.Time, width, height int) StatsModel {
	m := StatsModel{
		stats:  gamestate.ComputeStats(history, now),
		now:    now,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.table.SetRows(m.rows())
	return m
}

// createTable creates the day table sized to the window.
func (m *StatsModel) createTable() table.Model {
	barWidth := min(max(m.width-30, 10), maxBarWidth)
	columns := []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Minutes", Width: 8},
		{Title: "", Width: barWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(m.stats.Last7Days)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rows lists the last seven days, today last.
func (m StatsModel) rows() []table.Row {
	days := m.stats.Last7Days
	rows := make([]table.Row, len(days))
	for i, minutes := range days {
		day := m.now.Add(-time.Duration(len(days)-1-i) * 24 * time.Hour)
		label := day.Format("Mon Jan 02")
		if i == len(days)-1 {
			label = "Today"
		}
		rows[i] = table.Row{label, fmt.Sprintf("%d", minutes), bar(minutes)}
	}
	return rows
}

func bar(minutes int) string {
	blocks := (minutes + barMinutesPerBlock - 1) / barMinutesPerBlock
	return strings.Repeat("█", min(blocks, maxBarWidth))
}

// Update passes navigation to the table.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders totals and the table.
func (m StatsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("STUDY STATS"))
	b.WriteString("\n\n")

	if m.stats.TotalSessions == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(empty.Render("No focus sessions yet.\nStart the timer and study with your cat!"))
		return b.String()
	}

	fmt.Fprintf(&b, "Sessions: %d   Total: %dh %02dm\n\n",
		m.stats.TotalSessions, m.stats.TotalMinutes/60, m.stats.TotalMinutes%60)
	b.WriteString(panelStyle.Render(m.table.View()))
	return b.String()
}
