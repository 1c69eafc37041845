package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats sidebar
	statsWidth       = 24  // Width of the stats sidebar
	maxSessions      = 100 // Max sessions to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the session scoreboard.
type ScoreboardModel struct {
	store     *storage.Store
	sessions  []storage.SessionRecord
	stats     *storage.SessionStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	showStats bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:     store,
		keys:      keys,
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()
	m.loadSessions()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Tier", Width: 5},
		{Title: "Won", Width: 5},
		{Title: "Missed", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
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

// loadSessions loads recorded sessions and aggregate stats.
func (m *ScoreboardModel) loadSessions() {
	if m.store == nil {
		m.sessions = nil
		m.stats = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.TopSessions(maxSessions)
	if err != nil {
		m.sessions = nil
	} else {
		m.sessions = sessions
	}

	stats, err := m.store.Stats()
	if err != nil {
		m.stats = nil
	} else {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		player := s.Player
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.PeakTier+1),
			fmt.Sprintf("%d", s.RoundsWon),
			fmt.Sprintf("%d", s.RoundsMissed),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("REFLEX - BEST SESSIONS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showStats {
		// Wide layout: table + stats sidebar
		statsRendered := tableStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", statsRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a session to set a high score!")
	}

	return m.table.View()
}

// renderStats renders the aggregate statistics panel.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.Sessions == 0 {
		b.WriteString("no data")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Sessions   %d\n", m.stats.Sessions))
	b.WriteString(fmt.Sprintf("High score %d\n", m.stats.HighScore))
	b.WriteString(fmt.Sprintf("Avg score  %.1f\n", m.stats.AvgScore))
	b.WriteString(fmt.Sprintf("Rounds won %d\n", m.stats.TotalWon))
	if !m.stats.LastPlayed.IsZero() {
		b.WriteString(fmt.Sprintf("Last game  %s\n", m.stats.LastPlayed.Format("Jan 02 15:04")))
	}

	return b.String()
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
