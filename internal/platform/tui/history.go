package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the winners sidebar
	sidebarWidth       = 24  // Width of winners sidebar
	maxGames           = 100 // Max games to load
	maxWinners         = 10
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "show actions"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "hide actions"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing finished games.
type HistoryModel struct {
	store       *storage.Store
	games       []storage.GameRecord
	winners     []storage.WinnerStats
	actions     []storage.ActionEntry
	showActions bool
	err         error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser and loads the latest games.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "World", Width: 10},
		{Title: "Outcome", Width: 10},
		{Title: "Winner", Width: 12},
		{Title: "Left", Width: 5},
		{Title: "Players", Width: 20},
	}

	tableWidth := m.width - 6 // Borders and padding
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4
	}
	// Give the players column whatever is left.
	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2
	}
	if rest := tableWidth - fixed - 2; rest > columns[5].Width {
		columns[5].Width = rest
	}

	height := m.height - 8
	if m.showActions {
		height /= 2
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load reads games and winners from the store.
func (m *HistoryModel) load() {
	if m.store == nil {
		m.updateTableRows()
		return
	}

	games, err := m.store.RecentGames(maxGames)
	if err != nil {
		m.err = err
	}
	m.games = games

	winners, err := m.store.Wins(maxWinners)
	if err != nil {
		m.err = err
	}
	m.winners = winners
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		names := make([]string, len(g.Players))
		for j, p := range g.Players {
			names[j] = p.Name
		}
		winner := g.Winner
		if winner == "" {
			winner = "-"
		}
		rows[i] = table.Row{
			g.CreatedAt.Format("Jan 02 15:04"),
			g.World,
			g.Outcome,
			winner,
			fmt.Sprintf("%d", g.TurnsLeft),
			strings.Join(names, ", "),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the game under the cursor.
func (m HistoryModel) selected() (storage.GameRecord, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.games) {
		return storage.GameRecord{}, false
	}
	return m.games[i], true
}

func (m *HistoryModel) loadActions() {
	m.actions = nil
	g, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	actions, err := m.store.Actions(g.ID)
	if err != nil {
		m.err = err
		return
	}
	m.actions = actions
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.games) == 0 {
				return m, nil
			}
			cursor := m.table.Cursor()
			m.showActions = true
			m.table = m.createTable()
			m.updateTableRows()
			m.table.SetCursor(cursor)
			m.loadActions()
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if !m.showActions {
				m.quitting = true
				return m, tea.Quit
			}
			cursor := m.table.Cursor()
			m.showActions = false
			m.actions = nil
			m.table = m.createTable()
			m.updateTableRows()
			m.table.SetCursor(cursor)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			if m.showActions {
				m.loadActions()
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("GAME HISTORY", m.width)))
	b.WriteString("\n\n")

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tablePane := paneStyle.Render(m.renderTableContent())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderWinners(), "  ", tablePane))
	} else {
		b.WriteString(tablePane)
	}

	if m.showActions {
		b.WriteString("\n")
		b.WriteString(paneStyle.Render(m.renderActions()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWinners renders the leaderboard sidebar.
func (m HistoryModel) renderWinners() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Winners\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if len(m.winners) == 0 {
		sb.WriteString("nobody yet")
	}
	for i, w := range m.winners {
		name := w.Player
		maxLen := sidebarWidth - 10
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		fmt.Fprintf(&sb, "%2d. %-*s %3d\n", i+1, maxLen, name, w.Wins)
	}
	return sidebarStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m HistoryModel) renderTableContent() string {
	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nPlay a game to start the history!")
	}
	return m.table.View()
}

func (m HistoryModel) renderActions() string {
	if len(m.actions) == 0 {
		return "No actions recorded for this game."
	}

	limit := m.height/2 - 4
	if limit < 3 {
		limit = 3
	}
	actions := m.actions
	if len(actions) > limit {
		actions = actions[len(actions)-limit:]
	}

	var sb strings.Builder
	for i, a := range actions {
		if i > 0 {
			sb.WriteString("\n")
		}
		first, _, _ := strings.Cut(a.Result, "\n")
		fmt.Fprintf(&sb, "%3d %-12s %-6s %s", a.Seq+1, a.Player, a.Verb, first)
	}
	return sb.String()
}

// IsQuitting returns true if the user closed the browser.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
