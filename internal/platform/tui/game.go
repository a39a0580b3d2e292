package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

// Game screen layout constants
const (
	headerHeight = 2  // Title and status lines above the map
	footerHeight = 3  // Prompt, blank line, help
	minLogWidth  = 24 // Narrowest action log pane
	minLogHeight = 5
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	logPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	actorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	computerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

type entryKind int

const (
	entryHuman entryKind = iota
	entryComputer
	entryNote
	entryError
)

// logEntry is one block of the action log.
type logEntry struct {
	kind  entryKind
	actor string
	text  string
}

// GameOptions configures a game screen.
type GameOptions struct {
	WorldID       string             // Recorded with the game; defaults to the world name
	Layout        world.Layout       // How the map is drawn
	ComputerDelay time.Duration      // Pause before a computer player acts
	Screen        core.RuntimeConfig // Initial terminal size
	Store         *storage.Store     // Optional game history
	Logger        *log.Logger
}

// GameModel is the Bubble Tea model of a running game. Human players type
// commands at the prompt or click the map; computer players act on their
// own after a short delay.
type GameModel struct {
	world   *world.World
	worldID string
	layout  world.Layout
	delay   time.Duration
	config  core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger

	gameID string
	seq    int
	saved  bool

	screen  *core.Screen
	input   textinput.Model
	log     viewport.Model
	help    help.Model
	keys    GameKeyMap
	entries []logEntry

	quitting bool
}

// NewGameModel creates a game screen for a world whose players have
// already joined.
func NewGameModel(w *world.World, opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	worldID := opts.WorldID
	if worldID == "" {
		worldID = w.Name()
	}
	screen := opts.Screen
	if screen.ScreenW == 0 || screen.ScreenH == 0 {
		screen = core.DefaultConfig()
	}

	mapW, mapH := w.MapSize(opts.Layout)

	ti := textinput.New()
	ti.Placeholder = "type a command, or help"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Focus()

	m := GameModel{
		world:   w,
		worldID: worldID,
		layout:  opts.Layout,
		delay:   opts.ComputerDelay,
		config:  screen,
		store:   opts.Store,
		logger:  logger,
		gameID:  storage.NewGameID(),
		screen:  core.NewScreen(mapW, mapH),
		input:   ti,
		log:     viewport.New(minLogWidth, minLogHeight),
		help:    help.New(),
		keys:    DefaultGameKeyMap(),
	}
	m.note(fmt.Sprintf("Welcome to %s. %s is somewhere in the house.", w.Name(), w.Target().Name()))
	m.resize(screen.ScreenW, screen.ScreenH)
	return m
}

// Init starts the cursor blink and, when a computer opens the game, its
// first turn.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextTurn())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ComputerTurnMsg:
		return m.playComputer()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		line := m.input.Value()
		m.input.Reset()
		return m.submit(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleMouse moves the current human player into the clicked space.
// The wheel scrolls the action log.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	space, ok := m.world.SpaceAt(m.layout, msg.X, msg.Y-headerHeight)
	if !ok {
		return m, nil
	}
	return m.submit(string(VerbMove) + " " + space)
}

// submit runs one prompt line.
func (m GameModel) submit(line string) (tea.Model, tea.Cmd) {
	c, err := ParseCommand(line)
	if errors.Is(err, ErrEmptyCommand) {
		return m, nil
	}
	if err != nil {
		m.fail(err)
		return m, nil
	}

	switch c.Verb {
	case VerbQuit:
		return m.quit()
	case VerbHelp:
		m.note(commandHelp)
		return m, nil
	case VerbInfo:
		m.show(m.world.PlayerInfo(c.Arg))
		return m, nil
	case VerbSpace:
		m.show(m.world.SpaceInfo(c.Arg))
		return m, nil
	}

	turn, err := m.world.TurnInfo()
	if err != nil {
		m.fail(err)
		return m, nil
	}
	if over := m.world.GameOver(); over != "" {
		m.note(over)
		return m, nil
	}
	if turn.Kind != world.Human {
		m.note(fmt.Sprintf("Waiting for %s to play.", turn.Player))
		return m, nil
	}

	result, err := m.act(c)
	if err != nil {
		m.fail(err)
		return m, nil
	}
	m.played(entryHuman, turn.Player, string(c.Verb), result)
	next := m.afterTurn()
	return m, next
}

func (m GameModel) act(cmd Command) (string, error) {
	switch cmd.Verb {
	case VerbMove:
		return m.world.MovePlayer(cmd.Arg)
	case VerbPick:
		return m.world.PickItem(cmd.Arg)
	case VerbLook:
		return m.world.LookAround()
	case VerbPet:
		return m.world.MovePet(cmd.Arg)
	case VerbAttack:
		return m.world.Attack(cmd.Arg)
	}
	return "", fmt.Errorf("%s is not a player action", cmd.Verb)
}

// playComputer plays the pending computer turn. Stale ticks, for example
// after the game ended, are ignored.
func (m GameModel) playComputer() (tea.Model, tea.Cmd) {
	if m.world.Over() {
		return m, nil
	}
	turn, err := m.world.TurnInfo()
	if err != nil || turn.Kind != world.Computer {
		return m, nil
	}

	result, err := m.world.ComputerAction()
	if err != nil {
		m.logger.Error("computer turn failed", "player", turn.Player, "error", err)
		m.fail(err)
		return m, nil
	}
	m.played(entryComputer, turn.Player, "auto", result)
	next := m.afterTurn()
	return m, next
}

// afterTurn saves a finished game or schedules the next computer turn.
func (m *GameModel) afterTurn() tea.Cmd {
	if over := m.world.GameOver(); over != "" {
		m.note(over)
		outcome := storage.OutcomeDraw
		if m.world.Winner() != "" {
			outcome = storage.OutcomeWon
		}
		m.save(outcome)
		return nil
	}
	return m.nextTurn()
}

func (m GameModel) nextTurn() tea.Cmd {
	if m.world.Over() {
		return nil
	}
	turn, err := m.world.TurnInfo()
	if err != nil || turn.Kind != world.Computer {
		return nil
	}
	return computerTurnCmd(m.delay)
}

func (m GameModel) quit() (tea.Model, tea.Cmd) {
	if m.seq > 0 {
		m.save(storage.OutcomeAbandoned)
	}
	m.quitting = true
	return m, tea.Quit
}

// played logs a completed action and stores it with the game.
func (m *GameModel) played(kind entryKind, player, verb, result string) {
	m.push(logEntry{kind: kind, actor: player, text: result})

	seq := m.seq
	m.seq++
	if m.store == nil {
		return
	}
	if err := m.store.RecordAction(m.gameID, seq, player, verb, result); err != nil {
		m.logger.Warn("could not record action", "game", m.gameID, "error", err)
	}
}

// save stores the game once.
func (m *GameModel) save(outcome string) {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	rec := storage.GameRecord{
		ID:        m.gameID,
		World:     m.worldID,
		Winner:    m.world.Winner(),
		Outcome:   outcome,
		TurnsLeft: m.world.TurnsRemaining(),
	}
	for _, p := range m.world.Players() {
		rec.Players = append(rec.Players, storage.PlayerRecord{Name: p.Name, Kind: p.Kind.String()})
	}
	if _, err := m.store.SaveGame(rec); err != nil {
		m.logger.Warn("could not save game", "game", m.gameID, "error", err)
		return
	}
	m.logger.Info("game saved", "game", m.gameID, "outcome", outcome, "winner", rec.Winner)
}

func (m *GameModel) show(text string, err error) {
	if err != nil {
		m.fail(err)
		return
	}
	m.note(text)
}

func (m *GameModel) note(text string) {
	m.push(logEntry{kind: entryNote, text: text})
}

func (m *GameModel) fail(err error) {
	m.push(logEntry{kind: entryError, text: err.Error()})
}

func (m *GameModel) push(e logEntry) {
	m.entries = append(m.entries, e)
	m.refreshLog()
}

func (m *GameModel) refreshLog() {
	wrap := lipgloss.NewStyle().Width(m.log.Width)
	blocks := make([]string, len(m.entries))
	for i, e := range m.entries {
		switch e.kind {
		case entryHuman:
			blocks[i] = wrap.Render(actorStyle.Render(e.actor+":") + " " + e.text)
		case entryComputer:
			blocks[i] = wrap.Render(computerStyle.Render(e.actor+":") + " " + e.text)
		case entryError:
			blocks[i] = errorStyle.Width(m.log.Width).Render(e.text)
		default:
			blocks[i] = noteStyle.Width(m.log.Width).Render(e.text)
		}
	}
	m.log.SetContent(strings.Join(blocks, "\n\n"))
	m.log.GotoBottom()
}

// resize splits the terminal between the map on the left and the action
// log on the right.
func (m *GameModel) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height

	logW := core.Max(width-m.screen.Width()-2-logPaneStyle.GetHorizontalFrameSize(), minLogWidth)
	logH := core.Max(height-headerHeight-footerHeight-logPaneStyle.GetVerticalFrameSize(), minLogHeight)

	m.log.Width = logW
	m.log.Height = logH
	m.input.Width = core.Clamp(width-4, 10, m.input.CharLimit)
	m.help.Width = width
	m.refreshLog()
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s - hunting %s", m.world.Name(), m.world.Target().Name())))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")

	m.world.Render(m.screen, m.layout)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		RenderScreen(m.screen),
		"  ",
		logPaneStyle.Render(m.log.View()),
	))
	b.WriteString("\n")

	if over := m.world.GameOver(); over != "" {
		b.WriteString(bannerStyle.Render(over))
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m GameModel) status() string {
	target := m.world.Target()
	turn, err := m.world.TurnInfo()
	if err != nil {
		return err.Error()
	}
	who := turn.Player
	if turn.Kind == world.Computer {
		who += " (computer)"
	}
	return fmt.Sprintf("Turn: %s in %s | Target in %s, health %d | Pet in %s | Turns left: %d",
		who, turn.Space, turn.TargetSpace, target.Health(), m.world.PetSpace(), m.world.TurnsRemaining())
}

// GameID returns the identifier the game is stored under.
func (m GameModel) GameID() string {
	return m.gameID
}

// IsQuitting returns true if the user left the game.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a game in the local terminal and blocks until the user quits.
func Run(w *world.World, opts GameOptions) error {
	p := tea.NewProgram(
		NewGameModel(w, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
