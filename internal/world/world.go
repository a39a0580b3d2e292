// Package world is the pursuit game engine. A World owns the map, the
// target, the pet, the players and the turn bookkeeping, and exposes one
// operation per player action. Every mutating operation returns a readable
// outcome and advances the turn. The engine is single-threaded: callers
// must serialize access.
package world

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/random"
)

// World is the single-game simulation aggregate.
type World struct {
	rows    int
	columns int
	name    string
	spaces  []*Space
	target  *Target
	pet     *Pet

	players  []*Player
	turn     int
	maxTurns int
	turns    int
	gameOver bool
	winner   string

	// Pet wander state. Cleared whenever a player moves the pet.
	visited   map[int]bool
	backtrack []int

	rng        random.Source
	maxPlayers int
	logger     *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for engine tracing.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithMaxPlayers caps the roster size. Zero means no cap.
func WithMaxPlayers(n int) Option {
	return func(w *World) {
		if n >= 0 {
			w.maxPlayers = n
		}
	}
}

// New parses a world specification and creates a game lasting the given
// number of rounds. A nil source falls back to a time-seeded generator.
func New(r io.Reader, src random.Source, turns int, opts ...Option) (*World, error) {
	if turns < 1 {
		return nil, validationErr("BAD_TURNS", "number of turns must be at least 1, got %d", turns)
	}
	if src == nil {
		src = random.NewSeeded(0)
	}

	w := &World{
		maxTurns: turns,
		rng:      src,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.Load(r); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the map with a new specification. On failure the world is
// left untouched. On success the whole game restarts: the roster is
// cleared, the turn counter is restored and the target and pet return to
// the first space.
func (w *World) Load(r io.Reader) error {
	l, err := parseLayout(r)
	if err != nil {
		w.logger.Debug("world specification rejected", "err", err)
		return err
	}

	w.rows = l.rows
	w.columns = l.columns
	w.name = l.name
	w.spaces = l.spaces
	w.target = l.target
	w.pet = l.pet
	w.players = nil
	w.turn = 0
	w.turns = w.maxTurns
	w.gameOver = false
	w.winner = ""
	w.visited = make(map[int]bool)
	w.backtrack = nil

	w.logger.Info("world loaded",
		"name", w.name,
		"rows", w.rows,
		"columns", w.columns,
		"spaces", len(w.spaces),
		"turns", w.turns,
	)
	return nil
}

// Rows returns the map height in cells.
func (w *World) Rows() int { return w.rows }

// Columns returns the map width in cells.
func (w *World) Columns() int { return w.columns }

// Name returns the world name.
func (w *World) Name() string { return w.name }

// Target returns a copy of the target.
func (w *World) Target() Target { return *w.target }

// Pet returns a copy of the pet.
func (w *World) Pet() Pet { return *w.pet }

// MaxTurns returns the number of rounds the game was created with.
func (w *World) MaxTurns() int { return w.maxTurns }

// Spaces returns copies of all spaces in declaration order.
func (w *World) Spaces() []Space {
	out := make([]Space, len(w.spaces))
	for i, s := range w.spaces {
		out[i] = *s
		out[i].items = s.Items()
	}
	return out
}

// Over reports whether the game has concluded.
func (w *World) Over() bool { return w.gameOver }

// Winner returns the name of the player who killed the target, or "".
func (w *World) Winner() string { return w.winner }

// spaceIndex resolves a space name.
func (w *World) spaceIndex(name string) (int, error) {
	if name == "" {
		return -1, validationErr("EMPTY_NAME", "space name cannot be empty")
	}
	for i, s := range w.spaces {
		if s.name == name {
			return i, nil
		}
	}
	return -1, validationErr("UNKNOWN_SPACE", "space %q is not part of the world", name)
}

func (w *World) player(name string) (*Player, error) {
	if name == "" {
		return nil, validationErr("EMPTY_NAME", "player name cannot be empty")
	}
	for _, p := range w.players {
		if p.name == name {
			return p, nil
		}
	}
	return nil, validationErr("UNKNOWN_PLAYER", "player %q is not part of the world", name)
}

// current returns the player whose turn it is, failing when no turn can
// be taken.
func (w *World) current() (*Player, error) {
	if w.gameOver {
		return nil, stateErr("GAME_OVER", "the game is over")
	}
	if len(w.players) == 0 {
		return nil, stateErr("NO_PLAYERS", "no players have joined the game")
	}
	return w.players[w.turn], nil
}
