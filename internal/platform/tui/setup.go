package tui

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

// ErrNoPlayers is returned when a game would start with an empty roster.
var ErrNoPlayers = errors.New("no players configured")

// NewWorld builds a ready-to-play world. A nil spec opens the built-in
// world named by cfg.Game.World; otherwise spec is parsed as a world
// specification. The configured players join in order; a player without a
// space starts in the first space of the world.
func NewWorld(cfg config.Config, spec []byte, logger *log.Logger) (*world.World, error) {
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []world.Option{
		world.WithLogger(logger),
		world.WithMaxPlayers(cfg.Game.MaxPlayers),
	}

	var (
		w   *world.World
		err error
	)
	if spec != nil {
		w, err = world.New(bytes.NewReader(spec), cfg.Source(), cfg.Game.Turns, opts...)
	} else {
		w, err = registry.Open(cfg.Game.World, cfg.Source(), cfg.Game.Turns, opts...)
	}
	if err != nil {
		return nil, err
	}

	first := w.SpaceNames()[0]
	for _, p := range cfg.Players {
		kind, err := world.ParsePlayerKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		space := p.Space
		if space == "" {
			space = first
		}
		if err := w.AddPlayer(p.Name, space, kind); err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
	}
	return w, nil
}
