// Package config provides YAML-based game configuration loading for the
// pursuit game.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/random"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

// Config is the full game configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Random   RandomConfig   `yaml:"random"`
	Map      MapConfig      `yaml:"map"`
	Computer ComputerConfig `yaml:"computer"`
	Players  []PlayerConfig `yaml:"players"`
	Log      LogConfig      `yaml:"log"`
}

// GameConfig defines the rules of a game.
type GameConfig struct {
	Turns      int    `yaml:"turns"`       // Rounds before a draw
	MaxPlayers int    `yaml:"max_players"` // Roster cap
	World      string `yaml:"world"`       // Built-in world id
}

// RandomConfig selects the random source used by computer players.
type RandomConfig struct {
	Seed     int64 `yaml:"seed"`     // 0 = seed from the clock
	Sequence []int `yaml:"sequence"` // Non-empty = replay in a loop
}

// MapConfig defines how world cells are drawn in the terminal.
type MapConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	OffsetX    int `yaml:"offset_x"`
	OffsetY    int `yaml:"offset_y"`
}

// ComputerConfig tunes computer players.
type ComputerConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

// PlayerConfig declares a player joining every game.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Space string `yaml:"space"` // Empty = first space of the world
	Kind  string `yaml:"kind"`  // "human" or "computer"
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Layout returns the map layout for the world renderer.
func (c Config) Layout() world.Layout {
	return world.Layout{
		CellW:   c.Map.CellWidth,
		CellH:   c.Map.CellHeight,
		OffsetX: c.Map.OffsetX,
		OffsetY: c.Map.OffsetY,
	}
}

// ComputerDelay returns the pause before a computer player acts.
func (c Config) ComputerDelay() time.Duration {
	return time.Duration(c.Computer.DelayMS) * time.Millisecond
}

// Source builds the random source described by the config.
func (c Config) Source() random.Source {
	return random.New(c.Random.Seed, c.Random.Sequence)
}

// LogLevel returns the configured level, info when unset.
func (c Config) LogLevel() log.Level {
	if c.Log.Level == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Game.Turns < 1 {
		return fmt.Errorf("game.turns must be at least 1, got %d", c.Game.Turns)
	}
	if c.Game.MaxPlayers < 1 {
		return fmt.Errorf("game.max_players must be at least 1, got %d", c.Game.MaxPlayers)
	}
	if c.Game.World == "" {
		return fmt.Errorf("game.world cannot be empty")
	}
	for i, n := range c.Random.Sequence {
		if n < 0 {
			return fmt.Errorf("random.sequence[%d] cannot be negative, got %d", i, n)
		}
	}
	if c.Map.CellWidth < 1 || c.Map.CellHeight < 1 {
		return fmt.Errorf("map cells must be at least 1x1, got %dx%d", c.Map.CellWidth, c.Map.CellHeight)
	}
	if c.Map.OffsetX < 0 || c.Map.OffsetY < 0 {
		return fmt.Errorf("map offsets cannot be negative, got %d,%d", c.Map.OffsetX, c.Map.OffsetY)
	}
	if c.Computer.DelayMS < 0 {
		return fmt.Errorf("computer.delay_ms cannot be negative, got %d", c.Computer.DelayMS)
	}
	if len(c.Players) > c.Game.MaxPlayers {
		return fmt.Errorf("%d players configured, game.max_players is %d", len(c.Players), c.Game.MaxPlayers)
	}

	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("players[%d].name cannot be empty", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("players[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
		if _, err := world.ParsePlayerKind(p.Kind); err != nil {
			return fmt.Errorf("players[%d]: %w", i, err)
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}
