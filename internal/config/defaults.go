package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the hard-coded configuration used when no YAML can be read.
func Default() Config {
	return Config{
		Game: GameConfig{
			Turns:      20,
			MaxPlayers: 10,
			World:      "mansion",
		},
		Map: MapConfig{
			CellWidth:  2,
			CellHeight: 1,
		},
		Computer: ComputerConfig{
			DelayMS: 600,
		},
		Players: []PlayerConfig{
			{Name: "Hal", Kind: "computer"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
