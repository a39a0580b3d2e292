package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/world"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	want := Default()
	// An empty YAML list decodes to an empty, non-nil slice.
	cfg.Random.Sequence = nil
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := `
game:
  turns: 5
  world: manor
random:
  sequence: [3, 1, 4]
players:
  - name: Ann
    space: Hall
  - name: Bot
    kind: computer
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.Turns != 5 || cfg.Game.World != "manor" {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Game.MaxPlayers != 10 {
		t.Errorf("missing max_players should keep default 10, got %d", cfg.Game.MaxPlayers)
	}
	if cfg.Map.CellWidth != 2 || cfg.Map.CellHeight != 1 {
		t.Errorf("missing map section should keep defaults, got %+v", cfg.Map)
	}
	if len(cfg.Players) != 2 || cfg.Players[0].Space != "Hall" || cfg.Players[1].Kind != "computer" {
		t.Errorf("players = %+v", cfg.Players)
	}

	src := cfg.Source()
	if !src.Deterministic() {
		t.Fatal("a configured sequence should give a deterministic source")
	}
	for _, want := range []int{3, 1, 4, 3} {
		if got := src.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("game:\n  turns: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "game.turns") {
		t.Errorf("zero turns should be rejected, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"zero turns", func(c *Config) { c.Game.Turns = 0 }, "game.turns"},
		{"zero max players", func(c *Config) { c.Game.MaxPlayers = 0 }, "game.max_players"},
		{"no world", func(c *Config) { c.Game.World = "" }, "game.world"},
		{"negative sequence", func(c *Config) { c.Random.Sequence = []int{1, -2} }, "random.sequence[1]"},
		{"zero cell", func(c *Config) { c.Map.CellWidth = 0 }, "map cells"},
		{"negative offset", func(c *Config) { c.Map.OffsetY = -1 }, "map offsets"},
		{"negative delay", func(c *Config) { c.Computer.DelayMS = -5 }, "computer.delay_ms"},
		{"too many players", func(c *Config) { c.Game.MaxPlayers = 1; c.Players = append(c.Players, PlayerConfig{Name: "Ann"}) }, "game.max_players is 1"},
		{"unnamed player", func(c *Config) { c.Players[0].Name = "" }, "players[0].name"},
		{"duplicate player", func(c *Config) { c.Players = append(c.Players, PlayerConfig{Name: "Hal"}) }, "duplicate name"},
		{"bad kind", func(c *Config) { c.Players[0].Kind = "robot" }, "BAD_PLAYER_KIND"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()
	cfg.Map = MapConfig{CellWidth: 3, CellHeight: 2, OffsetX: 1, OffsetY: 4}
	cfg.Computer.DelayMS = 250

	if got := cfg.Layout(); got != (world.Layout{CellW: 3, CellH: 2, OffsetX: 1, OffsetY: 4}) {
		t.Errorf("Layout() = %+v", got)
	}
	if got := cfg.ComputerDelay(); got != 250*time.Millisecond {
		t.Errorf("ComputerDelay() = %v", got)
	}
	if cfg.Source().Deterministic() {
		t.Error("no sequence should give a seeded source")
	}

	cfg.Log.Level = "debug"
	if got := cfg.LogLevel(); got != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", got)
	}
	cfg.Log.Level = ""
	if got := cfg.LogLevel(); got != log.InfoLevel {
		t.Errorf("empty LogLevel() = %v, want info", got)
	}
}
