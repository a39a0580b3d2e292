package tui

import (
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/config"
)

func TestSessionConfig(t *testing.T) {
	base := config.Default()
	base.Players = []config.PlayerConfig{
		human("Bob", ""),
		computer("Hal", "Attic"),
		computer("alice", ""),
		computer("Eve", ""),
	}

	tests := []struct {
		name string
		user string
		max  int
		want []string
	}{
		{"user replaces humans", "alice", 10, []string{"alice", "Hal", "Eve"}},
		{"anonymous user", "", 10, []string{"guest", "Hal", "alice", "Eve"}},
		{"roster cap", "zed", 2, []string{"zed", "Hal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base
			b.Game.MaxPlayers = tt.max
			cfg := sessionConfig(b, tt.user)

			if len(cfg.Players) != len(tt.want) {
				t.Fatalf("players = %+v, want %v", cfg.Players, tt.want)
			}
			for i, name := range tt.want {
				if cfg.Players[i].Name != name {
					t.Errorf("player %d = %s, want %s", i, cfg.Players[i].Name, name)
				}
			}
			if cfg.Players[0].Kind != "human" {
				t.Errorf("session user should be human, got %q", cfg.Players[0].Kind)
			}
			if cfg.Players[1].Space != "Attic" {
				t.Errorf("computer lost its space: %+v", cfg.Players[1])
			}
		})
	}

	if len(base.Players) != 4 || base.Players[0].Name != "Bob" {
		t.Error("sessionConfig must not modify the base config")
	}
}
