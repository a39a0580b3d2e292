package main

import (
	"os"
	"strings"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

// parsePlayerFlag reads "name" or "name@space".
func parsePlayerFlag(spec, kind string) config.PlayerConfig {
	name, space, _ := strings.Cut(spec, "@")
	return config.PlayerConfig{
		Name:  strings.TrimSpace(name),
		Space: strings.TrimSpace(space),
		Kind:  kind,
	}
}

// withoutKind drops every player of the given kind.
func withoutKind(players []config.PlayerConfig, kind string) []config.PlayerConfig {
	want, err := world.ParsePlayerKind(kind)
	if err != nil {
		return players
	}
	out := make([]config.PlayerConfig, 0, len(players))
	for _, p := range players {
		if k, err := world.ParsePlayerKind(p.Kind); err == nil && k == want {
			continue
		}
		out = append(out, p)
	}
	return out
}

// hasHuman reports whether anyone in the roster is played by a person.
func hasHuman(players []config.PlayerConfig) bool {
	for _, p := range players {
		if k, err := world.ParsePlayerKind(p.Kind); err == nil && k == world.Human {
			return true
		}
	}
	return false
}

// localUser names the human when no --player is given.
func localUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "Player"
}
