package world

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pursuit/internal/random"
)

// MaxItems is the inventory capacity of every player.
const MaxItems = 5

// PlayerKind tags who drives a player.
type PlayerKind uint8

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

// ParsePlayerKind accepts "human" or "computer" in any case.
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "":
		return Human, nil
	case "computer", "cpu":
		return Computer, nil
	}
	return Human, validationErr("BAD_PLAYER_KIND", "unknown player kind %q", s)
}

// Player is a participant. Identity is the name.
type Player struct {
	name      string
	space     int
	inventory []Item
	kind      PlayerKind
}

func newPlayer(name string, space int, kind PlayerKind) *Player {
	return &Player{name: name, space: space, kind: kind}
}

// Name returns the player name.
func (p *Player) Name() string { return p.name }

// Space returns the index of the space the player stands in.
func (p *Player) Space() int { return p.space }

// Kind returns the player kind.
func (p *Player) Kind() PlayerKind { return p.kind }

// Items returns a copy of the inventory.
func (p *Player) Items() []Item {
	return append([]Item(nil), p.inventory...)
}

// ChooseAction draws an action number from src. Humans choose through the
// UI, so for them the result is always 0. For computers the draw is reduced
// modulo when modulo is positive, even when src replays a fixed sequence,
// so a replayed value can never fall outside the action range.
func (p *Player) ChooseAction(src random.Source, modulo int) int {
	if p.kind != Computer {
		return 0
	}
	n := src.Next()
	if modulo <= 0 {
		return n
	}
	return n % modulo
}

func (p *Player) full() bool {
	return len(p.inventory) >= MaxItems
}

func (p *Player) addItem(it Item) error {
	if p.full() {
		return stateErr("INVENTORY_FULL", "player %s cannot carry more than %d items", p.name, MaxItems)
	}
	p.inventory = append(p.inventory, it)
	return nil
}

func (p *Player) dropItem(name string) (Item, bool) {
	var it Item
	var ok bool
	p.inventory, it, ok = removeItem(p.inventory, name)
	return it, ok
}

// strongest returns the item with the highest damage, first one on ties.
func (p *Player) strongest() (Item, bool) {
	if len(p.inventory) == 0 {
		return Item{}, false
	}
	best := p.inventory[0]
	for _, it := range p.inventory[1:] {
		if it.Damage > best.Damage {
			best = it
		}
	}
	return best, true
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(Name = %s, Kind = %s)", p.name, p.kind)
}
