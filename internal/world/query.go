package world

import (
	"fmt"
	"strings"
)

// PlayerInfo is a read-only view of a player.
type PlayerInfo struct {
	Name  string
	Space string
	Kind  PlayerKind
	Items []Item
}

// TurnInfo is the context of the turn about to be played.
type TurnInfo struct {
	Player      string
	Kind        PlayerKind
	Space       string
	TargetSpace string
}

func (w *World) playerInfo(p *Player) PlayerInfo {
	return PlayerInfo{
		Name:  p.name,
		Space: w.spaces[p.space].name,
		Kind:  p.kind,
		Items: p.Items(),
	}
}

// Players lists the roster in turn order.
func (w *World) Players() []PlayerInfo {
	out := make([]PlayerInfo, len(w.players))
	for i, p := range w.players {
		out[i] = w.playerInfo(p)
	}
	return out
}

// PlayerInfo describes one player:
//
//	Name: Alice
//	Current space: Dining
//	Items carrying:
//	None
//	Is Human player: Yes
func (w *World) PlayerInfo(name string) (string, error) {
	p, err := w.player(name)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", p.name)
	fmt.Fprintf(&sb, "Current space: %s\n", w.spaces[p.space].name)
	sb.WriteString("Items carrying:\n")
	if len(p.inventory) == 0 {
		sb.WriteString("None")
	} else {
		sb.WriteString(joinItems(p.inventory))
	}
	if p.kind == Human {
		sb.WriteString("\nIs Human player: Yes")
	} else {
		sb.WriteString("\nIs Human player: No")
	}
	return sb.String(), nil
}

// TurnInfo returns the current player, their kind and space, and the
// target's space.
func (w *World) TurnInfo() (TurnInfo, error) {
	if len(w.players) == 0 {
		return TurnInfo{}, stateErr("NO_PLAYERS", "no players have joined the game")
	}
	p := w.players[w.turn]
	return TurnInfo{
		Player:      p.name,
		Kind:        p.kind,
		Space:       w.spaces[p.space].name,
		TargetSpace: w.spaces[w.target.space].name,
	}, nil
}

// SpaceNames lists every space in declaration order.
func (w *World) SpaceNames() []string {
	out := make([]string, len(w.spaces))
	for i, s := range w.spaces {
		out[i] = s.name
	}
	return out
}

// Coordinates returns the inclusive corners of the named space.
func (w *World) Coordinates(space string) (topLeft, bottomRight Point, err error) {
	idx, err := w.spaceIndex(space)
	if err != nil {
		return Point{}, Point{}, err
	}
	s := w.spaces[idx]
	return s.topLeft, s.bottomRight, nil
}

// CurrentSpaceItems names the items lying in the current player's space.
func (w *World) CurrentSpaceItems() ([]string, error) {
	if len(w.players) == 0 {
		return nil, stateErr("NO_PLAYERS", "no players have joined the game")
	}
	return itemNames(w.spaces[w.players[w.turn].space].items), nil
}

// CurrentPlayerItems names the current player's weapons. The list always
// ends with Hand.
func (w *World) CurrentPlayerItems() ([]string, error) {
	if len(w.players) == 0 {
		return nil, stateErr("NO_PLAYERS", "no players have joined the game")
	}
	return append(itemNames(w.players[w.turn].inventory), Hand), nil
}

// PetSpace names the space the pet stands in.
func (w *World) PetSpace() string {
	return w.spaces[w.pet.space].name
}

// TargetSpace names the space the target stands in.
func (w *World) TargetSpace() string {
	return w.spaces[w.target.space].name
}

// Neighbors names the spaces sharing a wall with the named space, leaving
// out the pet's space.
func (w *World) Neighbors(space string) ([]string, error) {
	idx, err := w.spaceIndex(space)
	if err != nil {
		return nil, err
	}
	return w.names(w.neighbors(idx, true)), nil
}

// Visible reports whether two players can see each other.
func (w *World) Visible(a, b string) (bool, error) {
	pa, err := w.player(a)
	if err != nil {
		return false, err
	}
	pb, err := w.player(b)
	if err != nil {
		return false, err
	}
	return w.visible(pa, pb), nil
}

// SpaceInfo describes a space: its items, neighbours, occupants and
// whether the target or the pet is there.
func (w *World) SpaceInfo(space string) (string, error) {
	idx, err := w.spaceIndex(space)
	if err != nil {
		return "", err
	}
	return w.spaceInfo(idx), nil
}

func (w *World) spaceInfo(idx int) string {
	s := w.spaces[idx]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", s.name)

	sb.WriteString("All Items in space:\n")
	if len(s.items) == 0 {
		sb.WriteString("No items in space\n")
	}
	for _, it := range s.items {
		sb.WriteString(it.String())
		sb.WriteString("\n")
	}

	sb.WriteString("All neighbouring spaces:\n")
	if n := w.neighbors(idx, true); len(n) > 0 {
		sb.WriteString(strings.Join(w.names(n), ", "))
	} else {
		sb.WriteString("No neighbouring spaces")
	}

	sb.WriteString("\nAll players in the space:\n")
	var here []string
	for _, p := range w.players {
		if p.space == idx {
			here = append(here, p.name)
		}
	}
	if len(here) == 0 {
		sb.WriteString("No players in space")
	} else {
		sb.WriteString(strings.Join(here, ", "))
	}

	if w.target.space == idx {
		fmt.Fprintf(&sb, "\nThe target %s is currently present in this space with health %d.",
			w.target.name, w.target.health)
	}
	if w.pet.space == idx {
		fmt.Fprintf(&sb, "\nThe pet %s is currently present in this space.", w.pet.name)
	}
	return sb.String()
}

func (w *World) names(idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = w.spaces[j].name
	}
	return out
}

func joinItems(items []Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

// String returns "World(rows = 35, columns = 32, name = My World,
// Target name = Dr. Lucky, Number of spaces = 8)".
func (w *World) String() string {
	return fmt.Sprintf("World(rows = %d, columns = %d, name = %s, Target name = %s, Number of spaces = %d)",
		w.rows, w.columns, w.name, w.target.name, len(w.spaces))
}
