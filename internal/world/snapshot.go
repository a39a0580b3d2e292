package world

import "slices"

// Snapshot is a value copy of the mutable game state. Two worlds fed the
// same specification, roster, random sequence and actions produce equal
// snapshots.
type Snapshot struct {
	Turn      int
	TurnsLeft int
	GameOver  bool
	Winner    string

	TargetHealth int
	TargetSpace  int
	PetSpace     int

	Players    []PlayerState
	SpaceItems [][]Item

	// Pet wander state, visited spaces sorted ascending.
	Visited   []int
	Backtrack []int
}

// PlayerState is the per-player part of a Snapshot.
type PlayerState struct {
	Name  string
	Space int
	Kind  PlayerKind
	Items []Item
}

// Snapshot returns the current state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:         w.turn,
		TurnsLeft:    w.turns,
		GameOver:     w.gameOver,
		Winner:       w.winner,
		TargetHealth: w.target.health,
		TargetSpace:  w.target.space,
		PetSpace:     w.pet.space,
		Players:      make([]PlayerState, len(w.players)),
		SpaceItems:   make([][]Item, len(w.spaces)),
		Backtrack:    slices.Clone(w.backtrack),
	}

	for i, p := range w.players {
		snap.Players[i] = PlayerState{Name: p.name, Space: p.space, Kind: p.kind, Items: p.Items()}
	}
	for i, s := range w.spaces {
		snap.SpaceItems[i] = s.Items()
	}
	for idx, ok := range w.visited {
		if ok {
			snap.Visited = append(snap.Visited, idx)
		}
	}
	slices.Sort(snap.Visited)

	return snap
}
