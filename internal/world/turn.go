package world

import (
	"fmt"
	"slices"
)

// neighbors lists, in declaration order, the spaces sharing a wall with
// space idx. With excludePet set, the pet's space is never listed.
func (w *World) neighbors(idx int, excludePet bool) []int {
	var out []int
	for j, s := range w.spaces {
		if j == idx {
			continue
		}
		if excludePet && j == w.pet.space {
			continue
		}
		if w.spaces[idx].Adjacent(s) {
			out = append(out, j)
		}
	}
	return out
}

func (w *World) isNeighbor(from, to int) bool {
	return slices.Contains(w.neighbors(from, true), to)
}

// visible reports whether two players can see each other: same space, or
// spaces that are neighbours in both directions while the pet is counted.
func (w *World) visible(a, b *Player) bool {
	if a.space == b.space {
		return true
	}
	// Both directions are checked, so the pet hides a player from either side.
	return w.isNeighbor(a.space, b.space) && w.isNeighbor(b.space, a.space)
}

// seenBy returns the first other player who can see p.
func (w *World) seenBy(p *Player) (*Player, bool) {
	for _, o := range w.players {
		if o != p && w.visible(o, p) {
			return o, true
		}
	}
	return nil, false
}

// advance runs the bookkeeping shared by every completed action: the
// target steps, the pet wanders unless a player just moved it, and the
// turn passes on. A wrap to the first player ends a round.
func (w *World) advance(wander bool) {
	w.target.step(len(w.spaces))
	if wander {
		w.wander()
	}

	w.turn++
	if w.turn >= len(w.players) {
		w.turn = 0
		w.turns--
	}
	if w.turns <= 0 {
		w.turns = 0
		w.gameOver = true
		w.logger.Info("game ended in a draw", "world", w.name)
	}

	w.logger.Debug("turn advanced",
		"next", w.players[w.turn].name,
		"turnsLeft", w.turns,
		"target", w.spaces[w.target.space].name,
		"pet", w.spaces[w.pet.space].name,
	)
}

// wander moves the pet one step of a depth-first walk over the map. An
// unvisited neighbour is preferred; otherwise the pet backtracks; when
// both are exhausted the walk starts over from where the pet stands.
func (w *World) wander() {
	cur := w.pet.space
	for attempt := 0; attempt < 2; attempt++ {
		for _, n := range w.neighbors(cur, false) {
			if w.visited[n] {
				continue
			}
			if !slices.Contains(w.backtrack, cur) {
				w.backtrack = append(w.backtrack, cur)
			}
			w.visited[cur] = true
			w.pet.space = n
			return
		}

		if last := len(w.backtrack) - 1; last >= 0 {
			prev := w.backtrack[last]
			w.backtrack = w.backtrack[:last]
			w.visited[cur] = true
			w.pet.space = prev
			return
		}

		clear(w.visited)
	}
	// A space without neighbours keeps the pet where it is.
}

func (w *World) resetWander() {
	clear(w.visited)
	w.backtrack = nil
}

// TurnsRemaining returns how many rounds are left.
func (w *World) TurnsRemaining() int {
	return w.turns
}

// GameOver returns "" while the game is live. Once it has concluded it
// returns the win or draw message, on every call.
func (w *World) GameOver() string {
	if !w.gameOver {
		return ""
	}
	if w.winner != "" {
		return fmt.Sprintf("Game is completed. %s has won the game!", w.winner)
	}
	return "Game ended in a draw!"
}
