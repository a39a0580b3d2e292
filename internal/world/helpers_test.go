package world

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pursuit/internal/random"
)

// mansionSpec is an 8-space map. Bathroom has no neighbours.
//
//	0 Dining         -> Master Bedroom, Music Room, Home Office
//	1 Master Bedroom -> Dining, Entrance Hall, Attic
//	2 Music Room     -> Dining, Home Office
//	3 Garage         -> Entrance Hall
//	4 Bathroom       -> (none)
//	5 Home Office    -> Dining, Music Room, Attic
//	6 Entrance Hall  -> Master Bedroom, Garage, Attic
//	7 Attic          -> Master Bedroom, Home Office, Entrance Hall
func mansionSpec(health int) string {
	return fmt.Sprintf("35 32 My World\n %d Dr. Lucky\n Simba\n 8\n"+
		" 4 10 11 12 Dining\n"+
		"4 4 9 9 Master Bedroom\n"+
		" 4 13 6 19 Music Room\n"+
		" 17 0 24 3 Garage\n"+
		"17 13 20 19 Bathroom\n"+
		" 0 10 3 18 Home Office\n"+
		" 2 0 16 3 Entrance Hall\n"+
		" 0 4 3 9 Attic\n"+
		" 3\n"+
		" 3 10 Pan\n"+
		" 4 7 Broom\n"+
		" 5 15 Knife\n", health)
}

// rowSpec is three rooms in a row; items lie in East.
const rowSpec = "5 15 Row\n100 Boss\nCat\n3\n" +
	"0 0 4 4 West\n" +
	"0 5 4 9 Middle\n" +
	"0 10 4 14 East\n" +
	"2\n" +
	"2 5 Dagger\n" +
	"2 10 Sword\n"

// closetSpec is a single room holding more items than anyone can carry.
const closetSpec = "10 10 Closet\n5 Lucky\nRex\n1\n0 0 9 9 Room\n6\n" +
	"0 1 a\n0 1 b\n0 1 c\n0 1 d\n0 1 e\n0 1 f\n"

func newWorld(t *testing.T, spec string, turns int, seq ...int) *World {
	t.Helper()
	var src random.Source = random.NewCycle(seq...)
	w, err := New(strings.NewReader(spec), src, turns)
	require.NoError(t, err)
	return w
}

func addPlayers(t *testing.T, w *World, players ...[2]string) {
	t.Helper()
	for _, p := range players {
		require.NoError(t, w.AddPlayer(p[0], p[1], Human))
	}
}
