package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pursuit/internal/random"
)

func TestChooseAction(t *testing.T) {
	human := newPlayer("Alice", 0, Human)
	cpu := newPlayer("Hal", 0, Computer)

	assert.Equal(t, 0, human.ChooseAction(random.NewCycle(7), 4))
	assert.Equal(t, 3, cpu.ChooseAction(random.NewCycle(7), 4))
	assert.Equal(t, 7, cpu.ChooseAction(random.NewCycle(7), 0))
}

func TestComputerAttacksWithStrongestItem(t *testing.T) {
	// Two picks: the draw 1 selects pick, the draw 0 selects the first item.
	w := newWorld(t, rowSpec, 10, 1, 0)
	require.NoError(t, w.AddPlayer("Hal", "East", Computer))

	msg, err := w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "The Player Hal has picked up the item Dagger from the space East", msg)

	msg, err = w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "The Player Hal has picked up the item Sword from the space East", msg)

	require.Equal(t, "East", w.TargetSpace())
	msg, err = w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "Attack completed! The target's health has decreased. Removing item...", msg)
	assert.Equal(t, 90, w.Target().Health())
	assert.Equal(t, []Item{{Name: "Dagger", Damage: 5}}, w.Players()[0].Items)
}

func TestComputerAttacksByHand(t *testing.T) {
	w := newWorld(t, mansionSpec(3), 10)
	require.NoError(t, w.AddPlayer("Hal", "Dining", Computer))

	msg, err := w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "Attack completed! The target's health has decreased.", msg)
	assert.Equal(t, 2, w.Target().Health())
}

func TestComputerDoesNotAttackWhenSeen(t *testing.T) {
	// Draw 2 selects look around.
	w := newWorld(t, mansionSpec(59), 10, 2)
	require.NoError(t, w.AddPlayer("Hal", "Dining", Computer))
	require.NoError(t, w.AddPlayer("Alice", "Dining", Human))

	msg, err := w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "The Player Hal is looking around...", msg)
	assert.Equal(t, 59, w.Target().Health())
}

func TestComputerRedrawsUnplayablePick(t *testing.T) {
	// Master Bedroom has no items, so the pick draw is skipped.
	w := newWorld(t, mansionSpec(59), 10, 1, 2)
	require.NoError(t, w.AddPlayer("Hal", "Master Bedroom", Computer))

	msg, err := w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "The Player Hal is looking around...", msg)
}

func TestComputerMoves(t *testing.T) {
	// With the pet in Dining, Master Bedroom leads to Entrance Hall or Attic.
	w := newWorld(t, mansionSpec(59), 10, 0, 1)
	require.NoError(t, w.AddPlayer("Hal", "Master Bedroom", Computer))

	msg, err := w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "The Player Hal has moved to the space Attic", msg)
}

func TestComputerMovesPet(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want string
	}{
		{"first draw", []int{3, 5}, "Pet Simba has been moved to the space Home Office"},
		{"redraw own space", []int{3, 0, 2}, "Pet Simba has been moved to the space Music Room"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, mansionSpec(59), 10, tt.seq...)
			require.NoError(t, w.AddPlayer("Hal", "Master Bedroom", Computer))

			msg, err := w.ComputerAction()
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestComputerFallsBackToLook(t *testing.T) {
	// Every draw asks for a pick in an empty room.
	w := newWorld(t, mansionSpec(59), 10, 1)
	require.NoError(t, w.AddPlayer("Hal", "Master Bedroom", Computer))

	msg, err := w.ComputerAction()
	require.NoError(t, err)
	assert.Equal(t, "The Player Hal is looking around...", msg)
}

func TestComputerActionRejectsHuman(t *testing.T) {
	w := newWorld(t, mansionSpec(59), 10)
	addPlayers(t, w, [2]string{"Alice", "Dining"})

	_, err := w.ComputerAction()
	assert.ErrorIs(t, err, ErrState)
	assert.Equal(t, "HUMAN_TURN", CodeOf(err))
}
