package world

import "fmt"

// Target is the character players try to bring to zero health.
// It walks the spaces in declaration order, one step per completed action.
type Target struct {
	name   string
	health int
	space  int
}

// NewTarget creates a target standing in space 0.
func NewTarget(name string, health int) (*Target, error) {
	if name == "" {
		return nil, validationErr("EMPTY_NAME", "name of the target cannot be empty")
	}
	if health <= 0 {
		return nil, validationErr("BAD_HEALTH", "health of the target must be positive, got %d", health)
	}
	return &Target{name: name, health: health}, nil
}

// Name returns the target name.
func (t Target) Name() string { return t.name }

// Health returns the remaining health, never below zero.
func (t Target) Health() int { return t.health }

// Space returns the index of the space the target stands in.
func (t Target) Space() int { return t.space }

// hit lowers health by damage, flooring at zero.
func (t *Target) hit(damage int) {
	if damage <= 0 {
		return
	}
	t.health -= damage
	if t.health < 0 {
		t.health = 0
	}
}

// step moves the target to the next space, wrapping after the last one.
func (t *Target) step(spaceCount int) {
	if spaceCount <= 0 {
		return
	}
	t.space = (t.space + 1) % spaceCount
}

func (t *Target) String() string {
	return fmt.Sprintf("Target(Name = %s, Health = %d)", t.name, t.health)
}

// Pet roams the map. While it stands in a space, that space is hidden
// from its neighbours.
type Pet struct {
	name  string
	space int
}

// NewPet creates a pet standing in space 0.
func NewPet(name string) (*Pet, error) {
	if name == "" {
		return nil, validationErr("EMPTY_NAME", "name of the pet cannot be empty")
	}
	return &Pet{name: name}, nil
}

// Name returns the pet name.
func (p Pet) Name() string { return p.name }

// Space returns the index of the space the pet stands in.
func (p Pet) Space() int { return p.space }

func (p *Pet) String() string {
	return fmt.Sprintf("Pet(Name: %s)", p.name)
}
