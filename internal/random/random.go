// Package random provides the number source used by computer players.
// A source is either backed by math/rand or replays a fixed cyclic
// sequence so that games can be reproduced exactly in tests.
package random

import (
	"math/rand"
	"time"
)

// Bound is the exclusive upper limit of numbers drawn from a seeded source.
const Bound = 100

// Source produces non-negative integers.
type Source interface {
	// Next returns the next non-negative number.
	Next() int

	// Deterministic reports whether the source replays a fixed sequence.
	Deterministic() bool
}

// Seeded draws numbers in [0, Bound) from math/rand.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a seeded source. A zero seed uses the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next pseudo-random number.
func (s *Seeded) Next() int {
	return s.rng.Intn(Bound)
}

// Deterministic returns false.
func (s *Seeded) Deterministic() bool {
	return false
}

// Cycle replays a fixed sequence, wrapping to the start after the last value.
type Cycle struct {
	values []int
	pos    int
}

// NewCycle creates a cyclic source. Negative values are clamped to zero and
// an empty sequence always yields zero.
func NewCycle(values ...int) *Cycle {
	vals := make([]int, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		vals[i] = v
	}
	return &Cycle{values: vals}
}

// Next returns the next value of the sequence.
func (c *Cycle) Next() int {
	if len(c.values) == 0 {
		return 0
	}
	v := c.values[c.pos]
	c.pos++
	if c.pos >= len(c.values) {
		c.pos = 0
	}
	return v
}

// Deterministic returns true.
func (c *Cycle) Deterministic() bool {
	return true
}

// New picks a cyclic source when a sequence is given, otherwise a seeded one.
func New(seed int64, sequence []int) Source {
	if len(sequence) > 0 {
		return NewCycle(sequence...)
	}
	return NewSeeded(seed)
}
