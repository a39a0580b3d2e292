package world

import "fmt"

// Point is a map cell. X counts rows down the map and Y counts columns
// across it, the order used by world specification files.
type Point struct {
	X, Y int
}

// Space is a named rectangle of map cells. Both corners are inclusive.
// The rectangle never changes after load; only the item bag does.
type Space struct {
	name        string
	topLeft     Point
	bottomRight Point
	items       []Item
}

// NewSpace validates and creates a space holding a copy of items.
func NewSpace(name string, topLeft, bottomRight Point, items []Item) (*Space, error) {
	if name == "" {
		return nil, validationErr("EMPTY_NAME", "name of the space cannot be empty")
	}
	if topLeft.X < 0 || topLeft.Y < 0 || bottomRight.X < 0 || bottomRight.Y < 0 {
		return nil, validationErr("NEGATIVE_COORDINATE", "space %q has a negative coordinate", name)
	}
	if topLeft.X > bottomRight.X || topLeft.Y > bottomRight.Y {
		return nil, validationErr("INVERTED_SPACE", "space %q has its top-left corner after its bottom-right corner", name)
	}

	return &Space{
		name:        name,
		topLeft:     topLeft,
		bottomRight: bottomRight,
		items:       append([]Item(nil), items...),
	}, nil
}

// Name returns the space name.
func (s *Space) Name() string {
	return s.name
}

// TopLeft returns the inclusive top-left cell.
func (s *Space) TopLeft() Point {
	return s.topLeft
}

// BottomRight returns the inclusive bottom-right cell.
func (s *Space) BottomRight() Point {
	return s.bottomRight
}

// Items returns a copy of the items lying in the space.
func (s *Space) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Overlaps reports whether two spaces share at least one cell.
// Spaces that only sit side by side do not overlap.
func (s *Space) Overlaps(o *Space) bool {
	return s.topLeft.X <= o.bottomRight.X && o.topLeft.X <= s.bottomRight.X &&
		s.topLeft.Y <= o.bottomRight.Y && o.topLeft.Y <= s.bottomRight.Y
}

// Adjacent reports whether two spaces share a wall of positive length:
// one ends on the row or column just before the other starts, and their
// ranges along the wall overlap by more than a corner.
func (s *Space) Adjacent(o *Space) bool {
	overlapX := o.topLeft.X < s.bottomRight.X && o.bottomRight.X > s.topLeft.X
	overlapY := o.topLeft.Y < s.bottomRight.Y && o.bottomRight.Y > s.topLeft.Y

	switch {
	case s.bottomRight.Y+1 == o.topLeft.Y && overlapX:
		return true
	case o.bottomRight.Y+1 == s.topLeft.Y && overlapX:
		return true
	case s.bottomRight.X+1 == o.topLeft.X && overlapY:
		return true
	case o.bottomRight.X+1 == s.topLeft.X && overlapY:
		return true
	}
	return false
}

// takeItem removes the named item from the space.
func (s *Space) takeItem(name string) (Item, bool) {
	var it Item
	var ok bool
	s.items, it, ok = removeItem(s.items, name)
	return it, ok
}

// String returns "Space(Name = Hall, Top left = (0, 0), Bottom right = (3, 9))".
func (s *Space) String() string {
	return fmt.Sprintf("Space(Name = %s, Top left = (%d, %d), Bottom right = (%d, %d))",
		s.name, s.topLeft.X, s.topLeft.Y, s.bottomRight.X, s.bottomRight.Y)
}
