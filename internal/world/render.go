package world

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// Layout maps world cells onto a character screen. One world cell is
// CellW characters wide and CellH characters tall; the whole map is
// shifted by the offsets. World columns run left to right and world rows
// top to bottom.
type Layout struct {
	CellW   int
	CellH   int
	OffsetX int
	OffsetY int
}

// DefaultLayout doubles the width so that cells look roughly square in a
// terminal.
var DefaultLayout = Layout{CellW: 2, CellH: 1}

func (l Layout) normalized() Layout {
	if l.CellW < 1 {
		l.CellW = 1
	}
	if l.CellH < 1 {
		l.CellH = 1
	}
	return l
}

// MapSize returns the screen size needed to draw the whole map.
func (w *World) MapSize(l Layout) (width, height int) {
	l = l.normalized()
	return l.OffsetX + w.columns*l.CellW, l.OffsetY + w.rows*l.CellH
}

func (w *World) spaceRect(s *Space, l Layout) core.Rect {
	return core.NewRect(
		l.OffsetX+s.topLeft.Y*l.CellW,
		l.OffsetY+s.topLeft.X*l.CellH,
		(s.bottomRight.Y-s.topLeft.Y+1)*l.CellW,
		(s.bottomRight.X-s.topLeft.X+1)*l.CellH,
	)
}

// Render draws every space as a labelled box. The current player's space
// is highlighted. Markers on the bottom line of each box show the target
// (T), the pet (@) and players by their initials.
func (w *World) Render(dst *core.Screen, l Layout) {
	l = l.normalized()
	dst.Clear()

	current := -1
	if len(w.players) > 0 && !w.gameOver {
		current = w.players[w.turn].space
	}

	view := core.NewRect(0, 0, dst.Width(), dst.Height())
	for i, s := range w.spaces {
		r := w.spaceRect(s, l)
		if !r.Intersects(view) {
			continue
		}
		border := core.ColorGray
		if i == current {
			border = core.ColorBrightYellow
		}
		dst.DrawBox(r, border)

		inner := r.W - 2
		if inner <= 0 || r.H < 3 {
			continue
		}

		// The last inner line is kept for markers when there is room.
		nameLines := r.H - 2
		if r.H >= 4 {
			nameLines--
		}
		for line, word := range strings.Fields(s.name) {
			if line >= nameLines {
				break
			}
			rs := []rune(word)
			word = string(rs[:core.Min(len(rs), inner)])
			dst.DrawText(r.X+1, r.Y+1+line, word, core.ColorCyan)
		}

		w.drawMarkers(dst, r, i)
	}
}

func (w *World) drawMarkers(dst *core.Screen, r core.Rect, idx int) {
	if r.H < 4 {
		return
	}
	x := r.X + 1
	y := r.Bottom() - 2
	limit := r.Right() - 1

	put := func(ch rune, c core.Color) {
		if x < limit {
			dst.SetColored(x, y, ch, c)
			x++
		}
	}

	if w.target.space == idx {
		put('T', core.ColorBrightRed)
	}
	if w.pet.space == idx {
		put('@', core.ColorMagenta)
	}
	for _, p := range w.players {
		if p.space != idx {
			continue
		}
		c := core.ColorBrightGreen
		if p.kind == Computer {
			c = core.ColorBlue
		}
		put(initial(p.name), c)
	}
}

func initial(name string) rune {
	for _, r := range name {
		return unicode.ToUpper(r)
	}
	return '?'
}

// SpaceAt returns the space drawn at screen position (x, y).
func (w *World) SpaceAt(l Layout, x, y int) (string, bool) {
	l = l.normalized()
	for _, s := range w.spaces {
		if w.spaceRect(s, l).Contains(x, y) {
			return s.name, true
		}
	}
	return "", false
}
