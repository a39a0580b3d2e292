package world

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// layout is a fully parsed and validated world specification. It is built
// aside and only installed into a World once every check has passed.
type layout struct {
	rows, columns int
	name          string
	target        *Target
	pet           *Pet
	spaces        []*Space
}

// tokenReader reads whitespace-separated integers and rest-of-line strings
// from a world specification.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// Int skips any whitespace, newlines included, and parses the next token.
func (t *tokenReader) Int(what string) (int, error) {
	var sb strings.Builder
	for {
		c, _, err := t.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, missingErr("cannot read %s: %v", what, err)
		}
		if unicode.IsSpace(c) {
			if sb.Len() > 0 {
				_ = t.r.UnreadRune()
				break
			}
			continue
		}
		sb.WriteRune(c)
	}

	if sb.Len() == 0 {
		return 0, missingErr("world specification ended before %s", what)
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, formatErr("%s must be an integer, got %q", what, sb.String())
	}
	return n, nil
}

// Line returns the remainder of the current line with surrounding blanks
// removed. Reading at end of input is a missing-data error.
func (t *tokenReader) Line(what string) (string, error) {
	s, err := t.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", missingErr("cannot read %s: %v", what, err)
	}
	if errors.Is(err, io.EOF) && s == "" {
		return "", missingErr("world specification ended before %s", what)
	}
	return strings.TrimSpace(s), nil
}

// parseLayout reads a world specification:
//
//	rows columns worldName
//	targetHealth targetName
//	petName
//	spaceCount
//	topLeftX topLeftY bottomRightX bottomRightY spaceName   (spaceCount times)
//	itemCount
//	spaceIndex damage itemName                              (itemCount times)
func parseLayout(r io.Reader) (*layout, error) {
	tr := newTokenReader(r)
	l := &layout{}

	var err error
	if l.rows, err = tr.Int("rows"); err != nil {
		return nil, err
	}
	if l.columns, err = tr.Int("columns"); err != nil {
		return nil, err
	}
	if l.name, err = tr.Line("world name"); err != nil {
		return nil, err
	}

	health, err := tr.Int("target health")
	if err != nil {
		return nil, err
	}
	targetName, err := tr.Line("target name")
	if err != nil {
		return nil, err
	}
	petName, err := tr.Line("pet name")
	if err != nil {
		return nil, err
	}

	spaceCount, err := tr.Int("space count")
	if err != nil {
		return nil, err
	}
	if _, err := tr.Line("space count"); err != nil {
		return nil, err
	}
	if spaceCount < 0 {
		return nil, validationErr("BAD_COUNT", "space count cannot be negative, got %d", spaceCount)
	}

	type rawSpace struct {
		tl, br Point
		name   string
	}
	// The declared count is untrusted; a short stream ends in a missing-data error.
	var raws []rawSpace
	for i := 0; i < spaceCount; i++ {
		var rs rawSpace
		if rs.tl.X, err = tr.Int("space top-left row"); err != nil {
			return nil, err
		}
		if rs.tl.Y, err = tr.Int("space top-left column"); err != nil {
			return nil, err
		}
		if rs.br.X, err = tr.Int("space bottom-right row"); err != nil {
			return nil, err
		}
		if rs.br.Y, err = tr.Int("space bottom-right column"); err != nil {
			return nil, err
		}
		if rs.name, err = tr.Line("space name"); err != nil {
			return nil, err
		}
		raws = append(raws, rs)
	}

	itemCount, err := tr.Int("item count")
	if err != nil {
		return nil, err
	}
	if itemCount < 0 {
		return nil, validationErr("BAD_COUNT", "item count cannot be negative, got %d", itemCount)
	}
	// The count may be the last token of the file when there are no items.
	if itemCount > 0 {
		if _, err := tr.Line("item count"); err != nil {
			return nil, err
		}
	}

	bags := make(map[int][]Item)
	for i := 0; i < itemCount; i++ {
		idx, err := tr.Int("item space index")
		if err != nil {
			return nil, err
		}
		damage, err := tr.Int("item damage")
		if err != nil {
			return nil, err
		}
		name, err := tr.Line("item name")
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(raws) {
			return nil, validationErr("ITEM_SPACE_OUT_OF_RANGE",
				"item %q refers to space %d, world has %d spaces", name, idx, len(raws))
		}
		it, err := NewItem(name, damage)
		if err != nil {
			return nil, err
		}
		bags[idx] = append(bags[idx], it)
	}

	if l.rows <= 0 {
		return nil, validationErr("BAD_ROWS", "rows must be positive, got %d", l.rows)
	}
	if l.columns <= 0 {
		return nil, validationErr("BAD_COLUMNS", "columns must be positive, got %d", l.columns)
	}
	if l.name == "" {
		return nil, validationErr("EMPTY_NAME", "name of the world cannot be empty")
	}
	if len(raws) == 0 {
		return nil, validationErr("NO_SPACES", "world must have at least one space")
	}
	if l.target, err = NewTarget(targetName, health); err != nil {
		return nil, err
	}
	if l.pet, err = NewPet(petName); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(raws))
	for i, rs := range raws {
		sp, err := NewSpace(rs.name, rs.tl, rs.br, bags[i])
		if err != nil {
			return nil, err
		}
		if seen[sp.Name()] {
			return nil, validationErr("DUPLICATE_SPACE", "space %q is declared twice", sp.Name())
		}
		seen[sp.Name()] = true
		l.spaces = append(l.spaces, sp)
	}

	for i, a := range l.spaces {
		for _, b := range l.spaces[i+1:] {
			if a.Overlaps(b) {
				return nil, validationErr("SPACES_OVERLAP", "spaces %q and %q overlap", a.Name(), b.Name())
			}
		}
	}

	return l, nil
}
