package world

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/random"
)

func TestParseMansion(t *testing.T) {
	w, err := New(strings.NewReader(mansionSpec(59)), random.NewCycle(0), 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := "World(rows = 35, columns = 32, name = My World, Target name = Dr. Lucky, Number of spaces = 8)"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	names := w.SpaceNames()
	wantNames := []string{"Dining", "Master Bedroom", "Music Room", "Garage", "Bathroom", "Home Office", "Entrance Hall", "Attic"}
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("SpaceNames() = %v, want %v", names, wantNames)
	}

	if got := w.Target().Health(); got != 59 {
		t.Errorf("target health = %d, want 59", got)
	}
	if got := w.Pet().Name(); got != "Simba" {
		t.Errorf("pet name = %q, want Simba", got)
	}
	if w.PetSpace() != "Dining" || w.TargetSpace() != "Dining" {
		t.Errorf("pet and target should start in Dining, got %q and %q", w.PetSpace(), w.TargetSpace())
	}

	tl, br, err := w.Coordinates("Garage")
	if err != nil {
		t.Fatalf("Coordinates failed: %v", err)
	}
	if tl != (Point{17, 0}) || br != (Point{24, 3}) {
		t.Errorf("Garage corners = %v %v", tl, br)
	}

	garage := w.Spaces()[3]
	if items := garage.Items(); len(items) != 1 || items[0] != (Item{Name: "Pan", Damage: 10}) {
		t.Errorf("Garage items = %v, want [Pan 10]", items)
	}
	if items := w.Spaces()[0].Items(); len(items) != 0 {
		t.Errorf("Dining should have no items, got %v", items)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	a, err := New(strings.NewReader(mansionSpec(59)), random.NewCycle(0), 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(strings.NewReader(mansionSpec(59)), random.NewCycle(0), 10)
	if err != nil {
		t.Fatal(err)
	}

	if a.String() != b.String() {
		t.Errorf("String differs: %q vs %q", a.String(), b.String())
	}
	if !reflect.DeepEqual(a.Spaces(), b.Spaces()) {
		t.Error("spaces differ between two parses of the same text")
	}
	if a.Target() != b.Target() || a.Pet() != b.Pet() {
		t.Error("target or pet differ between two parses of the same text")
	}
}

func TestParseErrors(t *testing.T) {
	base := mansionSpec(59)

	tests := []struct {
		name string
		spec string
		kind ErrorKind
		code string
	}{
		{
			name: "non numeric rows",
			spec: strings.Replace(base, "35 32", "abc 32", 1),
			kind: KindFormat,
			code: "BAD_NUMBER",
		},
		{
			name: "non numeric damage",
			spec: strings.Replace(base, "3 10 Pan", "3 ten Pan", 1),
			kind: KindFormat,
			code: "BAD_NUMBER",
		},
		{
			name: "truncated spaces",
			spec: "35 32 My World\n 59 Dr. Lucky\n Simba\n 8\n 4 10 11 12 Dining\n",
			kind: KindMissingData,
			code: "UNEXPECTED_EOF",
		},
		{
			name: "truncated items",
			spec: strings.TrimSuffix(base, " 5 15 Knife\n"),
			kind: KindMissingData,
			code: "UNEXPECTED_EOF",
		},
		{
			name: "space count larger than the stream",
			spec: "5 5 W\n3 T\nP\n100000000000000000\n0 0 1 1 A\n",
			kind: KindMissingData,
			code: "UNEXPECTED_EOF",
		},
		{
			name: "empty input",
			spec: "",
			kind: KindMissingData,
			code: "UNEXPECTED_EOF",
		},
		{
			name: "zero rows",
			spec: strings.Replace(base, "35 32", "0 32", 1),
			kind: KindValidation,
			code: "BAD_ROWS",
		},
		{
			name: "negative columns",
			spec: strings.Replace(base, "35 32", "35 -1", 1),
			kind: KindValidation,
			code: "BAD_COLUMNS",
		},
		{
			name: "empty world name",
			spec: strings.Replace(base, "35 32 My World", "35 32", 1),
			kind: KindValidation,
			code: "EMPTY_NAME",
		},
		{
			name: "zero health",
			spec: mansionSpec(0),
			kind: KindValidation,
			code: "BAD_HEALTH",
		},
		{
			name: "empty pet name",
			spec: strings.Replace(base, " Simba\n", "\n", 1),
			kind: KindValidation,
			code: "EMPTY_NAME",
		},
		{
			name: "no spaces",
			spec: "10 10 Empty\n5 Lucky\nRex\n0\n0\n",
			kind: KindValidation,
			code: "NO_SPACES",
		},
		{
			name: "overlapping spaces",
			spec: strings.Replace(base, " 0 4 3 9 Attic", " 3 4 4 9 Attic", 1),
			kind: KindValidation,
			code: "SPACES_OVERLAP",
		},
		{
			name: "duplicate space",
			spec: strings.Replace(base, " 0 4 3 9 Attic", " 0 4 3 9 Dining", 1),
			kind: KindValidation,
			code: "DUPLICATE_SPACE",
		},
		{
			name: "inverted space",
			spec: strings.Replace(base, " 0 4 3 9 Attic", " 3 9 0 4 Attic", 1),
			kind: KindValidation,
			code: "INVERTED_SPACE",
		},
		{
			name: "item in unknown space",
			spec: strings.Replace(base, " 3 10 Pan", " 8 10 Pan", 1),
			kind: KindValidation,
			code: "ITEM_SPACE_OUT_OF_RANGE",
		},
		{
			name: "item without damage",
			spec: strings.Replace(base, " 3 10 Pan", " 3 0 Pan", 1),
			kind: KindValidation,
			code: "BAD_DAMAGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(strings.NewReader(tt.spec), random.NewCycle(0), 10)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := KindOf(err); got != tt.kind {
				t.Errorf("kind = %v, want %v (%v)", got, tt.kind, err)
			}
			if got := CodeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestTouchingSpacesAreNotOverlapping(t *testing.T) {
	spec := "10 10 Pair\n3 Lucky\nRex\n2\n0 0 4 4 Left\n0 5 4 9 Right\n0\n"
	if _, err := New(strings.NewReader(spec), random.NewCycle(0), 1); err != nil {
		t.Fatalf("side by side spaces should load, got %v", err)
	}
}

func TestNewRejectsBadTurns(t *testing.T) {
	_, err := New(strings.NewReader(mansionSpec(59)), random.NewCycle(0), 0)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	w, err := New(strings.NewReader(mansionSpec(59)), random.NewCycle(0), 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.AddPlayer("Alice", "Dining", Human); err != nil {
		t.Fatal(err)
	}

	if err := w.Load(strings.NewReader("not a world")); err == nil {
		t.Fatal("expected load to fail")
	}
	if w.Name() != "My World" || len(w.Players()) != 1 {
		t.Errorf("failed load changed the world: %s, %d players", w, len(w.Players()))
	}
}

func TestErrorsMatchByKind(t *testing.T) {
	err := stateErr("ITEM_NOT_FOUND", "gone")
	if !errors.Is(err, ErrState) {
		t.Error("state error should match ErrState")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("state error should not match ErrValidation")
	}
	if !errors.Is(err, &Error{Kind: KindState, Code: "ITEM_NOT_FOUND"}) {
		t.Error("error should match its own kind and code")
	}
	if got := err.Error(); got != "[ITEM_NOT_FOUND] gone" {
		t.Errorf("Error() = %q", got)
	}
}
