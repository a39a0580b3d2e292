package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/random"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

const pairSpec = "10 10 Pair\n3 Lucky\nRex\n2\n0 0 4 4 Left\n0 5 4 9 Right\n1\n1 4 Rope\n"

func TestRegisterAndOpen(t *testing.T) {
	Register("test-pair", "Pair of Rooms", []byte(pairSpec))

	if !Exists("test-pair") {
		t.Fatal("registered world should exist")
	}
	if Exists("test-missing") {
		t.Error("unregistered world should not exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-pair" {
			found = info.Title == "Pair of Rooms"
		}
	}
	if !found {
		t.Error("List() should include the registered world with its title")
	}

	w, err := Open("test-pair", random.NewCycle(0), 3)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if w.Name() != "Pair" || len(w.SpaceNames()) != 2 {
		t.Errorf("opened world = %s", w)
	}
}

func TestSpecReturnsCopy(t *testing.T) {
	Register("test-copy", "Copy", []byte(pairSpec))

	spec, err := Spec("test-copy")
	if err != nil {
		t.Fatal(err)
	}
	spec[0] = 'X'

	again, _ := Spec("test-copy")
	if string(again) != pairSpec {
		t.Error("mutating a returned spec changed the registry")
	}
}

func TestUnknownWorld(t *testing.T) {
	if _, err := Spec("test-nope"); err == nil {
		t.Error("Spec of unknown world should fail")
	}
	if _, err := Open("test-nope", nil, 1); err == nil {
		t.Error("Open of unknown world should fail")
	}
}

func TestOpenInvalidSpec(t *testing.T) {
	Register("test-broken", "Broken", []byte("10 10 Broken\n0 Lucky\nRex\n1\n0 0 1 1 Room\n0\n"))

	_, err := Open("test-broken", nil, 1)
	if !errors.Is(err, world.ErrValidation) {
		t.Errorf("expected wrapped validation error, got %v", err)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("test-dup", "Dup", []byte(pairSpec))

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("test-dup", "Dup", []byte(pairSpec))
}
