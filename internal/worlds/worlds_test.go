package worlds

import (
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/random"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

func TestBuiltinsLoad(t *testing.T) {
	tests := []struct {
		id     string
		name   string
		spaces int
	}{
		{"mansion", "Lucky Mansion", 8},
		{"manor", "Blackwood Manor", 14},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w, err := registry.Open(tt.id, random.NewCycle(0), 5)
			if err != nil {
				t.Fatalf("built-in world does not load: %v", err)
			}
			if w.Name() != tt.name {
				t.Errorf("name = %q, want %q", w.Name(), tt.name)
			}
			if got := len(w.SpaceNames()); got != tt.spaces {
				t.Errorf("spaces = %d, want %d", got, tt.spaces)
			}
		})
	}
}

func TestManorIsConnected(t *testing.T) {
	w, err := registry.Open("manor", random.NewCycle(0), 5)
	if err != nil {
		t.Fatal(err)
	}

	// Walk from the pet's space; neighbour lists never include it.
	start := w.SpaceNames()[0]
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next, err := w.Neighbors(cur)
		if err != nil {
			t.Fatal(err)
		}
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	if len(seen) != len(w.SpaceNames()) {
		t.Errorf("reached %d of %d spaces", len(seen), len(w.SpaceNames()))
	}
}
