// Package registry provides a global registry of world specifications.
// Built-in worlds register themselves in init() functions, allowing the
// platform to discover and load maps without hardcoded dependencies.
package registry

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pursuit/internal/random"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID    string
	Title string
}

var (
	specs  = make(map[string][]byte)
	titles = make(map[string]string)
	mu     sync.RWMutex
)

// Register adds a world specification to the registry.
// Typically called from an init() function.
// Panics if a world with the same ID is already registered.
func Register(id, title string, spec []byte) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := specs[id]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", id))
	}

	specs[id] = bytes.Clone(spec)
	titles[id] = title
}

// List returns information about all registered worlds, sorted by ID.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(specs))
	for id := range specs {
		result = append(result, WorldInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Spec returns a copy of the specification text of a world.
// Returns an error if the world ID is not registered.
func Spec(id string) ([]byte, error) {
	mu.RLock()
	defer mu.RUnlock()

	spec, ok := specs[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown world %q", id)
	}
	return bytes.Clone(spec), nil
}

// Open parses a registered world into a fresh game.
func Open(id string, src random.Source, turns int, opts ...world.Option) (*world.World, error) {
	spec, err := Spec(id)
	if err != nil {
		return nil, err
	}
	w, err := world.New(bytes.NewReader(spec), src, turns, opts...)
	if err != nil {
		return nil, fmt.Errorf("registry: world %q: %w", id, err)
	}
	return w, nil
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := specs[id]
	return ok
}
