// Package worlds registers the built-in world specifications.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-pursuit/internal/worlds"
package worlds

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

//go:embed specs/*.txt
var specs embed.FS

var builtins = []struct {
	id    string
	title string
	file  string
}{
	{"mansion", "Dr. Lucky's Mansion", "specs/mansion.txt"},
	{"manor", "Blackwood Manor", "specs/manor.txt"},
}

func init() {
	for _, b := range builtins {
		data, err := specs.ReadFile(b.file)
		if err != nil {
			panic(fmt.Sprintf("worlds: missing embedded spec %s: %v", b.file, err))
		}
		registry.Register(b.id, b.title, data)
	}
}
