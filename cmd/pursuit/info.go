package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/random"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
	"github.com/vovakirdan/tui-pursuit/internal/world"
)

var infoCmd = &cobra.Command{
	Use:   "info <world>",
	Short: "Describe a built-in world",
	Long: `Print the spaces of a world with their corners, neighbours and items.

Examples:
  pursuit info mansion
  pursuit info manor`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	id := args[0]
	if !registry.Exists(id) {
		fmt.Fprintln(os.Stderr, "Run 'pursuit list' to see available worlds.")
		fail("unknown world %q", id)
	}

	w, err := registry.Open(id, random.NewCycle(0), 1)
	if err != nil {
		fail("%v", err)
	}
	describeWorld(w)
}

// describeWorld prints a world summary followed by one block per space.
func describeWorld(w *world.World) {
	fmt.Println(w)
	fmt.Printf("Target %s starts in %s; pet %s starts in %s.\n",
		w.Target().Name(), w.TargetSpace(), w.Pet().Name(), w.PetSpace())
	fmt.Println()

	for i, s := range w.Spaces() {
		neighbours, _ := w.Neighbors(s.Name())
		items := make([]string, len(s.Items()))
		for j, it := range s.Items() {
			items[j] = fmt.Sprintf("%s (%d)", it.Name, it.Damage)
		}

		fmt.Printf("%2d  %s  [%d,%d]-[%d,%d]\n", i, s.Name(),
			s.TopLeft().X, s.TopLeft().Y, s.BottomRight().X, s.BottomRight().Y)
		fmt.Printf("    neighbours: %s\n", orNone(neighbours))
		fmt.Printf("    items:      %s\n", orNone(items))
	}
}

func orNone(list []string) string {
	if len(list) == 0 {
		return "none"
	}
	return strings.Join(list, ", ")
}
