package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in worlds",
	Long:  `Shows every world compiled into pursuit.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, w := range worlds {
		if len(w.ID) > maxIDLen {
			maxIDLen = len(w.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, w := range worlds {
		fmt.Printf("  %-*s  %s\n", maxIDLen, w.ID, w.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pursuit play <id>' to play, or 'pursuit info <id>' for its map.")
}
