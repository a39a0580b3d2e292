package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/world"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a world specification file",
	Long: `Parse a world specification and report the first problem found.

The exit status is 0 for a valid world and 1 otherwise. Problems are
classified as format (a value is not a number), missing-data (the file
ends early) or validation (the values break a rule, such as overlapping
spaces).

Examples:
  pursuit validate ./my-house.txt
  pursuit validate ./my-house.txt && pursuit play --file ./my-house.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fail("%v", err)
	}
	defer f.Close()

	w, err := world.New(f, nil, 1)
	if err != nil {
		var werr *world.Error
		if errors.As(err, &werr) {
			fmt.Printf("%s: invalid (%s error %s)\n", args[0], werr.Kind, werr.Code)
			fmt.Printf("  %s\n", werr.Message)
		} else {
			fmt.Printf("%s: invalid\n  %v\n", args[0], err)
		}
		f.Close()
		os.Exit(1)
	}

	fmt.Printf("%s: ok\n", args[0])
	fmt.Println()
	describeWorld(w)
}
