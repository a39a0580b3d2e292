package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished games and the best players",
	Long: `Display the most recent games and the players with the most wins.

Examples:
  pursuit history
  pursuit history --limit 50
  pursuit history -i          # browse games and their actions`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = tw
			height = th
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	games, err := store.RecentGames(flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving games: %v", err)
	}

	fmt.Println("Recent games")
	fmt.Println()
	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pursuit play' to record the first one!")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-9s  %-12s  %s\n", "Date", "World", "Outcome", "Winner", "Players")
	fmt.Printf("  %-16s  %-10s  %-9s  %-12s  %s\n", "----", "-----", "-------", "------", "-------")
	for _, g := range games {
		names := make([]string, len(g.Players))
		for i, p := range g.Players {
			names[i] = p.Name
		}
		winner := g.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %-16s  %-10s  %-9s  %-12s  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.World, g.Outcome, winner, strings.Join(names, ", "))
	}

	wins, err := store.Wins(5)
	if err != nil || len(wins) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Most wins")
	for i, w := range wins {
		fmt.Printf("  %d. %-12s %d\n", i+1, w.Player, w.Wins)
	}
}
