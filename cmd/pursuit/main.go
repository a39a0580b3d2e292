// pursuit is a turn-based pursuit game for the terminal: players roam a
// mansion, collect weapons and try to take down its owner unseen.
//
// Usage:
//
//	pursuit list               - List built-in worlds
//	pursuit info <world>       - Describe a world's spaces
//	pursuit validate <file>    - Check a world specification file
//	pursuit play [world]       - Play a game
//	pursuit serve              - Start SSH server for remote play
//	pursuit history            - Show finished games and winners
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search ~/.pursuit/configs, ./configs)
//	--db <path>       - History database (default: ~/.pursuit/history.db)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/config"

	// Import worlds to register them
	_ "github.com/vovakirdan/tui-pursuit/internal/worlds"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Game flags shared by play and serve
	flagTurns     int
	flagSeed      int64
	flagWorld     string
	flagComputers []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Pursuit - hunt the master of the house in your terminal",
	Long: `Pursuit is a turn-based game played on the map of a house.
Players take turns to move between rooms, pick up weapons, look around,
move the master's pet and attack the master when nobody is watching.
The first player to bring the master's health to zero wins; when the
turns run out the game is a draw.

Available commands:
  list      - Show the built-in worlds
  info      - Describe a world
  validate  - Check a world specification file
  play      - Play a game in this terminal
  serve     - Start SSH server for remote play
  history   - Show finished games and winners

Examples:
  pursuit list
  pursuit play mansion --player Alice --computer Hal
  pursuit play --file ./my-house.txt --turns 30
  pursuit serve --ssh :2222
  pursuit history -i`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pursuit/history.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().IntVar(&flagTurns, "turns", 0, "Rounds before the game is a draw (0 = config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for computer players (0 = config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "", "Built-in world id (default from config)")
	rootCmd.PersistentFlags().StringArrayVar(&flagComputers, "computer", nil, "Computer player as name or name@space (repeatable)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the config file and applies the command line on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("turns") {
		cfg.Game.Turns = flagTurns
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = flagSeed
		cfg.Random.Sequence = nil
	}
	if flags.Changed("world") {
		cfg.Game.World = flagWorld
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("computer") {
		cfg.Players = withoutKind(cfg.Players, "computer")
		for _, spec := range flagComputers {
			cfg.Players = append(cfg.Players, parsePlayerFlag(spec, "computer"))
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger at the configured level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pursuit",
	})
	logger.SetLevel(cfg.LogLevel())
	return logger
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
