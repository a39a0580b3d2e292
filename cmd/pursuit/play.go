package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

var (
	flagFile    string
	flagPlayers []string
)

var playCmd = &cobra.Command{
	Use:   "play [world]",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Type commands at the prompt:
  move <space>    pick <item>    look    pet <space>
  attack [item]   info <player>  space <name>   help   quit
Click a space on the map to move there. Computer players act on their own.

Players come from the config file unless --player or --computer is given.
Without any human player you play under your login name.

Examples:
  pursuit play
  pursuit play manor
  pursuit play --player Alice --player "Bob@Music Room" --computer Hal
  pursuit play --file ./my-house.txt --turns 30 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFile, "file", "", "Play a world specification file instead of a built-in world")
	playCmd.Flags().StringArrayVar(&flagPlayers, "player", nil, "Human player as name or name@space (repeatable)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if len(args) == 1 {
		cfg.Game.World = args[0]
	}

	if cmd.Flags().Changed("player") {
		cfg.Players = withoutKind(cfg.Players, "human")
		humans := make([]config.PlayerConfig, 0, len(flagPlayers))
		for _, spec := range flagPlayers {
			humans = append(humans, parsePlayerFlag(spec, "human"))
		}
		cfg.Players = append(humans, cfg.Players...)
	}
	if !hasHuman(cfg.Players) {
		cfg.Players = append([]config.PlayerConfig{{Name: localUser(), Kind: "human"}}, cfg.Players...)
	}
	if err := cfg.Validate(); err != nil {
		fail("invalid players: %v", err)
	}

	logger := newLogger(cfg)

	var spec []byte
	worldID := cfg.Game.World
	if flagFile != "" {
		spec, err = os.ReadFile(flagFile)
		if err != nil {
			fail("cannot read world file: %v", err)
		}
		worldID = flagFile
	} else if !registry.Exists(worldID) {
		fmt.Fprintln(os.Stderr, "Run 'pursuit list' to see available worlds.")
		fail("unknown world %q", worldID)
	}

	w, err := tui.NewWorld(cfg, spec, logger)
	if err != nil {
		fail("cannot start game: %v", err)
	}

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(w, tui.GameOptions{
		WorldID:       worldID,
		Layout:        cfg.Layout(),
		ComputerDelay: cfg.ComputerDelay(),
		Screen:        core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: cfg.Random.Seed},
		Store:         store,
		Logger:        logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
