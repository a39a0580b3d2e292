package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/platform/tui"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pursuit SSH server",
	Long: `Start an SSH server where every connection plays its own game.

The SSH user name becomes the human player; the computer players from the
config (or --computer) join every game. Finished games go to the shared
history database, so 'pursuit history' shows everyone's results.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pursuit/host_key

Examples:
  pursuit serve                           # Listen on :23234 with auto-generated key
  pursuit serve --ssh :2222 --world manor
  pursuit serve --computer Hal --computer Ava --turns 40

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	game, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if !registry.Exists(game.Game.World) {
		fail("unknown world %q", game.Game.World)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
	}

	server, err := tui.NewSSHServer(cfg, newLogger(game))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting pursuit SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
