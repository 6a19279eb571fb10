package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scratchcat/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play the game",
	Long: `Start playing straight away.

Controls:
  Mouse        - Hold the button on the cat, let go to bank the points
  Space/Enter  - Grab or let go (for terminals without mouse support)
  R            - Try again (after the cat attacks)
  B/Esc        - Back to the menu (when not holding)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - The cat waits longer and warns you a full second ahead
  normal - The default timings from the config
  hard   - Shorter fuse, shorter warning, 2.5x payout for nerve

Examples:
  scratchcat play
  scratchcat play hard
  scratchcat play --config ./my-scratch.yaml
  scratchcat play --seed 42 --log scratch.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	name := flagDifficulty
	if len(args) == 1 {
		name = args[0]
	}
	preset := mustPreset(name)

	logger, closeLog := mustLogger(io.Discard, "scratchcat")
	defer closeLog()

	newGame := gameFactory(logger)
	game, err := newGame(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Info("starting game", "board", game.ID(), "seed", cfg.Seed)

	backToMenu, err := tui.Run(game, store, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return
	}

	if backToMenu {
		menuLoop(store, newGame, preset, logger)
	}
}
