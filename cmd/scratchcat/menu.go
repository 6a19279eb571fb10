package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/platform/tui"
	"github.com/vovakirdan/scratchcat/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty and Enter to play.
Press B or Esc in a game to come back here, Tab for high scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  scratchcat menu
  scratchcat menu --fps 30
  scratchcat menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset := mustPreset(flagDifficulty)

	logger, closeLog := mustLogger(io.Discard, "scratchcat")
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	menuLoop(store, gameFactory(logger), preset, logger)
}

// menuLoop alternates menu, scoreboard and game programs until the user quits.
func menuLoop(store *storage.Store, newGame tui.GameFactory, preset config.DifficultyPreset, logger *log.Logger) {
	base, err := config.LoadScratch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, base, preset, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, preset, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		preset = result.Preset
		game, err := newGame(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("starting game", "board", game.ID(), "seed", cfg.Seed)

		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
