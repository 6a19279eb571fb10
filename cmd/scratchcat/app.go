package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/scratchcat/internal/assets"
	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/core"
	"github.com/vovakirdan/scratchcat/internal/games/scratch"
	"github.com/vovakirdan/scratchcat/internal/platform/tui"
	"github.com/vovakirdan/scratchcat/internal/storage"
)

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so without --log they log to fallback (io.Discard for play).
// The returned close func releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for commands that exit on setup errors.
func mustLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(fallback, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// mustPreset parses a preset name or exits.
func mustPreset(name string) config.DifficultyPreset {
	preset, err := config.ParsePreset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'scratchcat list' to see difficulty presets.")
		os.Exit(1)
	}
	return preset
}

// openStore opens the board. Play goes on without one if it fails.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// gameFactory loads the art once, from --art-dir or the config's assets.dir,
// and the config per preset so every game sees the same file.
func gameFactory(logger *log.Logger) tui.GameFactory {
	base, err := config.LoadScratch(flagConfig)
	if err != nil {
		logger.Warn("could not load config for art directory", "error", err)
		base = config.DefaultScratchConfig()
	}
	art := assets.Load(base.ArtDir(flagArtDir), logger)
	return func(preset config.DifficultyPreset) (tui.Game, error) {
		cfg, err := config.Load(flagConfig, preset)
		if err != nil {
			return nil, err
		}
		return scratch.New(cfg, preset, art, logger), nil
	}
}
