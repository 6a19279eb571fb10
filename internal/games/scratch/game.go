// Package scratch implements Scratch the Cat: hold the pointer on the cat to
// earn points, and let go before it attacks. Letting go during the warning
// doubles the hold's points.
package scratch

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scratchcat/internal/assets"
	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/core"
	"github.com/vovakirdan/scratchcat/internal/sched"
)

// Game adapts the Controller to the platform's tick loop.
type Game struct {
	cfg    config.ScratchConfig
	preset config.DifficultyPreset
	art    *assets.Catalog
	logger *log.Logger

	clock  *sched.Scheduler
	ctrl   *Controller
	held   bool // Pointer (or toggled key) is down
	width  int
	height int

	waitFn func() time.Duration // Test hook, nil in play
}

// New creates a game for the given config and preset.
// A nil catalog loads the embedded art; a nil logger discards.
func New(cfg config.ScratchConfig, preset config.DifficultyPreset, art *assets.Catalog, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if art == nil {
		art = assets.Load("", logger)
	}
	return &Game{
		cfg:    cfg,
		preset: preset,
		art:    art,
		logger: logger,
	}
}

// ID returns the score board this game records to.
func (g *Game) ID() string {
	return g.preset.Board()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Scratch the Cat (" + g.preset.Title() + ")"
}

// Reset starts a fresh session: new clock, zero total, idle cat.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.clock = sched.New()
	g.held = false
	g.width, g.height = rc.ScreenW, rc.ScreenH

	opts := []Option{
		WithLogger(g.logger),
		WithObserver(func(from, to State) {
			if to == StateAttack {
				g.logger.Info("cat attacked", "board", g.ID())
			}
		}),
	}
	if g.waitFn != nil {
		opts = append(opts, WithWait(g.waitFn))
	}
	g.ctrl = NewController(g.clock, g.cfg, rc.Seed, opts...)
}

// Resize updates the layout without touching the run.
func (g *Game) Resize(w, h int) {
	g.width, g.height = w, h
}

// Step applies this tick's input in arrival order, then advances game time
// by dt, the real time since the previous tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionPress:
			g.press()
		case core.ActionRelease:
			g.release()
		case core.ActionToggle:
			if g.held {
				g.release()
			} else {
				g.press()
			}
		case core.ActionRestart:
			if g.ctrl.Reset() {
				g.held = false
			}
		}
	}

	if dt > 0 {
		g.ctrl.Advance(dt)
	}
	return core.StepResult{State: g.State()}
}

// press only takes hold of an idle cat. Presses during the attack or after
// it leave the pointer state alone.
func (g *Game) press() {
	if g.ctrl.State() != StateIdle {
		return
	}
	g.held = g.ctrl.Press()
}

func (g *Game) release() {
	g.held = false
	g.ctrl.Release()
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := g.ctrl.State()
	stats := g.ctrl.Stats()
	return core.GameState{
		Score:    g.ctrl.TotalScore(),
		GameOver: st == StateGameOver,
		Holding:  g.held || st.Holding() || st == StateAttack,
		Holds:    stats.Holds,
		Cashouts: stats.Cashouts,
		BestGain: stats.BestGain,
	}
}

// Controller exposes the state machine, mainly for tests and debugging.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// HitRect is the clickable cat area for the current screen size.
func (g *Game) HitRect() core.Rect {
	return g.layoutFor(g.width, g.height).cat
}

// ButtonRect is the TRY AGAIN button, or an empty rect when not shown.
func (g *Game) ButtonRect() core.Rect {
	if g.ctrl == nil || g.ctrl.State() != StateGameOver {
		return core.Rect{}
	}
	return g.layoutFor(g.width, g.height).button
}
