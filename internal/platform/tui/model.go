package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/core"
	"github.com/vovakirdan/scratchcat/internal/storage"
)

// Game is what the platform needs from a game.
type Game interface {
	Clickable

	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// maxFrameDelta caps how much game time one tick may advance, so a stalled
// terminal or SSH link does not fast-forward the game.
const maxFrameDelta = 250 * time.Millisecond

// GameFactory builds a fresh game for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) (Game, error)

// Model is the Bubble Tea model for one running game.
type Model struct {
	id         uint64
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       GameKeyMap
	inputFrame core.InputFrame
	lastTick   time.Time // Wall time of the previous tick
	gameState  core.GameState
	shotDir    string
	embedded   bool // Back leaves the model instead of quitting the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a model for the given game. A nil store plays without a
// board and a nil logger discards.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		id:         nextModelID(),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
		shotDir:    defaultScreenshotDir(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MapMouse(msg, m.game); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Model != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Leaving mid-hold would skip the attack
		if m.gameState.Holding {
			return m, nil
		}
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame, m.elapsed(now))
	if !now.IsZero() {
		m.lastTick = now
	}
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordRun()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.id, m.config.TickRate)
}

// elapsed is the game time a tick at now covers: the wall time since the
// previous tick, capped at maxFrameDelta. The first tick covers one interval.
func (m Model) elapsed(now time.Time) time.Duration {
	if m.lastTick.IsZero() || now.IsZero() {
		return tickInterval(m.config.TickRate)
	}
	dt := now.Sub(m.lastTick)
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}

// recordRun saves a finished run. Failures are logged and play goes on.
func (m *Model) recordRun() {
	st := m.gameState
	m.logger.Info("run over", "board", m.game.ID(), "score", st.Score, "holds", st.Holds)
	if m.store == nil || st.Score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		Board:    m.game.ID(),
		Score:    st.Score,
		Holds:    st.Holds,
		Cashouts: st.Cashouts,
		BestGain: st.BestGain,
	})
	if err != nil {
		m.logger.Warn("could not save run", "board", m.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", filepath.Base(m.game.ID()), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".scratchcat", "screenshots")
	}
	return filepath.Join(home, ".scratchcat", "screenshots")
}

// View renders the game screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// programOptions are shared by local and SSH play. Cell motion reporting
// is what delivers mouse releases.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// Run plays the game until the user quits or asks for the menu.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), programOptions()...)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
