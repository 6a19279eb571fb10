package scratch

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/sched"
)

// Stats summarises the current run. Reset together with the total.
type Stats struct {
	Holds    int // Holds banked by a release before the attack
	Cashouts int // Of those, holds released during the warning
	BestGain int // Largest single banked gain
}

// Controller is the interaction state machine.
// It owns the game state, both scores, the pending timers and the shake
// pulse. All methods must be called from one goroutine; time only passes
// through Advance.
type Controller struct {
	clock   *sched.Scheduler
	timing  config.ScratchTiming
	scoring config.ScratchScoring
	wait    func() time.Duration
	logger  *log.Logger
	observe func(from, to State)

	state   State
	total   int
	session int
	stats   Stats

	warningTimer sched.Handle
	attackTimer  sched.Handle
	scorer       sched.Handle
	shake        Pulse
}

// Option customises a Controller.
type Option func(*Controller)

// WithWait replaces the random attack delay sampler.
func WithWait(fn func() time.Duration) Option {
	return func(c *Controller) { c.wait = fn }
}

// WithLogger sets the logger used for transition debugging.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers a callback for every state change.
func WithObserver(fn func(from, to State)) Option {
	return func(c *Controller) { c.observe = fn }
}

// NewController creates a controller in the idle state.
// The default attack delay is uniform over [MinWait, MaxWait), drawn from
// a source seeded with seed.
func NewController(clock *sched.Scheduler, cfg config.ScratchConfig, seed int64, opts ...Option) *Controller {
	c := &Controller{
		clock:   clock,
		timing:  cfg.Timing,
		scoring: cfg.Scoring,
		logger:  log.New(io.Discard),
		state:   StateIdle,
	}
	c.shake = Pulse{clock: clock}

	rng := rand.New(rand.NewSource(seed))
	lo, hi := cfg.Timing.MinWait(), cfg.Timing.MaxWait()
	c.wait = func() time.Duration {
		if hi <= lo {
			return lo
		}
		return lo + time.Duration(rng.Int63n(int64(hi-lo)))
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Press starts a hold. Ignored during an attack, after game over, and while
// a hold is already running. Returns true if a hold started.
func (c *Controller) Press() bool {
	if c.state != StateIdle {
		return false
	}

	c.session = 0
	c.setState(StateScratching)

	total := c.wait()
	c.warningTimer = c.clock.After(total-c.timing.WarningLead(), c.onWarning)
	c.attackTimer = c.clock.After(total, c.onAttack)
	c.scorer = c.clock.Every(c.timing.ScoreInterval(), c.onScoreTick)

	c.logger.Debug("hold started", "attack_in", total, "warning_in", total-c.timing.WarningLead())
	return true
}

// Release ends the current hold. During a hold it cancels both timers,
// then banks the session (multiplied during the warning) and returns the
// gain. During an attack it ends the run. Otherwise it does nothing.
func (c *Controller) Release() int {
	switch {
	case c.state.Holding():
		c.cancelTimers()

		risky := c.state == StateWarning
		gain := c.session
		if risky {
			gain = int(math.Floor(float64(c.session) * c.scoring.WarningMultiplier))
		}

		c.total += gain
		c.session = 0
		c.stats.Holds++
		if risky {
			c.stats.Cashouts++
		}
		c.stats.BestGain = max(c.stats.BestGain, gain)

		c.logger.Debug("hold banked", "gain", gain, "multiplied", risky, "total", c.total)
		c.setState(StateIdle)
		return gain

	case c.state == StateAttack:
		c.session = 0
		c.setState(StateGameOver)
	}
	return 0
}

// Reset starts a new run after game over. Returns false in any other state.
func (c *Controller) Reset() bool {
	if c.state != StateGameOver {
		return false
	}
	c.total = 0
	c.session = 0
	c.stats = Stats{}
	c.setState(StateIdle)
	return true
}

// Advance lets d of game time pass, firing any timers that fall due.
func (c *Controller) Advance(d time.Duration) {
	c.clock.Advance(d)
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// TotalScore returns the banked score of the run.
func (c *Controller) TotalScore() int { return c.total }

// SessionScore returns the points of the hold in progress.
func (c *Controller) SessionScore() int { return c.session }

// Stats returns the run statistics.
func (c *Controller) Stats() Stats { return c.stats }

// Shaking reports whether the shake pulse is up.
func (c *Controller) Shaking() bool { return c.shake.On() }

// ShakeProgress returns how far through the pulse we are, in [0, 1).
func (c *Controller) ShakeProgress() float64 { return c.shake.Progress() }

// Multiplier returns the factor a release would apply right now.
func (c *Controller) Multiplier() float64 {
	if c.state == StateWarning {
		return c.scoring.WarningMultiplier
	}
	return 1
}

// PendingTimers counts the timer handles owned by the current hold: two from
// press until the hold ends (a fired warning stays owned until then), zero
// otherwise.
func (c *Controller) PendingTimers() int {
	n := 0
	if c.warningTimer != 0 {
		n++
	}
	if c.attackTimer != 0 {
		n++
	}
	return n
}

func (c *Controller) onWarning() {
	if c.state == StateScratching {
		c.setState(StateWarning)
	}
}

func (c *Controller) onAttack() {
	c.warningTimer, c.attackTimer = 0, 0
	if !c.state.Holding() {
		return
	}
	c.setState(StateAttack)
	c.shake.Trigger(c.timing.Shake())
}

func (c *Controller) onScoreTick() {
	if !c.state.Holding() {
		return
	}
	c.session += c.scoring.PointsPerTick
}

// cancelTimers drops both one-shot timers.
func (c *Controller) cancelTimers() {
	c.clock.Cancel(c.warningTimer)
	c.clock.Cancel(c.attackTimer)
	c.warningTimer, c.attackTimer = 0, 0
}

// setState switches state. Leaving the holding states stops the scoring tick.
func (c *Controller) setState(to State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to

	if from.Holding() && !to.Holding() {
		c.clock.Cancel(c.scorer)
		c.scorer = 0
	}

	c.logger.Debug("transition", "from", from, "to", to, "at", c.clock.Now())
	if c.observe != nil {
		c.observe(from, to)
	}
}

// Pulse is a self-clearing flag: Trigger raises it for a fixed duration.
// Triggering again while up restarts the duration.
type Pulse struct {
	clock   *sched.Scheduler
	expiry  sched.Handle
	started time.Duration
	length  time.Duration
}

// Trigger raises the flag for d.
func (p *Pulse) Trigger(d time.Duration) {
	p.clock.Cancel(p.expiry)
	if d <= 0 {
		p.expiry = 0
		return
	}
	p.started = p.clock.Now()
	p.length = d
	p.expiry = p.clock.After(d, func() { p.expiry = 0 })
}

// On reports whether the flag is up.
func (p *Pulse) On() bool {
	return p.expiry != 0 && p.clock.Active(p.expiry)
}

// Progress returns the elapsed fraction of the pulse, or 0 when down.
func (p *Pulse) Progress() float64 {
	if !p.On() || p.length <= 0 {
		return 0
	}
	return float64(p.clock.Now()-p.started) / float64(p.length)
}
