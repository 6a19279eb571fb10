package scratch

import (
	"testing"
	"time"

	"github.com/vovakirdan/scratchcat/internal/config"
	"github.com/vovakirdan/scratchcat/internal/sched"
)

const ms = time.Millisecond

// newTestController builds a controller whose attack always comes after wait.
func newTestController(wait time.Duration, opts ...Option) *Controller {
	opts = append([]Option{WithWait(func() time.Duration { return wait })}, opts...)
	return NewController(sched.New(), config.DefaultScratchConfig(), 1, opts...)
}

func TestInitialState(t *testing.T) {
	c := newTestController(4000 * ms)

	if c.State() != StateIdle {
		t.Errorf("initial state = %v, expected idle", c.State())
	}
	if c.TotalScore() != 0 || c.SessionScore() != 0 {
		t.Error("scores should start at zero")
	}
	if c.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, expected 0 when idle", c.PendingTimers())
	}
	if c.Shaking() {
		t.Error("should not shake initially")
	}
}

func TestHoldReleasedWhileScratching(t *testing.T) {
	c := newTestController(4000 * ms)

	if !c.Press() {
		t.Fatal("Press() from idle should start a hold")
	}
	c.Advance(1000 * ms) // 20 ticks of 50ms, warning is at 3300ms

	if c.State() != StateScratching {
		t.Fatalf("state = %v, expected scratching", c.State())
	}
	if c.SessionScore() != 20 {
		t.Fatalf("SessionScore() = %d, expected 20", c.SessionScore())
	}

	gain := c.Release()
	if gain != 20 {
		t.Errorf("Release() gain = %d, expected 20", gain)
	}
	if c.TotalScore() != 20 {
		t.Errorf("TotalScore() = %d, expected 20", c.TotalScore())
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v, expected idle", c.State())
	}
	if c.SessionScore() != 0 {
		t.Errorf("session should be discarded, got %d", c.SessionScore())
	}
}

func TestHoldReleasedDuringWarningDoubles(t *testing.T) {
	c := newTestController(1000 * ms) // warning at 300ms, attack at 1000ms

	c.Press()
	c.Advance(300 * ms)
	if c.State() != StateWarning {
		t.Fatalf("state at 300ms = %v, expected warning", c.State())
	}
	if c.Multiplier() != 2 {
		t.Errorf("Multiplier() = %g during warning, expected 2", c.Multiplier())
	}

	c.Advance(50 * ms)
	if c.SessionScore() != 7 {
		t.Fatalf("SessionScore() at 350ms = %d, expected 7", c.SessionScore())
	}

	if gain := c.Release(); gain != 14 {
		t.Errorf("Release() gain = %d, expected 14", gain)
	}
	if c.TotalScore() != 14 {
		t.Errorf("TotalScore() = %d, expected 14", c.TotalScore())
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v, expected idle", c.State())
	}
}

func TestAttackThenReleaseEndsRun(t *testing.T) {
	c := newTestController(1000 * ms)

	// Bank something first so we can see the total is untouched
	c.Press()
	c.Advance(100 * ms)
	c.Release()
	before := c.TotalScore()

	c.Press()
	c.Advance(1000 * ms)
	if c.State() != StateAttack {
		t.Fatalf("state = %v, expected attack", c.State())
	}
	if !c.Shaking() {
		t.Error("attack should raise the shake flag")
	}

	if gain := c.Release(); gain != 0 {
		t.Errorf("release during attack gained %d", gain)
	}
	if c.State() != StateGameOver {
		t.Errorf("state = %v, expected game over", c.State())
	}
	if c.TotalScore() != before {
		t.Errorf("TotalScore() = %d, expected unchanged %d", c.TotalScore(), before)
	}
	if c.SessionScore() != 0 {
		t.Errorf("session should be discarded, got %d", c.SessionScore())
	}
}

func TestResetFromGameOver(t *testing.T) {
	c := newTestController(1000 * ms)

	c.Press()
	c.Advance(200 * ms)
	c.Release()
	c.Press()
	c.Advance(1000 * ms)
	c.Release()

	if c.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", c.State())
	}
	if c.TotalScore() == 0 {
		t.Fatal("test setup should bank points before the attack")
	}

	if !c.Reset() {
		t.Fatal("Reset() from game over should succeed")
	}
	if c.TotalScore() != 0 {
		t.Errorf("TotalScore() = %d after reset, expected 0", c.TotalScore())
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v after reset, expected idle", c.State())
	}
	if c.Stats() != (Stats{}) {
		t.Errorf("stats should reset with the total, got %+v", c.Stats())
	}
}

func TestResetIgnoredOutsideGameOver(t *testing.T) {
	c := newTestController(4000 * ms)
	c.Press()
	c.Advance(500 * ms)
	c.Release()
	total := c.TotalScore()

	if c.Reset() {
		t.Error("Reset() from idle should be ignored")
	}

	c.Press()
	if c.Reset() {
		t.Error("Reset() while scratching should be ignored")
	}
	if c.TotalScore() != total || c.State() != StateScratching {
		t.Error("ignored reset changed the game")
	}
}

func TestPressIgnoredDuringAttackAndGameOver(t *testing.T) {
	c := newTestController(1000 * ms)
	c.Press()
	c.Advance(100 * ms)
	c.Release()
	c.Press()
	c.Advance(1000 * ms)

	check := func(want State) {
		t.Helper()
		total, session := c.TotalScore(), c.SessionScore()
		if c.Press() {
			t.Errorf("Press() in %v should be ignored", want)
		}
		if c.State() != want {
			t.Errorf("state changed to %v, expected %v", c.State(), want)
		}
		if c.TotalScore() != total || c.SessionScore() != session {
			t.Errorf("press in %v changed scores", want)
		}
	}

	check(StateAttack)
	c.Advance(2 * time.Second)
	check(StateAttack)

	c.Release()
	check(StateGameOver)
}

func TestPressWhileHoldingIsIgnored(t *testing.T) {
	c := newTestController(4000 * ms)
	c.Press()
	c.Advance(200 * ms)

	if c.Press() {
		t.Error("second Press() during a hold should be ignored")
	}
	if c.SessionScore() != 4 {
		t.Errorf("second press reset the session to %d", c.SessionScore())
	}
	if c.PendingTimers() != 2 {
		t.Errorf("PendingTimers() = %d, expected 2", c.PendingTimers())
	}
}

func TestSessionZeroAfterPress(t *testing.T) {
	c := newTestController(4000 * ms)

	for i := 0; i < 3; i++ {
		c.Press()
		if c.SessionScore() != 0 {
			t.Fatalf("hold %d: session = %d right after press", i, c.SessionScore())
		}
		c.Advance(time.Duration(i+1) * 170 * ms)
		c.Release()
	}
}

func TestReleaseWhenIdleIsNoop(t *testing.T) {
	c := newTestController(4000 * ms)
	if gain := c.Release(); gain != 0 || c.State() != StateIdle {
		t.Error("release from idle should do nothing")
	}
}

func TestTimerInvariants(t *testing.T) {
	c := newTestController(1000 * ms)

	c.Press()
	if c.PendingTimers() != 2 {
		t.Errorf("scratching: PendingTimers() = %d, expected 2", c.PendingTimers())
	}

	c.Advance(400 * ms)
	if c.State() != StateWarning || c.PendingTimers() != 2 {
		t.Errorf("warning: state %v, PendingTimers() = %d, expected 2", c.State(), c.PendingTimers())
	}

	c.Release()
	if c.PendingTimers() != 0 {
		t.Errorf("idle: PendingTimers() = %d, expected 0", c.PendingTimers())
	}

	c.Press()
	c.Advance(1000 * ms)
	if c.State() != StateAttack || c.PendingTimers() != 0 {
		t.Errorf("attack: state %v, PendingTimers() = %d, expected 0", c.State(), c.PendingTimers())
	}
}

func TestReleaseCancelsTimers(t *testing.T) {
	var transitions []State
	c := newTestController(1000*ms, WithObserver(func(_, to State) {
		transitions = append(transitions, to)
	}))

	c.Press()
	c.Advance(100 * ms)
	c.Release()

	// Well past both timers: neither may fire for the finished hold
	c.Advance(5 * time.Second)

	if c.State() != StateIdle {
		t.Fatalf("stale timer fired: state = %v", c.State())
	}
	expected := []State{StateScratching, StateIdle}
	if len(transitions) != len(expected) {
		t.Fatalf("transitions = %v, expected %v", transitions, expected)
	}
	for i := range expected {
		if transitions[i] != expected[i] {
			t.Errorf("transition %d = %v, expected %v", i, transitions[i], expected[i])
		}
	}
	if c.Shaking() {
		t.Error("cancelled attack raised the shake flag")
	}
}

func TestScoringStopsOutsideHold(t *testing.T) {
	c := newTestController(1000 * ms)
	c.Press()
	c.Advance(200 * ms)
	c.Release()

	c.Advance(time.Second)
	if c.SessionScore() != 0 {
		t.Errorf("session grew while idle: %d", c.SessionScore())
	}

	c.Press()
	c.Advance(1000 * ms)
	frozen := c.SessionScore()
	c.Advance(time.Second)
	if c.SessionScore() != frozen {
		t.Errorf("session grew during attack: %d -> %d", frozen, c.SessionScore())
	}
}

func TestWarningPrecedesAttackByLead(t *testing.T) {
	waits := []time.Duration{1000 * ms, 1234 * ms, 2500 * ms, 3999 * ms}

	for _, wait := range waits {
		t.Run(wait.String(), func(t *testing.T) {
			clock := sched.New()
			var warnAt, attackAt time.Duration
			c := NewController(clock, config.DefaultScratchConfig(), 1,
				WithWait(func() time.Duration { return wait }),
				WithObserver(func(_, to State) {
					switch to {
					case StateWarning:
						warnAt = clock.Now()
					case StateAttack:
						attackAt = clock.Now()
					}
				}),
			)

			c.Press()
			c.Advance(5 * time.Second)

			if attackAt != wait {
				t.Errorf("attack at %v, expected %v", attackAt, wait)
			}
			if attackAt-warnAt != 700*ms {
				t.Errorf("attack came %v after warning, expected 700ms", attackAt-warnAt)
			}
		})
	}
}

func TestDefaultWaitRange(t *testing.T) {
	clock := sched.New()
	cfg := config.DefaultScratchConfig()

	for seed := int64(1); seed <= 200; seed++ {
		var attackAt time.Duration
		start := clock.Now()
		c := NewController(clock, cfg, seed, WithObserver(func(_, to State) {
			if to == StateAttack {
				attackAt = clock.Now() - start
			}
		}))

		c.Press()
		c.Advance(5 * time.Second)

		if attackAt < time.Second || attackAt >= 4*time.Second {
			t.Fatalf("seed %d: attack after %v, outside [1s, 4s)", seed, attackAt)
		}
	}
}

func TestMultiplierFloor(t *testing.T) {
	cfg := config.DefaultScratchConfig()
	cfg.Scoring.WarningMultiplier = 2.5
	c := NewController(sched.New(), cfg, 1, WithWait(func() time.Duration { return 1000 * ms }))

	c.Press()
	c.Advance(350 * ms) // 7 points, in warning

	if gain := c.Release(); gain != 17 {
		t.Errorf("gain = %d, expected floor(7*2.5) = 17", gain)
	}
}

func TestShakePulseExpires(t *testing.T) {
	c := newTestController(1000 * ms)
	c.Press()
	c.Advance(1000 * ms)

	if !c.Shaking() {
		t.Fatal("shake should start with the attack")
	}
	c.Advance(250 * ms)
	if p := c.ShakeProgress(); p < 0.49 || p > 0.51 {
		t.Errorf("ShakeProgress() = %g halfway through, expected 0.5", p)
	}

	c.Advance(249 * ms)
	if !c.Shaking() {
		t.Error("shake ended early")
	}
	c.Advance(1 * ms)
	if c.Shaking() {
		t.Error("shake should clear after 500ms")
	}
	if c.State() != StateAttack {
		t.Errorf("shake expiry changed state to %v", c.State())
	}
}

func TestShakeIndependentOfState(t *testing.T) {
	c := newTestController(1000 * ms)
	c.Press()
	c.Advance(1000 * ms)
	c.Release() // game over while still shaking

	if c.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", c.State())
	}
	if !c.Shaking() {
		t.Error("shake should outlive the state change")
	}
}

func TestStats(t *testing.T) {
	c := newTestController(1000 * ms)

	c.Press()
	c.Advance(100 * ms) // 2 points, plain
	c.Release()

	c.Press()
	c.Advance(400 * ms) // 8 points, doubled
	c.Release()

	s := c.Stats()
	if s.Holds != 2 || s.Cashouts != 1 || s.BestGain != 16 {
		t.Errorf("Stats() = %+v, expected 2 holds, 1 cashout, best 16", s)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateIdle:       "idle",
		StateScratching: "scratching",
		StateWarning:    "warning",
		StateAttack:     "attack",
		StateGameOver:   "gameover",
		State(42):       "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, expected %q", s, s.String(), want)
		}
	}
}
