package scratch

// State is the phase of the game. It drives both logic and the choice of art.
type State int

const (
	StateIdle       State = iota // Waiting for a press
	StateScratching              // Hold in progress, points accruing
	StateWarning                 // Hold in progress, multiplier active, attack imminent
	StateAttack                  // The cat struck; the next release ends the run
	StateGameOver                // Terminal until an explicit reset
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScratching:
		return "scratching"
	case StateWarning:
		return "warning"
	case StateAttack:
		return "attack"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Holding reports whether points accrue in this state.
func (s State) Holding() bool {
	return s == StateScratching || s == StateWarning
}
