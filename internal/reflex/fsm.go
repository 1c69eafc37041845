package reflex

// State is the FSM state. Only two values are defined; anything else is
// treated as corruption and recovered from on the next step.
type State uint8

const (
	// StateAwaitingNext latches a fresh pattern and requests a round restart.
	StateAwaitingNext State = iota
	// StateAwaitingInput judges the player's presses against the latched pattern.
	StateAwaitingInput
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAwaitingNext:
		return "awaiting_next"
	case StateAwaitingInput:
		return "awaiting_input"
	default:
		return "corrupt"
	}
}

// MaxScore is the saturation ceiling for the 8-bit score.
const MaxScore uint8 = 255

// GameFSM is the orchestrator and the only writer of the score and the
// lockout mask. Each step it consumes the candidate pattern, the
// lockout-masked input vector and the two timer flags, and updates the
// latched pattern, score, lockout and round-restart request.
type GameFSM struct {
	state   State
	pattern uint8
	lockout uint8
	score   uint8
}

// Reset forces the initial configuration: pattern cleared, score zero,
// no lockout. The restart line is asserted implicitly because it follows
// the state, which reset forces to StateAwaitingNext.
func (f *GameFSM) Reset() {
	f.state = StateAwaitingNext
	f.pattern = 0
	f.lockout = 0
	f.score = 0
}

// Step advances the FSM one tick.
//
// While the session-over flag is up every output holds its value, the
// restart line included; the game is frozen at its final score until a
// global reset. Otherwise, within a round the priority is:
// correct press > wrong press > round timeout > hold.
func (f *GameFSM) Step(candidate, pressed uint8, sessionOver, roundExpired bool) {
	if sessionOver {
		return
	}

	switch f.state {
	case StateAwaitingNext:
		f.pattern = candidate
		f.lockout = 0
		f.state = StateAwaitingInput

	case StateAwaitingInput:
		switch {
		case f.pattern != 0 && pressed&f.pattern == f.pattern:
			// Full match: score and move on. Saturates at the ceiling.
			if f.score < MaxScore {
				f.score++
			}
			f.state = StateAwaitingNext

		case pressed&^f.pattern != 0:
			// A press outside the pattern locks out exactly those lines
			// until the next pattern is latched. Overwrite, not OR.
			f.lockout = pressed

		case roundExpired:
			f.state = StateAwaitingNext
		}

	default:
		// Corrupt state value: recover deterministically.
		f.state = StateAwaitingNext
	}
}

// Pattern returns the latched active pattern.
func (f *GameFSM) Pattern() uint8 { return f.pattern }

// Lockout returns the current lockout mask.
func (f *GameFSM) Lockout() uint8 { return f.lockout }

// Score returns the committed score.
func (f *GameFSM) Score() uint8 { return f.score }

// State returns the current state.
func (f *GameFSM) State() State { return f.state }

// RestartRequested reports whether the round-restart line is asserted.
// It follows the state directly: the line is up for exactly the one tick
// the FSM spends in StateAwaitingNext (and while reset holds it there).
func (f *GameFSM) RestartRequested() bool { return f.state == StateAwaitingNext }
