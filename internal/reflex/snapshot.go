package reflex

// Snapshot captures the full engine state for determinism testing, replay
// comparison and the simulate command's trace output.
type Snapshot struct {
	Tick          uint64
	State         State
	Score         uint8
	ActivePattern uint8
	LockoutMask   uint8
	SessionLeft   uint16
	RoundLeft     uint16
	RoundRestart  bool
	ShiftA        uint16
	ShiftB        uint16
	InputAcc      uint8
	TierIndex     int
	Targets       uint8
	RoundsWon     int
	RoundsMissed  int
}

// Snapshot returns a value capture of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	tier := e.policy.TierFor(e.fsm.Score())
	return Snapshot{
		Tick:          e.tick,
		State:         e.fsm.State(),
		Score:         e.fsm.Score(),
		ActivePattern: e.fsm.Pattern(),
		LockoutMask:   e.fsm.Lockout(),
		SessionLeft:   e.session.Remaining(),
		RoundLeft:     e.round.Remaining(),
		RoundRestart:  e.fsm.RestartRequested(),
		ShiftA:        e.entropy.shiftA,
		ShiftB:        e.entropy.shiftB,
		InputAcc:      e.entropy.acc,
		TierIndex:     e.policy.Index(e.fsm.Score()),
		Targets:       tier.Targets,
		RoundsWon:     e.roundsWon,
		RoundsMissed:  e.roundsMissed,
	}
}
