package reflex

import "testing"

// stepInto latches a pattern and leaves the FSM awaiting input.
func stepInto(f *GameFSM, pattern uint8) {
	f.Reset()
	f.Step(pattern, 0, false, false)
}

func TestFSMLatchClearsLockoutAndRequestsRestart(t *testing.T) {
	var f GameFSM
	f.Reset()
	f.lockout = 0b0000110 // pretend a stale mask survived somehow

	if !f.RestartRequested() {
		t.Error("restart line should be up while awaiting the next pattern")
	}

	f.Step(0b0010100, 0, false, false)

	if f.Pattern() != 0b0010100 {
		t.Errorf("pattern = %07b, want the latched candidate", f.Pattern())
	}
	if f.Lockout() != 0 {
		t.Errorf("lockout = %08b, latch must clear it", f.Lockout())
	}
	if f.State() != StateAwaitingInput {
		t.Errorf("state = %v, want awaiting_input", f.State())
	}
	if f.RestartRequested() {
		t.Error("restart line should drop after the latch tick")
	}
}

func TestFSMCorrectMatchScores(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000101)

	f.Step(0, 0b0000101, false, false)

	if f.Score() != 1 {
		t.Errorf("score = %d, want 1", f.Score())
	}
	if f.State() != StateAwaitingNext {
		t.Errorf("state = %v, want awaiting_next", f.State())
	}
}

func TestFSMCorrectBeatsWrongOnSamePress(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000101)

	// All pattern bits plus a stray: the full match wins the priority race.
	f.Step(0, 0b0000111, false, false)

	if f.Score() != 1 {
		t.Errorf("score = %d, full match should score despite the stray bit", f.Score())
	}
	if f.Lockout() != 0 {
		t.Errorf("lockout = %08b, want none", f.Lockout())
	}
}

func TestFSMWrongPressLocksOut(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000101)

	f.Step(0, 0b0000010, false, false)

	if f.Lockout() != 0b0000010 {
		t.Errorf("lockout = %08b, want %08b", f.Lockout(), 0b0000010)
	}
	if f.State() != StateAwaitingInput {
		t.Errorf("state = %v, wrong press must not end the round", f.State())
	}
	if f.Score() != 0 {
		t.Errorf("score = %d, want 0", f.Score())
	}
}

func TestFSMLockoutOverwritesNotAccumulates(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000001)

	f.Step(0, 0b0000010, false, false)
	f.Step(0, 0b0001000, false, false)

	// Overwrite semantics: the second wrong press replaces the mask.
	if f.Lockout() != 0b0001000 {
		t.Errorf("lockout = %08b, want %08b (overwrite, not OR)", f.Lockout(), 0b0001000)
	}
}

func TestFSMTimeoutEndsRoundWithoutScoring(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000101)

	f.Step(0, 0, false, true)

	if f.State() != StateAwaitingNext {
		t.Errorf("state = %v, want awaiting_next after timeout", f.State())
	}
	if f.Score() != 0 {
		t.Errorf("score = %d, timeout must not score", f.Score())
	}
}

func TestFSMPartialMatchIsIdle(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000101)

	// Subset of the pattern: not correct, not wrong, no timeout.
	f.Step(0, 0b0000001, false, false)

	if f.State() != StateAwaitingInput || f.Score() != 0 || f.Lockout() != 0 {
		t.Errorf("partial match should hold: state=%v score=%d lockout=%08b",
			f.State(), f.Score(), f.Lockout())
	}
}

func TestFSMEmptyPatternNeverMatches(t *testing.T) {
	var f GameFSM
	f.Reset()
	f.state = StateAwaitingInput // pattern still zero

	f.Step(0, 0, false, false)

	if f.Score() != 0 {
		t.Errorf("score = %d, empty pattern with no presses must not score", f.Score())
	}
}

func TestFSMSessionOverFreezesEverything(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000101)
	before := f

	presses := []uint8{0b0000101, 0b1111111, 0b0000010, 0}
	for _, p := range presses {
		f.Step(0b1111111, p, true, true)
	}

	if f != before {
		t.Errorf("frozen FSM changed: %+v -> %+v", before, f)
	}
}

func TestFSMCorruptStateRecovers(t *testing.T) {
	var f GameFSM
	f.Reset()
	f.state = State(0xE7)

	f.Step(0b0000001, 0b1111111, false, true)

	if f.State() != StateAwaitingNext {
		t.Errorf("state = %v, corrupt value must recover to awaiting_next", f.State())
	}
}

func TestFSMScoreSaturates(t *testing.T) {
	var f GameFSM
	stepInto(&f, 0b0000001)
	f.score = MaxScore

	f.Step(0, 0b0000001, false, false)

	if f.Score() != MaxScore {
		t.Errorf("score = %d, want saturation at %d", f.Score(), MaxScore)
	}
	if f.State() != StateAwaitingNext {
		t.Error("saturated match should still end the round")
	}
}
