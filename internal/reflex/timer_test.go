package reflex

import "testing"

func TestTimerMonotonicDecrement(t *testing.T) {
	tm := NewTimer(100)

	prev := tm.Remaining()
	for i := 0; i < 150; i++ {
		remaining, _ := tm.Tick(true, false)
		if remaining > prev {
			t.Fatalf("tick %d: remaining increased from %d to %d", i, prev, remaining)
		}
		prev = remaining
	}

	if tm.Remaining() != 0 {
		t.Errorf("remaining = %d after 150 enabled ticks of a 100-preset, want 0", tm.Remaining())
	}
}

func TestTimerZeroIsAbsorbing(t *testing.T) {
	tm := NewTimer(3)
	for i := 0; i < 10; i++ {
		tm.Tick(true, false)
	}

	remaining, expired := tm.Tick(true, false)
	if remaining != 0 {
		t.Errorf("remaining = %d, zero must not underflow or wrap", remaining)
	}
	if !expired {
		t.Error("expired should stay asserted at zero")
	}
}

func TestTimerRestartPriority(t *testing.T) {
	tests := []struct {
		name   string
		before uint16
	}{
		{"mid count", 40},
		{"at zero", 0},
		{"full", 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm := NewTimer(100)
			tm.remaining = tc.before

			// Restart and enable asserted together: reload must win.
			remaining, expired := tm.Tick(true, true)
			if remaining != 100 {
				t.Errorf("remaining = %d after restart, want 100", remaining)
			}
			if expired {
				t.Error("expired should deassert after restart")
			}
		})
	}
}

func TestTimerHoldWhenDisabled(t *testing.T) {
	tm := NewTimer(50)
	for i := 0; i < 20; i++ {
		tm.Tick(false, false)
	}
	if tm.Remaining() != 50 {
		t.Errorf("disabled timer moved: remaining = %d, want 50", tm.Remaining())
	}
}

func TestTimerPresetTakesEffectOnRestart(t *testing.T) {
	tm := NewTimer(100)
	tm.Tick(true, false)
	tm.SetPreset(30)

	// Running countdown unaffected by the preset change.
	if tm.Remaining() != 99 {
		t.Errorf("remaining = %d, SetPreset must not touch the countdown", tm.Remaining())
	}

	remaining, _ := tm.Tick(true, true)
	if remaining != 30 {
		t.Errorf("remaining = %d after restart, want new preset 30", remaining)
	}
}
