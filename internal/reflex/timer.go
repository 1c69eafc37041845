package reflex

// Timer is a 16-bit countdown used for both the session clock and the
// per-round deadline. The value never wraps: zero is an absorbing state
// until a restart or reset reloads the preset.
//
// Priority order per tick is restart > decrement > hold. A global reset
// (Reset) sits above all of these and is applied by the engine before the
// timer is ever ticked.
type Timer struct {
	remaining uint16
	preset    uint16
}

// NewTimer returns a timer loaded with the given preset.
func NewTimer(preset uint16) *Timer {
	t := &Timer{preset: preset}
	t.Reset()
	return t
}

// Reset reloads the timer from its preset. Used for the global reset path.
func (t *Timer) Reset() {
	t.remaining = t.preset
}

// SetPreset changes the value loaded on the next restart or reset.
// The running countdown is not touched.
func (t *Timer) SetPreset(preset uint16) {
	t.preset = preset
}

// Tick advances the timer one step. A restart request reloads the preset
// regardless of the current value; otherwise the timer decrements while
// enabled and nonzero.
func (t *Timer) Tick(enable, restart bool) (remaining uint16, expired bool) {
	switch {
	case restart:
		t.remaining = t.preset
	case enable && t.remaining != 0:
		t.remaining--
	}
	return t.remaining, t.remaining == 0
}

// Remaining returns the current countdown value.
func (t *Timer) Remaining() uint16 {
	return t.remaining
}

// Expired reports whether the countdown has reached zero.
func (t *Timer) Expired() bool {
	return t.remaining == 0
}
