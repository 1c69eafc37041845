// Package reflex implements the control core of the reaction game: a
// session-long countdown, per-round deadlines, an entropy-driven target
// pattern and a state machine that judges presses, scores and locks out
// misfires.
//
// Everything advances on one shared discrete tick. Outputs for tick n+1 are
// pure functions of the state committed at tick n; the two feedback paths
// (lockout mask into input masking, restart request into the round timer)
// are threaded through the Engine as explicit one-tick-delayed fields, so
// the package is a single synchronous step function with no goroutines and
// no blocking.
package reflex

// Config fixes the tunable constants of an engine. The zero value of any
// field falls back to the stock preset.
type Config struct {
	// SessionPreset is the session length in ticks.
	SessionPreset uint16
	// Tiers is the difficulty table; empty means DefaultTiers.
	Tiers []Tier
	// SeedA and SeedB seed the two entropy registers; zero means the
	// built-in seeds.
	SeedA uint16
	SeedB uint16
}

// DefaultSessionPreset is the stock session length: 60000 ticks, one minute
// at the nominal 1 kHz tick rate.
const DefaultSessionPreset uint16 = 60000

// DefaultConfig returns the stock constants.
func DefaultConfig() Config {
	return Config{
		SessionPreset: DefaultSessionPreset,
		Tiers:         DefaultTiers(),
		SeedA:         entropySeedA,
		SeedB:         entropySeedB,
	}
}

// Input is everything the outside world supplies for one tick.
type Input struct {
	// Reset asserts the global reset. It wins over every other transition
	// and takes effect within the same tick.
	Reset bool
	// Enable gates the two countdowns. The driver uses it for pausing.
	Enable bool
	// Buttons is the raw 8-bit input vector, unmasked. Bits 0..6 are the
	// segment buttons; bit 7 is a spare line that can only ever be wrong.
	Buttons uint8
}

// Output is the engine's view of the world after one tick.
type Output struct {
	ActivePattern uint8
	LockoutMask   uint8
	Score         uint8
	State         State
	SessionOver   bool
	RoundExpired  bool
	RoundRestart  bool
	SessionLeft   uint16
	RoundLeft     uint16
	TierIndex     int
	Targets       uint8
}

// Engine owns all component state and exposes the single synchronous step.
// It is not safe for concurrent use; drivers call Tick from one goroutine.
type Engine struct {
	cfg    Config
	policy Policy

	entropy *EntropySource
	session *Timer
	round   *Timer
	fsm     GameFSM

	tick uint64

	// One-tick-delayed feedback line: the FSM's lockout output masks the
	// following tick's input vector. The restart line needs no register of
	// its own because it is a pure function of the FSM state, which is
	// sampled pre-commit like everything else.
	prevLockout uint8

	// Session statistics, kept for the scoreboard.
	roundsWon    int
	roundsMissed int
	peakTier     int
}

// New builds an engine from the config and leaves it in the reset state.
func New(cfg Config) *Engine {
	if cfg.SessionPreset == 0 {
		cfg.SessionPreset = DefaultSessionPreset
	}
	e := &Engine{
		cfg:     cfg,
		policy:  NewPolicy(cfg.Tiers),
		entropy: NewEntropySource(),
		session: NewTimer(cfg.SessionPreset),
		round:   NewTimer(0),
	}
	e.Reset()
	return e
}

// Reset applies the global reset: both timers reload, the entropy source
// reseeds, the FSM returns to its initial configuration with the restart
// line asserted, and the feedback fields clear.
func (e *Engine) Reset() {
	e.entropy.Reset(e.cfg.SeedA, e.cfg.SeedB)
	e.session.SetPreset(e.cfg.SessionPreset)
	e.session.Reset()
	tier0 := e.policy.TierFor(0)
	e.round.SetPreset(tier0.RoundPreset)
	e.round.Reset()
	e.fsm.Reset()
	e.tick = 0
	e.prevLockout = 0
	e.roundsWon = 0
	e.roundsMissed = 0
	e.peakTier = 0
}

// Tick advances the whole core one step and returns the committed outputs.
//
// The order mirrors a synchronous clock domain: every derived value
// (masked input, tier, candidate pattern, timer flags) is computed from the
// state committed last tick, then all components commit together.
func (e *Engine) Tick(in Input) Output {
	if in.Reset {
		e.Reset()
		return e.output(false, e.round.Expired())
	}
	e.tick++

	// Derivation phase: reads see pre-tick values only.
	pressed := in.Buttons &^ e.prevLockout
	tier := e.policy.TierFor(e.fsm.Score())
	candidate := SelectPattern(e.entropy.Bits16(), tier.Targets)
	sessionOver := e.session.Expired()
	roundExpired := e.round.Expired()
	restart := e.fsm.RestartRequested()

	// Commit phase.
	e.entropy.Advance(in.Buttons)
	e.session.Tick(in.Enable, false)
	e.round.SetPreset(tier.RoundPreset)
	e.round.Tick(in.Enable, restart)

	prevScore := e.fsm.Score()
	prevState := e.fsm.State()
	e.fsm.Step(candidate, pressed, sessionOver, roundExpired)

	if prevState == StateAwaitingInput && e.fsm.State() == StateAwaitingNext {
		if e.fsm.Score() != prevScore {
			e.roundsWon++
		} else {
			e.roundsMissed++
		}
	}
	if idx := e.policy.Index(e.fsm.Score()); idx > e.peakTier {
		e.peakTier = idx
	}

	e.prevLockout = e.fsm.Lockout()

	return e.output(sessionOver, roundExpired)
}

func (e *Engine) output(sessionOver, roundExpired bool) Output {
	tier := e.policy.TierFor(e.fsm.Score())
	return Output{
		ActivePattern: e.fsm.Pattern(),
		LockoutMask:   e.fsm.Lockout(),
		Score:         e.fsm.Score(),
		State:         e.fsm.State(),
		SessionOver:   sessionOver,
		RoundExpired:  roundExpired,
		RoundRestart:  e.fsm.RestartRequested(),
		SessionLeft:   e.session.Remaining(),
		RoundLeft:     e.round.Remaining(),
		TierIndex:     e.policy.Index(e.fsm.Score()),
		Targets:       tier.Targets,
	}
}

// Score returns the committed score.
func (e *Engine) Score() uint8 { return e.fsm.Score() }

// SessionOver reports whether the session countdown has expired.
func (e *Engine) SessionOver() bool { return e.session.Expired() }

// TickCount returns the number of ticks processed since the last reset.
func (e *Engine) TickCount() uint64 { return e.tick }

// RoundsWon returns the number of rounds ended by a correct match.
func (e *Engine) RoundsWon() int { return e.roundsWon }

// RoundsMissed returns the number of rounds ended by the deadline.
func (e *Engine) RoundsMissed() int { return e.roundsMissed }

// PeakTier returns the highest tier index reached this session.
func (e *Engine) PeakTier() int { return e.peakTier }

// TierCount returns the number of tiers in the active policy.
func (e *Engine) TierCount() int { return e.policy.Count() }
