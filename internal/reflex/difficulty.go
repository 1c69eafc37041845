package reflex

// Tier is one difficulty level: while the score is below UpTo the tier is
// in force, fixing the round deadline and the number of simultaneous targets.
// UpTo is an exclusive upper bound; a zero UpTo marks the final, unbounded
// tier.
type Tier struct {
	UpTo        uint8  `yaml:"up_to_score"`
	RoundPreset uint16 `yaml:"round_preset_ticks"`
	Targets     uint8  `yaml:"targets"`
}

// Policy maps the committed score to the tier in force. It is a pure
// lookup recomputed every tick; nothing is memoized.
type Policy struct {
	tiers []Tier
}

// DefaultTiers returns the stock four-tier table: the round deadline
// shortens and the target count grows as the score passes 5, 10 and 20.
func DefaultTiers() []Tier {
	return []Tier{
		{UpTo: 5, RoundPreset: 5000, Targets: 1},
		{UpTo: 10, RoundPreset: 4000, Targets: 2},
		{UpTo: 20, RoundPreset: 3000, Targets: 3},
		{UpTo: 0, RoundPreset: 2000, Targets: 4},
	}
}

// NewPolicy builds a policy from a tier table. Target counts are clamped
// to [1, PatternBits] so a bad config can't ask for more bits than the
// pattern holds. An empty table falls back to the defaults.
func NewPolicy(tiers []Tier) Policy {
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	clamped := make([]Tier, len(tiers))
	for i, t := range tiers {
		if t.Targets < 1 {
			t.Targets = 1
		}
		if t.Targets > PatternBits {
			t.Targets = PatternBits
		}
		clamped[i] = t
	}
	return Policy{tiers: clamped}
}

// TierFor returns the tier in force for the given score. Boundaries are
// half-open on the low side: a score equal to a tier's UpTo already belongs
// to the next tier.
func (p Policy) TierFor(score uint8) Tier {
	return p.tiers[p.Index(score)]
}

// Index returns the position of the tier in force, for display purposes.
func (p Policy) Index(score uint8) int {
	for i, t := range p.tiers {
		if t.UpTo != 0 && score < t.UpTo {
			return i
		}
	}
	return len(p.tiers) - 1
}

// Count returns the number of tiers in the table.
func (p Policy) Count() int {
	return len(p.tiers)
}
