package reflex

// Entropy seeds. Both registers must start nonzero or the XOR feedback
// would hold them at zero forever.
const (
	entropySeedA uint16 = 0xACE1
	entropySeedB uint16 = 0x1D87
)

// Feedback tap positions for the two shift registers, MSB-numbered.
// The two sets differ so the sequences stay out of phase.
var (
	entropyTapsA = [...]uint{15, 14, 13, 4}
	entropyTapsB = [...]uint{15, 13, 12, 10}
)

// EntropySource produces pseudo-random bits for pattern selection.
// It combines two independent 16-bit linear-feedback shift registers with
// an accumulator of every button bit ever observed, so that player activity
// perturbs the sequence and short cycles don't repeat visibly.
//
// The source is fully deterministic given its seeds and the input history.
// It is not a cryptographic generator and doesn't try to be.
type EntropySource struct {
	shiftA uint16
	shiftB uint16
	acc    uint8
}

// NewEntropySource returns a source seeded with the fixed default seeds.
func NewEntropySource() *EntropySource {
	e := &EntropySource{}
	e.Reset(entropySeedA, entropySeedB)
	return e
}

// Reset reseeds both registers and clears the input accumulator.
// Zero seeds are replaced with the defaults to preserve the nonzero invariant.
func (e *EntropySource) Reset(seedA, seedB uint16) {
	if seedA == 0 {
		seedA = entropySeedA
	}
	if seedB == 0 {
		seedB = entropySeedB
	}
	e.shiftA = seedA
	e.shiftB = seedB
	e.acc = 0
}

// Advance steps both shift registers and folds the raw button lines into
// the accumulator. Called exactly once per tick.
func (e *EntropySource) Advance(buttons uint8) {
	e.shiftA = lfsrStep(e.shiftA, entropyTapsA[:])
	e.shiftB = lfsrStep(e.shiftB, entropyTapsB[:])
	e.acc ^= buttons
}

// lfsrStep shifts left by one, feeding the XOR of the tap bits into bit 0.
func lfsrStep(s uint16, taps []uint) uint16 {
	var fb uint16
	for _, t := range taps {
		fb ^= (s >> t) & 1
	}
	return s<<1 | fb
}

// Bits16 returns the 16-bit view consumed by the pattern generator:
// both registers XORed together with the accumulator mixed into the low byte.
func (e *EntropySource) Bits16() uint16 {
	return e.shiftA ^ e.shiftB ^ uint16(e.acc)
}

// Combined returns the full 24-bit value: low byte of register A, low byte
// of register B and the accumulator concatenated, XORed against the current
// raw button lines.
func (e *EntropySource) Combined(buttons uint8) uint32 {
	c := uint32(e.shiftA&0xFF)<<16 | uint32(e.shiftB&0xFF)<<8 | uint32(e.acc)
	return c ^ uint32(buttons)
}
