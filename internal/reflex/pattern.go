package reflex

// PatternBits is the width of the target pattern: one bit per segment.
const PatternBits = 7

// SelectPattern chooses exactly targetCount of the 7 target bits using the
// supplied entropy word. Two fixed passes over the indices keep the work
// bounded:
//
//	pass 1 sets bit i when entropy bit i is 1 and the budget isn't spent;
//	pass 2 fills any shortfall from the lowest still-unset index upward.
//
// The second pass guarantees the exact cardinality even for degenerate
// entropy (all zeros yields bits 0..targetCount-1). targetCount is clamped
// to [1, PatternBits].
func SelectPattern(entropy uint16, targetCount uint8) uint8 {
	if targetCount < 1 {
		targetCount = 1
	}
	if targetCount > PatternBits {
		targetCount = PatternBits
	}

	var pattern uint8
	var set uint8
	for i := uint(0); i < PatternBits; i++ {
		if set < targetCount && (entropy>>i)&1 == 1 {
			pattern |= 1 << i
			set++
		}
	}
	for i := uint(0); i < PatternBits; i++ {
		if set < targetCount && pattern&(1<<i) == 0 {
			pattern |= 1 << i
			set++
		}
	}
	return pattern
}

// popCount7 counts the set bits in a 7-bit pattern.
func popCount7(p uint8) int {
	n := 0
	for i := uint(0); i < PatternBits; i++ {
		if p&(1<<i) != 0 {
			n++
		}
	}
	return n
}
