package reflex

import "testing"

func TestSelectPatternExactCardinality(t *testing.T) {
	// Exhaustive over the full entropy space for every legal target count.
	for count := uint8(1); count <= 4; count++ {
		for entropy := 0; entropy <= 0xFFFF; entropy++ {
			p := SelectPattern(uint16(entropy), count)
			if got := popCount7(p); got != int(count) {
				t.Fatalf("SelectPattern(%#04x, %d) = %07b: %d bits set, want %d",
					entropy, count, p, got, count)
			}
			if p&^0x7F != 0 {
				t.Fatalf("SelectPattern(%#04x, %d) = %08b: bit outside the 7-bit space",
					entropy, count, p)
			}
		}
	}
}

func TestSelectPatternDegenerateEntropy(t *testing.T) {
	tests := []struct {
		name    string
		entropy uint16
		count   uint8
		want    uint8
	}{
		{"all zeros fills lowest bits", 0x0000, 3, 0b0000111},
		{"all zeros single", 0x0000, 1, 0b0000001},
		{"all ones takes lowest entropy bits", 0xFFFF, 2, 0b0000011},
		{"sparse high bit", 0b1000000, 1, 0b1000000},
		{"sparse plus fill", 0b1000000, 2, 0b1000001},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectPattern(tc.entropy, tc.count); got != tc.want {
				t.Errorf("SelectPattern(%07b, %d) = %07b, want %07b",
					tc.entropy, tc.count, got, tc.want)
			}
		})
	}
}

func TestSelectPatternClampsCount(t *testing.T) {
	if got := popCount7(SelectPattern(0x1234, 0)); got != 1 {
		t.Errorf("count 0 should clamp to 1, got %d bits", got)
	}
	if got := popCount7(SelectPattern(0x1234, 9)); got != PatternBits {
		t.Errorf("count 9 should clamp to %d, got %d bits", PatternBits, got)
	}
}

func TestSelectPatternOnlyUsesLowSevenEntropyBits(t *testing.T) {
	// Bits above index 6 must not influence the first pass.
	for count := uint8(1); count <= 4; count++ {
		for low := 0; low < 128; low++ {
			a := SelectPattern(uint16(low), count)
			b := SelectPattern(uint16(low)|0xFF80, count)
			if a != b {
				t.Fatalf("high entropy bits changed the pattern: %07b vs %07b (low=%07b count=%d)",
					a, b, low, count)
			}
		}
	}
}
