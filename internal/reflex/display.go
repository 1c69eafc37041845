package reflex

// hexGlyphs holds the active-low seven-segment encodings for 0..F in
// gfedcba bit order. A zero bit lights the segment.
var hexGlyphs = [16]uint8{
	0b1000000, // 0
	0b1111001, // 1
	0b0100100, // 2
	0b0110000, // 3
	0b0011001, // 4
	0b0010010, // 5
	0b0000010, // 6
	0b1111000, // 7
	0b0000000, // 8
	0b0010000, // 9
	0b0001000, // A
	0b0000011, // b
	0b1000110, // C
	0b0100001, // d
	0b0000110, // E
	0b0001110, // F
}

// EncodeDisplay maps the core outputs onto an active-low seven-segment
// display plus a decimal point.
//
// While the session runs, the glyph is the bitwise complement of the
// active pattern so that active targets show as lit segments. Once the
// session is over, the glyph becomes the hexadecimal digit for the low
// nibble of the final score, with the decimal point asserted to mark
// end-of-session.
func EncodeDisplay(pattern uint8, sessionOver bool, score uint8) (seg uint8, dp bool) {
	if sessionOver {
		return hexGlyphs[score&0x0F], true
	}
	return ^pattern & 0x7F, false
}

// HexGlyph returns the active-low glyph for a single hex digit.
func HexGlyph(nibble uint8) uint8 {
	return hexGlyphs[nibble&0x0F]
}
