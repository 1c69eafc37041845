package tui

import (
	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Seven-segment glyph geometry, in screen cells.
const (
	segHorizLen = 8 // Length of horizontal segments (a, g, d)
	segVertLen  = 3 // Height of vertical segments (b, c, e, f)

	// SegWidth and SegHeight are the total footprint of one glyph.
	SegWidth  = segHorizLen + 2
	SegHeight = 2*segVertLen + 3
)

const (
	segRuneLit   = '█'
	segRuneUnlit = '·'
)

// segCells returns the cell offsets covered by segment bit (0=a .. 6=g),
// relative to the glyph origin. The layout follows the usual gfedcba
// convention: a on top, g in the middle, d at the bottom.
func segCells(bit int) [][2]int {
	var cells [][2]int
	switch bit {
	case 0: // a: top
		for i := 0; i < segHorizLen; i++ {
			cells = append(cells, [2]int{1 + i, 0})
		}
	case 1: // b: top right
		for i := 0; i < segVertLen; i++ {
			cells = append(cells, [2]int{segHorizLen + 1, 1 + i})
		}
	case 2: // c: bottom right
		for i := 0; i < segVertLen; i++ {
			cells = append(cells, [2]int{segHorizLen + 1, segVertLen + 2 + i})
		}
	case 3: // d: bottom
		for i := 0; i < segHorizLen; i++ {
			cells = append(cells, [2]int{1 + i, 2*segVertLen + 2})
		}
	case 4: // e: bottom left
		for i := 0; i < segVertLen; i++ {
			cells = append(cells, [2]int{0, segVertLen + 2 + i})
		}
	case 5: // f: top left
		for i := 0; i < segVertLen; i++ {
			cells = append(cells, [2]int{0, 1 + i})
		}
	case 6: // g: middle
		for i := 0; i < segHorizLen; i++ {
			cells = append(cells, [2]int{1 + i, segVertLen + 1})
		}
	}
	return cells
}

// DrawSevenSeg renders one active-low seven-segment glyph at (x, y).
// A zero bit in seg lights the segment in litColor; set bits render as a
// dim outline so the glyph shape stays visible.
func DrawSevenSeg(s *core.Screen, x, y int, seg uint8, dp bool, litColor core.Color) {
	for bit := 0; bit < 7; bit++ {
		lit := seg&(1<<bit) == 0
		r := segRuneUnlit
		c := core.ColorGray
		if lit {
			r = segRuneLit
			c = litColor
		}
		for _, cell := range segCells(bit) {
			s.SetColored(x+cell[0], y+cell[1], r, c)
		}
	}

	if dp {
		s.SetColored(x+SegWidth+1, y+SegHeight-1, segRuneLit, litColor)
	}
}

// DrawSegKeyLegend renders a small glyph outline with the digit key that
// presses each segment, in the same layout as DrawSevenSeg.
func DrawSegKeyLegend(s *core.Screen, x, y int) {
	for bit := 0; bit < 7; bit++ {
		cells := segCells(bit)
		label := rune('1' + bit)
		mid := len(cells) / 2
		for i, cell := range cells {
			r := segRuneUnlit
			if i == mid {
				r = label
			}
			s.SetColored(x+cell[0], y+cell[1], r, core.ColorGray)
		}
	}
}
