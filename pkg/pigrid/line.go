package pigrid

import "github.com/vito/pigrid/pkg/pen"

// LineStyle selects the weight of a drawn line segment.
type LineStyle int

const (
	LineSingle LineStyle = 1
	LineDouble LineStyle = 2
	LineThick  LineStyle = 3
)

// Caps selects whether the end cells of a line get their outward-facing
// segment. Without CapStart the first cell stops at its center; likewise
// CapEnd for the last cell. Interior cells always get both segments.
type Caps int

const (
	CapStart Caps = 1
	CapEnd   Caps = 2
	CapBoth  Caps = CapStart | CapEnd
)

// LineMask encodes the line segments meeting in one cell: four 2-bit weight
// fields, one per direction. Weight 0 is no segment; 1, 2 and 3 are
// LineSingle, LineDouble and LineThick.
type LineMask uint8

// Bit positions of the per-direction weight fields.
const (
	shiftNorth = 0
	shiftEast  = 2
	shiftSouth = 4
	shiftWest  = 6
)

// Mask builds a LineMask from per-direction weights (0 for no segment).
func Mask(north, east, south, west LineStyle) LineMask {
	return LineMask(north)<<shiftNorth |
		LineMask(east)<<shiftEast |
		LineMask(south)<<shiftSouth |
		LineMask(west)<<shiftWest
}

// LineAt merges mask into the cell at (line, col) with the given pen,
// claiming the cell as a one-column line span if it is not one already.
// Drawing line segments over an existing line cell with a different pen is
// recoverable but almost certainly unintended: it logs a diagnostic, drops
// the accumulated mask, and continues with the new pen.
func (b *Buffer) LineAt(line, col int, mask LineMask, p pen.Pen) {
	l, c, _, _, ok := b.transform(line, col, 1)
	if !ok {
		return
	}
	penIdx := b.internPen(p)
	hc := &b.cells[l][c]
	if hc.state != stateLine {
		hc = b.makeSpan(l, c, 1)
		hc.state = stateLine
		hc.mask = 0
		hc.penIdx = penIdx
	} else if hc.penIdx != penIdx {
		b.logger.Warn("pigrid: line cell pen collision",
			"line", l, "col", c,
			"old", b.pens[hc.penIdx], "new", p)
		hc.mask = 0
		hc.penIdx = penIdx
	}
	hc.mask |= mask
}

// HLineAt draws a horizontal line on line from startCol to endCol inclusive.
// Segments merge with any lines already crossing those cells; the glyph for
// each cell is chosen at flush time from the merged mask.
func (b *Buffer) HLineAt(line, startCol, endCol int, style LineStyle, p pen.Pen, caps Caps) {
	if endCol < startCol {
		return
	}
	for col := startCol; col <= endCol; col++ {
		var mask LineMask
		if col > startCol || caps&CapStart != 0 {
			mask |= LineMask(style) << shiftWest
		}
		if col < endCol || caps&CapEnd != 0 {
			mask |= LineMask(style) << shiftEast
		}
		b.LineAt(line, col, mask, p)
	}
}

// VLineAt draws a vertical line on col from startLine to endLine inclusive.
func (b *Buffer) VLineAt(startLine, endLine, col int, style LineStyle, p pen.Pen, caps Caps) {
	if endLine < startLine {
		return
	}
	for line := startLine; line <= endLine; line++ {
		var mask LineMask
		if line > startLine || caps&CapStart != 0 {
			mask |= LineMask(style) << shiftNorth
		}
		if line < endLine || caps&CapEnd != 0 {
			mask |= LineMask(style) << shiftSouth
		}
		b.LineAt(line, col, mask, p)
	}
}
