package pigrid

import "fmt"

// cellState tags the five states a grid cell can be in.
type cellState uint8

const (
	// stateSkip marks columns that are deliberately left untouched by the
	// next flush.
	stateSkip cellState = iota
	// stateText prints a slice of an interned string.
	stateText
	// stateErase fills columns with a pen's background.
	stateErase
	// stateLine holds a single-column box-drawing glyph mask.
	stateLine
	// stateCont continues the span headed by an earlier cell on the line.
	stateCont
)

func (s cellState) String() string {
	switch s {
	case stateSkip:
		return "skip"
	case stateText:
		return "text"
	case stateErase:
		return "erase"
	case stateLine:
		return "line"
	case stateCont:
		return "cont"
	}
	return fmt.Sprintf("cellState(%d)", uint8(s))
}

// cell is one grid position. Head cells carry their span's state and width;
// continuation cells only point back at their head.
//
// The len field is overloaded: for a head it is the span width in columns,
// for a continuation it is the head's column (the two are never meaningful
// at the same time). textOffs is a display-column offset into the interned
// string, so a head created by splitting a text span knows where its slice
// begins.
type cell struct {
	state    cellState
	len      int
	penIdx   int
	textIdx  int
	textOffs int
	mask     LineMask
}

// startCol returns the head column of a continuation cell.
func (c *cell) startCol() int { return c.len }
