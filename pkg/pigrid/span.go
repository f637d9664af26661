package pigrid

import "fmt"

// makeSpan carves out a fresh head cell of width n at (line, col), splitting
// any pre-existing span it crosses so the grid invariants hold: after the
// call no span crosses either boundary of [col, col+n), every continuation
// cell points at a live head, and the returned head covers exactly n
// columns. The caller sets the head's state and payload.
//
// Coordinates are grid coordinates; transform has already applied
// translation and clipping, so violations here are implementation bugs.
func (b *Buffer) makeSpan(line, col, n int) *cell {
	if line < 0 || line >= b.lines || col < 0 || n <= 0 || col+n > b.cols {
		panic(fmt.Sprintf("pigrid: makeSpan(%d, %d, %d) outside %dx%d grid", line, col, n, b.lines, b.cols))
	}

	row := b.cells[line]
	end := col + n

	// Right split: if a span crosses the end boundary, give its tail a new
	// head at end carrying the remainder.
	if end < b.cols && row[end].state == stateCont {
		head := row[end].startCol()
		hc := &row[head]
		spanEnd := head + hc.len
		rest := spanEnd - end
		switch hc.state {
		case stateSkip:
			row[end] = cell{state: stateSkip, len: rest}
		case stateText:
			// The tail's slice begins where the claimed region ends,
			// measured in display columns from the head's own offset.
			row[end] = cell{
				state:    stateText,
				len:      rest,
				penIdx:   hc.penIdx,
				textIdx:  hc.textIdx,
				textOffs: hc.textOffs + (end - head),
			}
		case stateErase:
			row[end] = cell{state: stateErase, len: rest, penIdx: hc.penIdx}
		default:
			// Line spans are always one column wide and skip/text/erase are
			// the only multi-column states, so nothing else can own a
			// continuation cell here.
			panic(fmt.Sprintf("pigrid: cannot split %v span at line %d col %d", hc.state, line, end))
		}
		for c := end + 1; c < spanEnd; c++ {
			row[c].len = end
		}
	}

	// Left split: shorten a span crossing the start boundary.
	head := col
	if row[col].state == stateCont {
		head = row[col].startCol()
	}
	if head < col {
		row[head].len = col - head
	}

	// Claim the region.
	row[col] = cell{len: n}
	for c := col + 1; c < end; c++ {
		row[c] = cell{state: stateCont, len: col}
	}
	return &row[col]
}
