package pigrid

import (
	"fmt"
	"strings"
)

// FlushStats counts what a single FlushTo emitted.
type FlushStats struct {
	// Gotos, Prints and Erases count sink calls.
	Gotos, Prints, Erases int

	// LineCells is how many line-glyph cells were coalesced into Prints.
	LineCells int

	// Columns is the total column extent the emitted operations covered.
	Columns int
}

// FlushTo traverses the grid in row-major order and emits the minimal sink
// call sequence realising the buffer's contents, then resets the buffer.
//
// A Goto is emitted iff an operation does not continue exactly where the
// previous one ended. Skip spans emit nothing and leave the sink's cursor
// where it was. Adjacent line cells sharing a pen coalesce into a single
// Print; adjacent erases with differing pens stay separate. An erase's
// moveEnd is set iff a non-skip cell follows it on the same row.
func (b *Buffer) FlushTo(win Window) FlushStats {
	var stats FlushStats
	for line := 0; line < b.lines; line++ {
		row := b.cells[line]
		// phys tracks the column the sink's cursor is known to be at;
		// -1 means unknown.
		phys := -1
		for col := 0; col < b.cols; {
			c := &row[col]
			if c.state == stateCont {
				panic(fmt.Sprintf("pigrid: continuation cell at head position %d,%d during flush", line, col))
			}
			if c.state == stateSkip {
				col += c.len
				continue
			}
			if phys != col {
				win.Goto(line, col)
				stats.Gotos++
				phys = col
			}
			switch c.state {
			case stateText:
				slice := sliceColumns(b.texts[c.textIdx], c.textOffs, c.len)
				win.Print(slice, b.pens[c.penIdx])
				stats.Prints++
				stats.Columns += c.len
				phys += c.len
				col += c.len
			case stateErase:
				moveEnd := col+c.len < b.cols && row[col+c.len].state != stateSkip
				win.EraseCh(c.len, moveEnd, b.pens[c.penIdx])
				stats.Erases++
				stats.Columns += c.len
				phys += c.len
				if !moveEnd {
					phys = -1
				}
				col += c.len
			case stateLine:
				penIdx := c.penIdx
				var glyphs strings.Builder
				n := 0
				for col+n < b.cols {
					lc := &row[col+n]
					if lc.state != stateLine || lc.penIdx != penIdx {
						break
					}
					glyphs.WriteRune(maskGlyphs[lc.mask])
					n++
				}
				win.Print(glyphs.String(), b.pens[penIdx])
				stats.Prints++
				stats.LineCells += n
				stats.Columns += n
				phys += n
				col += n
			}
		}
	}
	b.Reset()
	return stats
}
