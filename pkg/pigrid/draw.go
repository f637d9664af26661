package pigrid

import (
	"fmt"

	"github.com/vito/pigrid/pkg/pen"
)

// ---------- absolute operations ---------------------------------------------
//
// Absolute operations take zero-based buffer coordinates (row 0 top, column
// 0 left), pipe through translation and clipping, and silently become no-ops
// when nothing remains visible. They never fail.

// SkipAt marks n columns at (line, col) as deliberately untouched output:
// the next flush will leave them alone.
func (b *Buffer) SkipAt(line, col, n int) {
	l, c, n, _, ok := b.transform(line, col, n)
	if !ok {
		return
	}
	hc := b.makeSpan(l, c, n)
	hc.state = stateSkip
}

// TextAt draws text at (line, col) with the given pen. The text's display
// width determines how many columns it claims; clipping may trim either
// edge, in which case the flush prints the corresponding slice.
func (b *Buffer) TextAt(line, col int, text string, p pen.Pen) {
	l, c, n, offs, ok := b.transform(line, col, StringWidth(text))
	if !ok {
		return
	}
	penIdx := b.internPen(p)
	textIdx := b.internText(text)
	hc := b.makeSpan(l, c, n)
	hc.state = stateText
	hc.penIdx = penIdx
	hc.textIdx = textIdx
	hc.textOffs = offs
}

// EraseAt fills n columns at (line, col) with the pen's background.
func (b *Buffer) EraseAt(line, col, n int, p pen.Pen) {
	l, c, n, _, ok := b.transform(line, col, n)
	if !ok {
		return
	}
	penIdx := b.internPen(p)
	hc := b.makeSpan(l, c, n)
	hc.state = stateErase
	hc.penIdx = penIdx
}

// CharAt places a single character at (line, col). Equivalent to a one-wide
// TextAt of the one-rune string.
func (b *Buffer) CharAt(line, col int, ch rune, p pen.Pen) {
	l, c, n, _, ok := b.transform(line, col, 1)
	if !ok {
		return
	}
	penIdx := b.internPen(p)
	textIdx := b.internText(string(ch))
	hc := b.makeSpan(l, c, n)
	hc.state = stateText
	hc.penIdx = penIdx
	hc.textIdx = textIdx
	hc.textOffs = 0
}

// Clear erases the entire buffer with the pen's background, dropping all
// previously interned pens and text. Rows are rewound to skip spans first so
// no cell can reference a freed table entry even when a clip keeps the
// erasure from covering the full grid.
func (b *Buffer) Clear(p pen.Pen) {
	for l := range b.cells {
		b.resetLine(l)
	}
	b.pens = b.pens[:0]
	b.texts = b.texts[:0]
	for l := 0; l < b.lines; l++ {
		b.EraseAt(l, 0, b.cols, p)
	}
}

// ---------- cursor-relative operations ---------------------------------------
//
// Relative operations draw at the virtual cursor and advance it. They fail
// with ErrNoCursor before any Goto, with ErrPenConflict when given an
// explicit pen while a stored pen is active, and with ErrOutOfRange for
// negative lengths. The optional trailing pen argument mirrors the stored
// pen being optional; with neither, drawing uses the empty pen.

// Goto sets the virtual cursor. The position is a pre-translation
// coordinate and is not bounds-checked; clipping absorbs any overshoot when
// drawing.
func (b *Buffer) Goto(line, col int) {
	b.hasCursor = true
	b.curLine, b.curCol = line, col
}

// Cursor returns the virtual cursor position, if set.
func (b *Buffer) Cursor() (line, col int, ok bool) {
	return b.curLine, b.curCol, b.hasCursor
}

// Text draws text at the cursor and advances it by the text's display width.
func (b *Buffer) Text(text string, pens ...pen.Pen) error {
	if !b.hasCursor {
		return fmt.Errorf("text: %w", ErrNoCursor)
	}
	p, err := b.drawPen(pens)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	b.TextAt(b.curLine, b.curCol, text, p)
	b.curCol += StringWidth(text)
	return nil
}

// Erase fills n columns at the cursor and advances it by n.
func (b *Buffer) Erase(n int, pens ...pen.Pen) error {
	if !b.hasCursor {
		return fmt.Errorf("erase: %w", ErrNoCursor)
	}
	if n < 0 {
		return fmt.Errorf("erase %d columns: %w", n, ErrOutOfRange)
	}
	p, err := b.drawPen(pens)
	if err != nil {
		return fmt.Errorf("erase: %w", err)
	}
	b.EraseAt(b.curLine, b.curCol, n, p)
	b.curCol += n
	return nil
}

// Skip marks n columns at the cursor as untouched and advances it by n.
func (b *Buffer) Skip(n int) error {
	if !b.hasCursor {
		return fmt.Errorf("skip: %w", ErrNoCursor)
	}
	if n < 0 {
		return fmt.Errorf("skip %d columns: %w", n, ErrOutOfRange)
	}
	b.SkipAt(b.curLine, b.curCol, n)
	b.curCol += n
	return nil
}

// SkipTo skips up to (but not including) column col. If the cursor is
// already at or past col it just moves back, changing no cells.
func (b *Buffer) SkipTo(col int) error {
	if !b.hasCursor {
		return fmt.Errorf("skip to: %w", ErrNoCursor)
	}
	if col > b.curCol {
		b.SkipAt(b.curLine, b.curCol, col-b.curCol)
	}
	b.curCol = col
	return nil
}

// EraseTo erases up to (but not including) column col. If the cursor is
// already at or past col it just moves back, changing no cells.
func (b *Buffer) EraseTo(col int, pens ...pen.Pen) error {
	if !b.hasCursor {
		return fmt.Errorf("erase to: %w", ErrNoCursor)
	}
	p, err := b.drawPen(pens)
	if err != nil {
		return fmt.Errorf("erase to: %w", err)
	}
	if col > b.curCol {
		b.EraseAt(b.curLine, b.curCol, col-b.curCol, p)
	}
	b.curCol = col
	return nil
}

// drawPen resolves the pen a relative operation should draw with.
func (b *Buffer) drawPen(pens []pen.Pen) (pen.Pen, error) {
	if len(pens) > 0 {
		if b.penSet {
			return pen.Pen{}, ErrPenConflict
		}
		return pens[0], nil
	}
	if b.penSet {
		return b.curPen, nil
	}
	return pen.Pen{}, nil
}
