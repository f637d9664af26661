package pigrid

import (
	"github.com/vito/pigrid/pkg/pen"
	"github.com/vito/pigrid/pkg/rect"
)

// stackFrame is one saved state. Full frames restore cursor, clip and
// translation as well as the pen; pen-only frames restore just the pen.
type stackFrame struct {
	penOnly bool

	penSet bool
	pen    pen.Pen

	hasCursor       bool
	curLine, curCol int

	clip                rect.Rect
	transLine, transCol int
}

// Save pushes a full frame: virtual cursor, clip rectangle, translation
// offset, and a snapshot of the stored pen.
func (b *Buffer) Save() {
	b.stack = append(b.stack, stackFrame{
		penSet:    b.penSet,
		pen:       b.curPen,
		hasCursor: b.hasCursor,
		curLine:   b.curLine,
		curCol:    b.curCol,
		clip:      b.clip,
		transLine: b.transLine,
		transCol:  b.transCol,
	})
}

// SavePen pushes a pen-only frame.
func (b *Buffer) SavePen() {
	b.stack = append(b.stack, stackFrame{
		penOnly: true,
		penSet:  b.penSet,
		pen:     b.curPen,
	})
}

// Restore pops the most recent frame. Restoring without a matching Save is a
// programming error and panics.
func (b *Buffer) Restore() {
	if len(b.stack) == 0 {
		panic("pigrid: restore without save")
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	b.penSet = f.penSet
	b.curPen = f.pen
	if f.penOnly {
		return
	}
	b.hasCursor = f.hasCursor
	b.curLine, b.curCol = f.curLine, f.curCol
	b.clip = f.clip
	b.transLine, b.transCol = f.transLine, f.transCol
}

// SetPen replaces the stored pen used by relative drawing operations. Under
// a saved frame that remembered a pen, the new active pen is the frame's pen
// with p layered over it, so nested scopes refine rather than replace their
// ancestors' attributes.
func (b *Buffer) SetPen(p pen.Pen) {
	if base, ok := b.basePen(); ok {
		b.curPen = pen.Merge(base, p)
	} else {
		b.curPen = p
	}
	b.penSet = true
}

// ClearPen unsets the stored pen. Under a saved frame that remembered a pen,
// the frame's pen becomes active again instead.
func (b *Buffer) ClearPen() {
	if base, ok := b.basePen(); ok {
		b.curPen = base
		b.penSet = true
		return
	}
	b.curPen = pen.Pen{}
	b.penSet = false
}

// basePen returns the pen remembered by the top stack frame, if any.
func (b *Buffer) basePen() (pen.Pen, bool) {
	if len(b.stack) == 0 {
		return pen.Pen{}, false
	}
	f := b.stack[len(b.stack)-1]
	return f.pen, f.penSet
}
