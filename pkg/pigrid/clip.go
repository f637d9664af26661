package pigrid

import "github.com/vito/pigrid/pkg/rect"

// Translate adds (dLine, dCol) to the offset applied to all incoming
// coordinates before clipping and grid access. Undone by a symmetric
// negative call or by restoring a full stack frame.
func (b *Buffer) Translate(dLine, dCol int) {
	b.transLine += dLine
	b.transCol += dCol
}

// Clip restricts drawing to r, given in pre-translation coordinates. Calls
// cumulate: the active clip only ever narrows, and may become empty, after
// which every drawing operation is a no-op. The only widening path is
// restoring a full stack frame.
func (b *Buffer) Clip(r rect.Rect) {
	b.clip = b.clip.Intersect(r.Translate(b.transLine, b.transCol))
}

// transform maps an incoming (line, col, n) horizontal extent into grid
// space: it applies the translation offset, then intersects with the active
// clip. offs reports how many display columns were clipped off the left of
// the caller's range. ok is false when nothing remains visible.
func (b *Buffer) transform(line, col, n int) (tLine, tCol, tLen, offs int, ok bool) {
	if n <= 0 || b.clip.Empty() {
		return 0, 0, 0, 0, false
	}
	line += b.transLine
	col += b.transCol
	if line < b.clip.Top || line >= b.clip.Bottom {
		return 0, 0, 0, 0, false
	}
	if col < b.clip.Left {
		offs = b.clip.Left - col
		n -= offs
		col = b.clip.Left
	}
	if col+n > b.clip.Right {
		n = b.clip.Right - col
	}
	if n <= 0 {
		return 0, 0, 0, 0, false
	}
	return line, col, n, offs, true
}
