// Package rect provides axis-aligned rectangles in (line, column) space,
// used by the render buffer for clipping.
package rect

import "fmt"

// Rect is a rectangle of terminal cells. Top and Left are inclusive, Bottom
// and Right exclusive, so a rect covering a full 10x20 buffer is
// {Top: 0, Left: 0, Bottom: 10, Right: 20}.
type Rect struct {
	Top, Left, Bottom, Right int
}

// New constructs a rect from an origin and a size in lines and columns.
func New(top, left, lines, cols int) Rect {
	return Rect{Top: top, Left: left, Bottom: top + lines, Right: left + cols}
}

// Lines returns the number of lines the rect covers.
func (r Rect) Lines() int { return r.Bottom - r.Top }

// Cols returns the number of columns the rect covers.
func (r Rect) Cols() int { return r.Right - r.Left }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Bottom <= r.Top || r.Right <= r.Left
}

// Intersect returns the overlap of two rects. The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Top:    max(r.Top, o.Top),
		Left:   max(r.Left, o.Left),
		Bottom: min(r.Bottom, o.Bottom),
		Right:  min(r.Right, o.Right),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Translate returns the rect shifted by dLine lines and dCol columns.
func (r Rect) Translate(dLine, dCol int) Rect {
	return Rect{
		Top:    r.Top + dLine,
		Left:   r.Left + dCol,
		Bottom: r.Bottom + dLine,
		Right:  r.Right + dCol,
	}
}

// Contains reports whether the given cell lies within the rect.
func (r Rect) Contains(line, col int) bool {
	return line >= r.Top && line < r.Bottom && col >= r.Left && col < r.Right
}

func (r Rect) String() string {
	return fmt.Sprintf("[(%d,%d)..(%d,%d)]", r.Top, r.Left, r.Bottom, r.Right)
}
