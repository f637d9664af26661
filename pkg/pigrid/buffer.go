// Package pigrid implements a terminal render buffer: a two-dimensional
// grid of cells that accumulates drawing operations (text, erasure, skips,
// Unicode line segments) and then flushes them to a window sink as a
// minimal, ordered sequence of cursor-positioning, print, and erase
// commands.
//
// The buffer is authoritative per flush: it does no diffing against the
// sink's previous contents. Runs of adjacent cells written by one logical
// operation are stored as spans — a head cell carrying the state and width
// followed by continuation cells — so overwrites only split what they
// actually cross.
//
// A Buffer is a single-owner, single-threaded resource. No operation blocks
// or yields, and no synchronization is provided.
package pigrid

import (
	"log/slog"

	"github.com/vito/pigrid/pkg/pen"
	"github.com/vito/pigrid/pkg/rect"
)

// Buffer is a lines x cols render buffer.
type Buffer struct {
	lines, cols int
	cells       [][]cell

	// interning tables, freed on Reset/Clear
	pens  []pen.Pen
	texts []string

	// virtual cursor for relative drawing operations
	hasCursor       bool
	curLine, curCol int

	// stored pen, merged through the state stack by SetPen
	penSet bool
	curPen pen.Pen

	// output-space clip and incoming-coordinate translation
	clip                rect.Rect
	transLine, transCol int

	stack []stackFrame

	logger *slog.Logger
}

// New constructs a buffer of the given dimensions. Both must be positive.
func New(lines, cols int) *Buffer {
	if lines <= 0 || cols <= 0 {
		panic("pigrid: buffer dimensions must be positive")
	}
	b := &Buffer{
		lines:  lines,
		cols:   cols,
		logger: slog.Default(),
	}
	b.cells = make([][]cell, lines)
	for i := range b.cells {
		b.cells[i] = make([]cell, cols)
	}
	b.Reset()
	return b
}

// Lines returns the construction-time line count.
func (b *Buffer) Lines() int { return b.lines }

// Cols returns the construction-time column count.
func (b *Buffer) Cols() int { return b.cols }

// SetLogger replaces the logger used for recoverable diagnostics (line-cell
// pen collisions). The default is slog.Default.
func (b *Buffer) SetLogger(l *slog.Logger) { b.logger = l }

// Reset returns the buffer to its initial state: every row a single skip
// span, interning tables emptied, cursor and stored pen unset, clip restored
// to the full grid, translation zeroed, and the state stack emptied. FlushTo
// calls it implicitly after emission.
func (b *Buffer) Reset() {
	for l := range b.cells {
		b.resetLine(l)
	}
	b.pens = b.pens[:0]
	b.texts = b.texts[:0]
	b.hasCursor = false
	b.penSet = false
	b.curPen = pen.Pen{}
	b.clip = rect.New(0, 0, b.lines, b.cols)
	b.transLine, b.transCol = 0, 0
	b.stack = b.stack[:0]
}

// resetLine makes row l one skip span of the full width.
func (b *Buffer) resetLine(l int) {
	row := b.cells[l]
	row[0] = cell{state: stateSkip, len: b.cols}
	for c := 1; c < b.cols; c++ {
		row[c] = cell{state: stateCont, len: 0}
	}
}
