package pigrid

import "github.com/vito/pigrid/pkg/pen"

// Window is the sink a buffer flushes to. Implementations translate the
// emitted command sequence into real terminal operations; the buffer
// guarantees row-major order with no backward cursor motion within a row.
type Window interface {
	// Goto positions the output cursor at the given zero-based cell.
	Goto(line, col int)

	// Print writes text with the given pen at the current position,
	// returning the number of columns advanced.
	Print(text string, p pen.Pen) int

	// EraseCh erases n columns with the pen's background, returning the
	// number of columns erased. When moveEnd is true the cursor is left
	// just after the erased region; otherwise its position is unspecified.
	EraseCh(n int, moveEnd bool, p pen.Pen) int
}
