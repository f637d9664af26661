package pigrid

import (
	"fmt"

	"github.com/vito/pigrid/pkg/pen"
)

// RecWindow is a Window that records the flush command sequence as readable
// strings, one call per entry:
//
//	goto(2,5)
//	print("Hello, world!",{})
//	erasech(20,false,{bg=3})
//
// Tests and examples assert against the transcript without touching a
// terminal.
type RecWindow struct {
	Calls []string
}

func (r *RecWindow) Goto(line, col int) {
	r.Calls = append(r.Calls, fmt.Sprintf("goto(%d,%d)", line, col))
}

func (r *RecWindow) Print(text string, p pen.Pen) int {
	r.Calls = append(r.Calls, fmt.Sprintf("print(%q,%s)", text, p))
	return StringWidth(text)
}

func (r *RecWindow) EraseCh(n int, moveEnd bool, p pen.Pen) int {
	r.Calls = append(r.Calls, fmt.Sprintf("erasech(%d,%t,%s)", n, moveEnd, p))
	return n
}

// Reset drops the recorded transcript.
func (r *RecWindow) Reset() {
	r.Calls = r.Calls[:0]
}
