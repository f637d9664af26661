package pigrid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vito/pigrid/pkg/pen"
)

// AnsiWindow is a Window that writes raw escape sequences to an io.Writer,
// so a buffer can flush straight to a terminal. Cursor positioning uses CUP,
// erasure uses ECH with the pen's background active, and printing renders
// through the pen's lipgloss style.
type AnsiWindow struct {
	w io.Writer
}

// NewAnsiWindow wraps w, typically os.Stdout.
func NewAnsiWindow(w io.Writer) *AnsiWindow {
	return &AnsiWindow{w: w}
}

func (aw *AnsiWindow) Goto(line, col int) {
	fmt.Fprintf(aw.w, "\x1b[%d;%dH", line+1, col+1)
}

func (aw *AnsiWindow) Print(text string, p pen.Pen) int {
	io.WriteString(aw.w, p.Style().Render(text))
	return StringWidth(text)
}

func (aw *AnsiWindow) EraseCh(n int, moveEnd bool, p pen.Pen) int {
	if n <= 0 {
		return 0
	}
	io.WriteString(aw.w, sgr(p))
	fmt.Fprintf(aw.w, "\x1b[%dX", n)
	if moveEnd {
		fmt.Fprintf(aw.w, "\x1b[%dC", n)
	}
	io.WriteString(aw.w, "\x1b[0m")
	return n
}

// sgr renders a pen as a select-graphic-rendition sequence. ECH fills with
// the active background, which lipgloss's Render cannot set without also
// emitting text, so the erase path builds the sequence directly.
func sgr(p pen.Pen) string {
	var params []string
	attrs := p.Attributes()
	if v, ok := attrs[pen.FG].(int); ok {
		params = append(params, "38;5;"+strconv.Itoa(v))
	}
	if v, ok := attrs[pen.BG].(int); ok {
		params = append(params, "48;5;"+strconv.Itoa(v))
	}
	if attrs[pen.Bold] == true {
		params = append(params, "1")
	}
	if attrs[pen.Italic] == true {
		params = append(params, "3")
	}
	if attrs[pen.Underline] == true {
		params = append(params, "4")
	}
	if attrs[pen.Blink] == true {
		params = append(params, "5")
	}
	if attrs[pen.Reverse] == true {
		params = append(params, "7")
	}
	if attrs[pen.Strike] == true {
		params = append(params, "9")
	}
	if len(params) == 0 {
		return "\x1b[0m"
	}
	return "\x1b[0;" + strings.Join(params, ";") + "m"
}
