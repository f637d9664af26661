package pigrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/vito/pigrid/pkg/pen"
)

func TestFlushEmptyBuffer(t *testing.T) {
	b := New(10, 20)
	assert.Empty(t, flushCalls(b))
}

func TestFlushResetsBuffer(t *testing.T) {
	b := New(10, 20)
	b.TextAt(0, 0, "once", pen.Pen{})
	require.NotEmpty(t, flushCalls(b))
	// the implicit reset leaves nothing to emit
	assert.Empty(t, flushCalls(b))
}

func TestFlushOrdering(t *testing.T) {
	b := New(10, 20)
	b.TextAt(5, 10, "later", pen.Pen{})
	b.TextAt(1, 3, "early", pen.Pen{})
	b.EraseAt(5, 0, 4, pen.New(map[pen.Attr]any{pen.BG: 1}))

	var w RecWindow
	b.FlushTo(&w)

	// emission is row-major regardless of draw order
	assert.Equal(t, []string{
		`goto(1,3)`,
		`print("early",{})`,
		`goto(5,0)`,
		`erasech(4,false,{bg=1})`,
		`goto(5,10)`,
		`print("later",{})`,
	}, w.Calls)
}

func TestEraseMoveEnd(t *testing.T) {
	b := New(3, 20)
	// erase followed by text on the same row: moveEnd set
	b.EraseAt(0, 0, 5, pen.Pen{})
	b.TextAt(0, 5, "abc", pen.Pen{})
	// erase followed by skip: no moveEnd
	b.EraseAt(1, 0, 5, pen.Pen{})
	// erase running to the row edge: no moveEnd
	b.EraseAt(2, 15, 5, pen.Pen{})
	assert.Equal(t, []string{
		`goto(0,0)`,
		`erasech(5,true,{})`,
		`print("abc",{})`,
		`goto(1,0)`,
		`erasech(5,false,{})`,
		`goto(2,15)`,
		`erasech(5,false,{})`,
	}, flushCalls(b))
}

func TestAdjacentErasesDifferingPens(t *testing.T) {
	b := New(1, 20)
	b.EraseAt(0, 0, 5, pen.New(map[pen.Attr]any{pen.BG: 1}))
	b.EraseAt(0, 5, 5, pen.New(map[pen.Attr]any{pen.BG: 2}))
	assert.Equal(t, []string{
		`goto(0,0)`,
		`erasech(5,true,{bg=1})`,
		`erasech(5,false,{bg=2})`,
	}, flushCalls(b))
}

func TestSkipLeavesGap(t *testing.T) {
	b := New(1, 20)
	b.TextAt(0, 0, "ab", pen.Pen{})
	b.TextAt(0, 10, "cd", pen.Pen{})
	assert.Equal(t, []string{
		`goto(0,0)`,
		`print("ab",{})`,
		`goto(0,10)`,
		`print("cd",{})`,
	}, flushCalls(b))
}

func TestSkipAtPunchesHole(t *testing.T) {
	b := New(1, 20)
	b.TextAt(0, 0, "0123456789", pen.Pen{})
	b.SkipAt(0, 4, 2)
	assert.Equal(t, []string{
		`goto(0,0)`,
		`print("0123",{})`,
		`goto(0,6)`,
		`print("6789",{})`,
	}, flushCalls(b))
}

func TestFlushStats(t *testing.T) {
	b := New(5, 20)
	b.TextAt(0, 0, "hello", pen.Pen{})
	b.EraseAt(1, 0, 10, pen.Pen{})
	b.HLineAt(2, 0, 4, LineSingle, pen.Pen{}, CapBoth)

	var w RecWindow
	stats := b.FlushTo(&w)
	assert.Equal(t, 3, stats.Gotos)
	assert.Equal(t, 2, stats.Prints)
	assert.Equal(t, 1, stats.Erases)
	assert.Equal(t, 5, stats.LineCells)
	assert.Equal(t, 20, stats.Columns)
}

func TestFlushWideText(t *testing.T) {
	b := New(2, 20)
	b.TextAt(0, 0, "日本語", pen.Pen{})
	b.TextAt(1, 0, "ab日本", pen.Pen{})
	assert.Equal(t, []string{
		`goto(0,0)`,
		`print("日本語",{})`,
		`goto(1,0)`,
		`print("ab日本",{})`,
	}, flushCalls(b))
}

func TestSplitThroughWideGlyphRoundsDown(t *testing.T) {
	b := New(1, 20)
	b.TextAt(0, 0, "ab日cd", pen.Pen{})
	// claim column 3, the second half of the wide glyph
	b.TextAt(0, 3, "!", pen.Pen{})
	got := flushCalls(b)
	// the left fragment covers columns 0..2 but can only honestly print
	// "ab"; the wide glyph is never split. The emitted positions still
	// account for the full three columns the fragment claims.
	assert.Equal(t, []string{
		`goto(0,0)`,
		`print("ab",{})`,
		`print("!",{})`,
		`print("cd",{})`,
	}, got)
}

// A composed scene exercising text, erase, lines and clipping together,
// asserted against a golden transcript.
func TestFlushSceneGolden(t *testing.T) {
	b := New(6, 12)
	p := pen.Pen{}
	b.HLineAt(0, 0, 11, LineSingle, p, 0)
	b.HLineAt(5, 0, 11, LineSingle, p, 0)
	b.VLineAt(0, 5, 0, LineSingle, p, 0)
	b.VLineAt(0, 5, 11, LineSingle, p, 0)
	b.TextAt(2, 3, "pigrid", pen.New(map[pen.Attr]any{pen.FG: 2}))
	b.EraseAt(3, 3, 6, pen.New(map[pen.Attr]any{pen.BG: 4}))

	var w RecWindow
	b.FlushTo(&w)
	golden.Assert(t, strings.Join(w.Calls, "\n")+"\n", "scene.golden")
}

func TestContinuationAtHeadPanics(t *testing.T) {
	b := New(1, 10)
	// corrupt the grid directly: flush must refuse to walk it
	b.cells[0][0] = cell{state: stateCont, len: 0}
	var w RecWindow
	require.Panics(t, func() { b.FlushTo(&w) })
}
