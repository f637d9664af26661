package pigrid

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vito/pigrid/pkg/pen"
)

// checkIntegrity asserts the grid head/continuation invariants: column 0 is
// a head, every continuation points at a head whose span covers it, line
// heads are one column wide, and all interned indices are live.
func checkIntegrity(t *testing.T, b *Buffer) {
	t.Helper()
	for l := 0; l < b.lines; l++ {
		row := b.cells[l]
		require.NotEqual(t, stateCont, row[0].state, "line %d col 0 must be a head", l)
		col := 0
		for col < b.cols {
			c := row[col]
			require.NotEqual(t, stateCont, c.state, "line %d col %d: continuation at head position", l, col)
			n := c.len
			if c.state == stateLine {
				n = 1
			}
			require.Greater(t, n, 0, "line %d col %d: non-positive span", l, col)
			require.LessOrEqual(t, col+n, b.cols, "line %d col %d: span overruns row", l, col)
			switch c.state {
			case stateText:
				require.Less(t, c.textIdx, len(b.texts), "line %d col %d: dead text index", l, col)
				require.Less(t, c.penIdx, len(b.pens), "line %d col %d: dead pen index", l, col)
			case stateErase, stateLine:
				require.Less(t, c.penIdx, len(b.pens), "line %d col %d: dead pen index", l, col)
			}
			for k := col + 1; k < col+n; k++ {
				require.Equal(t, stateCont, row[k].state, "line %d col %d: expected continuation", l, k)
				require.Equal(t, col, row[k].startCol(), "line %d col %d: continuation points at wrong head", l, k)
			}
			col += n
		}
	}
}

func TestMakeSpanFreshRow(t *testing.T) {
	b := New(2, 10)
	hc := b.makeSpan(0, 3, 4)
	hc.state = stateErase
	hc.penIdx = b.internPen(pen.Pen{})
	checkIntegrity(t, b)

	// the row is now skip[0,3) erase[3,7) skip[7,10)
	require.Equal(t, stateSkip, b.cells[0][0].state)
	require.Equal(t, 3, b.cells[0][0].len)
	require.Equal(t, stateErase, b.cells[0][3].state)
	require.Equal(t, 4, b.cells[0][3].len)
	require.Equal(t, stateSkip, b.cells[0][7].state)
	require.Equal(t, 3, b.cells[0][7].len)
}

func TestMakeSpanSplitsTextTail(t *testing.T) {
	b := New(1, 20)
	b.TextAt(0, 0, "abcdefghij", pen.Pen{})
	b.makeSpan(0, 3, 4).state = stateSkip
	checkIntegrity(t, b)

	// the right remainder keeps the interned text with an advanced offset
	tail := b.cells[0][7]
	require.Equal(t, stateText, tail.state)
	require.Equal(t, 3, tail.len)
	require.Equal(t, 7, tail.textOffs)

	head := b.cells[0][0]
	require.Equal(t, stateText, head.state)
	require.Equal(t, 3, head.len)
	require.Equal(t, 0, head.textOffs)
}

func TestMakeSpanCoversWholeSpans(t *testing.T) {
	b := New(1, 12)
	b.TextAt(0, 0, "abc", pen.Pen{})
	b.TextAt(0, 3, "def", pen.Pen{})
	b.TextAt(0, 6, "ghi", pen.Pen{})
	// one claim swallowing all three
	b.makeSpan(0, 0, 9).state = stateSkip
	checkIntegrity(t, b)
	require.Equal(t, stateSkip, b.cells[0][0].state)
	require.Equal(t, 9, b.cells[0][0].len)
}

func TestMakeSpanAtRowEdges(t *testing.T) {
	b := New(1, 8)
	b.makeSpan(0, 0, 8).state = stateErase
	b.cells[0][0].penIdx = b.internPen(pen.Pen{})
	checkIntegrity(t, b)

	b.makeSpan(0, 0, 1).state = stateSkip
	checkIntegrity(t, b)
	b.makeSpan(0, 7, 1).state = stateSkip
	checkIntegrity(t, b)
}

func TestMakeSpanOutOfBoundsPanics(t *testing.T) {
	b := New(1, 8)
	require.Panics(t, func() { b.makeSpan(0, 4, 8) })
	require.Panics(t, func() { b.makeSpan(0, -1, 2) })
	require.Panics(t, func() { b.makeSpan(1, 0, 2) })
	require.Panics(t, func() { b.makeSpan(0, 0, 0) })
}

// TestGridIntegrityRandomOps hammers the public drawing surface with a
// deterministic random sequence and re-checks the invariants throughout.
func TestGridIntegrityRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New(12, 40)
	pens := []pen.Pen{
		{},
		pen.New(map[pen.Attr]any{pen.FG: 1}),
		pen.New(map[pen.Attr]any{pen.BG: 2, pen.Bold: true}),
	}
	for i := 0; i < 2000; i++ {
		line := rng.Intn(14) - 1
		col := rng.Intn(44) - 2
		n := rng.Intn(10) + 1
		p := pens[rng.Intn(len(pens))]
		switch rng.Intn(5) {
		case 0:
			b.TextAt(line, col, fmt.Sprintf("op%d text", i), p)
		case 1:
			b.EraseAt(line, col, n, p)
		case 2:
			b.SkipAt(line, col, n)
		case 3:
			b.HLineAt(line, col, col+n, LineSingle, p, CapBoth)
		case 4:
			b.VLineAt(line, line+n, col, LineDouble, p, 0)
		}
		if i%97 == 0 {
			checkIntegrity(t, b)
		}
	}
	checkIntegrity(t, b)

	// and the buffer is still flushable
	var w RecWindow
	b.FlushTo(&w)
	checkIntegrity(t, b)
}
