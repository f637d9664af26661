// Command render-stress hammers a pigrid buffer with randomized draws and
// repeated overwrites, flushing every frame and reporting how much work the
// span engine saved the sink.
//
// Usage:
//
//	go run ./cmd/render-stress
//	go run ./cmd/render-stress -frames 500 -ops 2000
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/vito/pigrid/pkg/pen"
	"github.com/vito/pigrid/pkg/pigrid"
)

func main() {
	frames := flag.Int("frames", 100, "number of frames to render")
	ops := flag.Int("ops", 1000, "draw operations per frame")
	lines := flag.Int("lines", 50, "buffer height")
	cols := flag.Int("cols", 200, "buffer width")
	seed := flag.Int64("seed", 1, "random seed")
	debug := flag.Bool("debug", false, "log recoverable diagnostics")
	flag.Parse()

	if err := run(*frames, *ops, *lines, *cols, *seed, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(frames, ops, lines, cols int, seed int64, debug bool) error {
	// Random overdraw trips the buffer's pen-collision diagnostics
	// constantly; keep them quiet unless asked for.
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	rng := rand.New(rand.NewSource(seed))
	b := pigrid.New(lines, cols)

	pens := make([]pen.Pen, 8)
	for i := range pens {
		pens[i] = pen.New(map[pen.Attr]any{
			pen.FG: rng.Intn(256),
			pen.BG: rng.Intn(256),
		})
	}

	var (
		total   pigrid.FlushStats
		elapsed time.Duration
	)
	win := pigrid.NewAnsiWindow(io.Discard)
	for f := 0; f < frames; f++ {
		for i := 0; i < ops; i++ {
			line := rng.Intn(lines)
			col := rng.Intn(cols)
			p := pens[rng.Intn(len(pens))]
			switch rng.Intn(4) {
			case 0:
				b.TextAt(line, col, "the quick brown fox", p)
			case 1:
				b.EraseAt(line, col, rng.Intn(30)+1, p)
			case 2:
				b.HLineAt(line, col, col+rng.Intn(30), pigrid.LineSingle, p, pigrid.CapBoth)
			case 3:
				b.VLineAt(line, line+rng.Intn(10), col, pigrid.LineDouble, p, pigrid.CapBoth)
			}
		}
		start := time.Now()
		stats := b.FlushTo(win)
		elapsed += time.Since(start)

		total.Gotos += stats.Gotos
		total.Prints += stats.Prints
		total.Erases += stats.Erases
		total.LineCells += stats.LineCells
		total.Columns += stats.Columns
	}

	perFrame := elapsed / time.Duration(frames)
	fmt.Printf("%d frames x %d ops on %dx%d\n", frames, ops, lines, cols)
	fmt.Printf("flush: %s/frame (%s total)\n", perFrame, elapsed)
	fmt.Printf("emitted: %d gotos, %d prints, %d erases, %d line cells, %d columns\n",
		total.Gotos, total.Prints, total.Erases, total.LineCells, total.Columns)
	return nil
}
