package pigrid

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StringWidth returns the terminal display width of s, accounting for wide
// (East Asian) and combining characters.
func StringWidth(s string) int {
	return ansi.StringWidth(s)
}

// sliceColumns extracts n display columns of s starting at display column
// offs. A double-width cluster straddling either boundary is dropped rather
// than split, so the result never contains half a glyph; the slice may
// therefore cover fewer columns than requested.
func sliceColumns(s string, offs, n int) string {
	if n <= 0 || offs < 0 {
		return ""
	}
	var out strings.Builder
	col := 0
	remaining := s
	for len(remaining) > 0 && col < offs+n {
		cluster, w := ansi.FirstGraphemeCluster(remaining, ansi.GraphemeWidth)
		if len(cluster) == 0 {
			break
		}
		if col >= offs && col+w <= offs+n {
			out.WriteString(cluster)
		}
		col += w
		remaining = remaining[len(cluster):]
	}
	return out.String()
}
