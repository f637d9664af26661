package pigrid

import "github.com/vito/pigrid/pkg/pen"

// internPen stores p in the pen table and returns its index, reusing an
// existing entry when one is structurally equal. Pen populations per frame
// are small, so a linear scan beats maintaining a canonicalized hash key.
func (b *Buffer) internPen(p pen.Pen) int {
	for i := range b.pens {
		if b.pens[i].Equal(p) {
			return i
		}
	}
	b.pens = append(b.pens, p)
	return len(b.pens) - 1
}

// internText appends s to the text table and returns its index. Text is not
// deduplicated; entries live until the next Reset or Clear.
func (b *Buffer) internText(s string) int {
	b.texts = append(b.texts, s)
	return len(b.texts) - 1
}
