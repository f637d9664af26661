// Package pen provides the immutable graphical-attribute bundle used by the
// render buffer: foreground and background colors plus style flags. Pens are
// values; every operation returns a new pen and never mutates its receiver.
package pen

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// Attr names a single pen attribute. The attribute set is closed: color
// attributes carry int values (256-color palette indices), style attributes
// carry bools.
type Attr string

const (
	FG        Attr = "fg"
	BG        Attr = "bg"
	Bold      Attr = "b"
	Italic    Attr = "i"
	Underline Attr = "u"
	Reverse   Attr = "rv"
	Strike    Attr = "strike"
	Blink     Attr = "blink"
)

// Pen is an immutable bundle of rendering attributes. The zero value is the
// empty pen, which renders with the terminal's defaults.
type Pen struct {
	attrs map[Attr]any
}

// New constructs a pen from an attribute map. False booleans are dropped so
// that structural equality treats an explicitly-disabled flag the same as an
// absent one. The input map is copied.
func New(attrs map[Attr]any) Pen {
	if len(attrs) == 0 {
		return Pen{}
	}
	m := make(map[Attr]any, len(attrs))
	for k, v := range attrs {
		if b, ok := v.(bool); ok && !b {
			continue
		}
		m[k] = v
	}
	if len(m) == 0 {
		return Pen{}
	}
	return Pen{attrs: m}
}

// Attributes returns a copy of the pen's attribute map.
func (p Pen) Attributes() map[Attr]any {
	if p.attrs == nil {
		return map[Attr]any{}
	}
	return maps.Clone(p.attrs)
}

// Lookup returns the value of a single attribute.
func (p Pen) Lookup(a Attr) (any, bool) {
	v, ok := p.attrs[a]
	return v, ok
}

// IsEmpty reports whether the pen carries no attributes.
func (p Pen) IsEmpty() bool { return len(p.attrs) == 0 }

// Equal reports structural equality of the two pens' attributes.
func (p Pen) Equal(o Pen) bool {
	if len(p.attrs) != len(o.attrs) {
		return false
	}
	for k, v := range p.attrs {
		ov, ok := o.attrs[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Merge layers overlay's attributes over base's, producing a new pen.
func Merge(base, overlay Pen) Pen {
	if base.IsEmpty() {
		return overlay
	}
	if overlay.IsEmpty() {
		return base
	}
	m := make(map[Attr]any, len(base.attrs)+len(overlay.attrs))
	maps.Copy(m, base.attrs)
	maps.Copy(m, overlay.attrs)
	return Pen{attrs: m}
}

// String renders the pen as a stable "{bg=3,fg=1}" form with sorted keys,
// suitable for transcripts and test assertions.
func (p Pen) String() string {
	if len(p.attrs) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(p.attrs))
	for k := range p.attrs {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%v", k, p.attrs[Attr(k)])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Style converts the pen into a lipgloss style for ANSI rendering. Color
// values are 256-color palette indices.
func (p Pen) Style() lipgloss.Style {
	sty := lipgloss.NewStyle()
	if v, ok := p.attrs[FG]; ok {
		if n, ok := v.(int); ok {
			sty = sty.Foreground(lipgloss.Color(strconv.Itoa(n)))
		}
	}
	if v, ok := p.attrs[BG]; ok {
		if n, ok := v.(int); ok {
			sty = sty.Background(lipgloss.Color(strconv.Itoa(n)))
		}
	}
	if p.is(Bold) {
		sty = sty.Bold(true)
	}
	if p.is(Italic) {
		sty = sty.Italic(true)
	}
	if p.is(Underline) {
		sty = sty.Underline(true)
	}
	if p.is(Reverse) {
		sty = sty.Reverse(true)
	}
	if p.is(Strike) {
		sty = sty.Strikethrough(true)
	}
	if p.is(Blink) {
		sty = sty.Blink(true)
	}
	return sty
}

func (p Pen) is(a Attr) bool {
	v, ok := p.attrs[a]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
