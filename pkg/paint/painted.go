package paint

import (
	"fmt"
	"strconv"
	"strings"
)

// Painted pairs a style with a payload. It implements fmt.Formatter,
// so it can be handed to any fmt printing function with any verb:
// width, precision, and flags are forwarded to the payload's own
// formatting unchanged.
//
// Rendering applies the style, formats the payload, and resets the
// terminal. The reset is issued even if formatting the payload panics,
// so a style never leaks past its text.
type Painted struct {
	term  *Terminal
	style Style
	v     any
}

// Paint wraps v so it renders with s applied on this Terminal. Unset
// fields of s inherit from the scope active at render time, not at
// wrap time.
func (t *Terminal) Paint(s Styler, v any) Painted {
	return Painted{term: t, style: s.Style(), v: v}
}

// Format implements fmt.Formatter. The payload is rendered as if
// inside With(style): the style is applied before, and the enclosing
// scope's style is restored after.
func (p Painted) Format(f fmt.State, verb rune) {
	t := p.term
	if t == nil {
		t = Default()
	}
	t.With(p.style, func() {
		fmt.Fprintf(f, formatString(f, verb), p.v)
	})
}

// formatString reconstructs the format directive that produced this
// Format call, so flags, width, and precision pass through to the
// payload.
func formatString(f fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range []int{'-', '+', '#', ' ', '0'} {
		if f.Flag(flag) {
			b.WriteByte(byte(flag))
		}
	}
	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if prec, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(prec))
	}
	b.WriteRune(verb)
	return b.String()
}
