package paint

// Attr is a text attribute usable as a styling startpoint, so
// paint.Bold.Fg(paint.Red).Paint(x) works the same as
// paint.Red.Bold().Paint(x).
//
// Whether the terminal renders a given attribute is up to the terminal;
// unsupported attributes are silently ignored by the backend, never
// reported as errors.
type Attr int

const (
	// Plain modifies nothing: Plain.Paint(x) prints x unstyled, and
	// Plain applied inside a styled scope inherits that scope's styling.
	Plain Attr = iota
	Bold
	Dim
	Italic
	Underline
	Blink
	Reverse
	CrossOut

	numAttrs = int(CrossOut)
)

// String returns the attribute's name.
func (a Attr) String() string {
	switch a {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case Reverse:
		return "reverse"
	case CrossOut:
		return "crossout"
	default:
		return "unknown"
	}
}

// Style returns a style with only this attribute enabled (or the zero
// style for Plain).
func (a Attr) Style() Style {
	var s Style
	if a != Plain {
		s = s.set(a, on)
	}
	return s
}

// Fg returns a style with this attribute enabled and the given
// foreground color.
func (a Attr) Fg(c Color) Style { return a.Style().Fg(c) }

// Bg returns a style with this attribute enabled and the given
// background color.
func (a Attr) Bg(c Color) Style { return a.Style().Bg(c) }

// Bold enables bold on top of this attribute.
func (a Attr) Bold() Style { return a.Style().Bold() }

// Dim enables dim on top of this attribute.
func (a Attr) Dim() Style { return a.Style().Dim() }

// Italic enables italic on top of this attribute.
func (a Attr) Italic() Style { return a.Style().Italic() }

// Underline enables underline on top of this attribute.
func (a Attr) Underline() Style { return a.Style().Underline() }

// Blink enables blink on top of this attribute.
func (a Attr) Blink() Style { return a.Style().Blink() }

// Reverse enables reverse video on top of this attribute.
func (a Attr) Reverse() Style { return a.Style().Reverse() }

// CrossOut enables strikethrough on top of this attribute.
func (a Attr) CrossOut() Style { return a.Style().CrossOut() }

// Paint wraps v in a Painted that renders with this attribute on the
// default terminal.
func (a Attr) Paint(v any) Painted { return Default().Paint(a, v) }

// With runs fn with this attribute applied on the default terminal.
func (a Attr) With(fn func()) { Default().With(a, fn) }
