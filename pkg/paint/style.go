package paint

// setting is the tri-state value of one attribute. The distinction
// between unset and off matters when merging: an explicit off in an
// inner scope disables an attribute the outer scope turned on, while
// unset inherits it.
type setting uint8

const (
	unset setting = iota
	off
	on
)

// Style is an immutable aggregate of foreground color, background
// color, and text attributes. The zero value has every field unset and
// modifies nothing.
//
// Styles are plain comparable values: builder methods take the receiver
// by value and return a new Style with one field changed, so they can
// be chained freely and compared with ==.
type Style struct {
	fg, bg Color
	attrs  [numAttrs]setting
}

// Styler is anything that can serve as a style: a Color or Attr
// startpoint, or a built Style. Operations that take a Styler accept
// all three interchangeably.
type Styler interface {
	Style() Style
}

// Style returns s itself, making Style a Styler.
func (s Style) Style() Style { return s }

func (s Style) set(a Attr, v setting) Style {
	s.attrs[a-1] = v
	return s
}

func (s Style) attr(a Attr) setting {
	return s.attrs[a-1]
}

// Fg returns a copy of s with the foreground color set to c.
func (s Style) Fg(c Color) Style {
	s.fg = c
	return s
}

// Bg returns a copy of s with the background color set to c.
func (s Style) Bg(c Color) Style {
	s.bg = c
	return s
}

// Bold returns a copy of s with bold explicitly enabled.
func (s Style) Bold() Style { return s.set(Bold, on) }

// NotBold returns a copy of s with bold explicitly disabled. This is
// distinct from the unset state: merged over a bold outer style it
// turns bold off, where unset would inherit it.
func (s Style) NotBold() Style { return s.set(Bold, off) }

// Dim returns a copy of s with dim explicitly enabled.
func (s Style) Dim() Style { return s.set(Dim, on) }

// NotDim returns a copy of s with dim explicitly disabled.
func (s Style) NotDim() Style { return s.set(Dim, off) }

// Italic returns a copy of s with italic explicitly enabled.
func (s Style) Italic() Style { return s.set(Italic, on) }

// NotItalic returns a copy of s with italic explicitly disabled.
func (s Style) NotItalic() Style { return s.set(Italic, off) }

// Underline returns a copy of s with underline explicitly enabled.
func (s Style) Underline() Style { return s.set(Underline, on) }

// NotUnderline returns a copy of s with underline explicitly disabled.
func (s Style) NotUnderline() Style { return s.set(Underline, off) }

// Blink returns a copy of s with blink explicitly enabled.
func (s Style) Blink() Style { return s.set(Blink, on) }

// NotBlink returns a copy of s with blink explicitly disabled.
func (s Style) NotBlink() Style { return s.set(Blink, off) }

// Reverse returns a copy of s with reverse video explicitly enabled.
func (s Style) Reverse() Style { return s.set(Reverse, on) }

// NotReverse returns a copy of s with reverse video explicitly disabled.
func (s Style) NotReverse() Style { return s.set(Reverse, off) }

// CrossOut returns a copy of s with strikethrough explicitly enabled.
func (s Style) CrossOut() Style { return s.set(CrossOut, on) }

// NotCrossOut returns a copy of s with strikethrough explicitly disabled.
func (s Style) NotCrossOut() Style { return s.set(CrossOut, off) }

// Merge overlays o on s: every field o sets explicitly (colors, and
// attributes whether on or off) wins, every field o leaves unset
// inherits from s.
func (s Style) Merge(o Style) Style {
	if o.fg != NotSet {
		s.fg = o.fg
	}
	if o.bg != NotSet {
		s.bg = o.bg
	}
	for i, v := range o.attrs {
		if v != unset {
			s.attrs[i] = v
		}
	}
	return s
}

// Paint wraps v in a Painted that renders with s on the default
// terminal.
func (s Style) Paint(v any) Painted { return Default().Paint(s, v) }

// With runs fn with s applied on the default terminal.
func (s Style) With(fn func()) { Default().With(s, fn) }
