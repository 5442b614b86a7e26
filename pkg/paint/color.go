package paint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Color identifies a terminal palette color. The zero value is NotSet,
// which means "inherit whatever the terminal currently shows", not
// "force the default color".
//
// The named constants are the 16 standard ANSI colors. Custom gives
// access to the full 256-color extended palette; the first 16 extended
// entries are the named colors, so Custom(1) == Red.
type Color int16

// NotSet is the zero Color. Painting with an unset color leaves the
// terminal's current color untouched.
const NotSet Color = 0

// The standard 16-color palette.
const (
	Black Color = iota + 1
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Custom returns the extended-palette color with the given index.
// Whether the terminal can actually show it depends on the detected
// color profile; extended colors degrade to the nearest ANSI color on
// 16-color terminals and to plain text on incapable ones.
func Custom(index uint8) Color {
	return Color(index) + 1
}

// String returns the color's name, or its palette index for extended
// colors. Values outside the palette range behave as NotSet.
func (c Color) String() string {
	if !c.valid() {
		return "notset"
	}
	if int(c) <= len(colorNames) {
		return colorNames[c-1]
	}
	return "color" + strconv.Itoa(int(c)-1)
}

// valid reports whether c is NotSet or a palette entry. Color is an
// open integer type, so hand-constructed values can fall outside the
// 256-entry palette; those inherit like NotSet instead of emitting
// garbage sequences.
func (c Color) valid() bool {
	return c > NotSet && int(c) <= 256
}

var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightblack", "brightred", "brightgreen", "brightyellow",
	"brightblue", "brightmagenta", "brightcyan", "brightwhite",
}

// ParseColor parses a color name ("red", "brightcyan"), a numeric
// extended-palette index ("196"), or the empty string (NotSet).
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "notset" {
		return NotSet, nil
	}
	for i, name := range colorNames {
		if s == name {
			return Color(i) + 1, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return NotSet, fmt.Errorf("unknown color: %q", s)
	}
	return Custom(uint8(n)), nil
}

// termColor converts c to a termenv color through the given profile.
// The second return is false for NotSet and out-of-range values.
func (c Color) termColor(p termenv.Profile) (termenv.Color, bool) {
	if !c.valid() {
		return nil, false
	}
	idx := int(c) - 1
	var tc termenv.Color
	if idx < 16 {
		tc = termenv.ANSIColor(idx)
	} else {
		tc = termenv.ANSI256Color(idx)
	}
	return p.Convert(tc), true
}

// Style returns a style with c as foreground color and everything else
// unset, so a Color works as a styling startpoint: paint.Red.Paint(x).
func (c Color) Style() Style {
	return Style{fg: c}
}

// Fg returns a style with the foreground set to o, replacing c.
func (c Color) Fg(o Color) Style { return c.Style().Fg(o) }

// Bg returns a style with c as foreground and o as background.
func (c Color) Bg(o Color) Style { return c.Style().Bg(o) }

// Bold returns a style with c as foreground and bold enabled.
func (c Color) Bold() Style { return c.Style().Bold() }

// Dim returns a style with c as foreground and dim enabled.
func (c Color) Dim() Style { return c.Style().Dim() }

// Italic returns a style with c as foreground and italic enabled.
func (c Color) Italic() Style { return c.Style().Italic() }

// Underline returns a style with c as foreground and underline enabled.
func (c Color) Underline() Style { return c.Style().Underline() }

// Blink returns a style with c as foreground and blink enabled.
func (c Color) Blink() Style { return c.Style().Blink() }

// Reverse returns a style with c as foreground and reverse video enabled.
func (c Color) Reverse() Style { return c.Style().Reverse() }

// CrossOut returns a style with c as foreground and strikethrough enabled.
func (c Color) CrossOut() Style { return c.Style().CrossOut() }

// Paint wraps v in a Painted that renders with c as foreground on the
// default terminal.
func (c Color) Paint(v any) Painted { return Default().Paint(c, v) }

// With runs fn with c applied as the current foreground on the default
// terminal.
func (c Color) With(fn func()) { Default().With(c, fn) }
