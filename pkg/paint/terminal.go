package paint

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Terminal owns the styled-output state for one output stream: a
// termenv handle that knows the stream's color capabilities, and the
// stack of styles entered with With.
//
// Terminals are not safe for concurrent use. All painting on one
// stream must happen from a single goroutine.
type Terminal struct {
	out   *termenv.Output
	stack []Style
}

// Option configures a Terminal.
type Option func(*options)

type options struct {
	profile termenv.Profile
}

// WithProfile forces the color profile instead of detecting it from
// the stream and environment. termenv.Ascii disables styling entirely;
// termenv.ANSI forces 16-color output even when the stream is not a
// terminal, which is useful in tests.
func WithProfile(p termenv.Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// NewTerminal opens a styled-output handle on w. Capability detection
// is delegated to termenv: when w is not a capable terminal or NO_COLOR
// is set, the profile is Ascii and every styling operation on the
// returned Terminal is a silent no-op.
func NewTerminal(w io.Writer, opts ...Option) *Terminal {
	autodetect := termenv.Profile(-1)
	o := options{profile: autodetect}
	for _, opt := range opts {
		opt(&o)
	}

	var out *termenv.Output
	if o.profile == autodetect {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(o.profile))
	}
	return &Terminal{out: out}
}

var defaultTerm *Terminal

// Default returns the shared Terminal for standard output, opening it
// on first use. The package-level Paint and With helpers, and the
// Paint/With methods on Color, Attr, and Style, all operate on it.
func Default() *Terminal {
	if defaultTerm == nil {
		defaultTerm = NewTerminal(os.Stdout, WithProfile(DetectProfile(os.Stdout)))
	}
	return defaultTerm
}

// SetDefault replaces the shared Terminal. Intended for applications
// that want package-level painting to honor a --color flag; call it
// once at startup, before any painting.
func SetDefault(t *Terminal) {
	defaultTerm = t
}

// Paint wraps v so it renders with s applied on the default terminal.
func Paint(s Styler, v any) Painted {
	return Default().Paint(s, v)
}

// With applies s on the default terminal, runs fn, and restores the
// previous style on every exit path.
func With(s Styler, fn func()) {
	Default().With(s, fn)
}

// Supported reports whether the output stream supports styling at all.
// When false, Paint and With still render their payloads, as plain
// text.
func (t *Terminal) Supported() bool {
	return t.out.Profile != termenv.Ascii
}

// Profile returns the detected (or forced) termenv color profile.
func (t *Terminal) Profile() termenv.Profile {
	return t.out.Profile
}

// Current returns the style at the top of the scope stack: the fully
// merged style of all With scopes currently entered, or the zero style
// at depth zero.
func (t *Terminal) Current() Style {
	if len(t.stack) == 0 {
		return Style{}
	}
	return t.stack[len(t.stack)-1]
}

// Depth returns the number of With scopes currently entered.
func (t *Terminal) Depth() int {
	return len(t.stack)
}

// With applies s on top of the current style, runs fn, and restores
// the previous style. The restore runs on every exit path, including a
// panic in fn, so the scope depth after With returns (or the panic
// propagates) always equals the depth before the call.
//
// Unset fields of s inherit from the enclosing scope; explicit fields,
// including explicitly disabled attributes, override it.
func (t *Terminal) With(s Styler, fn func()) {
	st := s.Style()
	t.stack = append(t.stack, t.Current().Merge(st))
	t.apply(st)
	defer func() {
		t.stack = t.stack[:len(t.stack)-1]
		t.reset()
		t.apply(t.Current())
	}()
	fn()
}

// sgr parameter codes for attributes, indexed by Attr-1. The on codes
// follow termenv's sequence constants; the off codes are the standard
// per-attribute resets (bold and dim share 22).
var attrOnSeq = [numAttrs]string{
	termenv.BoldSeq,
	termenv.FaintSeq,
	termenv.ItalicSeq,
	termenv.UnderlineSeq,
	termenv.BlinkSeq,
	termenv.ReverseSeq,
	termenv.CrossOutSeq,
}

var attrOffSeq = [numAttrs]string{"22", "22", "23", "24", "25", "27", "29"}

// apply emits the minimal escape sequence moving the terminal from its
// current state to s: unset fields are not touched. On an Ascii
// profile nothing is written.
func (t *Terminal) apply(s Style) {
	if !t.Supported() {
		return
	}

	var seqs []string
	if c, ok := s.fg.termColor(t.out.Profile); ok {
		seqs = append(seqs, c.Sequence(false))
	}
	if c, ok := s.bg.termColor(t.out.Profile); ok {
		seqs = append(seqs, c.Sequence(true))
	}
	for i, v := range s.attrs {
		switch v {
		case on:
			seqs = append(seqs, attrOnSeq[i])
		case off:
			seqs = append(seqs, attrOffSeq[i])
		}
	}
	if len(seqs) == 0 {
		return
	}
	_, _ = t.out.WriteString(termenv.CSI + strings.Join(seqs, ";") + "m")
}

// reset unconditionally returns the terminal to its default style. On
// an Ascii profile nothing is written.
func (t *Terminal) reset() {
	if !t.Supported() {
		return
	}
	t.out.Reset()
}
