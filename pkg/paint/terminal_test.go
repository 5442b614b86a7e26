package paint_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

// newBufferTerminal returns a Terminal writing to an in-memory buffer
// with a forced 16-color profile, so escape sequences are emitted
// deterministically regardless of the test environment.
func newBufferTerminal() (*paint.Terminal, *bytes.Buffer) {
	var buf bytes.Buffer
	return paint.NewTerminal(&buf, paint.WithProfile(termenv.ANSI)), &buf
}

func TestPaintEndToEnd(t *testing.T) {
	term, buf := newBufferTerminal()

	style := paint.Red.Bg(paint.Green).Bold()
	fmt.Fprintf(buf, "%s", term.Paint(style, "Red-Green-Bold"))

	// Foreground, background, and attribute applied in that order,
	// then the payload, then a single reset.
	assert.Equal(t, "\x1b[31;42;1mRed-Green-Bold\x1b[0m", buf.String())
}

func TestPaintAlwaysResets(t *testing.T) {
	tests := []struct {
		name  string
		style paint.Styler
		v     any
	}{
		{name: "styled string", style: paint.Blue, v: "x"},
		{name: "plain string", style: paint.Plain, v: "x"},
		{name: "styled int", style: paint.Bold, v: 42},
		{name: "explicit off only", style: paint.Plain.Style().NotBold(), v: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, buf := newBufferTerminal()
			fmt.Fprintf(buf, "%v", term.Paint(tt.style, tt.v))

			assert.Equal(t, 1, strings.Count(buf.String(), "\x1b[0m"),
				"every paint must emit exactly one trailing reset")
			assert.True(t, strings.HasSuffix(buf.String(), "\x1b[0m"))
		})
	}
}

func TestPaintUnsupportedStream(t *testing.T) {
	var buf bytes.Buffer
	term := paint.NewTerminal(&buf, paint.WithProfile(termenv.Ascii))

	require.False(t, term.Supported())

	fmt.Fprintf(&buf, "%s", term.Paint(paint.Red.Bold(), "X"))
	assert.Equal(t, "X", buf.String(), "incapable streams get plain passthrough")

	term.With(paint.Green, func() {
		fmt.Fprintf(&buf, "%s", term.Paint(paint.Plain, "Y"))
	})
	assert.Equal(t, "XY", buf.String())
}

func TestWithNestedInheritance(t *testing.T) {
	term, _ := newBufferTerminal()

	term.With(paint.Red, func() {
		assert.Equal(t, paint.Red.Style(), term.Current())

		term.With(paint.Blue, func() {
			// Inside the nested scope, unset colors resolve to Blue.
			assert.Equal(t, paint.Blue.Style(), term.Current())
		})

		// After the nested scope exits, they resolve back to Red.
		assert.Equal(t, paint.Red.Style(), term.Current())

		term.With(paint.Bold, func() {
			// Attributes merge with the outer color.
			assert.Equal(t, paint.Red.Bold(), term.Current())

			term.With(paint.Plain.Style().NotBold(), func() {
				assert.Equal(t, paint.Red.NotBold(), term.Current())
			})
		})
	})

	// After the outer scope exits, back to terminal default.
	assert.Equal(t, paint.Plain.Style(), term.Current())
	assert.Equal(t, 0, term.Depth())
}

func TestWithRestoresOnPanic(t *testing.T) {
	term, buf := newBufferTerminal()

	require.Panics(t, func() {
		term.With(paint.Red, func() {
			term.With(paint.Blue, func() {
				panic("boom")
			})
		})
	})

	assert.Equal(t, 0, term.Depth(), "depth must return to its pre-call value")
	assert.Equal(t, paint.Plain.Style(), term.Current())
	assert.True(t, strings.Contains(buf.String(), "\x1b[0m"),
		"reset must be attempted even when the body panics")
}

func TestWithEmitsRestoreSequence(t *testing.T) {
	term, buf := newBufferTerminal()

	term.With(paint.Red, func() {
		buf.WriteString("outer")
		term.With(paint.Blue, func() {
			buf.WriteString("inner")
		})
		buf.WriteString("outer")
	})

	// Leaving the inner scope resets and re-applies the outer style.
	assert.Equal(t,
		"\x1b[31mouter\x1b[34minner\x1b[0m\x1b[31mouter\x1b[0m",
		buf.String())
}

func TestPaintInheritsScopeAtRenderTime(t *testing.T) {
	term, buf := newBufferTerminal()

	// Wrapped outside the scope, rendered inside it: the unset
	// background inherits from the scope active at render time.
	p := term.Paint(paint.Bold, "b")
	term.With(paint.Red, func() {
		fmt.Fprintf(buf, "%s", p)
	})

	assert.Equal(t, "\x1b[31m\x1b[1mb\x1b[0m\x1b[31m\x1b[0m", buf.String())
}

func TestPaintForwardsFormattingParameters(t *testing.T) {
	tests := []struct {
		name   string
		format string
		v      any
		want   string
	}{
		{name: "width", format: "%5s", v: "ab", want: "   ab"},
		{name: "left align", format: "%-4d", v: 7, want: "7   "},
		{name: "hex", format: "%x", v: 255, want: "ff"},
		{name: "hex padded", format: "%-2x", v: 10, want: "a "},
		{name: "precision", format: "%.2f", v: 3.14159, want: "3.14"},
		{name: "zero pad", format: "%04d", v: 42, want: "0042"},
		{name: "sign", format: "%+d", v: 42, want: "+42"},
		{name: "alt hex", format: "%#x", v: 255, want: "0xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, buf := newBufferTerminal()
			fmt.Fprintf(buf, tt.format, term.Paint(paint.Bold, tt.v))

			assert.Equal(t, "\x1b[1m"+tt.want+"\x1b[0m", buf.String())
		})
	}
}

func TestPaintCustomColorSequences(t *testing.T) {
	var buf bytes.Buffer
	term := paint.NewTerminal(&buf, paint.WithProfile(termenv.ANSI256))

	fmt.Fprintf(&buf, "%s", term.Paint(paint.Custom(196), "r"))
	assert.Equal(t, "\x1b[38;5;196mr\x1b[0m", buf.String())

	// Background variant of the same palette entry.
	buf.Reset()
	fmt.Fprintf(&buf, "%s", term.Paint(paint.Plain.Bg(paint.Custom(196)), "r"))
	assert.Equal(t, "\x1b[48;5;196mr\x1b[0m", buf.String())
}

func TestPaintOutOfRangeColor(t *testing.T) {
	term, buf := newBufferTerminal()

	// A hand-constructed out-of-range color inherits like NotSet: no
	// color sequence, just the payload and the unconditional reset.
	fmt.Fprintf(buf, "%s", term.Paint(paint.Color(-1), "x"))
	assert.Equal(t, "x\x1b[0m", buf.String())

	buf.Reset()
	fmt.Fprintf(buf, "%s", term.Paint(paint.Color(9999).Bold(), "x"))
	assert.Equal(t, "\x1b[1mx\x1b[0m", buf.String())
}

func TestDefaultTerminalHelpers(t *testing.T) {
	term, buf := newBufferTerminal()
	prev := paint.Default()
	paint.SetDefault(term)
	defer paint.SetDefault(prev)

	paint.With(paint.Red, func() {
		fmt.Fprintf(buf, "%s", paint.Bold.Paint("x"))
	})

	assert.Equal(t, "\x1b[31m\x1b[1mx\x1b[0m\x1b[31m\x1b[0m", buf.String())
	assert.Equal(t, 0, paint.Default().Depth())
}
