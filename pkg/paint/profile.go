package paint

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode controls whether styling is emitted, typically wired to a
// --color flag.
type Mode int

const (
	// ModeAuto detects capabilities from the stream and environment.
	ModeAuto Mode = iota
	// ModeAlways forces 16-color output even when the stream is not a
	// terminal.
	ModeAlways
	// ModeNever disables styling entirely.
	ModeNever
)

// String returns the mode's flag value.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseMode parses a --color flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "always", "on":
		return ModeAlways, nil
	case "never", "off":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Profile resolves the mode against the given stream to a termenv
// color profile.
func (m Mode) Profile(f *os.File) termenv.Profile {
	switch m {
	case ModeAlways:
		return termenv.ANSI
	case ModeNever:
		return termenv.Ascii
	default:
		return DetectProfile(f)
	}
}

// DetectProfile determines the color profile for f. It honors the
// NO_COLOR convention, degrades to Ascii when f is piped or redirected,
// and otherwise defers to termenv's terminal detection.
func DetectProfile(f *os.File) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).Profile
}
