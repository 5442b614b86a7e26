// Package theme maps semantic names ("success", "error", "heading") to
// paint styles, so command output is styled by meaning rather than by
// hardcoded colors.
//
// The default theme ships embedded. Users can override it by dropping
// a theme.yaml into the termpaint XDG config directory, or by pointing
// the CLI at an explicit file.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

// styleDef is one named style in a theme file. Attribute fields are
// pointers so a theme can distinguish "leave unset" (absent) from
// "explicitly off" (false).
type styleDef struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       *bool  `yaml:"bold,omitempty"`
	Dim        *bool  `yaml:"dim,omitempty"`
	Italic     *bool  `yaml:"italic,omitempty"`
	Underline  *bool  `yaml:"underline,omitempty"`
	Blink      *bool  `yaml:"blink,omitempty"`
	Reverse    *bool  `yaml:"reverse,omitempty"`
	CrossOut   *bool  `yaml:"crossout,omitempty"`
}

// Theme is a registry of named styles.
type Theme struct {
	styles map[string]paint.Style
}

//go:embed theme.yaml
var embeddedTheme []byte

// Default returns the embedded default theme. The embedded file is
// part of the build, so failing to parse it is a programming error.
func Default() *Theme {
	t, err := Parse(embeddedTheme)
	if err != nil {
		panic(fmt.Sprintf("theme: embedded theme invalid: %v", err))
	}
	return t
}

// Load reads a theme file, falling back to the default theme for any
// name the file does not define.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}

	merged := Default()
	for name, style := range t.styles {
		merged.styles[name] = style
	}
	return merged, nil
}

// LoadUser returns the user's theme from the XDG config directory, or
// the default theme when no user theme exists. A present-but-broken
// user theme is an error; a missing one is not.
func LoadUser() (*Theme, error) {
	path := filepath.Join(xdg.ConfigHome, "termpaint", "theme.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Parse builds a theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var defs map[string]styleDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("invalid theme yaml: %w", err)
	}

	t := &Theme{styles: make(map[string]paint.Style, len(defs))}
	for name, def := range defs {
		style, err := def.style()
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		t.styles[name] = style
	}
	return t, nil
}

// Get returns the style registered under name. Unknown names resolve
// to the plain style, so output never fails over a missing theme
// entry.
func (t *Theme) Get(name string) paint.Style {
	return t.styles[name]
}

// Names returns the registered style names, for listing and
// validation.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	return names
}

func (d styleDef) style() (paint.Style, error) {
	var s paint.Style

	fg, err := paint.ParseColor(d.Foreground)
	if err != nil {
		return s, err
	}
	bg, err := paint.ParseColor(d.Background)
	if err != nil {
		return s, err
	}
	s = s.Fg(fg).Bg(bg)

	attrs := []struct {
		v       *bool
		on, off func(paint.Style) paint.Style
	}{
		{d.Bold, paint.Style.Bold, paint.Style.NotBold},
		{d.Dim, paint.Style.Dim, paint.Style.NotDim},
		{d.Italic, paint.Style.Italic, paint.Style.NotItalic},
		{d.Underline, paint.Style.Underline, paint.Style.NotUnderline},
		{d.Blink, paint.Style.Blink, paint.Style.NotBlink},
		{d.Reverse, paint.Style.Reverse, paint.Style.NotReverse},
		{d.CrossOut, paint.Style.CrossOut, paint.Style.NotCrossOut},
	}
	for _, a := range attrs {
		switch {
		case a.v == nil:
		case *a.v:
			s = a.on(s)
		default:
			s = a.off(s)
		}
	}
	return s, nil
}
