package paint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    paint.Mode
		wantErr bool
	}{
		{in: "auto", want: paint.ModeAuto},
		{in: "", want: paint.ModeAuto},
		{in: "always", want: paint.ModeAlways},
		{in: "ALWAYS", want: paint.ModeAlways},
		{in: "on", want: paint.ModeAlways},
		{in: "never", want: paint.ModeNever},
		{in: "off", want: paint.ModeNever},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := paint.ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeProfile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	// A regular file is never a terminal.
	assert.Equal(t, termenv.Ascii, paint.ModeAuto.Profile(f))
	assert.Equal(t, termenv.Ascii, paint.ModeNever.Profile(f))
	// Always forces styling even on non-terminals.
	assert.Equal(t, termenv.ANSI, paint.ModeAlways.Profile(f))
}

func TestDetectProfileHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, termenv.Ascii, paint.DetectProfile(os.Stdout))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    paint.Color
		wantErr bool
	}{
		{in: "red", want: paint.Red},
		{in: "Red", want: paint.Red},
		{in: " brightcyan ", want: paint.BrightCyan},
		{in: "", want: paint.NotSet},
		{in: "notset", want: paint.NotSet},
		{in: "196", want: paint.Custom(196)},
		{in: "0", want: paint.Black},
		{in: "chartreuse", wantErr: true},
		{in: "300", wantErr: true},
		{in: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := paint.ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
