package termpaint

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(renderGuide())
		},
	}
}

// renderGuide converts the embedded guide to styled terminal output.
// On incapable streams, or if the renderer cannot be built, the raw
// markdown is printed instead.
func renderGuide() string {
	if !paint.Default().Supported() {
		return guideMarkdown
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return guideMarkdown
	}

	out, err := renderer.Render(guideMarkdown)
	if err != nil {
		return guideMarkdown
	}
	return out
}
