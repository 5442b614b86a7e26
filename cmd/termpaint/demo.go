package termpaint

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

var sectionStyle = lipgloss.NewStyle().
	Bold(true).
	MarginTop(1)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runDemo()
		},
	}
}

func runDemo() {
	fmt.Println(sectionStyle.Render("Styles compose"))
	fmt.Printf("%s\n%s\n%s\n%s\n%s\n",
		paint.Red.Bg(paint.Green).Bold().Paint("Red-Green-Bold"),
		paint.Blue.Paint("Blue"),
		paint.Blue.Bold().Paint("Blue"),
		paint.Blue.Bg(paint.Magenta).Paint("Blue"),
		paint.Plain.Underline().Paint("Underline"))

	fmt.Println(sectionStyle.Render("Scopes nest and inherit"))
	paint.Red.With(func() {
		fmt.Print("JustRed")
		paint.Bold.With(func() {
			fmt.Printf(" BoldRed %s BoldRed ", paint.Underline.Paint("Underline"))
		})
		fmt.Print("JustRed ")

		fmt.Printf("%s", paint.Blue.Paint("Blue (overwrite) "))
		paint.Green.With(func() {
			fmt.Println("Green (overwrite)")
		})
	})

	fmt.Println(sectionStyle.Render("Theme styles"))
	names := activeTheme.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-10s %s\n", name,
			paint.Paint(activeTheme.Get(name), "The quick brown fox"))
	}
}
