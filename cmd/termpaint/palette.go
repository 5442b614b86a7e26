package termpaint

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: MsgPaletteShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printPalette()
		},
	}
}

// printPalette shows the 256-color extended palette as hex indexes,
// 16 per line, once as foreground and once as background. Width and
// alignment pass through the paint wrapper untouched.
func printPalette() {
	for line := 0; line < 16; line++ {
		fmt.Print("FG:  ")
		for i := 0; i < 16; i++ {
			c := 16*line + i
			fmt.Printf("%-2x ", paint.Custom(uint8(c)).Paint(c))
		}
		fmt.Println()

		fmt.Print("BG:  ")
		for i := 0; i < 16; i++ {
			c := 16*line + i
			fmt.Printf("%-2x ", paint.Plain.Bg(paint.Custom(uint8(c))).Paint(c))
		}
		fmt.Println()
	}
}
