package termpaint

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termpaint/pkg/paint"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: MsgThemeShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := activeTheme.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s\n", paint.Paint(activeTheme.Get(name), name))
			}
		},
	}
}
