package termpaint

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termpaint/internal/version"
	"github.com/arthur-debert/termpaint/pkg/config"
	"github.com/arthur-debert/termpaint/pkg/logging"
	"github.com/arthur-debert/termpaint/pkg/paint"
	"github.com/arthur-debert/termpaint/pkg/theme"
)

// activeTheme is resolved once per invocation in the root command's
// PersistentPreRunE and read by the subcommands.
var activeTheme = theme.Default()

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		colorFlag string
		themeFlag string
	)

	rootCmd := &cobra.Command{
		Use:     "termpaint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return setupStyling(colorFlag, themeFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", MsgFlagTheme)

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setupStyling resolves the color mode and theme from flags and the
// user config, flags winning, then rebinds the default paint terminal
// accordingly.
func setupStyling(colorFlag, themeFlag string) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	if colorFlag == "" {
		colorFlag = cfg.Color
	}
	mode, err := paint.ParseMode(colorFlag)
	if err != nil {
		return fmt.Errorf(MsgErrColorMode, err)
	}
	paint.SetDefault(paint.NewTerminal(os.Stdout, paint.WithProfile(mode.Profile(os.Stdout))))
	logger.Debug().
		Stringer("mode", mode).
		Bool("supported", paint.Default().Supported()).
		Msg("Styling configured")

	themePath := themeFlag
	if themePath == "" {
		themePath = cfg.Theme
	}
	if themePath != "" {
		activeTheme, err = theme.Load(themePath)
	} else {
		activeTheme, err = theme.LoadUser()
	}
	if err != nil {
		return fmt.Errorf(MsgErrLoadTheme, err)
	}
	return nil
}
