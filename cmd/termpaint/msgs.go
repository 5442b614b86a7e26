package termpaint

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Showcase and test terminal styling"
	MsgDemoShort    = "Print a sample of styled output"
	MsgPaletteShort = "Print the extended 256-color palette"
	MsgGuideShort   = "Display the styling guide"
	MsgThemeShort   = "List the styles of the active theme"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor   = "Color output: auto, always, or never"
	MsgFlagTheme   = "Path to a theme file (overrides the user theme)"

	// Error messages
	MsgErrLoadConfig = "failed to load config: %w"
	MsgErrLoadTheme  = "failed to load theme: %w"
	MsgErrColorMode  = "invalid --color value: %w"
)

// MsgRootLong is the root command's long help text.
const MsgRootLong = `termpaint styles terminal output with composable colors and
attributes, degrading to plain text on incapable or redirected streams.

The demo and palette commands exercise the library against the current
terminal; guide explains how styles compose. Styling honors NO_COLOR,
the --color flag, and the color profile of the attached terminal.`

// MsgUsageTemplate restyles cobra's usage output: section headings go
// through the bold/boldUpper template funcs from formatting.go.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{bold .CommandPath}} [command] --help" for more information about a command.{{end}}
`
