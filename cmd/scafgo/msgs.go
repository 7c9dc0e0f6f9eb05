package scafgo

// Message constants for the root command
const (
	MsgRootShort = "Scaffold files from installed packages into your project"

	MsgRootLong = `scafgo resolves the scaffold-file declarations of the packages participating
in a project build, merges them with override precedence (the root project
always wins), interpolates symbolic locations like [web-root] into
destination paths, and places the files as copies or symlinks.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview file operations without executing them"
	MsgFlagProject = "Project directory containing the scafgo descriptor"
	MsgFlagInstall = "Install root holding the installed packages"

	// MsgUsageTemplate styles the section headers of cobra's usage output
	// through the template funcs registered by initTemplateFormatting.
	MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{bold .CommandPath}} [command] --help" for more information about a command.{{end}}
`
)
