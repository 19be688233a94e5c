// Package style provides consistent terminal styling for the
// pantheon-workflows CLI.
package style

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green   = color.New(color.FgGreen)
	red     = color.New(color.FgRed)
	yellow  = color.New(color.FgYellow, color.Bold)
	blue    = color.New(color.FgBlue)
	cyan    = color.New(color.FgCyan)
	gray    = color.New(color.FgHiBlack)
	heading = color.New(color.Bold, color.FgMagenta)
)

func init() {
	// fatih/color already honours NO_COLOR and non-TTY stdout
	if os.Getenv("PANTHEON_WORKFLOWS_NO_COLOR") != "" {
		color.NoColor = true
	}
}

// SetNoColor forces colors off (or back on).
func SetNoColor(off bool) {
	color.NoColor = off
}

func Green(s string) string  { return green.Sprint(s) }
func Red(s string) string    { return red.Sprint(s) }
func Yellow(s string) string { return yellow.Sprint(s) }
func Blue(s string) string   { return blue.Sprint(s) }
func Cyan(s string) string   { return cyan.Sprint(s) }
func Gray(s string) string   { return gray.Sprint(s) }

// Status markers
func Check() string { return Green("✓") }
func Cross() string { return Red("✗") }
func Warn() string  { return Yellow("⚠") }
func Arrow() string { return Blue("→") }

// SetupHelp configures Typer-style help templates for a Cobra command
func SetupHelp(cmd *cobra.Command) {
	cobra.AddTemplateFunc("styleHeading", styleHeading)
	cobra.AddTemplateFunc("styleCommand", Cyan)
	cobra.AddTemplateFunc("rpadStyled", rpadStyled)

	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetHelpTemplate(helpTemplate)
}

func styleHeading(s string) string {
	return heading.Sprint(s)
}

func rpadStyled(s string, padding int) string {
	styled := Cyan(s)
	// Pad on the raw length so escape codes don't skew columns
	padLen := padding - len(s)
	if padLen > 0 {
		return styled + strings.Repeat(" ", padLen)
	}
	return styled
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{ styleCommand .UseLine }}{{if .HasAvailableSubCommands}} [command]{{end}}
{{if .HasAvailableSubCommands}}
{{ styleHeading "Commands:" }}{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpadStyled .Name .NamePadding }}  {{.Short}}{{end}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

const helpTemplate = `{{if .Long}}{{.Long}}

{{else if .Short}}{{.Short}}

{{end}}{{ styleHeading "Usage:" }}
  {{ styleCommand .UseLine }}{{if .HasAvailableSubCommands}} [command]{{end}}
{{if .HasExample}}
{{ styleHeading "Examples:" }}
{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
{{ styleHeading "Commands:" }}{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpadStyled .Name .NamePadding }}  {{.Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
{{ styleHeading "Options:" }}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}
{{ styleHeading "Global Options:" }}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableSubCommands}}
Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`
