// help_template.go customizes Cobra's help/usage templates so aoc commands share concise flag sections.
package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	localFlagsHeadingKey = "localFlagsHeading"
	localUsageKey        = "localFlagUsages"
)

const commandHelpTemplate = `{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}{{end}}

Usage:
  {{.UseLine}}
{{if .HasExample}}
Examples:
{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
Subcommands:
{{range .Commands}}{{if (and .IsAvailableCommand (ne .Name "help"))}}  {{rpad .Name .NamePadding}} {{.Short}}
{{end}}{{end}}{{end}}
{{index .Annotations "localFlagsHeading"}}:
{{if .HasAvailableLocalFlags}}{{index .Annotations "localFlagUsages"}}{{else}}  (none){{end}}
{{if .HasAvailableInheritedFlags}}
Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}`

// decorateCommandHelp installs the shared template with heading as the title
// of the command's own flag section.
func decorateCommandHelp(cmd *cobra.Command, heading string) {
	cmd.SetHelpTemplate(commandHelpTemplate)
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c.Annotations == nil {
			c.Annotations = make(map[string]string)
		}
		c.Annotations[localFlagsHeadingKey] = heading
		c.Annotations[localUsageKey] = formatFlagUsages(c.LocalFlags())
		defaultHelp(c, args)
	})
}

func formatFlagUsages(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	usages := fs.FlagUsagesWrapped(100)
	usages = strings.ReplaceAll(usages, "\t", "  ")
	return strings.TrimRight(usages, "\n")
}
