package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	groupAnnotationKey = "group"
	defaultFlagGroup   = "Other options"
)

// groupedUsageTemplate is the cobra usage template with local flags
// printed by group, see flagUsagesByGroup.
const groupedUsageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

{{flagUsagesByGroup . | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

// setFlagGroup puts the named local flags of c under a help section.
func setFlagGroup(c *cobra.Command, group string, names ...string) {
	for _, name := range names {
		_ = c.Flags().SetAnnotation(name, groupAnnotationKey, []string{group})
	}
}

// useGroupedUsage makes c print its local flags by group.
func useGroupedUsage(c *cobra.Command) {
	c.Flags().SortFlags = false
	c.SetUsageTemplate(groupedUsageTemplate)
}

func flagGroup(f *pflag.Flag) string {
	if g := f.Annotations[groupAnnotationKey]; len(g) > 0 {
		return g[0]
	}
	return defaultFlagGroup
}

// flagUsagesByGroup prints the local flags of cmd in one section per group,
// groups in order of their first flag. Ungrouped flags, --help included, go
// to the last section.
func flagUsagesByGroup(cmd *cobra.Command) string {
	var (
		order  []string
		groups = make(map[string]*pflag.FlagSet)
	)

	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		group := flagGroup(f)
		fs, ok := groups[group]
		if !ok {
			fs = pflag.NewFlagSet(group, pflag.ContinueOnError)
			fs.SortFlags = false
			groups[group] = fs
			if group != defaultFlagGroup {
				order = append(order, group)
			}
		}
		fs.AddFlag(f)
	})
	if _, ok := groups[defaultFlagGroup]; ok {
		order = append(order, defaultFlagGroup)
	}

	sections := make([]string, 0, len(order))
	for _, group := range order {
		sections = append(sections, group+":\n"+groups[group].FlagUsages())
	}
	return strings.Join(sections, "\n")
}

func init() {
	cobra.AddTemplateFunc("flagUsagesByGroup", flagUsagesByGroup)
}
