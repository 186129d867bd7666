package commands

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewEndpointsCommand creates the endpoints command.
func NewEndpointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"ls"},
		Short:   "List catalogued endpoints",
		Long:    "List every endpoint the CLI can query with its path, kind, parameters and flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := allDescriptors()

			return writeOutput(cmd.OutOrStdout(), loadConfig().Output, descriptors, func(table *tablewriter.Table) error {
				table.Header("Name", "Path", "Kind", "Params", "Auth", "Localized")

				for _, desc := range descriptors {
					_ = table.Append(
						desc.Name,
						desc.Path,
						desc.Kind.String(),
						valueOrNA(strings.Join(desc.Params, ", ")),
						yesNo(desc.Auth),
						yesNo(desc.Localized),
					)
				}

				return nil
			})
		},
	}
}
