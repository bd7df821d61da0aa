package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func (a *app) newExportersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exporters",
		Short: "Inspect schema exporters",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List exporter names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.registry.GetExporters(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd, names, func(w io.Writer) {
				printLines(w, names)
			})
		},
	})
	return cmd
}
