package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func (a *app) newModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Read and update the registry mode",
	}
	cmd.AddCommand(a.newModeGetCmd(), a.newModeSetCmd())
	return cmd
}

func (a *app) newModeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [subject]",
		Short: "Show the global or per-subject mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				mode schema_registry.Mode
				err  error
			)
			if subject := optionalSubject(args); subject != "" {
				mode, err = a.registry.GetSubjectMode(cmd.Context(), subject)
			} else {
				mode, err = a.registry.GetMode(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.renderMode(cmd, mode)
		},
	}
}

func (a *app) newModeSetCmd() *cobra.Command {
	var (
		mode  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "set [subject]",
		Short: "Set the global or per-subject mode",
		Long: `Set the mode to READWRITE, READONLY or IMPORT.
Switching to IMPORT while schemas exist requires --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := schema_registry.ParseMode(mode)
			if err != nil {
				return err
			}

			var updated schema_registry.Mode
			if subject := optionalSubject(args); subject != "" {
				updated, err = a.registry.UpdateSubjectMode(cmd.Context(), subject, parsed, force)
			} else {
				updated, err = a.registry.UpdateMode(cmd.Context(), parsed, force)
			}
			if err != nil {
				return err
			}
			return a.renderMode(cmd, updated)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "Mode to set")
	cmd.Flags().BoolVar(&force, "force", false, "Force the change even if schemas exist")
	_ = cmd.MarkFlagRequired("mode")
	return cmd
}

func (a *app) renderMode(cmd *cobra.Command, mode schema_registry.Mode) error {
	return a.render(cmd, map[string]schema_registry.Mode{"mode": mode}, func(w io.Writer) {
		fmt.Fprintln(w, mode)
	})
}
