package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and update compatibility configuration",
	}
	cmd.AddCommand(a.newConfigGetCmd(), a.newConfigSetCmd())
	return cmd
}

func (a *app) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [subject]",
		Short: "Show the global or per-subject compatibility level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *schema_registry.CompatibilityConfig
				err error
			)
			if subject := optionalSubject(args); subject != "" {
				cfg, err = a.registry.GetSubjectConfig(cmd.Context(), subject)
			} else {
				cfg, err = a.registry.GetConfig(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.render(cmd, cfg, func(w io.Writer) {
				printCompatibility(w, cfg)
			})
		},
	}
}

func (a *app) newConfigSetCmd() *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "set [subject]",
		Short: "Set the global or per-subject compatibility level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := schema_registry.ParseCompatibilityLevel(level)
			if err != nil {
				return err
			}
			update := schema_registry.CompatibilityConfig{}.WithCompatibilityLevel(parsed)

			var cfg *schema_registry.CompatibilityConfig
			if subject := optionalSubject(args); subject != "" {
				cfg, err = a.registry.UpdateSubjectConfig(cmd.Context(), subject, update)
			} else {
				cfg, err = a.registry.UpdateConfig(cmd.Context(), update)
			}
			if err != nil {
				return err
			}
			return a.render(cmd, cfg, func(w io.Writer) {
				printCompatibility(w, cfg)
			})
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "Compatibility level, e.g. BACKWARD or FULL_TRANSITIVE")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func printCompatibility(w io.Writer, cfg *schema_registry.CompatibilityConfig) {
	fmt.Fprintf(w, "Compatibility:\t%s\n", cfg.CompatibilityLevel)
	if cfg.Normalize != nil {
		fmt.Fprintf(w, "Normalize:\t%t\n", *cfg.Normalize)
	}
	if cfg.Alias != "" {
		fmt.Fprintf(w, "Alias:\t%s\n", cfg.Alias)
	}
}
