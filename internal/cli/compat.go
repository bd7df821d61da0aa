package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// ErrIncompatible is returned by 'compat check' when the schema is not
// compatible, so that scripts get a non-zero exit code.
var ErrIncompatible = errors.New("schema is not compatible")

func (a *app) newCompatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compat",
		Short: "Test schemas for compatibility",
	}
	cmd.AddCommand(a.newCompatCheckCmd())
	return cmd
}

func (a *app) newCompatCheckCmd() *cobra.Command {
	var (
		file       string
		schemaType string
		version    string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "check <subject>",
		Short: "Check a schema against a registered version",
		Long: `Check the schema in --file against one version of <subject>, or against
every version with --all. Exits non-zero when the schema is incompatible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := readSchema(file, schemaType)
			if err != nil {
				return err
			}

			var compatible bool
			if all {
				compatible, err = a.registry.IsFullyCompatible(cmd.Context(), args[0], schema)
			} else {
				v, perr := parseVersion(version)
				if perr != nil {
					return perr
				}
				compatible, err = a.registry.IsCompatible(cmd.Context(), args[0], v, schema)
			}
			if err != nil {
				return err
			}

			if err := a.render(cmd, map[string]bool{"is_compatible": compatible}, func(w io.Writer) {
				fmt.Fprintf(w, "Compatible:\t%t\n", compatible)
			}); err != nil {
				return err
			}
			if !compatible {
				return ErrIncompatible
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file")
	cmd.Flags().StringVar(&schemaType, "type", string(schema_registry.SchemaTypeAvro), "Schema type: AVRO, PROTOBUF or JSON")
	cmd.Flags().StringVar(&version, "version", "latest", "Version to check against")
	cmd.Flags().BoolVar(&all, "all", false, "Check against all versions")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
