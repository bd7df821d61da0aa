package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func (a *app) newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Fetch and register schemas",
	}
	cmd.AddCommand(a.newSchemaGetCmd(), a.newSchemaRegisterCmd())
	return cmd
}

func (a *app) newSchemaGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print the schema registered under a global id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			schema, err := a.registry.GetSchemaByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.render(cmd, schema, func(w io.Writer) {
				fmt.Fprintf(w, "Type:\t%s\n", schema.SchemaType)
				for _, ref := range schema.References {
					fmt.Fprintf(w, "Reference:\t%s -> %s v%d\n", ref.Name, ref.Subject, ref.Version)
				}
				fmt.Fprintln(w, schema.Schema)
			})
		},
	}
}

func (a *app) newSchemaRegisterCmd() *cobra.Command {
	var (
		file       string
		schemaType string
		normalize  bool
	)

	cmd := &cobra.Command{
		Use:   "register <subject>",
		Short: "Register a schema under a subject",
		Long: `Register the schema in --file under <subject> and print its global id.
Registering a schema that already exists returns the existing id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := readSchema(file, schemaType)
			if err != nil {
				return err
			}
			id, err := a.registry.RegisterSchema(cmd.Context(), args[0], schema, normalize)
			if err != nil {
				return err
			}
			a.log.Debug("Schema registered", nil, map[string]interface{}{
				"subject": args[0],
				"id":      id,
			})
			return a.render(cmd, map[string]int{"id": id}, func(w io.Writer) {
				fmt.Fprintln(w, id)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Schema file")
	cmd.Flags().StringVar(&schemaType, "type", string(schema_registry.SchemaTypeAvro), "Schema type: AVRO, PROTOBUF or JSON")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Normalize the schema before registering")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
