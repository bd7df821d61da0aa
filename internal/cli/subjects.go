package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *app) newSubjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List, inspect and delete subjects",
	}
	cmd.AddCommand(a.newSubjectsListCmd(), a.newSubjectsVersionsCmd(), a.newSubjectsDeleteCmd())
	return cmd
}

func (a *app) newSubjectsListCmd() *cobra.Command {
	var deleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := a.registry.GetSubjects(cmd.Context(), deleted)
			if err != nil {
				return err
			}
			return a.render(cmd, subjects, func(w io.Writer) {
				printLines(w, subjects)
			})
		},
	}
	cmd.Flags().BoolVar(&deleted, "deleted", false, "Include soft-deleted subjects")
	return cmd
}

func (a *app) newSubjectsVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions <subject>",
		Short: "List the versions registered under a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := a.registry.GetSubjectVersions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, versions, func(w io.Writer) {
				printLines(w, versions)
			})
		},
	}
}

func (a *app) newSubjectsDeleteCmd() *cobra.Command {
	var permanent bool

	cmd := &cobra.Command{
		Use:   "delete <subject>",
		Short: "Delete a subject and all of its versions",
		Long: `Delete a subject. Without --permanent the subject is soft-deleted and can
still be listed with 'subjects list --deleted'. A permanent delete requires a
prior soft delete.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := a.registry.DeleteSubject(cmd.Context(), args[0], permanent)
			if err != nil {
				return err
			}
			return a.render(cmd, versions, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted %s versions %v\n", args[0], versions)
			})
		},
	}
	cmd.Flags().BoolVar(&permanent, "permanent", false, "Hard delete an already soft-deleted subject")
	return cmd
}
