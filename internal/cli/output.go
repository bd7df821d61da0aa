package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// render writes v as indented JSON, or calls text for the text format.
func (a *app) render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.opts.output == OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	text(w)
	return w.Flush()
}

func printLines[T any](w io.Writer, items []T) {
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
}
