package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sciencestack-ai/sciencestack-tokens/ast"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the node kind catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, kind := range ast.Kinds {
			layout := "block"
			if kind.Inline() {
				layout = "inline"
			}
			fmt.Fprintf(w, "%s\t%s\n", kind, layout)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
