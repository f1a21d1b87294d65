package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/idioms/internal/functools"
	"github.com/arcanaland/idioms/internal/operator"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List the operators available as functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range operator.Names() {
			op, _ := operator.Lookup(name)
			sig, err := functools.Inspect(op)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-14s %s\n", name, sig)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(operatorsCmd)
}
