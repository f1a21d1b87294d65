package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/arcanaland/idioms/internal/listcomp"
)

var compCmd = &cobra.Command{
	Use:   "comp",
	Short: "Show the results of the list-building examples",
}

var compCodesCmd = &cobra.Command{
	Use:   "codes [text]",
	Short: "Print the code points of text (currency symbols by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := listcomp.Symbols
		if len(args) == 1 {
			s = args[0]
		}

		above, _ := cmd.Flags().GetInt("above")
		codes := listcomp.Codes(s)
		if cmd.Flags().Changed("above") {
			codes = listcomp.CodesAbove(s, above)
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lo.Map(codes, func(c int, _ int) string {
			return fmt.Sprint(c)
		}), " "))
		return nil
	},
}

var compTShirtsCmd = &cobra.Command{
	Use:   "tshirts",
	Short: "Print every color and size combination",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range listcomp.TShirts() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.First, p.Second)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(compCmd)
	compCmd.AddCommand(compCodesCmd)
	compCmd.AddCommand(compTShirtsCmd)

	compCodesCmd.Flags().Int("above", 127, "Only keep code points above this value")
}
