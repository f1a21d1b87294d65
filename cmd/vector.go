package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/idioms/internal/vector"
)

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Do arithmetic on 2D vectors written as x,y",
}

var vectorAddCmd = &cobra.Command{
	Use:   "add [x,y] [x,y]...",
	Short: "Add vectors together",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sum vector.Vector
		for _, arg := range args {
			v, err := vector.Parse(arg)
			if err != nil {
				return err
			}
			sum = sum.Add(v)
		}
		fmt.Fprintln(cmd.OutOrStdout(), sum)
		return nil
	},
}

var vectorMulCmd = &cobra.Command{
	Use:   "mul [x,y] [scalar]",
	Short: "Multiply a vector by a scalar",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		k, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid scalar %q: %w", args[1], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Mul(k))
		return nil
	},
}

var vectorAbsCmd = &cobra.Command{
	Use:   "abs [x,y]",
	Short: "Print the magnitude of a vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v.Abs(), 'g', -1, 64))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(vectorCmd)
	vectorCmd.AddCommand(vectorAddCmd)
	vectorCmd.AddCommand(vectorMulCmd)
	vectorCmd.AddCommand(vectorAbsCmd)
}
