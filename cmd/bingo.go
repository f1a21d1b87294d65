package cmd

import (
	"errors"
	"fmt"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/arcanaland/idioms/internal/bingo"
)

var bingoCmd = &cobra.Command{
	Use:   "bingo [balls]",
	Short: "Draw numbered balls from a shuffled bingo cage",
	Long: `Bingo fills a cage with balls numbered 1 to N, shuffles it and picks
--picks balls. Asking for more balls than the cage holds reports the
empty cage after the last one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		balls, err := strconv.Atoi(args[0])
		if err != nil || balls < 1 {
			return fmt.Errorf("invalid ball count %q", args[0])
		}
		picks, _ := cmd.Flags().GetInt("picks")
		seed, _ := cmd.Flags().GetUint64("seed")

		cage := bingo.New(lo.RangeFrom(1, balls), newRand(seed))
		draw := cage.Call

		out := cmd.OutOrStdout()
		for range picks {
			n, err := draw()
			if errors.Is(err, bingo.ErrEmpty) {
				colorize.New(colorize.FgYellow).Fprintln(out, "The cage is empty.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, n)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bingoCmd)

	bingoCmd.Flags().IntP("picks", "p", 1, "Number of balls to pick")
	bingoCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
}
