package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/idioms/internal/text"
)

var clipCmd = &cobra.Command{
	Use:   "clip [text]...",
	Short: "Clip text at a word boundary near a width",
	Long: `Clip cuts text at the last space before the width, or the first
usable space after it, and trims trailing whitespace. Without --width the
terminal width is used, then clip_width from the config file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		if width <= 0 {
			width = terminalWidth(settings.ClipWidth)
		}
		logger.Debug("Clipping text", zap.Int("width", width))

		clipped := text.Clip(text.NFC(strings.Join(args, " ")), width)
		fmt.Fprintln(cmd.OutOrStdout(), clipped)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(clipCmd)

	clipCmd.Flags().IntP("width", "w", 0, "Maximum width in characters")
}
