package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/idioms/internal/tag"
)

var tagCmd = &cobra.Command{
	Use:   "tag [name] [content]...",
	Short: "Generate HTML tags",
	Long: `Tag prints one element per content argument, or a single self-closing
element when no content is given. Attributes are written in sorted order.

Examples:
  idioms tag br
  idioms tag p hello world --class sidebar
  idioms tag img --attr src=sunset.jpg --attr title="Sunset Boulevard"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attrs, _ := cmd.Flags().GetStringToString("attr")

		opts := []tag.Option{tag.Content(args[1:]...), tag.Attrs(attrs)}
		if cmd.Flags().Changed("class") {
			class, _ := cmd.Flags().GetString("class")
			opts = append(opts, tag.Class(class))
		}

		fmt.Fprintln(cmd.OutOrStdout(), tag.Tag(args[0], opts...))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringP("class", "c", "", "Value of the class attribute")
	tagCmd.Flags().StringToStringP("attr", "a", nil, "Extra attributes as key=value")
}
