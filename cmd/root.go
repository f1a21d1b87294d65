package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/idioms/internal/config"
	"github.com/arcanaland/idioms/internal/logging"
)

var (
	verbose bool
	noColor bool

	// logger is replaced in PersistentPreRunE; commands may log before that in tests.
	logger = zap.NewNop()
	// settings holds the loaded user config for the running command.
	settings = &config.Config{DefaultDeck: config.DefaultDeckName, ClipWidth: config.DefaultClipWidth}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "idioms",
	Short: "Small worked examples of everyday Go idioms",
	Long: `Idioms is a command-line companion to a set of small examples: a playing-card
deck with container-style access, a 2D vector, HTML tag generation, text
clipping, a bingo cage, and helpers for functions as values.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		logger = l

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		settings = cfg
		logger.Debug("Loaded config",
			zap.String("path", config.GetConfigFilePath()),
			zap.String("default_deck", cfg.DefaultDeck),
			zap.Int("clip_width", cfg.ClipWidth))

		if noColor || cfg.NoColor {
			colorize.NoColor = true
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
