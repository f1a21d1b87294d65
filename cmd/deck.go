package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/idioms/internal/card"
	"github.com/arcanaland/idioms/internal/config"
	"github.com/arcanaland/idioms/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect card decks and manage your deck library",
	Long:  `Commands for listing, showing and drawing from card decks.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'idioms deck init' to create it.")
			return nil
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil || !fileInfo.IsDir() {
				continue
			}

			d, err := deck.LoadDeck(entryPath)
			if err != nil {
				logger.Debug("Skipping invalid deck", zap.String("path", entryPath), zap.Error(err))
				continue
			}

			found++
			if entry.Name() == settings.DefaultDeck {
				fmt.Fprintf(out, "* %s (%s, %d cards) [DEFAULT]\n", entry.Name(), d.Name, d.Len())
			} else {
				fmt.Fprintf(out, "  %s (%s, %d cards)\n", entry.Name(), d.Name, d.Len())
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library with the French deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		deckPath := filepath.Join(config.GetDeckLibraryPath(), config.DefaultDeckName)

		if _, err := os.Stat(filepath.Join(deckPath, deck.FileName)); err == nil {
			fmt.Fprintln(out, "Deck library already initialized at:", config.GetDeckLibraryPath())
			return nil
		}

		if err := deck.WriteDeck(deckPath, deck.FrenchConfig()); err != nil {
			return err
		}

		fmt.Fprintln(out, "Deck library initialized at:", config.GetDeckLibraryPath())
		fmt.Fprintln(out, "Config file at:", config.GetConfigFilePath())
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}
		if _, err := deck.LoadDeck(deckPath); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [position]",
	Short: "Show a deck, or the card at a position",
	Long: `Show prints every card of a deck as a grid, in deck order or sorted
spades-high. With a position argument only that card is shown; negative
positions count from the end.

Examples:
  idioms deck show
  idioms deck show --sorted
  idioms deck show -- -1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		sorted, _ := cmd.Flags().GetBool("sorted")

		d, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[0], err)
			}
			c, err := d.At(pos)
			if err != nil {
				return err
			}
			value, _ := d.Value(c)
			fmt.Fprintf(out, "%s  %s (value %d)\n", paintCard(c), c, value)
			return nil
		}

		cards := d.Cards()
		if sorted {
			cards = d.Sorted()
		}

		colorize.New(colorize.FgCyan).Fprintf(out, "%s · %d cards\n", d.Name, d.Len())
		printGrid(out, cards, terminalWidth(80))
		return nil
	},
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw random cards from a shuffled copy of the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")

		d, err := resolveDeck(deckFlag)
		if err != nil {
			return err
		}
		if count < 1 || count > d.Len() {
			return fmt.Errorf("count must be between 1 and %d", d.Len())
		}

		shuffled := d.Shuffle(newRand(seed))
		names := make([]string, count)
		for i, c := range shuffled[:count] {
			names[i] = paintCard(c)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckDrawCmd)

	for _, c := range []*cobra.Command{deckShowCmd, deckDrawCmd} {
		c.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	}
	deckShowCmd.Flags().BoolP("sorted", "s", false, "Sort cards spades-high")
	deckDrawCmd.Flags().IntP("count", "n", 5, "Number of cards to draw")
	deckDrawCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
}

// resolveDeck loads the named deck, or the default deck when name is empty.
// The French deck is built in, so it resolves even without a library.
func resolveDeck(name string) (*deck.Deck, error) {
	if name == "" {
		name = settings.DefaultDeck
	}

	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		if name == config.DefaultDeckName {
			logger.Debug("Using built-in deck", zap.String("deck", name))
			return deck.New(), nil
		}
		return nil, err
	}

	logger.Debug("Loading deck", zap.String("deck", name), zap.String("path", deckPath))
	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	return d, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Debug("Seeding random source", zap.Uint64("seed", seed))
	return rand.New(rand.NewPCG(seed, seed))
}

// paintCard renders the short form of a card, red suits in red
func paintCard(c card.Card) string {
	if c.IsRed() {
		return colorize.RedString("%s", c.Symbol())
	}
	return colorize.HiWhiteString("%s", c.Symbol())
}

// printGrid lays cards out in as many columns as fit in width
func printGrid(w io.Writer, cards []card.Card, width int) {
	const cell = 5
	cols := max(1, width/cell)

	for i, c := range cards {
		symbol := c.Symbol()
		pad := cell - len([]rune(symbol))
		fmt.Fprint(w, paintCard(c)+strings.Repeat(" ", pad))
		if (i+1)%cols == 0 || i == len(cards)-1 {
			fmt.Fprintln(w)
		}
	}
}
