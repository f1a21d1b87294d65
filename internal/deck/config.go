package deck

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FileName is the definition file expected in every deck directory
const FileName = "deck.toml"

// Deck configuration structures
type DeckConfig struct {
	Deck       DeckSection    `toml:"deck"`
	Ranks      []string       `toml:"ranks"`
	Suits      []string       `toml:"suits"`
	SuitValues map[string]int `toml:"suit_values"`
}

type DeckSection struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	Description   string   `toml:"description"`
	Tags          []string `toml:"tags"`
}

// FrenchConfig returns the definition of the standard 52-card deck
func FrenchConfig() DeckConfig {
	ranks := make([]string, 0, 13)
	for n := 2; n <= 10; n++ {
		ranks = append(ranks, strconv.Itoa(n))
	}
	ranks = append(ranks, "J", "Q", "K", "A")

	return DeckConfig{
		Deck: DeckSection{
			ID:            "french",
			Name:          "French Deck",
			Version:       "1.0.0",
			SchemaVersion: "1.0",
			Description:   "Standard 52-card deck, spades high",
			Tags:          []string{"standard"},
		},
		Ranks: ranks,
		Suits: []string{"spades", "diamonds", "clubs", "hearts"},
		SuitValues: map[string]int{
			"spades":   3,
			"hearts":   2,
			"diamonds": 1,
			"clubs":    0,
		},
	}
}

// LoadConfig decodes the deck.toml inside deckPath
func LoadConfig(deckPath string) (DeckConfig, error) {
	var config DeckConfig

	deckTomlPath := filepath.Join(deckPath, FileName)
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return config, fmt.Errorf("%s not found in %s", FileName, deckPath)
	}

	if _, err := toml.DecodeFile(deckTomlPath, &config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", FileName, err)
	}

	return config, nil
}

// LoadDeck loads a deck from a directory holding a deck.toml
func LoadDeck(deckPath string) (*Deck, error) {
	config, err := LoadConfig(deckPath)
	if err != nil {
		return nil, err
	}

	d, err := FromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("error building deck from %s: %w", deckPath, err)
	}
	d.Path = deckPath

	return d, nil
}

// Encode writes a deck definition as TOML
func Encode(w io.Writer, config DeckConfig) error {
	if err := toml.NewEncoder(w).Encode(config); err != nil {
		return fmt.Errorf("error encoding deck: %w", err)
	}
	return nil
}

// WriteDeck creates deckPath if needed and writes its deck.toml
func WriteDeck(deckPath string, config DeckConfig) error {
	if err := os.MkdirAll(deckPath, 0755); err != nil {
		return fmt.Errorf("error creating deck directory: %w", err)
	}

	file, err := os.Create(filepath.Join(deckPath, FileName))
	if err != nil {
		return fmt.Errorf("error creating %s: %w", FileName, err)
	}
	defer file.Close()

	return Encode(file, config)
}
