package deck

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/idioms/internal/card"
)

var (
	// ErrIndexOutOfRange is returned when a position falls outside the deck.
	ErrIndexOutOfRange = errors.New("deck index out of range")
	// ErrUnknownCard is returned for a card whose rank or suit the deck does not define.
	ErrUnknownCard = errors.New("card not in deck")
	// ErrInvalidDeck is returned when a deck definition cannot produce any cards.
	ErrInvalidDeck = errors.New("invalid deck definition")
)

// Deck represents an ordered, immutable deck of cards
type Deck struct {
	ID          string
	Name        string
	Version     string
	Description string
	Path        string

	Ranks      []string
	Suits      []string
	SuitValues map[string]int

	cards     []card.Card
	rankIndex map[string]int
}

// New builds the standard 52-card French deck
func New() *Deck {
	d, err := FromConfig(FrenchConfig())
	if err != nil {
		// The built-in definition is static and always valid.
		panic(err)
	}
	return d
}

// FromConfig builds a deck from a decoded definition. Cards are laid out
// suit-major: every rank of the first suit, then every rank of the next.
func FromConfig(config DeckConfig) (*Deck, error) {
	if len(config.Ranks) == 0 {
		return nil, fmt.Errorf("%w: no ranks", ErrInvalidDeck)
	}
	if len(config.Suits) == 0 {
		return nil, fmt.Errorf("%w: no suits", ErrInvalidDeck)
	}
	for _, suit := range config.Suits {
		if _, ok := config.SuitValues[suit]; !ok {
			return nil, fmt.Errorf("%w: suit %q has no value", ErrInvalidDeck, suit)
		}
	}

	d := &Deck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Version:     config.Deck.Version,
		Description: config.Deck.Description,
		Ranks:       slices.Clone(config.Ranks),
		Suits:       slices.Clone(config.Suits),
		SuitValues:  make(map[string]int, len(config.SuitValues)),
		cards:       make([]card.Card, 0, len(config.Ranks)*len(config.Suits)),
		rankIndex:   make(map[string]int, len(config.Ranks)),
	}

	for suit, value := range config.SuitValues {
		d.SuitValues[suit] = value
	}
	for i, rank := range d.Ranks {
		if _, dup := d.rankIndex[rank]; dup {
			return nil, fmt.Errorf("%w: duplicate rank %q", ErrInvalidDeck, rank)
		}
		d.rankIndex[rank] = i
	}

	for _, suit := range d.Suits {
		for _, rank := range d.Ranks {
			d.cards = append(d.cards, card.Card{Rank: rank, Suit: suit})
		}
	}

	return d, nil
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// At returns the card at position i. Negative positions count from the end.
func (d *Deck) At(i int) (card.Card, error) {
	if i < 0 {
		i += len(d.cards)
	}
	if i < 0 || i >= len(d.cards) {
		return card.Card{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.cards))
	}
	return d.cards[i], nil
}

// Slice returns a copy of the cards in [start, end). Negative bounds count
// from the end and both bounds are clamped to the deck.
func (d *Deck) Slice(start, end int) []card.Card {
	n := len(d.cards)
	start = clampIndex(start, n)
	end = clampIndex(end, n)
	if start >= end {
		return []card.Card{}
	}
	return slices.Clone(d.cards[start:end])
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// Cards returns a copy of every card in deck order
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

// All iterates over the cards in deck order
func (d *Deck) All() iter.Seq2[int, card.Card] {
	return func(yield func(int, card.Card) bool) {
		for i, c := range d.cards {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward iterates over the cards from last to first
func (d *Deck) Backward() iter.Seq2[int, card.Card] {
	return slices.Backward(d.cards)
}

// Contains reports whether the card is part of the deck
func (d *Deck) Contains(c card.Card) bool {
	return d.Index(c) >= 0
}

// Index returns the position of the card, or -1 if absent
func (d *Deck) Index(c card.Card) int {
	return slices.Index(d.cards, c)
}

// Value ranks a card so that rank dominates and suit breaks ties
// (spades high in the French deck).
func (d *Deck) Value(c card.Card) (int, error) {
	rank, ok := d.rankIndex[c.Rank]
	if !ok {
		return 0, fmt.Errorf("%w: rank %q", ErrUnknownCard, c.Rank)
	}
	suit, ok := d.SuitValues[c.Suit]
	if !ok {
		return 0, fmt.Errorf("%w: suit %q", ErrUnknownCard, c.Suit)
	}
	return rank*len(d.SuitValues) + suit, nil
}

// Sorted returns the cards ordered from lowest to highest Value
func (d *Deck) Sorted() []card.Card {
	sorted := slices.Clone(d.cards)
	slices.SortStableFunc(sorted, func(a, b card.Card) int {
		// Every card in the deck has a known rank and suit.
		va, _ := d.Value(a)
		vb, _ := d.Value(b)
		return cmp.Compare(va, vb)
	})
	return sorted
}

// Choice returns a random card
func (d *Deck) Choice(rng *rand.Rand) card.Card {
	return d.cards[rng.IntN(len(d.cards))]
}

// Shuffle returns a shuffled copy of the cards, leaving the deck untouched
func (d *Deck) Shuffle(rng *rand.Rand) []card.Card {
	shuffled := slices.Clone(d.cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
