package card

import "fmt"

// Card represents a playing card
type Card struct {
	Rank string // 2-10, J, Q, K, A
	Suit string // spades, diamonds, clubs, hearts
}

// String returns the card in "<rank> of <suit>" form
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Symbol returns the short form, e.g. "A♠"
func (c Card) Symbol() string {
	return c.Rank + SuitSymbol(c.Suit)
}

// IsRed reports whether the card belongs to a red suit
func (c Card) IsRed() bool {
	return c.Suit == "hearts" || c.Suit == "diamonds"
}

// SuitSymbol returns the glyph for a suit name
func SuitSymbol(suit string) string {
	switch suit {
	case "spades":
		return "♠"
	case "hearts":
		return "♥"
	case "diamonds":
		return "♦"
	case "clubs":
		return "♣"
	default:
		return "•"
	}
}
