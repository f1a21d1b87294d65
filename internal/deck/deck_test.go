package deck_test

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/idioms/internal/card"
	"github.com/arcanaland/idioms/internal/deck"
)

func TestNew_Len(t *testing.T) {
	assert.Equal(t, 52, deck.New().Len())
}

func TestAt_PositiveAndNegative(t *testing.T) {
	d := deck.New()

	first, err := d.At(0)
	require.NoError(t, err)
	assert.Equal(t, card.Card{Rank: "2", Suit: "spades"}, first)

	last, err := d.At(-1)
	require.NoError(t, err)
	assert.Equal(t, card.Card{Rank: "A", Suit: "hearts"}, last)
}

func TestAt_OutOfRange(t *testing.T) {
	d := deck.New()

	_, err := d.At(52)
	assert.ErrorIs(t, err, deck.ErrIndexOutOfRange)

	_, err = d.At(-53)
	assert.ErrorIs(t, err, deck.ErrIndexOutOfRange)
}

func TestSlice(t *testing.T) {
	d := deck.New()

	want := []card.Card{
		{Rank: "2", Suit: "spades"},
		{Rank: "3", Suit: "spades"},
		{Rank: "4", Suit: "spades"},
	}
	if diff := cmp.Diff(want, d.Slice(0, 3)); diff != "" {
		t.Errorf("Slice(0, 3) mismatch (-want +got):\n%s", diff)
	}

	tail := d.Slice(-2, 100)
	assert.Equal(t, []card.Card{{Rank: "K", Suit: "hearts"}, {Rank: "A", Suit: "hearts"}}, tail)

	assert.Empty(t, d.Slice(10, 5))
}

func TestSlice_ReturnsCopy(t *testing.T) {
	d := deck.New()
	s := d.Slice(0, 1)
	s[0] = card.Card{Rank: "X", Suit: "stars"}

	first, err := d.At(0)
	require.NoError(t, err)
	assert.Equal(t, "spades", first.Suit)
}

func TestAll_IteratesInOrder(t *testing.T) {
	d := deck.New()

	var seen []string
	for i, c := range d.All() {
		if i == 3 {
			break
		}
		seen = append(seen, c.String())
	}
	assert.Equal(t, []string{"2 of spades", "3 of spades", "4 of spades"}, seen)
}

func TestBackward(t *testing.T) {
	d := deck.New()
	for i, c := range d.Backward() {
		assert.Equal(t, 51, i)
		assert.Equal(t, card.Card{Rank: "A", Suit: "hearts"}, c)
		break
	}
}

func TestContains(t *testing.T) {
	d := deck.New()
	assert.True(t, d.Contains(card.Card{Rank: "Q", Suit: "hearts"}))
	assert.False(t, d.Contains(card.Card{Rank: "7", Suit: "beasts"}))
	assert.Equal(t, 13, d.Index(card.Card{Rank: "2", Suit: "diamonds"}))
}

func TestValue(t *testing.T) {
	d := deck.New()

	v, err := d.Value(card.Card{Rank: "2", Suit: "clubs"})
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = d.Value(card.Card{Rank: "A", Suit: "spades"})
	require.NoError(t, err)
	assert.Equal(t, 51, v)

	_, err = d.Value(card.Card{Rank: "1", Suit: "spades"})
	assert.ErrorIs(t, err, deck.ErrUnknownCard)
}

func TestSorted(t *testing.T) {
	d := deck.New()
	sorted := d.Sorted()

	require.Len(t, sorted, 52)
	assert.Equal(t, card.Card{Rank: "2", Suit: "clubs"}, sorted[0])
	assert.Equal(t, card.Card{Rank: "2", Suit: "diamonds"}, sorted[1])
	assert.Equal(t, card.Card{Rank: "2", Suit: "hearts"}, sorted[2])
	assert.Equal(t, card.Card{Rank: "2", Suit: "spades"}, sorted[3])
	assert.Equal(t, card.Card{Rank: "A", Suit: "spades"}, sorted[51])

	// The deck itself keeps its original order.
	first, _ := d.At(0)
	assert.Equal(t, card.Card{Rank: "2", Suit: "spades"}, first)
}

func TestShuffleAndChoice(t *testing.T) {
	d := deck.New()
	rng := rand.New(rand.NewPCG(1, 2))

	shuffled := d.Shuffle(rng)
	assert.ElementsMatch(t, d.Cards(), shuffled)
	assert.True(t, d.Contains(d.Choice(rng)))
}

func TestFromConfig_Invalid(t *testing.T) {
	config := deck.FrenchConfig()
	config.Suits = append(config.Suits, "stars")
	_, err := deck.FromConfig(config)
	assert.ErrorIs(t, err, deck.ErrInvalidDeck)

	config = deck.FrenchConfig()
	config.Ranks = nil
	_, err = deck.FromConfig(config)
	assert.ErrorIs(t, err, deck.ErrInvalidDeck)

	config = deck.FrenchConfig()
	config.Ranks = append(config.Ranks, "A")
	_, err = deck.FromConfig(config)
	assert.ErrorIs(t, err, deck.ErrInvalidDeck)
}

func TestWriteAndLoadDeck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "french")
	require.NoError(t, deck.WriteDeck(dir, deck.FrenchConfig()))

	d, err := deck.LoadDeck(dir)
	require.NoError(t, err)
	assert.Equal(t, "French Deck", d.Name)
	assert.Equal(t, dir, d.Path)
	assert.Equal(t, deck.New().Cards(), d.Cards())
}

func TestLoadDeck_Missing(t *testing.T) {
	_, err := deck.LoadDeck(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deck.toml not found")
}

func TestEncode(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, deck.Encode(&sb, deck.FrenchConfig()))
	assert.Contains(t, sb.String(), `schema_version = "1.0"`)
	assert.Contains(t, sb.String(), "[suit_values]")
}
