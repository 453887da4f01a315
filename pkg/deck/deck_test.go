package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	deck := New()

	a.Equal(52, deck.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Spades}, *deck.Cards[51])
	a.Equal("79441517e1184e0e3c37383d2f7bc54996872dd8", deck.HashCode())
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)
	unshuffled := New().HashCode()

	d1 := New()
	d1.Shuffle(rand.New(rand.NewSource(1))) // nolint:gosec
	d2 := New()
	d2.Shuffle(rand.New(rand.NewSource(1))) // nolint:gosec

	a.Equal(52, d1.CardsLeft())
	a.NotEqual(unshuffled, d1.HashCode())
	a.Equal(d1.HashCode(), d2.HashCode(), "same seed, same order")

	seen := make(map[string]bool)
	for _, c := range d1.Cards {
		seen[CardToString(c)] = true
	}
	a.Equal(52, len(seen))

	// shuffling a partially drawn deck rebuilds it
	_, _ = d1.DrawN(10)
	d1.Shuffle(rand.New(rand.NewSource(2))) // nolint:gosec
	a.Equal(52, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	deck := New()

	a.True(deck.CanDraw(52))
	a.False(deck.CanDraw(53))

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		a.NotNil(card)
		a.NoError(err)
	}

	a.False(deck.CanDraw(1))

	card, err := deck.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	deck := New()

	cards, err := deck.DrawN(2)
	a.NoError(err)
	a.Equal("2c,3c", CardsToString(cards))
	a.Equal(50, deck.CardsLeft())

	deck.Cards = CardsFromString("4c")
	cards, err = deck.DrawN(2)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(cards)
	a.Equal(1, deck.CardsLeft())
}
