package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// AddCards adds all the cards to the hand, preserving their order
func (h *Hand) AddCards(cards []*Card) {
	*h = append(*h, cards...)
}

// RemoveAllCards empties the hand
// The backing array is not reused so previously returned slices are unaffected
func (h *Hand) RemoveAllCards() {
	*h = make(Hand, 0, 2)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Cards returns a copy of the cards in the hand
func (h Hand) Cards() []*Card {
	cards := make([]*Card, len(h))
	copy(cards, h)

	return cards
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
