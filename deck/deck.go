package deck

import (
	"math/rand"
)

// Deck represents a deck of cards. The top of the deck is the end of
// the slice.
type Deck []Card

// New creates a full 52-card deck, suit-major, in enumeration order
func New() Deck {
	cards := []Card{}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck in place with a Fisher-Yates pass.
// Callers own the random source so tests can make it deterministic.
func (d *Deck) Shuffle(rng *rand.Rand) {
	cards := *d
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal deals n cards off the top of the deck, until it is empty.
// The dealt cards are copied out: hands grow independently and must
// never share the deck's backing array.
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	dealt := append([]Card{}, (*d)[startingIndex:numCardsInDeck]...)
	*d = (*d)[:startingIndex]
	return dealt
}
