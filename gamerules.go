package eights

import (
	"github.com/elliemb/eights/deck"
)

// CanPlayCard reports whether card may legally be played on top of
// topCard. An 8 is always legal. While an active suit is in force it
// overrides the top card's physical suit: only the declared suit or the
// top card's rank will do.
func CanPlayCard(card, topCard deck.Card, activeSuit deck.Suit) bool {
	if card.Rank == deck.WildRank {
		return true
	}

	if activeSuit != deck.NoSuit {
		return card.Suit == activeSuit || card.Rank == topCard.Rank
	}

	return card.Suit == topCard.Suit || card.Rank == topCard.Rank
}

// getLegalMoves filters hand down to the cards playable right now
func getLegalMoves(hand []deck.Card, topCard deck.Card, activeSuit deck.Suit) []deck.Card {
	moves := []deck.Card{}
	for _, c := range hand {
		if CanPlayCard(c, topCard, activeSuit) {
			moves = append(moves, c)
		}
	}
	return moves
}
