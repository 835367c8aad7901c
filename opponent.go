package eights

import (
	"math/rand"

	"github.com/elliemb/eights/deck"
)

// opponentMove picks the card the computer opponent plays, or reports
// that it has no legal move. Non-8s are preferred, chosen uniformly at
// random; 8s are held back unless nothing else is legal.
func opponentMove(hand []deck.Card, topCard deck.Card, activeSuit deck.Suit, rng *rand.Rand) (deck.Card, bool) {
	legal := getLegalMoves(hand, topCard, activeSuit)
	if len(legal) == 0 {
		return deck.Card{}, false
	}

	nonEights := []deck.Card{}
	for _, c := range legal {
		if c.Rank != deck.WildRank {
			nonEights = append(nonEights, c)
		}
	}

	if len(nonEights) > 0 {
		return nonEights[rng.Intn(len(nonEights))], true
	}
	return legal[rng.Intn(len(legal))], true
}

// chooseSuitFor picks the suit most represented in the opponent's
// remaining hand. Ties break on suit enumeration order; the tie-break
// is arbitrary, only "most frequent" matters. Returns deck.NoSuit for
// an empty hand.
func chooseSuitFor(hand []deck.Card) deck.Suit {
	counts := map[deck.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}

	best, bestCount := deck.NoSuit, 0
	for s := deck.Hearts; s <= deck.Spades; s++ {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best
}
