package deck

import (
	"math/rand"
	"testing"

	utils "github.com/elliemb/eights/internal"
	"github.com/stretchr/testify/assert"
)

var fullDeckCount = 52

func TestDeck(t *testing.T) {
	t.Run("a new deck has every card exactly once", func(t *testing.T) {
		deckOfCards := New()

		utils.AssertEqual(t, len(deckOfCards), fullDeckCount)

		seen := map[string]bool{}
		for _, c := range deckOfCards {
			if seen[c.ID()] {
				t.Errorf("duplicate card %s", c)
			}
			seen[c.ID()] = true
		}
		utils.AssertEqual(t, len(seen), fullDeckCount)
	})

	t.Run("dealt hands do not share the deck's memory", func(t *testing.T) {
		deckOfCards := New()
		firstHand := deckOfCards.Deal(8)
		secondHand := deckOfCards.Deal(8)
		firstCard := firstHand[0]

		// growing one hand must leave the other hand and the deck alone
		secondHand = append(secondHand, NewCard(Ace, Hearts))

		utils.AssertEqual(t, len(secondHand), 9)
		utils.AssertEqual(t, firstHand[0], firstCard)
		utils.AssertEqual(t, len(deckOfCards), fullDeckCount-16)
	})

	t.Run("deal takes cards off the top", func(t *testing.T) {
		deckOfCards := New()
		dealt := deckOfCards.Deal(8)

		utils.AssertEqual(t, len(dealt), 8)
		utils.AssertEqual(t, len(deckOfCards), fullDeckCount-8)

		// asking for more cards than remain is fruitless
		utils.AssertEqual(t, len(deckOfCards.Deal(100)), 0)
		utils.AssertEqual(t, len(deckOfCards), fullDeckCount-8)
	})
}

func TestDeckShuffle(t *testing.T) {
	asCount := func(cards []Card) map[string]int {
		count := map[string]int{}
		for _, c := range cards {
			count[c.ID()]++
		}
		return count
	}

	t.Run("shuffle is a permutation", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for _, size := range []int{0, 1, 5, fullDeckCount} {
			d := Deck(New()[:size])
			before := asCount(d)

			d.Shuffle(rng)

			utils.AssertEqual(t, len(d), size)
			assert.Equal(t, before, asCount(d))
		}
	})

	t.Run("same source, same order", func(t *testing.T) {
		d1, d2 := New(), New()
		d1.Shuffle(rand.New(rand.NewSource(42)))
		d2.Shuffle(rand.New(rand.NewSource(42)))

		utils.AssertDeepEqual(t, d1, d2)
	})
}
