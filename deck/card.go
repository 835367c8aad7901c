package deck

import "fmt"

// Suit represents a suit in a deck of cards.
// NoSuit is the zero value, used where a suit override may be absent.
type Suit int

const (
	NoSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

var suitNames = []string{"", "hearts", "diamonds", "clubs", "spades"}

func (s Suit) String() string {
	if s < NoSuit || s > Spades {
		return ""
	}
	return suitNames[s]
}

// SuitFromName maps a suit's wire name back to its Suit.
func SuitFromName(name string) (Suit, bool) {
	for s := Hearts; s <= Spades; s++ {
		if suitNames[s] == name {
			return s, true
		}
	}
	return NoSuit, false
}

// Rank represents a rank in a deck of cards
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// WildRank is always playable and lets the player declare a new active suit.
const WildRank = Eight

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return ""
	}
	return rankNames[r]
}

// Card represents a playing card. Cards are values; two cards are the
// same card iff their IDs match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ID returns the card's identity, e.g. "8-hearts". Hands remove cards
// by ID and the presentation layer addresses cards by ID.
func (c Card) ID() string {
	return c.Rank.String() + "-" + c.Suit.String()
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
