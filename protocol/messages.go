package protocol

import (
	"github.com/elliemb/eights/deck"
)

// CardInfo is the wire representation of a card
type CardInfo struct {
	ID   string `json:"id"`
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// NewCardInfo converts a card for the wire
func NewCardInfo(c deck.Card) CardInfo {
	return CardInfo{
		ID:   c.ID(),
		Rank: c.Rank.String(),
		Suit: c.Suit.String(),
	}
}

// NewCardInfos converts a hand of cards for the wire
func NewCardInfos(cards []deck.Card) []CardInfo {
	infos := []CardInfo{}
	for _, c := range cards {
		infos = append(infos, NewCardInfo(c))
	}
	return infos
}

// Event is a notification from the engine to the presentation layer
type Event struct {
	Cmd    Cmd    `json:"command"`
	Side   string `json:"side,omitempty"`
	CardID string `json:"cardID,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Winner string `json:"winner,omitempty"`
	Error  string `json:"error,omitempty"`
}

// GameSnapshot is everything the presentation layer needs to render a
// game. The AI hand travels as a count only.
type GameSnapshot struct {
	PlayerHand    []CardInfo `json:"playerHand"`
	AIHandCount   int        `json:"aiHandCount"`
	DeckCount     int        `json:"deckCount"`
	DiscardTop    *CardInfo  `json:"discardTop,omitempty"`
	CurrentTurn   string     `json:"currentTurn"`
	Status        string     `json:"status"`
	Winner        string     `json:"winner,omitempty"`
	ActiveSuit    string     `json:"activeSuit,omitempty"`
	IsSuitPicking bool       `json:"isSuitPicking"`
	PlayableCards []string   `json:"playableCards"`
	MayPass       bool       `json:"mayPass"`
}

// Intent is a message from the presentation layer to the engine
type Intent struct {
	Command string `json:"command"`
	CardID  string `json:"cardID,omitempty"`
	Suit    string `json:"suit,omitempty"`
}

// Frame is a single websocket push: the events raised by the last
// transition, plus a fresh snapshot to render
type Frame struct {
	Events   []Event      `json:"events"`
	Snapshot GameSnapshot `json:"snapshot"`
}
