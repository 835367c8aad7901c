package eights

import (
	"github.com/elliemb/eights/deck"
	"github.com/elliemb/eights/protocol"
)

// Read-only queries for the presentation layer. Each takes the game
// mutex and hands back copies, never internal slices.

// Status returns the game's lifecycle status
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// CurrentTurn returns whose turn it is
func (g *Game) CurrentTurn() Turn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentTurn
}

// Winner returns the winning side, or NoWinner while the game is
// undecided
func (g *Game) Winner() Turn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winner
}

// ActiveSuit returns the suit override in force, or deck.NoSuit
func (g *Game) ActiveSuit() deck.Suit {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.activeSuit
}

// IsSuitPicking reports whether the game is waiting on the player's
// suit declaration
func (g *Game) IsSuitPicking() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isSuitPicking
}

// TopCard returns the top of the discard pile
func (g *Game) TopCard() (deck.Card, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.discardPile) == 0 {
		return deck.Card{}, false
	}
	return g.topCard(), true
}

// DeckCount returns the number of cards left to draw
func (g *Game) DeckCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.deck)
}

// HandCounts returns the player and AI hand sizes
func (g *Game) HandCounts() (player, ai int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.playerHand), len(g.aiHand)
}

// PlayerHand returns a copy of the player's hand
func (g *Game) PlayerHand() []deck.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]deck.Card{}, g.playerHand...)
}

// PlayableCards returns the ids of the player's cards that are legal
// right now. Empty outside the player's turn.
func (g *Game) PlayableCards() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playableCards()
}

func (g *Game) playableCards() []string {
	ids := []string{}
	if g.status != StatusPlaying || g.currentTurn != PlayerTurn || g.isSuitPicking {
		return ids
	}
	for _, c := range getLegalMoves(g.playerHand, g.topCard(), g.activeSuit) {
		ids = append(ids, c.ID())
	}
	return ids
}

// Snapshot assembles everything the presentation layer needs to render
// the current state
func (g *Game) Snapshot() protocol.GameSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot := protocol.GameSnapshot{
		PlayerHand:    protocol.NewCardInfos(g.playerHand),
		AIHandCount:   len(g.aiHand),
		DeckCount:     len(g.deck),
		CurrentTurn:   g.currentTurn.String(),
		Status:        g.status.String(),
		Winner:        g.winner.String(),
		ActiveSuit:    g.activeSuit.String(),
		IsSuitPicking: g.isSuitPicking,
		PlayableCards: g.playableCards(),
		MayPass:       g.mayPass,
	}

	if len(g.discardPile) > 0 {
		top := protocol.NewCardInfo(g.topCard())
		snapshot.DiscardTop = &top
	}

	return snapshot
}
