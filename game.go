package eights

import (
	"math/rand"
	"sync"
	"time"

	"github.com/elliemb/eights/deck"
	"github.com/elliemb/eights/protocol"
)

// Turn identifies a side in the game
type Turn int

const (
	PlayerTurn Turn = iota
	AITurn
)

// NoWinner is the winner value while a game is undecided
const NoWinner Turn = -1

var turnNames = []string{"player", "ai"}

func (t Turn) String() string {
	if t < PlayerTurn || int(t) >= len(turnNames) {
		return ""
	}
	return turnNames[t]
}

func (t Turn) other() Turn {
	if t == PlayerTurn {
		return AITurn
	}
	return PlayerTurn
}

// Status represents the lifecycle of a game
// waiting -> no cards dealt yet
// playing -> game in progress
// gameOver -> a side has emptied its hand; only InitGame changes state
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusGameOver
)

var statusNames = []string{"waiting", "playing", "gameOver"}

func (s Status) String() string {
	if s < StatusWaiting || int(s) >= len(statusNames) {
		return ""
	}
	return statusNames[s]
}

const handSize = 8

// Game is the authoritative crazy-eights state machine. All transitions
// and queries hold the game mutex, so every transition is atomic to
// observers and transitions on one game never interleave.
//
// Invalid intents (wrong turn, illegal card, wrong phase) are dropped
// without effect: they are expected races between presentation state
// and engine state, not errors. A transition reports what it did via
// the events it returns; a no-op returns nil.
type Game struct {
	mu  sync.Mutex
	rng *rand.Rand

	deck          deck.Deck
	playerHand    []deck.Card
	aiHand        []deck.Card
	discardPile   []deck.Card
	currentTurn   Turn
	status        Status
	winner        Turn
	activeSuit    deck.Suit
	isSuitPicking bool

	// mayPass opens after the player draws a playable card: they may
	// play it or explicitly pass, the engine forces neither.
	mayPass bool
}

// GameOpts allows a game to be constructed in a specific state.
// The zero value gives a fresh game awaiting InitGame.
type GameOpts struct {
	Deck          deck.Deck
	PlayerHand    []deck.Card
	AIHand        []deck.Card
	DiscardPile   []deck.Card
	CurrentTurn   Turn
	Status        Status
	ActiveSuit    deck.Suit
	IsSuitPicking bool
	MayPass       bool
	Rng           *rand.Rand
}

// NewGame constructs a game of crazy eights
func NewGame(opts GameOpts) *Game {
	g := &Game{
		rng:           opts.Rng,
		deck:          opts.Deck,
		playerHand:    opts.PlayerHand,
		aiHand:        opts.AIHand,
		discardPile:   opts.DiscardPile,
		currentTurn:   opts.CurrentTurn,
		status:        opts.Status,
		winner:        NoWinner,
		activeSuit:    opts.ActiveSuit,
		isSuitPicking: opts.IsSuitPicking,
		mayPass:       opts.MayPass,
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// InitGame (re)initialises the whole aggregate: fresh shuffled deck,
// eight cards to each side, and the first non-8 off the top of the deck
// seeding the discard pile. Usable at any point, including as a restart
// mid-game or after gameOver.
func (g *Game) InitGame() []protocol.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	d := deck.New()
	d.Shuffle(g.rng)

	g.playerHand = d.Deal(handSize)
	g.aiHand = d.Deal(handSize)

	// Seed the discard with the first non-8. Skipped 8s stay in the
	// deck in their shuffled positions.
	idx := len(d) - 1
	for d[idx].Rank == deck.WildRank {
		idx--
	}
	first := d[idx]
	d = append(d[:idx], d[idx+1:]...)

	g.deck = d
	g.discardPile = []deck.Card{first}
	g.currentTurn = PlayerTurn
	g.status = StatusPlaying
	g.winner = NoWinner
	g.activeSuit = deck.NoSuit
	g.isSuitPicking = false
	g.mayPass = false

	return []protocol.Event{
		{Cmd: protocol.GameStarted, Side: PlayerTurn.String()},
	}
}

// PlayCard plays the card with the given id from side's hand onto the
// discard pile
func (g *Game) PlayCard(cardID string, side Turn) []protocol.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.playCard(cardID, side)
}

func (g *Game) playCard(cardID string, side Turn) []protocol.Event {
	if g.status != StatusPlaying || side != g.currentTurn || g.isSuitPicking {
		return nil
	}

	hand := g.handOf(side)
	card, ok := findCard(*hand, cardID)
	if !ok {
		return nil
	}
	if !CanPlayCard(card, g.topCard(), g.activeSuit) {
		return nil
	}

	*hand = removeCard(*hand, cardID)
	g.discardPile = append(g.discardPile, card)
	g.activeSuit = deck.NoSuit
	g.mayPass = false

	events := []protocol.Event{
		{Cmd: protocol.CardPlayed, Side: side.String(), CardID: card.ID()},
	}

	if len(*hand) == 0 {
		g.status = StatusGameOver
		g.winner = side
		return append(events, protocol.Event{
			Cmd:    protocol.GameOver,
			Winner: side.String(),
		})
	}

	if card.Rank == deck.WildRank {
		if side == PlayerTurn {
			// turn stays with the player until they declare a suit
			g.isSuitPicking = true
			return append(events, protocol.Event{
				Cmd:  protocol.SuitPicking,
				Side: side.String(),
			})
		}

		// the opponent's declaration is resolved immediately
		suit := chooseSuitFor(g.aiHand)
		if suit == deck.NoSuit {
			suit = card.Suit
		}
		g.activeSuit = suit
		g.currentTurn = PlayerTurn
		return append(events,
			protocol.Event{Cmd: protocol.SuitChosen, Side: side.String(), Suit: suit.String()},
			protocol.Event{Cmd: protocol.TurnChanged, Side: g.currentTurn.String()},
		)
	}

	g.currentTurn = side.other()
	return append(events, protocol.Event{
		Cmd:  protocol.TurnChanged,
		Side: g.currentTurn.String(),
	})
}

// DrawCard draws the top card of the deck into side's hand. An empty
// deck forfeits the turn instead.
func (g *Game) DrawCard(side Turn) []protocol.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.drawCard(side)
}

func (g *Game) drawCard(side Turn) []protocol.Event {
	if g.status != StatusPlaying || side != g.currentTurn || g.isSuitPicking {
		return nil
	}

	g.mayPass = false

	if len(g.deck) == 0 {
		g.currentTurn = side.other()
		return []protocol.Event{
			{Cmd: protocol.DeckExhausted, Side: side.String()},
			{Cmd: protocol.TurnChanged, Side: g.currentTurn.String()},
		}
	}

	drawn := g.deck.Deal(1)[0]
	events := []protocol.Event{
		{Cmd: protocol.CardDrawn, Side: side.String()},
	}

	if side == PlayerTurn {
		g.playerHand = append(g.playerHand, drawn)
		events[0].CardID = drawn.ID()

		if CanPlayCard(drawn, g.topCard(), g.activeSuit) {
			// their turn continues; they may play the card or pass
			g.mayPass = true
			return events
		}

		g.currentTurn = AITurn
		return append(events, protocol.Event{
			Cmd:  protocol.TurnChanged,
			Side: g.currentTurn.String(),
		})
	}

	// the AI's turn continues; PlayAITurn re-evaluates the hand
	g.aiHand = append(g.aiHand, drawn)
	return events
}

// ChooseSuit resolves the player's suit declaration after playing an 8
func (g *Game) ChooseSuit(suit deck.Suit) []protocol.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isSuitPicking || suit == deck.NoSuit {
		return nil
	}

	g.activeSuit = suit
	g.isSuitPicking = false
	g.currentTurn = AITurn

	return []protocol.Event{
		{Cmd: protocol.SuitChosen, Side: PlayerTurn.String(), Suit: suit.String()},
		{Cmd: protocol.TurnChanged, Side: g.currentTurn.String()},
	}
}

// PassTurn gives up the turn after drawing a playable card. It is only
// open to the player, and only in that window.
func (g *Game) PassTurn(side Turn) []protocol.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusPlaying || side != PlayerTurn || side != g.currentTurn || !g.mayPass {
		return nil
	}

	g.mayPass = false
	g.currentTurn = AITurn

	return []protocol.Event{
		{Cmd: protocol.TurnChanged, Side: g.currentTurn.String()},
	}
}

// PlayAITurn drives one full opponent turn synchronously: play a card,
// or draw and re-evaluate, or forfeit. The caller decides the pacing;
// the decision itself is instant.
func (g *Game) PlayAITurn() []protocol.Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusPlaying || g.currentTurn != AITurn || g.isSuitPicking {
		return nil
	}

	if card, ok := opponentMove(g.aiHand, g.topCard(), g.activeSuit, g.rng); ok {
		return g.playCard(card.ID(), AITurn)
	}

	events := g.drawCard(AITurn)
	if g.currentTurn != AITurn {
		// deck was empty, the turn is already forfeited
		return events
	}

	if card, ok := opponentMove(g.aiHand, g.topCard(), g.activeSuit, g.rng); ok {
		return append(events, g.playCard(card.ID(), AITurn)...)
	}

	// drew a dead card; pass back to the player
	g.currentTurn = PlayerTurn
	return append(events, protocol.Event{
		Cmd:  protocol.TurnChanged,
		Side: g.currentTurn.String(),
	})
}

func (g *Game) handOf(side Turn) *[]deck.Card {
	if side == PlayerTurn {
		return &g.playerHand
	}
	return &g.aiHand
}

func (g *Game) topCard() deck.Card {
	return g.discardPile[len(g.discardPile)-1]
}

func findCard(hand []deck.Card, id string) (deck.Card, bool) {
	for _, c := range hand {
		if c.ID() == id {
			return c, true
		}
	}
	return deck.Card{}, false
}

func removeCard(hand []deck.Card, id string) []deck.Card {
	remaining := []deck.Card{}
	for _, c := range hand {
		if c.ID() != id {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
