package server

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elliemb/eights"
	"github.com/elliemb/eights/deck"
	utils "github.com/elliemb/eights/internal"
	"github.com/elliemb/eights/protocol"
	"github.com/stretchr/testify/assert"
)

func TestServerPOSTNewGame(t *testing.T) {
	t.Run("creates a dealt game", func(t *testing.T) {
		store := eights.NewInMemoryGameStore()
		server := NewServer(store, testConfig())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newCreateGameRequest())

		assertStatus(t, response.Code, http.StatusCreated)
		res := assertNewGameResponse(t, response.Body)

		game := store.FindGame(res.GameID)
		if game == nil {
			t.Fatal("expected the game to be stored")
		}
		utils.AssertEqual(t, game.Status(), eights.StatusPlaying)
		utils.AssertEqual(t, game.CurrentTurn(), eights.PlayerTurn)
	})

	t.Run("does not match on GET /new", func(t *testing.T) {
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new", nil)

		server := NewServer(newBasicStore(), testConfig())
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}

func TestServerGETGame(t *testing.T) {
	t.Run("returns a snapshot", func(t *testing.T) {
		game := eights.NewGame(eights.GameOpts{})
		game.InitGame()
		server := newServerWithGame(t, "ABCDEF", game)

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest("ABCDEF"))

		assertStatus(t, response.Code, http.StatusOK)

		bodyBytes, err := ioutil.ReadAll(response.Body)
		utils.AssertNoError(t, err)

		var got protocol.GameSnapshot
		utils.AssertNoError(t, json.Unmarshal(bodyBytes, &got))
		utils.AssertEqual(t, got.Status, "playing")
		utils.AssertEqual(t, got.CurrentTurn, "player")
		utils.AssertEqual(t, len(got.PlayerHand), 8)
		utils.AssertEqual(t, got.AIHandCount, 8)
		utils.AssertNotEmptyString(t, got.DiscardTop.ID)
	})

	t.Run("unknown game id", func(t *testing.T) {
		server := NewServer(newBasicStore(), testConfig())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest("NOSUCH"))

		assertStatus(t, response.Code, http.StatusNotFound)
	})

	t.Run("missing game id", func(t *testing.T) {
		server := NewServer(newBasicStore(), testConfig())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(""))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})
}

func TestServerWS(t *testing.T) {
	t.Run("rejects a missing game id", func(t *testing.T) {
		server := newTestServer(NewServer(newBasicStore(), testConfig()))
		defer server.Close()

		response, err := http.Get(server.URL + "/ws")
		utils.AssertNoError(t, err)
		defer response.Body.Close()

		assertStatus(t, response.StatusCode, http.StatusBadRequest)
	})

	t.Run("streams frames and drives the opponent", func(t *testing.T) {
		// deck empty, so the player's draw forfeits; the opponent then
		// plays its only card and wins
		game := eights.NewGame(eights.GameOpts{
			Status:      eights.StatusPlaying,
			CurrentTurn: eights.PlayerTurn,
			Deck:        deck.Deck{},
			PlayerHand:  []deck.Card{deck.NewCard(deck.Two, deck.Spades)},
			AIHand:      []deck.Card{deck.NewCard(deck.Seven, deck.Spades)},
			DiscardPile: []deck.Card{deck.NewCard(deck.Seven, deck.Hearts)},
		})
		server := newTestServer(newServerWithGame(t, "ABCDEF", game))
		defer server.Close()

		ws := mustDialWS(t, makeWSUrl(server.URL, "ABCDEF"))
		defer ws.Close()

		t.Log("The first frame catches the client up")
		frame := mustReadFrame(t, ws)
		utils.AssertEqual(t, frame.Snapshot.Status, "playing")
		utils.AssertEqual(t, frame.Snapshot.DeckCount, 0)

		t.Log("A draw against an empty deck forfeits the turn")
		mustWriteIntent(t, ws, protocol.Intent{Command: protocol.IntentDraw})

		frame = mustReadFrame(t, ws)
		assert.Equal(t, []protocol.Event{
			{Cmd: protocol.DeckExhausted, Side: "player"},
			{Cmd: protocol.TurnChanged, Side: "ai"},
		}, frame.Events)

		t.Log("Then the opponent takes its turn unprompted")
		frame = mustReadFrame(t, ws)
		utils.AssertEqual(t, frame.Events[0].Cmd, protocol.CardPlayed)
		utils.AssertEqual(t, lastFrameEvent(frame).Cmd, protocol.GameOver)
		utils.AssertEqual(t, lastFrameEvent(frame).Winner, "ai")
		utils.AssertEqual(t, frame.Snapshot.Status, "gameOver")
	})

	t.Run("restart deals a fresh game", func(t *testing.T) {
		game := eights.NewGame(eights.GameOpts{})
		game.InitGame()
		server := newTestServer(newServerWithGame(t, "ABCDEF", game))
		defer server.Close()

		ws := mustDialWS(t, makeWSUrl(server.URL, "ABCDEF"))
		defer ws.Close()

		mustReadFrame(t, ws) // initial frame

		mustWriteIntent(t, ws, protocol.Intent{Command: protocol.IntentRestart})

		frame := mustReadFrame(t, ws)
		utils.AssertEqual(t, frame.Events[0].Cmd, protocol.GameStarted)
		utils.AssertEqual(t, len(frame.Snapshot.PlayerHand), 8)
		utils.AssertEqual(t, frame.Snapshot.AIHandCount, 8)
		utils.AssertEqual(t, frame.Snapshot.CurrentTurn, "player")
	})

	t.Run("unknown commands get an error frame", func(t *testing.T) {
		game := eights.NewGame(eights.GameOpts{})
		game.InitGame()
		server := newTestServer(newServerWithGame(t, "ABCDEF", game))
		defer server.Close()

		ws := mustDialWS(t, makeWSUrl(server.URL, "ABCDEF"))
		defer ws.Close()

		mustReadFrame(t, ws) // initial frame

		mustWriteIntent(t, ws, protocol.Intent{Command: "juggle"})

		frame := mustReadFrame(t, ws)
		utils.AssertEqual(t, frame.Events[0].Cmd, protocol.Error)
	})
}

func lastFrameEvent(frame protocol.Frame) protocol.Event {
	if len(frame.Events) == 0 {
		return protocol.Event{}
	}
	return frame.Events[len(frame.Events)-1]
}

// newTestServer starts and returns a new server.
// The caller must call Close to shut it down.
func newTestServer(gs *GameServer) *httptest.Server {
	return httptest.NewServer(gs)
}
