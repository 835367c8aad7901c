package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/elliemb/eights"
	"github.com/elliemb/eights/protocol"
)

func testConfig() Config {
	return Config{
		Port:          8000,
		StaticDir:     "./build",
		AIDelay:       10 * time.Millisecond,
		AllowedOrigin: "*",
	}
}

func newBasicStore() eights.GameStore {
	return eights.NewInMemoryGameStore()
}

// newServerWithGame returns a GameServer and store holding the given game
func newServerWithGame(t *testing.T, gameID string, game *eights.Game) *GameServer {
	t.Helper()

	store := eights.NewInMemoryGameStore()
	if err := store.AddGame(gameID, game); err != nil {
		t.Fatal(err)
	}
	return NewServer(store, testConfig())
}

func newCreateGameRequest() *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer([]byte{}))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertNewGameResponse(t *testing.T, body *bytes.Buffer) NewGameRes {
	t.Helper()
	bodyBytes, err := ioutil.ReadAll(body)
	if err != nil {
		t.Fatal(err)
	}

	var got NewGameRes
	if err := json.Unmarshal(bodyBytes, &got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	if len(got.GameID) == 0 {
		t.Error("expected a game id")
	}
	if len(got.PlayerID) == 0 {
		t.Error("expected a player id")
	}

	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		code := 0
		if resp != nil {
			code = resp.StatusCode
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %v", url, code, err)
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

func mustReadFrame(t *testing.T, ws *websocket.Conn) protocol.Frame {
	t.Helper()

	ws.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("could not read frame: %s", err.Error())
	}

	var frame protocol.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("could not unmarshal frame: %s", err.Error())
	}
	return frame
}

func mustWriteIntent(t *testing.T, ws *websocket.Conn, intent protocol.Intent) {
	t.Helper()

	data, err := json.Marshal(intent)
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatal(err)
	}
}
