package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/elliemb/eights"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewGameRes is the response to a successful game creation
type NewGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

// GameServer serves the crazy-eights engine to a browser front end
type GameServer struct {
	store  eights.GameStore
	config Config
	http.Server
}

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

var gameIDLetters = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// NewGameID constructs a shareable game code
func NewGameID() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = gameIDLetters[rand.Intn(len(gameIDLetters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(store eights.GameStore, config Config) *GameServer {
	s := new(GameServer)

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGetGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))
	router.Handle("/", http.FileServer(http.Dir(config.StaticDir)))

	s.store = store
	s.config = config

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{config.AllowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.Addr = fmt.Sprintf(":%d", config.Port)
	s.Handler = handlers.LoggingHandler(os.Stdout, cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game. The game is
// dealt immediately; player vs computer needs no waiting room.
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := NewGameID()
	playerID := NewID()

	game := eights.NewGame(eights.GameOpts{})
	game.InitGame()

	if err := g.store.AddGame(gameID, game); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := NewGameRes{
		GameID:   gameID,
		PlayerID: playerID,
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(bytes)
}

// HandleGetGame returns a snapshot of the game's current state
func (g *GameServer) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.Replace(r.URL.Path, "/game/", "", 1)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	game := g.store.FindGame(gameID)
	if game == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	bytes, err := json.Marshal(game.Snapshot())
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// HandleWS upgrades to a websocket carrying intent frames in and
// event/snapshot frames out
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vals, ok := query["game_id"]
	if !ok || len(vals) != 1 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}
	gameID := vals[0]

	game := g.store.FindGame(gameID)
	if game == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sess := newSession(game, rawConn, g.config.AIDelay)
	go sess.writePump()
	go sess.readPump()

	// catch the client up, and resume the AI's turn if the connection
	// dropped in the middle of one
	sess.pushFrame(nil)
	sess.scheduleAITurn()
}
