package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/elliemb/eights"
	"github.com/elliemb/eights/deck"
	"github.com/elliemb/eights/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// session is one websocket connection to a game. It forwards the
// client's intents into the engine and streams frames back. The AI
// pacing timer lives here: the engine decides instantly, the session
// applies the decision after a delay so the opponent reads as thinking.
type session struct {
	game    *eights.Game
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
	aiDelay time.Duration

	mu        sync.Mutex
	aiTimer   *time.Timer
	closeOnce sync.Once
}

func newSession(game *eights.Game, conn *websocket.Conn, aiDelay time.Duration) *session {
	return &session{
		game:    game,
		conn:    conn,
		send:    make(chan []byte, 16),
		done:    make(chan struct{}),
		aiDelay: aiDelay,
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		if s.aiTimer != nil {
			s.aiTimer.Stop()
		}
		s.mu.Unlock()
		close(s.done)
	})
}

// pushFrame queues the events from the last transition plus a fresh
// snapshot
func (s *session) pushFrame(events []protocol.Event) {
	if events == nil {
		events = []protocol.Event{}
	}

	frame := protocol.Frame{
		Events:   events,
		Snapshot: s.game.Snapshot(),
	}

	data, err := json.Marshal(frame)
	if err != nil {
		log.Println(err.Error())
		return
	}

	select {
	case s.send <- data:
	case <-s.done:
	}
}

func (s *session) pushError(msg string) {
	s.pushFrame([]protocol.Event{{Cmd: protocol.Error, Error: msg}})
}

// apply routes one intent into the engine. Precondition-violating
// intents come back as empty event lists; the client still gets a
// snapshot to resync against.
func (s *session) apply(intent protocol.Intent) {
	var events []protocol.Event

	switch intent.Command {
	case protocol.IntentRestart:
		events = s.game.InitGame()

	case protocol.IntentPlay:
		events = s.game.PlayCard(intent.CardID, eights.PlayerTurn)

	case protocol.IntentDraw:
		events = s.game.DrawCard(eights.PlayerTurn)

	case protocol.IntentChooseSuit:
		suit, ok := deck.SuitFromName(intent.Suit)
		if !ok {
			s.pushError("unknown suit '" + intent.Suit + "'")
			return
		}
		events = s.game.ChooseSuit(suit)

	case protocol.IntentPass:
		events = s.game.PassTurn(eights.PlayerTurn)

	default:
		s.pushError("unknown command '" + intent.Command + "'")
		return
	}

	s.pushFrame(events)
	s.scheduleAITurn()
}

// scheduleAITurn arms the pacing timer if the turn now sits with the
// computer. Rearming replaces any pending timer.
func (s *session) scheduleAITurn() {
	if s.game.Status() != eights.StatusPlaying || s.game.CurrentTurn() != eights.AITurn {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aiTimer != nil {
		s.aiTimer.Stop()
	}
	s.aiTimer = time.AfterFunc(s.aiDelay, func() {
		events := s.game.PlayAITurn()
		if events == nil {
			// the state moved on under the timer (e.g. a restart)
			return
		}
		s.pushFrame(events)
	})
}

func (s *session) readPump() {
	defer func() {
		s.close()
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println(err.Error())
			}
			return
		}

		var intent protocol.Intent
		if err := json.Unmarshal(data, &intent); err != nil {
			s.pushError("could not parse intent")
			continue
		}

		s.apply(intent)
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
