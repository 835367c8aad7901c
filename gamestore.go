package eights

import (
	"fmt"
	"sync"
)

// GameStore holds the games currently being played
type GameStore interface {
	FindGame(ID string) *Game
	AddGame(ID string, game *Game) error
	RemoveGame(ID string)
}

// InMemoryGameStore maps game id to game
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*Game{},
	}
}

// FindGame returns the game with the given id, or nil
func (s *InMemoryGameStore) FindGame(ID string) *Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[ID]
}

// AddGame adds a game to the store
func (s *InMemoryGameStore) AddGame(ID string, game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[ID]; exists {
		return fmt.Errorf("game with id %s already exists", ID)
	}
	s.games[ID] = game

	return nil
}

// RemoveGame removes a game from the store
func (s *InMemoryGameStore) RemoveGame(ID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, ID)
}
