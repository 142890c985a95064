// Package service manages checkers game sessions with optional persistence.
package service

import (
	"fmt"
	"sync"
	"time"

	"checkers/internal/game"
	"checkers/internal/storage"

	"github.com/google/uuid"
)

// Service is a pure state manager for checkers games with optional persistence
type Service struct {
	games map[string]*game.Game
	mu    sync.Mutex
	store *storage.Store // nil if persistence disabled
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		store: store,
	}
}

// CreateGame creates a game with the standard opening layout. Size 0
// means the default 8x8 board; a nil sink disables notifications.
func (s *Service) CreateGame(id string, size int, sink game.Sink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	g := game.New(size, sink)
	s.games[id] = g

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:       id,
			BoardSize:    g.Size(),
			StartTimeUTC: time.Now().UTC(),
		})
	}

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeMove validates and executes a move for the piece at the from
// coordinate. On success the move is appended to game history and
// persisted if storage is enabled.
func (s *Service) MakeMove(gameID string, fromX, fromY, toX, toY int) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	piece, err := g.PieceAt(fromX, fromY)
	if err != nil {
		return nil, err
	}
	target, err := g.SquareAt(toX, toY)
	if err != nil {
		return nil, err
	}

	result, err := g.AttemptMove(piece, target)
	if err != nil {
		return nil, err
	}

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:      gameID,
			MoveNumber:  len(g.Moves()),
			MoveText:    result.Move,
			PlayerColor: result.Player.String(),
			Captured:    result.Captured != nil,
			MoveTimeUTC: time.Now().UTC(),
		})
	}

	return result, nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	delete(s.games, gameID)
	return nil
}

// GetCurrentBoard returns the ASCII rendering of the game's board
func (s *Service) GetCurrentBoard(gameID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return "", fmt.Errorf("game not found: %s", gameID)
	}
	return g.Board().ToASCII(), nil
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close releases the storage if persistence is enabled
func (s *Service) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
