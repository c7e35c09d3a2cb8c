// service/game_manager.go
package service

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/benbeisheim/consolechess/internal/model"
)

type GameManager struct {
	games map[string]*Session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Session),
	}
}

// CreateGame registers a new session. An empty fen means the standard
// starting position.
func (gm *GameManager) CreateGame(gameID, fen string) error {
	game := model.NewGame()
	if fen != "" {
		var err error
		game, err = model.NewGameFromFEN(fen)
		if err != nil {
			return err
		}
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	gm.games[gameID] = NewSession(gameID, game)
	log.Infof("created game %s", gameID)
	return nil
}

// NewGameID returns a fresh session identifier.
func NewGameID() string {
	return uuid.New().String()
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return session, nil
}

func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.games, gameID)
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return model.White, err
	}
	return session.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (GameState, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	return session.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move string) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.MakeMove(playerID, move)
}

func (gm *GameManager) ResetGame(gameID string) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	session.Reset()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
}

func (gm *GameManager) SendError(gameID string, playerID string, cause error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.SendError(playerID, cause)
}
