package service

import (
	"fmt"


	"github.com/benbeisheim/consolechess/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) CreateGame(fen string) (string, error) {
	gameID := NewGameID()

	if err := gs.gameManager.CreateGame(gameID, fen); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move string) error {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) ResetGame(gameID string) error {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) DeleteGame(gameID string) error {
	if _, err := gs.gameManager.GetGame(gameID); err != nil {
		return err
	}
	gs.gameManager.RemoveGame(gameID)
	return nil
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) SendError(gameID string, playerID string, cause error) {
	gs.gameManager.SendError(gameID, playerID, cause)
}
