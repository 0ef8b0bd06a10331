package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/rpalumbo/chesskit-backend/internal/model"
	"github.com/rpalumbo/chesskit-backend/internal/store"
)

// GameService is the facade the transport layer talks to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinGame(gameID, playerID string) (model.PlayerColor, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID, playerID string, req model.MoveRequest) error {
	return gs.gameManager.MakeMove(gameID, playerID, req)
}

func (gs *GameService) LegalMoves(gameID, from string) ([]string, error) {
	return gs.gameManager.LegalMoves(gameID, from)
}

func (gs *GameService) Undo(gameID, playerID string) error {
	return gs.gameManager.Undo(gameID, playerID)
}

func (gs *GameService) Redo(gameID, playerID string) error {
	return gs.gameManager.Redo(gameID, playerID)
}

func (gs *GameService) Jump(gameID, playerID string, cursor int) error {
	return gs.gameManager.Jump(gameID, playerID, cursor)
}

func (gs *GameService) Resign(gameID, playerID string) error {
	return gs.gameManager.Resign(gameID, playerID)
}

func (gs *GameService) ArchivedGame(gameID string) (store.GameRecord, error) {
	return gs.gameManager.ArchivedGame(gameID)
}

func (gs *GameService) ArchivedGames() ([]store.GameRecord, error) {
	return gs.gameManager.ArchivedGames()
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	return gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}
