package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/rpalumbo/chesskit-backend/internal/model"
	"github.com/rpalumbo/chesskit-backend/internal/store"
)

// Sentinel errors for game registry lookups.
var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager owns the registry of live games, the matchmaking queue, and
// the archive of completed games.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
	archive          *store.Store // nil when persistence is disabled
	mu               sync.RWMutex
}

// NewGameManager starts the matchmaking loop. archive may be nil, in which
// case completed games are not persisted.
func NewGameManager(archive *store.Store) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		archive:          archive,
	}

	go gm.processMatchmaking()

	return gm
}

// processMatchmaking pairs the two longest-waiting players once a second and
// notifies each through their registered channel.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.mu.Lock()
		if gm.queue.Size() >= 2 {
			player1, player2 := gm.queue.GetNextPair()

			gameID := uuid.New().String()
			game := model.NewGame(gameID)

			p1Color, err := game.AddPlayer(player1.ID)
			if err != nil {
				log.Printf("matchmaking: seat %s: %v", player1.ID, err)
				gm.mu.Unlock()
				continue
			}
			p2Color, err := game.AddPlayer(player2.ID)
			if err != nil {
				log.Printf("matchmaking: seat %s: %v", player2.ID, err)
				gm.mu.Unlock()
				continue
			}
			gm.games[gameID] = game

			gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
			gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
		}
		gm.mu.Unlock()
	}
}

// notifyMatch sends the match event to the player's channel, if one is
// registered, and retires the channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("matchmaking: marshal event for %s: %v", playerID, err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("matchmaking: channel full for %s", playerID)
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// Replace any stale channel from an earlier request.
	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}

	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matchingChannels, playerID)
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID string) (model.PlayerColor, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID, playerID string, req model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.MakeMove(playerID, req)
}

func (gm *GameManager) LegalMoves(gameID, from string) ([]string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	return game.LegalMoves(from)
}

func (gm *GameManager) Undo(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.Undo(playerID)
}

func (gm *GameManager) Redo(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.Redo(playerID)
}

func (gm *GameManager) Jump(gameID, playerID string, cursor int) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.Jump(playerID, cursor)
}

// Resign resolves the game and archives it.
func (gm *GameManager) Resign(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	if err := game.Resign(playerID); err != nil {
		return err
	}
	gm.archiveGame(game)
	return nil
}

// archiveGame persists a resolved game. Archive failures are logged, not
// surfaced: the live session already resolved correctly.
func (gm *GameManager) archiveGame(game *model.Game) {
	if gm.archive == nil {
		return
	}
	result, ok := game.Result()
	if !ok {
		return
	}

	state := game.GetState()
	moves := make([]store.MoveRecord, 0, len(state.MoveHistory))
	for _, m := range state.MoveHistory {
		moves = append(moves, store.MoveRecord{From: m.From, To: m.To, Notation: m.Notation})
	}

	rec := store.GameRecord{
		ID:      game.ID,
		White:   state.Players.White.ID,
		Black:   state.Players.Black.ID,
		Result:  result,
		Moves:   moves,
		SavedAt: time.Now(),
	}
	if err := gm.archive.SaveGame(rec); err != nil {
		log.Printf("archive game %s: %v", game.ID, err)
	}
}

func (gm *GameManager) ArchivedGame(gameID string) (store.GameRecord, error) {
	if gm.archive == nil {
		return store.GameRecord{}, store.ErrGameNotFound
	}
	return gm.archive.GetGame(gameID)
}

func (gm *GameManager) ArchivedGames() ([]store.GameRecord, error) {
	if gm.archive == nil {
		return nil, nil
	}
	return gm.archive.ListGames()
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(playerID)
}
