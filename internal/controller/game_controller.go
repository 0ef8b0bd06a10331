package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rpalumbo/chesskit-backend/internal/engine"
	"github.com/rpalumbo/chesskit-backend/internal/model"
	"github.com/rpalumbo/chesskit-backend/internal/service"
	"github.com/rpalumbo/chesskit-backend/internal/store"
)

// matchmakingWait bounds how long the events endpoint blocks before telling
// the client to poll again.
const matchmakingWait = 25 * time.Second

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return gc.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gc.errorResponse(c, err)
	}

	return c.JSON(gameState)
}

// GetLegalMoves returns the legal destinations for the piece on a square,
// the list the client highlights when that square is selected.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	square := c.Params("square")

	moves, err := gc.gameService.LegalMoves(gameID, square)
	if err != nil {
		return gc.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to join matchmaking",
		})
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// MatchmakingEvents long-polls for a match. It answers with the match event
// as soon as one arrives, or with a waiting status after the poll window so
// the client retries.
func (gc *GameController) MatchmakingEvents(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	ch := make(chan string, 1)
	if err := gc.gameService.RegisterMatchmakingChannel(playerID, ch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register for matchmaking events",
		})
	}

	select {
	case event, ok := <-ch:
		if !ok {
			return c.JSON(fiber.Map{"status": "waiting"})
		}
		c.Set("Content-Type", "application/json")
		return c.SendString(event)
	case <-time.After(matchmakingWait):
		gc.gameService.UnregisterMatchmakingChannel(playerID)
		return c.JSON(fiber.Map{"status": "waiting"})
	}
}

func (gc *GameController) GetArchivedGame(c *fiber.Ctx) error {
	rec, err := gc.gameService.ArchivedGame(c.Params("gameId"))
	if err != nil {
		return gc.errorResponse(c, err)
	}

	return c.JSON(rec)
}

func (gc *GameController) ListArchivedGames(c *fiber.Ctx) error {
	recs, err := gc.gameService.ArchivedGames()
	if err != nil {
		return gc.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"games": recs})
}

// errorResponse maps domain errors onto HTTP statuses.
func (gc *GameController) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, store.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, model.ErrGameFull):
		status = fiber.StatusConflict
	case errors.Is(err, engine.ErrBadSquare):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
