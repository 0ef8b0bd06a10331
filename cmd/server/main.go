package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rpalumbo/chesskit-backend/internal/controller"
	"github.com/rpalumbo/chesskit-backend/internal/middleware"
	"github.com/rpalumbo/chesskit-backend/internal/service"
	"github.com/rpalumbo/chesskit-backend/internal/store"
)

func main() {
	addr := envOr("CHESSKIT_ADDR", ":3000")
	dataDir := envOr("CHESSKIT_DATA_DIR", "data")
	origin := envOr("CHESSKIT_ORIGIN", "http://localhost:5173")

	archive, err := store.Open(dataDir)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer archive.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager(archive)
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Use("/ws/game/:gameId", middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{origin},
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Get("/matchmaking/events", gameController.MatchmakingEvents)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves/:square", gameController.GetLegalMoves)

	archiveRoutes := api.Group("/archive")
	archiveRoutes.Get("/", gameController.ListArchivedGames)
	archiveRoutes.Get("/:gameId", gameController.GetArchivedGame)

	log.Fatal(app.Listen(addr))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
