package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/consolechess/internal/middleware"
	"github.com/benbeisheim/consolechess/internal/service"
)

// SetupRoutes mounts the REST API under /api and the game socket under /ws.
func SetupRoutes(app *fiber.App, gameService *service.GameService, origins []string) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Get("/ws/game/:gameId",
		middleware.EnsurePlayerID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         origins,
		}),
	)

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)
}
