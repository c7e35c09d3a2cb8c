package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/consolechess/internal/console"
	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/benbeisheim/consolechess/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

// statusFor maps service and parsing errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotInGame), errors.Is(err, service.ErrNotYourTurn):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrGameFull), errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrIllegalMove),
		errors.Is(err, console.ErrInvalidMoveString),
		errors.Is(err, console.ErrOutOfBounds),
		errors.Is(err, console.ErrInvalidPromotion),
		errors.Is(err, model.ErrInvalidFEN):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "bad json",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)
	log.Debugf("player %s joining game %s", playerID, gameID)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color.String(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "bad json",
		})
	}
	if err := gc.gameService.HandleMove(gameID, playerID, req.Move); err != nil {
		return errorResponse(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	if err := gc.gameService.ResetGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
