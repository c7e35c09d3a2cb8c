package controller

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/consolechess/internal/service"
	"github.com/benbeisheim/consolechess/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warnf("failed to register connection: %v", err)
		c.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
		)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("parse error: %v", err)
			wsc.gameService.SendError(gameID, playerID, fmt.Errorf("parse error: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("handle error: %v", err)
			wsc.gameService.SendError(gameID, playerID, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move.Move)
	case ws.MessageTypeNewGame:
		return wsc.gameService.ResetGame(gameID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
