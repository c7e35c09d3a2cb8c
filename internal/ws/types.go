package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeNewGame   MessageType = "newGame"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload carries a move string such as "e2e4" or "a7a8Q".
type MovePayload struct {
	Move string `json:"move"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message envelope.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
