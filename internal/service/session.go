package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/consolechess/internal/console"
	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/benbeisheim/consolechess/internal/record"
	"github.com/benbeisheim/consolechess/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Session is one game served over HTTP/WS. model.Game is not safe for
// concurrent use, so every access goes through mu. State broadcasts are
// written while mu is held so clients see states in the order they happened;
// lock order is mu, then connections.mu.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	recorder    *record.Recorder
	white       *Player
	black       *Player
	lastMove    *model.Move
	createdAt   time.Time
	updatedAt   time.Time
	connections *GameConnections
}

// GameState is the JSON view of a session.
type GameState struct {
	ID         string   `json:"id"`
	FEN        string   `json:"fen"`
	Board      []string `json:"board"` // rank 8 first, FEN glyphs, '.' for empty
	ToMove     string   `json:"toMove"`
	LegalMoves []string `json:"legalMoves"`
	History    []string `json:"history"`
	Notation   []string `json:"notation"`
	LastMove   *string  `json:"lastMove"`
	Players    struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSession(id string, game *model.Game) *Session {
	now := time.Now()
	return &Session{
		ID:          id,
		game:        game,
		recorder:    record.NewFromFEN(game.FEN()),
		createdAt:   now,
		updatedAt:   now,
		connections: NewGameConnections(),
	}
}

func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.colorOf(playerID); ok {
		return c, nil
	}
	if s.white == nil {
		s.white = &Player{ID: playerID, Color: model.White}
		return model.White, nil
	}
	if s.black == nil {
		s.black = &Player{ID: playerID, Color: model.Black}
		return model.Black, nil
	}
	return model.White, ErrGameFull
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	if s.white != nil && s.white.ID == playerID {
		return model.White, true
	}
	if s.black != nil && s.black.ID == playerID {
		return model.Black, true
	}
	return model.White, false
}

func (s *Session) canSpectate() bool {
	return s.white == nil || s.black == nil
}

// MakeMove parses input for playerID and applies it if it is legal.
func (s *Session) MakeMove(playerID, input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	color, ok := s.colorOf(playerID)
	if !ok {
		return ErrNotInGame
	}
	if color != s.game.WhoIsOnTurn() {
		return ErrNotYourTurn
	}

	move, err := console.ParseMove(s.game.Board(), input, color)
	if err != nil {
		return err
	}
	if !s.game.TryMakeMove(&move) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move.UCI())
	}
	s.recorder.Push(move)
	s.lastMove = &move
	s.updatedAt = time.Now()

	log.Debugf("game %s: %s played %s", s.ID, color, move)
	s.broadcast(s.state())
	return nil
}

// Reset starts the session over from the standard position.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.NewGame()
	s.recorder = record.NewFromFEN(s.game.FEN())
	s.lastMove = nil
	s.updatedAt = time.Now()
	s.broadcast(s.state())
}

func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() GameState {
	st := GameState{
		ID:         s.ID,
		FEN:        s.game.FEN(),
		ToMove:     s.game.WhoIsOnTurn().String(),
		LegalMoves: make([]string, 0),
		History:    make([]string, 0),
		Notation:   s.recorder.Lines(),
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
	}
	squares := s.game.Board().Squares()
	for y := model.Size - 1; y >= 0; y-- {
		row := make([]rune, model.Size)
		for x := 0; x < model.Size; x++ {
			piece, _ := squares[x][y].Piece()
			row[x] = piece.FENGlyph()
		}
		st.Board = append(st.Board, string(row))
	}
	for _, m := range s.game.AvailableMoves() {
		st.LegalMoves = append(st.LegalMoves, m.UCI())
	}
	for _, m := range s.game.History() {
		st.History = append(st.History, m.UCI())
	}
	if s.lastMove != nil {
		last := s.lastMove.UCI()
		st.LastMove = &last
	}
	st.Players.White = s.white.client()
	st.Players.Black = s.black.client()
	return st
}

// RegisterConnection attaches conn for playerID and sends it the current
// state. A player already holding a connection keeps it and the new one is
// refused with ErrConnectionExists.
func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, inGame := s.colorOf(playerID); !inGame && !s.canSpectate() {
		return ErrNotInGame
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		return ErrConnectionExists
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Infof("game %s: registered connection for player %s", s.ID, playerID)

	s.broadcast(s.state())
	return nil
}

// UnregisterConnection drops playerID's connection if it is still conn.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current == conn {
		log.Infof("game %s: unregistering connection for player %s", s.ID, playerID)
		delete(s.connections.connections, playerID)
	}
}

// SendError writes an error message to one player's connection.
func (s *Session) SendError(playerID string, cause error) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: cause.Error()})
	if err != nil {
		log.Errorf("game %s: marshal error message: %v", s.ID, err)
		return
	}
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	if conn, ok := s.connections.connections[playerID]; ok {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: send error to %s: %v", s.ID, playerID, err)
		}
	}
}

// broadcast writes state to every connection. Writes are serialised by the
// connections mutex; failed connections are dropped.
func (s *Session) broadcast(state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("game %s: marshal state: %v", s.ID, err)
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("game %s: failed to send state to player %s: %v", s.ID, playerID, err)
			delete(s.connections.connections, playerID)
			continue
		}
		log.Debugf("game %s: sent state to player %s", s.ID, playerID)
	}
}
