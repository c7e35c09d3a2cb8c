package model

import "golang.org/x/exp/slices"

// Game owns one board, the side to move and the list of applied moves.
// It is not safe for concurrent use.
type Game struct {
	board   *Board
	toMove  Color
	history []Move
}

func NewGame() *Game {
	g := &Game{}
	g.NewGame()
	return g
}

// NewGameFromFEN starts a game from a FEN placement and side to move.
func NewGameFromFEN(fen string) (*Game, error) {
	board, toMove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, toMove: toMove, history: make([]Move, 0)}, nil
}

// NewGame resets to the standard starting position with White to move.
func (g *Game) NewGame() bool {
	g.board = NewBoard()
	g.board.InitDefault()
	g.toMove = White
	g.history = make([]Move, 0)
	return true
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) WhoIsOnTurn() Color {
	return g.toMove
}

// AvailableMoves returns the pseudo-legal moves of the side to move.
func (g *Game) AvailableMoves() []Move {
	return g.board.AvailableMovesFor(g.toMove)
}

// History returns a copy of the applied moves, oldest first.
func (g *Game) History() []Move {
	return slices.Clone(g.history)
}

// TryMakeMove applies candidate if it matches one of the available moves.
// On success candidate.Captured holds the previous occupant of the target
// square, the move is appended to the history and the turn passes to the
// other side. On failure nothing changes.
func (g *Game) TryMakeMove(candidate *Move) bool {
	if candidate == nil {
		return false
	}
	if slices.IndexFunc(g.AvailableMoves(), candidate.Equal) < 0 {
		return false
	}

	from := g.board.Square(candidate.From)
	to := g.board.Square(candidate.To)
	moving, _ := from.Piece()

	candidate.Captured, _ = to.Piece()
	to.SetPiece(moving)
	from.SetPiece(NoPiece)
	if candidate.IsPromotion() {
		to.SetPiece(candidate.Promotion)
	}

	g.history = append(g.history, *candidate)
	g.toMove = g.toMove.Opposite()
	return true
}

// FEN describes the current position.
func (g *Game) FEN() string {
	return g.board.FEN(g.toMove)
}
