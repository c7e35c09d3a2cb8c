package model

import "strings"

// Size is the number of files and ranks.
const Size = 8

// Board is a fixed 8x8 grid indexed [file][rank].
type Board struct {
	squares [Size][Size]Square
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	board := &Board{}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			board.squares[x][y].Position = Position{X: x, Y: y}
		}
	}
	return board
}

var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitDefault places the standard 32 pieces. It is meant for a freshly
// constructed board.
func (b *Board) InitDefault() bool {
	for x := 0; x < Size; x++ {
		b.squares[x][0].SetPiece(NewPiece(backRank[x], White))
		b.squares[x][1].SetPiece(NewPiece(Pawn, White))
		b.squares[x][Size-2].SetPiece(NewPiece(Pawn, Black))
		b.squares[x][Size-1].SetPiece(NewPiece(backRank[x], Black))
	}
	return true
}

func (b *Board) IsInBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < Size && pos.Y >= 0 && pos.Y < Size
}

// Square returns the cell at pos, or nil when pos is off the board.
func (b *Board) Square(pos Position) *Square {
	if !b.IsInBounds(pos) {
		return nil
	}
	return &b.squares[pos.X][pos.Y]
}

// PieceAt is a shorthand for Square(pos).Piece() that tolerates off-board positions.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	sq := b.Square(pos)
	if sq == nil {
		return NoPiece, false
	}
	return sq.Piece()
}

// Squares returns a snapshot of the grid.
func (b *Board) Squares() [Size][Size]Square {
	return b.squares
}

// AvailableMovesFor concatenates the pseudo-legal moves of every piece of
// color c, scanning file by file and rank by rank within a file.
func (b *Board) AvailableMovesFor(c Color) []Move {
	allMoves := []Move{}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			piece, ok := b.squares[x][y].Piece()
			if !ok || piece.Color != c {
				continue
			}
			allMoves = append(allMoves, piece.AvailableMoves(Position{X: x, Y: y}, b)...)
		}
	}
	return allMoves
}

// String draws rank 8 at the top in FEN case, one rank per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			piece, _ := b.squares[x][y].Piece()
			sb.WriteRune(piece.FENGlyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
