package model

import "unicode"

type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MarshalText lets colors travel as "white"/"black" in JSON.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type PieceType int8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (t PieceType) getPieceNotation() rune {
	switch t {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	}
	return '.'
}

// PromotionTypes lists promotion choices in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// PieceTypeFromGlyph maps 'K','Q','R','B','N','P' (either case) to a type.
func PieceTypeFromGlyph(r rune) (PieceType, bool) {
	switch unicode.ToUpper(r) {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	case 'P':
		return Pawn, true
	}
	return NoPieceType, false
}

// Piece is a value; the zero value is NoPiece.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

var NoPiece = Piece{}

func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// Glyph is the upper-case letter of the piece, independent of color.
func (p Piece) Glyph() rune {
	return p.Type.getPieceNotation()
}

// FENGlyph is the glyph in FEN case: upper for White, lower for Black.
func (p Piece) FENGlyph() rune {
	if p.IsNone() {
		return '.'
	}
	if p.Color == Black {
		return unicode.ToLower(p.Glyph())
	}
	return p.Glyph()
}

// Equal compares by glyph and color.
func (p Piece) Equal(other Piece) bool {
	if p.IsNone() || other.IsNone() {
		return p.IsNone() && other.IsNone()
	}
	return p.Glyph() == other.Glyph() && p.Color == other.Color
}

// AvailableMoves returns the pseudo-legal moves of p standing on pos.
func (p Piece) AvailableMoves(pos Position, board *Board) []Move {
	switch p.Type {
	case King:
		return p.kingMoves(pos, board)
	case Queen:
		return p.queenMoves(pos, board)
	case Rook:
		return p.rookMoves(pos, board)
	case Bishop:
		return p.bishopMoves(pos, board)
	case Knight:
		return p.knightMoves(pos, board)
	case Pawn:
		return p.pawnMoves(pos, board)
	default:
		return nil
	}
}
