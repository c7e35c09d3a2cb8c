package model

import (
	"fmt"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// FEN encodes the placement and side to move. Castling and en passant are
// not modelled, so those fields are always "-".
func (b *Board) FEN(toMove Color) string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		if y < Size-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Size; x++ {
			piece, ok := b.squares[x][y].Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(piece.FENGlyph())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if toMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// ParseFEN reads the placement and side-to-move fields. Remaining fields are
// accepted and ignored.
func ParseFEN(fen string) (*Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, White, fmt.Errorf("%w: want placement and side to move", ErrInvalidFEN)
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Size {
		return nil, White, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}

	board := NewBoard()
	for i, row := range ranks {
		y := Size - 1 - i
		x := 0
		for _, ch := range row {
			if x >= Size {
				return nil, White, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, y+1)
			}
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			pt, ok := PieceTypeFromGlyph(ch)
			if !ok {
				return nil, White, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			board.squares[x][y].SetPiece(NewPiece(pt, color))
			x++
		}
		if x != Size {
			return nil, White, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, y+1, x)
		}
	}

	var toMove Color
	switch parts[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return nil, White, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}
	return board, toMove, nil
}
