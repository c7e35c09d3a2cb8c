package console

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/consolechess/internal/model"
)

// ParseMove turns "<from><to>[QRBN]" into a candidate move for the side to
// move. It only checks shape and bounds; legality is up to Game.TryMakeMove.
func ParseMove(board *model.Board, input string, toMove model.Color) (model.Move, error) {
	input = strings.TrimSpace(input)
	if len(input) < 4 || len(input) > 5 {
		return model.Move{}, fmt.Errorf("%w: %q, write [a1-h8][a1-h8] plus Q/R/B/N when promoting, e.g. e2e4", ErrInvalidMoveString, input)
	}

	from := model.ParsePosition(input[0:2])
	to := model.ParsePosition(input[2:4])
	if !board.IsInBounds(from) || !board.IsInBounds(to) {
		return model.Move{}, fmt.Errorf("%w: from %s, to %s", ErrOutOfBounds, input[0:2], input[2:4])
	}

	move := model.Move{From: from, To: to}
	if len(input) == 5 {
		pt, ok := promotionType(input[4])
		if !ok {
			return model.Move{}, fmt.Errorf("%w: %q", ErrInvalidPromotion, input[4])
		}
		move.Promotion = model.NewPiece(pt, toMove)
	}
	return move, nil
}

func promotionType(c byte) (model.PieceType, bool) {
	switch c {
	case 'Q', 'q':
		return model.Queen, true
	case 'R', 'r':
		return model.Rook, true
	case 'B', 'b':
		return model.Bishop, true
	case 'N', 'n':
		return model.Knight, true
	}
	return model.NoPieceType, false
}
