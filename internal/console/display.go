package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/consolechess/internal/model"
)

const (
	ansiWhitePiece = "\u001b[30m\u001b[47m"
	ansiReset      = "\u001b[0m"
)

// Render draws the board with rank 8 on top. With color enabled White
// pieces are drawn inverted, otherwise Black pieces are lower-case.
func Render(w io.Writer, board *model.Board, toMove model.Color, color bool) {
	fmt.Fprintf(w, "%s to move.\n", strings.ToUpper(toMove.String()))

	squares := board.Squares()
	frame := " " + strings.Repeat("-", model.Size)
	fmt.Fprintln(w, frame)
	for y := model.Size - 1; y >= 0; y-- {
		var sb strings.Builder
		sb.WriteByte('|')
		for x := 0; x < model.Size; x++ {
			sq := squares[x][y]
			piece, ok := sq.Piece()
			switch {
			case !ok:
				sb.WriteRune(sq.Glyph())
			case color && piece.Color == model.White:
				sb.WriteString(ansiWhitePiece)
				sb.WriteRune(sq.Glyph())
				sb.WriteString(ansiReset)
			case color:
				sb.WriteRune(sq.Glyph())
			default:
				sb.WriteRune(piece.FENGlyph())
			}
		}
		fmt.Fprintf(w, "%s|%d\n", sb.String(), y+1)
	}
	fmt.Fprintln(w, frame)

	files := make([]byte, model.Size)
	for x := range files {
		files[x] = byte('a' + x)
	}
	fmt.Fprintf(w, " %s\n", files)
}
