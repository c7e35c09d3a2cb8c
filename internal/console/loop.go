package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/consolechess/internal/model"
	"github.com/benbeisheim/consolechess/internal/record"
)

// Display is the text front end of a game: it prints the board, reads a
// move string per line and feeds it to the game.
type Display struct {
	game     *model.Game
	recorder *record.Recorder
	out      io.Writer
	color    bool
}

func NewDisplay(game *model.Game, out io.Writer, color bool) *Display {
	return &Display{
		game:     game,
		recorder: record.NewFromFEN(game.FEN()),
		out:      out,
		color:    color,
	}
}

func (d *Display) Print() {
	Render(d.out, d.game.Board(), d.game.WhoIsOnTurn(), d.color)
}

// Loop runs until in is exhausted or the player types "quit".
func (d *Display) Loop(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	d.Print()
	for {
		fmt.Fprintln(d.out, "What move do you want to play?")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "new":
			d.game.NewGame()
			d.recorder = record.NewFromFEN(d.game.FEN())
			d.Print()
			continue
		case "history":
			d.printHistory()
			continue
		case "moves":
			d.printMoves()
			continue
		case "fen":
			fmt.Fprintln(d.out, d.game.FEN())
			continue
		}

		if err := d.play(line); err != nil {
			fmt.Fprintln(d.out, err)
			continue
		}
		d.Print()
	}
}

func (d *Display) play(input string) error {
	move, err := ParseMove(d.game.Board(), input, d.game.WhoIsOnTurn())
	if err != nil {
		return err
	}
	if !d.game.TryMakeMove(&move) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move.UCI())
	}
	d.recorder.Push(move)
	return nil
}

func (d *Display) printHistory() {
	lines := d.recorder.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(d.out, "No moves yet.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(d.out, line)
	}
}

func (d *Display) printMoves() {
	moves := d.game.AvailableMoves()
	ucis := make([]string, len(moves))
	for i, m := range moves {
		ucis[i] = m.UCI()
	}
	fmt.Fprintf(d.out, "%d moves: %s\n", len(moves), strings.Join(ucis, " "))
}
