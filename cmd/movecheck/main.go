// movecheck compares the pseudo-legal moves of a position against
// dragontoothmg's legal moves and prints the differences.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/benbeisheim/consolechess/internal/model"
)

func main() {
	fen := flag.String("fen", model.StartFEN, "FEN string (defaults to initial position)")
	verbose := flag.Bool("v", false, "print both move lists")
	flag.Parse()

	game, err := model.NewGameFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	ours := map[string]bool{}
	for _, m := range game.AvailableMoves() {
		ours[m.UCI()] = true
	}
	board := dragontoothmg.ParseFen(game.FEN())
	theirs := map[string]bool{}
	for _, m := range board.GenerateLegalMoves() {
		theirs[m.String()] = true
	}

	onlyOurs := diff(ours, theirs)
	onlyTheirs := diff(theirs, ours)
	if *verbose {
		fmt.Printf("pseudo-legal (%d): %v\n", len(ours), keys(ours))
		fmt.Printf("legal (%d): %v\n", len(theirs), keys(theirs))
	}
	// Pseudo-legal moves that leave the king in check show up in onlyOurs;
	// that is expected. Anything in onlyTheirs is a generator bug.
	fmt.Printf("only pseudo-legal: %v\n", onlyOurs)
	fmt.Printf("missing: %v\n", onlyTheirs)
	if len(onlyTheirs) > 0 {
		os.Exit(1)
	}
}

func diff(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
