package model

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	board, _, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return board
}

func movesFrom(board *Board, label string) []Move {
	pos := ParsePosition(label)
	piece, ok := board.PieceAt(pos)
	if !ok {
		return nil
	}
	return piece.AvailableMoves(pos, board)
}

func uciSet(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	sort.Strings(out)
	return out
}

func TestInitialPositionMoveCounts(t *testing.T) {
	board := NewBoard()
	board.InitDefault()

	white := board.AvailableMovesFor(White)
	black := board.AvailableMovesFor(Black)
	if len(white) != 20 {
		t.Fatalf("white moves = %d, want 20: %v", len(white), uciSet(white))
	}
	if len(black) != 20 {
		t.Fatalf("black moves = %d, want 20: %v", len(black), uciSet(black))
	}

	mirror := func(p Position) Position { return Position{X: p.X, Y: Size - 1 - p.Y} }
	for _, wm := range white {
		found := false
		for _, bm := range black {
			if bm.From == mirror(wm.From) && bm.To == mirror(wm.To) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("white move %s has no mirrored black move", wm.UCI())
		}
	}
}

func TestRookOnEmptyBoardAlwaysHas14Moves(t *testing.T) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			board := NewBoard()
			pos := Position{X: x, Y: y}
			board.Square(pos).SetPiece(NewPiece(Rook, White))
			if n := len(board.AvailableMovesFor(White)); n != 14 {
				t.Fatalf("rook on %s: %d moves, want 14", pos.Notation(), n)
			}
		}
	}
}

func TestBishopInCornerHas7Moves(t *testing.T) {
	for _, label := range []string{"a1", "h1", "a8", "h8"} {
		board := NewBoard()
		board.Square(ParsePosition(label)).SetPiece(NewPiece(Bishop, Black))
		if n := len(movesFrom(board, label)); n != 7 {
			t.Errorf("bishop on %s: %d moves, want 7", label, n)
		}
	}
}

func TestSlideStopsAtBlockers(t *testing.T) {
	// Rook d4, friendly pawn d6, enemy knight f4.
	board := mustBoard(t, "8/8/3P4/8/3R1n2/8/8/8 w - - 0 1")
	got := uciSet(movesFrom(board, "d4"))
	want := []string{"d4a4", "d4b4", "d4c4", "d4d1", "d4d2", "d4d3", "d4d5", "d4e4", "d4f4"}
	if len(got) != len(want) {
		t.Fatalf("rook moves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rook moves = %v, want %v", got, want)
		}
	}
}

func TestQueenMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		moves int
	}{
		{"empty board center", "8/8/8/8/3Q4/8/8/8 w - - 0 1", "d4", 27},
		{"empty board corner", "8/8/8/8/8/8/8/7q b - - 0 1", "h1", 21},
		// friendly pawns d5 and e5, enemy rook b2, enemy knight f4
		{"blocked and capturing", "8/8/8/3PP3/3Q1n2/8/1r6/8 w - - 0 1", "d4", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if n := len(movesFrom(board, tt.from)); n != tt.moves {
				t.Fatalf("%d moves, want %d: %v", n, tt.moves, uciSet(movesFrom(board, tt.from)))
			}
		})
	}

	board := mustBoard(t, "8/8/8/3PP3/3Q1n2/8/1r6/8 w - - 0 1")
	captures := map[string]bool{}
	for _, m := range movesFrom(board, "d4") {
		if m.To == ParsePosition("e5") || m.To == ParsePosition("d5") {
			t.Fatalf("queen moved onto a friendly piece: %s", m.UCI())
		}
		if m.To == ParsePosition("a1") || m.To == ParsePosition("g4") {
			t.Fatalf("queen slid past an enemy piece: %s", m.UCI())
		}
		if p, ok := board.PieceAt(m.To); ok {
			captures[m.To.Notation()] = p.Color == Black
		}
	}
	if len(captures) != 2 || !captures["b2"] || !captures["f4"] {
		t.Fatalf("captures = %v, want b2 and f4", captures)
	}
}

func TestKingAndKnightJumps(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		moves int
	}{
		{"king center", "8/8/8/8/3K4/8/8/8 w - - 0 1", "d4", 8},
		{"king corner", "8/8/8/8/8/8/8/K7 w - - 0 1", "a1", 3},
		{"king friendly and enemy neighbours", "8/8/8/8/8/8/Pp6/K7 w - - 0 1", "a1", 2},
		{"knight center", "8/8/8/8/3N4/8/8/8 w - - 0 1", "d4", 8},
		{"knight corner", "8/8/8/8/8/8/8/N7 w - - 0 1", "a1", 2},
		{"knight friendly target", "8/8/8/8/8/1P6/8/N7 w - - 0 1", "a1", 1},
		{"knight enemy target", "8/8/8/8/8/1p6/8/N7 w - - 0 1", "a1", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if n := len(movesFrom(board, tt.from)); n != tt.moves {
				t.Fatalf("%d moves, want %d: %v", n, tt.moves, uciSet(movesFrom(board, tt.from)))
			}
		})
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"white start rank", "8/8/8/8/8/8/4P3/8 w - - 0 1", "e2", []string{"e2e3", "e2e4"}},
		{"black start rank", "8/4p3/8/8/8/8/8/8 b - - 0 1", "e7", []string{"e7e5", "e7e6"}},
		{"white off start rank", "8/8/8/8/8/4P3/8/8 w - - 0 1", "e3", []string{"e3e4"}},
		{"double push blocked", "8/8/8/8/4n3/8/4P3/8 w - - 0 1", "e2", []string{"e2e3"}},
		{"single push blocked", "8/8/8/8/8/4n3/4P3/8 w - - 0 1", "e2", nil},
		{"captures", "8/8/8/8/8/3p1p2/4P3/8 w - - 0 1", "e2", []string{"e2d3", "e2e3", "e2e4", "e2f3"}},
		{"no capture of friendly", "8/8/8/8/8/3P1P2/4P3/8 w - - 0 1", "e2", []string{"e2e3", "e2e4"}},
		{"edge pawn", "8/8/8/8/8/8/P7/8 w - - 0 1", "a2", []string{"a2a3", "a2a4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := uciSet(movesFrom(board, tt.from))
			if len(got) != len(tt.want) {
				t.Fatalf("moves = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("moves = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestPawnPromotionReplacesPush(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		color Color
	}{
		{"white", "8/P7/8/8/8/8/8/8 w - - 0 1", "a7", White},
		{"black", "8/8/8/8/8/8/7p/8 b - - 0 1", "h2", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			moves := movesFrom(board, tt.from)
			if len(moves) != 4 {
				t.Fatalf("%d moves, want 4: %v", len(moves), uciSet(moves))
			}
			for i, m := range moves {
				if !m.IsPromotion() {
					t.Fatalf("move %s is a plain push", m.UCI())
				}
				if m.Promotion.Color != tt.color || m.Promotion.Type != PromotionTypes[i] {
					t.Fatalf("move %d promotes to %+v", i, m.Promotion)
				}
			}
		})
	}
}

func TestPawnCaptureOntoLastRankPromotes(t *testing.T) {
	board := mustBoard(t, "r7/1P6/8/8/8/8/8/8 w - - 0 1")
	moves := movesFrom(board, "b7")
	if len(moves) != 8 {
		t.Fatalf("%d moves, want 8: %v", len(moves), uciSet(moves))
	}
	for _, m := range moves {
		if !m.IsPromotion() {
			t.Fatalf("move %s onto last rank is not a promotion", m.UCI())
		}
	}

	blocked := mustBoard(t, "rn6/1P6/8/8/8/8/8/8 w - - 0 1")
	if n := len(movesFrom(blocked, "b7")); n != 4 {
		t.Fatalf("blocked pawn: %d moves, want 4", n)
	}

	// Black pawn on g2 blocked by a knight on g1, capturing the rook on h1.
	black := mustBoard(t, "8/8/8/8/8/8/6p1/6NR b - - 0 1")
	moves = movesFrom(black, "g2")
	if len(moves) != 4 {
		t.Fatalf("black capture: %d moves, want 4: %v", len(moves), uciSet(moves))
	}
	for i, m := range moves {
		if m.To != ParsePosition("h1") || m.Promotion.Color != Black || m.Promotion.Type != PromotionTypes[i] {
			t.Fatalf("move %d = %s promoting to %+v", i, m.UCI(), m.Promotion)
		}
	}
}

func TestAvailableMovesForOrder(t *testing.T) {
	board := mustBoard(t, "8/8/8/8/8/8/P7/N7 w - - 0 1")
	got := board.AvailableMovesFor(White)
	want := []string{"a1b3", "a1c2", "a2a4", "a2a3"}
	if len(got) != len(want) {
		t.Fatalf("moves = %v", got)
	}
	for i := range want {
		if got[i].UCI() != want[i] {
			t.Fatalf("move %d = %s, want %s", i, got[i].UCI(), want[i])
		}
	}
}

// Where nothing is pinned or attacked near a king, pseudo-legal and legal
// move sets coincide, so dragontoothmg serves as an oracle.
func TestMatchesDragontoothOnQuietPositions(t *testing.T) {
	game := NewGame()
	line := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	check := func() {
		t.Helper()
		ours := uciSet(game.AvailableMoves())
		dt := dragontoothmg.ParseFen(game.FEN())
		var theirs []string
		for _, m := range dt.GenerateLegalMoves() {
			theirs = append(theirs, m.String())
		}
		sort.Strings(theirs)
		if len(ours) != len(theirs) {
			t.Fatalf("fen %s: ours %v, dragontooth %v", game.FEN(), ours, theirs)
		}
		for i := range ours {
			if ours[i] != theirs[i] {
				t.Fatalf("fen %s: ours %v, dragontooth %v", game.FEN(), ours, theirs)
			}
		}
	}

	check()
	for _, uci := range line {
		m := Move{From: ParsePosition(uci[:2]), To: ParsePosition(uci[2:4])}
		if !game.TryMakeMove(&m) {
			t.Fatalf("move %s rejected", uci)
		}
		check()
	}
}
