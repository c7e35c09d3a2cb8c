package model

var (
	kingDirs   = []Position{{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	rookDirs   = []Position{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	bishopDirs = []Position{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1}}
	knightDirs = []Position{{X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: -2}, {X: -1, Y: 2}, {X: 1, Y: -2}, {X: 1, Y: 2}, {X: 2, Y: -1}, {X: 2, Y: 1}}
)

// jumpMove checks the single square at from+offset.
func (p Piece) jumpMove(from Position, board *Board, offset Position, canCapture, mustCapture bool) (Move, bool) {
	to := from.Add(offset)
	if !board.IsInBounds(to) {
		return Move{}, false
	}
	target, occupied := board.Square(to).Piece()
	if !occupied {
		if mustCapture {
			return Move{}, false
		}
		return Move{From: from, To: to}, true
	}
	if target.Color != p.Color && canCapture {
		return Move{From: from, To: to}, true
	}
	return Move{}, false
}

// slideMoves walks from+offset, from+2*offset, ... until blocked or off the board.
func (p Piece) slideMoves(from Position, board *Board, offset Position, moves []Move) []Move {
	for to := from.Add(offset); board.IsInBounds(to); to = to.Add(offset) {
		target, occupied := board.Square(to).Piece()
		if !occupied {
			moves = append(moves, Move{From: from, To: to})
			continue
		}
		if target.Color != p.Color {
			moves = append(moves, Move{From: from, To: to})
		}
		break
	}
	return moves
}

func (p Piece) jumpMoves(from Position, board *Board, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		if m, ok := p.jumpMove(from, board, dir, true, false); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (p Piece) slideAll(from Position, board *Board, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		moves = p.slideMoves(from, board, dir, moves)
	}
	return moves
}

func (p Piece) kingMoves(from Position, board *Board) []Move {
	return p.jumpMoves(from, board, kingDirs)
}

func (p Piece) queenMoves(from Position, board *Board) []Move {
	return p.slideAll(from, board, kingDirs)
}

func (p Piece) rookMoves(from Position, board *Board) []Move {
	return p.slideAll(from, board, rookDirs)
}

func (p Piece) bishopMoves(from Position, board *Board) []Move {
	return p.slideAll(from, board, bishopDirs)
}

func (p Piece) knightMoves(from Position, board *Board) []Move {
	return p.jumpMoves(from, board, knightDirs)
}

// pawnDir is the forward rank step: +1 for White, -1 for Black.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// pawnStartRank and pawnLastRank derive from the forward sign so both
// colors share one code path.
func pawnStartRank(dir int) int {
	return (Size - 1 - dir*(Size-3)) / 2
}

func pawnLastRank(dir int) int {
	return (Size - 1 + dir*(Size-1)) / 2
}

func (p Piece) pawnMoves(from Position, board *Board) []Move {
	pawnMoves := []Move{}
	dir := pawnDir(p.Color)
	lastRank := pawnLastRank(dir)

	// captures
	for _, dx := range []int{-1, 1} {
		m, ok := p.jumpMove(from, board, Position{X: dx, Y: dir}, true, true)
		if !ok {
			continue
		}
		if m.To.Y == lastRank {
			pawnMoves = appendPromotions(pawnMoves, m, p.Color)
			continue
		}
		pawnMoves = append(pawnMoves, m)
	}

	push, ok := p.jumpMove(from, board, Position{X: 0, Y: dir}, false, false)
	if !ok {
		return pawnMoves
	}
	if push.To.Y == lastRank {
		return appendPromotions(pawnMoves, push, p.Color)
	}
	if from.Y == pawnStartRank(dir) {
		if double, ok := p.jumpMove(from, board, Position{X: 0, Y: 2 * dir}, false, false); ok {
			pawnMoves = append(pawnMoves, double)
		}
	}
	return append(pawnMoves, push)
}

func appendPromotions(moves []Move, m Move, c Color) []Move {
	for _, t := range PromotionTypes {
		moves = append(moves, Move{From: m.From, To: m.To, Promotion: NewPiece(t, c)})
	}
	return moves
}
