package model

// Square is one board cell. It owns its piece by value.
type Square struct {
	Position Position `json:"position"`
	piece    Piece
}

// SetPiece replaces the occupant. NoPiece empties the square.
func (s *Square) SetPiece(p Piece) bool {
	s.piece = p
	return true
}

func (s *Square) Piece() (Piece, bool) {
	return s.piece, !s.piece.IsNone()
}

func (s *Square) IsEmpty() bool {
	return s.piece.IsNone()
}

// Glyph returns the occupant's glyph, or '.' when empty.
func (s *Square) Glyph() rune {
	if s.piece.IsNone() {
		return '.'
	}
	return s.piece.Glyph()
}
