package model

import (
	"fmt"
	"unicode"
)

// Move is a from -> to transition on a board. Promotion is NoPiece unless a
// pawn promotes; Captured is filled in when the move is applied.
type Move struct {
	From      Position `json:"from"`
	To        Position `json:"to"`
	Promotion Piece    `json:"promotion"`
	Captured  Piece    `json:"captured"`
}

// Equal ignores Captured.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion.Equal(other.Promotion)
}

func (m Move) IsPromotion() bool {
	return !m.Promotion.IsNone()
}

// UCI renders the move as "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.Notation() + m.To.Notation()
	if m.IsPromotion() {
		s += string(unicode.ToLower(m.Promotion.Glyph()))
	}
	return s
}

func (m Move) String() string {
	if m.Captured.IsNone() {
		return m.UCI()
	}
	return fmt.Sprintf("%s x%c", m.UCI(), m.Captured.FENGlyph())
}
