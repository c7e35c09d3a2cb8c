package model

import "fmt"

// Position is a board coordinate: X is the file (0 = a), Y is the rank (0 = 1).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// ParsePosition reads an algebraic label such as "e2". Malformed input
// produces a position outside the board; callers check it with IsInBounds.
func ParsePosition(label string) Position {
	if len(label) != 2 {
		return Position{X: -1, Y: -1}
	}
	return Position{X: int(label[0]) - 'a', Y: int(label[1]) - '1'}
}

// Add applies an offset component-wise.
func (p Position) Add(offset Position) Position {
	return Position{X: p.X + offset.X, Y: p.Y + offset.Y}
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.X+'a')
}

// Notation returns the algebraic label, e.g. "e2".
func (p Position) Notation() string {
	return fmt.Sprintf("%s%d", p.getFileNotation(), p.Y+1)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d) %s", p.X, p.Y, p.Notation())
}
