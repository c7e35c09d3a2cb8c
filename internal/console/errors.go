package console

import "errors"

var (
	ErrInvalidMoveString = errors.New("invalid move string")
	ErrOutOfBounds       = errors.New("position is out of bounds")
	ErrInvalidPromotion  = errors.New("promotion invalid")
	ErrIllegalMove       = errors.New("that move is not valid")
)
