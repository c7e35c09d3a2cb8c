package service

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameFull     = errors.New("game is full")
	ErrNotInGame    = errors.New("player not in game")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("invalid move, not legal")

	ErrConnectionExists = errors.New("connection already exists")
)
