package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move notation")
	ErrUnknownPlayer = errors.New("unknown player mark")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrNoMoves       = errors.New("no moves to play")
	ErrInvalidSpan   = errors.New("span must be positive")
)
