package apperror

import "errors"

var (
	// ErrInvalidMove is wrapped by every rejected move; the game is left unchanged.
	ErrInvalidMove = errors.New("invalid move")

	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrGameNotFound     = errors.New("game not found")
)
