package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell coordinates")
	ErrGameNotFound = errors.New("game not found")
	ErrInputClosed  = errors.New("input closed before the game finished")

	ErrInvalidGameState = errors.New("invalid game state")
)
