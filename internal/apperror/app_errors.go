package apperror

import "errors"

var (
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
)
