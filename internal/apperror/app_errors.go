package apperror

import "errors"

var (
	ErrSessionFinished  = errors.New("session is already finished")
	ErrEmptyInput       = errors.New("empty input")
	ErrMalformedMove    = errors.New("move must be two numbers: x y")
	ErrInvalidDimension = errors.New("board dimension must be a positive integer")
	ErrOutOfBounds      = errors.New("cell is outside the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
)
