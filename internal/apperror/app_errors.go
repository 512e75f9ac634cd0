package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrInvalidPieceCount  = errors.New("invalid number of pieces")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrOutOfBounds        = errors.New("coordinate is out of bounds")
	ErrEmptyReserve       = errors.New("no pieces in reserve")
	ErrMatchNotFound      = errors.New("match not found")
)
