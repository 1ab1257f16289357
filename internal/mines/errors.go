package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrAlreadyRevealed      = errors.New("cell already revealed")
	ErrGameOver             = errors.New("game is over")
)
