package mines

import "errors"

var (
	ErrInvalidDimensions = errors.New("rows and columns must both be positive")
	ErrInvalidMineCount  = errors.New("mine count must be at least 1 and less than the cell count")
	ErrOutOfBounds       = errors.New("position is outside the board")
)
