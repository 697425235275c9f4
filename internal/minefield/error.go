package minefield

import "errors"

var ErrOutOfBounds = errors.New("position out of bounds")
