package board

import "errors"

var (
	ErrInvalidSquare = errors.New("invalid square")
)
