package magic

import "errors"

var (
	ErrExhausted   = errors.New("no magic within popcount ceiling")
	ErrCollision   = errors.New("attack collision")
	ErrTooManyOnes = errors.New("popcount ceiling out of range")
)
