package calc

import "errors"

var (
	// ErrInvalidInput marks input the collecting layer should have rejected.
	ErrInvalidInput = errors.New("calc: invalid input")

	ErrNoRandSource = errors.New("calc: evaluator has no random source")
)
