package huffman

import (
	"errors"
)

// ErrInvalidSymbol is returned when an input symbol is negative or beyond
// MaxSymbol.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrNegativeFrequency is returned when an input symbol has a frequency
// below zero.
var ErrNegativeFrequency = errors.New("negative frequency")

// ErrDuplicateSymbol is returned when the same symbol is listed more than
// once.
var ErrDuplicateSymbol = errors.New("duplicate symbol")
