package base128

import "github.com/pkg/errors"

var (
	// ErrInvalidSymbol is returned when the encoded text contains a character outside of the alphabet
	// or when the padding is malformed.
	ErrInvalidSymbol = errors.New("invalid base128 symbol")

	// ErrBlockOverflow is returned when a decoded block does not fit into the bytes it stands for. This
	// only happens with corrupted or non-conformant encoded text.
	ErrBlockOverflow = errors.New("base128 block overflow")
)
