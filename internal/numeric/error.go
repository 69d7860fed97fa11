package numeric

import "errors"

var (
	// ErrInvalidFormat is an error that occurs when a string contains no
	// non-zero digit or cannot be converted into a base-10 integer.
	ErrInvalidFormat = errors.New("invalid numeric format")

	// ErrOutOfRange is an error that occurs when a string holds a base-10
	// integer that does not fit into an int.
	ErrOutOfRange = errors.New("numeric value out of range")
)
