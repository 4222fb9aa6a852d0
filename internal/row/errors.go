package row

import "errors"

var (
	// ErrInvalidUTF8 is returned by Parse when the input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("row: invalid UTF-8")

	// ErrInvalidDirection is returned by ParseDirection for unknown names.
	ErrInvalidDirection = errors.New("row: invalid search direction")
)
