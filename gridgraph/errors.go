package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a position outside the grid was looked up.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("gridgraph: unknown direction")
)
