package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDimension indicates the number of rows or columns is outside the configured bounds.
	ErrDimension = errors.New("gridgraph: grid dimension out of range")
	// ErrNegativeCost indicates a negative height-difference cost coefficient.
	ErrNegativeCost = errors.New("gridgraph: height cost must be non-negative")
	// ErrCoordinate indicates a node id or (row,col) pair outside the grid.
	ErrCoordinate = errors.New("gridgraph: coordinate out of range")
	// ErrBadBounds indicates invalid dimension bounds passed to WithDimensionBounds.
	ErrBadBounds = errors.New("gridgraph: dimension bounds must satisfy 1 <= min <= max")
)
