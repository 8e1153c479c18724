// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/terrapath.
package gridgraph

import (
	"math"
)

// Effort is a cumulative, non-negative path cost. Arithmetic on efforts
// saturates at Infinity instead of wrapping.
type Effort = uint64

// Infinity is the sentinel effort of a node that has not been reached.
const Infinity Effort = math.MaxUint64

// NoParent marks a node without a predecessor on the best-known path.
const NoParent = -1

// Default dimension bounds applied by NewGraph when no WithDimensionBounds option is given.
const (
	DefaultMinDimension = 1
	DefaultMaxDimension = 250
)

// Node is one grid cell. Row, Col and Height are fixed at construction;
// Effort and Parent are search state owned by whoever runs a shortest-path
// computation over the graph (see Graph.Reset).
type Node struct {
	Row, Col int    // Position within the grid
	Height   int    // Original height value at (Row, Col)
	Effort   Effort // Best-known cost from the source, Infinity if unreached
	Parent   int    // Predecessor id on the best-known path, NoParent if none
}

// Edge is a directed connection between two neighbouring cells.
// From and To are row-major node ids. Edges are immutable once built.
type Edge struct {
	From, To int
	Weight   Effort
}

// Cell is a (row, column) grid position.
type Cell struct {
	Row, Col int
}

// Options holds the tunable parameters of NewGraph.
type Options struct {
	// HeightCost scales the squared height difference of every edge.
	HeightCost int
	// MinDimension and MaxDimension bound both the row and the column count.
	MinDimension int
	MaxDimension int
}

// Option is a functional option for NewGraph.
type Option func(*Options)

// WithHeightCost sets the height-difference cost coefficient (C_height).
// Negative values are rejected by NewGraph with ErrNegativeCost.
func WithHeightCost(c int) Option {
	return func(o *Options) {
		o.HeightCost = c
	}
}

// WithDimensionBounds restricts rows and columns to [min, max].
// NewGraph panics when it applies bounds with min < 1 or max < min.
func WithDimensionBounds(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			panic(ErrBadBounds.Error())
		}
		o.MinDimension = min
		o.MaxDimension = max
	}
}

// DefaultOptions returns Options with HeightCost=1 and
// bounds [DefaultMinDimension, DefaultMaxDimension].
func DefaultOptions() Options {
	return Options{
		HeightCost:   1,
		MinDimension: DefaultMinDimension,
		MaxDimension: DefaultMaxDimension,
	}
}

// Graph is a directed, weighted view of a height map. Its topology is fixed
// once built: rows*cols nodes addressed by row-major id and, for each node,
// the edges to its in-bounds orthogonal neighbours.
type Graph struct {
	rows, cols int
	heightCost int
	nodes      []Node
	adj        [][]Edge
}
