// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on height-map grid graphs.
//
// Dijkstra computes the minimum-effort path from a single source cell to all
// other reachable cells of a gridgraph.Graph. Every node is placed in an
// indexed min-heap up front; when a cheaper route to a node is found its key is
// lowered in place (decrease-key) instead of pushing a duplicate entry.
//
// Options:
//
//	– Source / SourceCell: starting node (default: id 0, the top-left cell).
//	– WithStepCost:        flat cost C_cell charged per move.
//	– WithStepCharge:      where C_cell is charged (per edge, or once at the source).
//	– WithBaseline:        initial effort of the source.
//	– WithMaxEffort:       stop expanding nodes whose effort exceeds this cap.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are impassable.
//	– WithOnFinalize:      hook called as each node is extracted.
//	– WithVerify:          check heap invariants after every extraction.
//
// Errors (sentinel):
//
//	– ErrNilGraph              if the provided graph pointer is nil.
//	– ErrSourceOutOfRange      if the source is not a node of the graph.
//	– ErrDestinationOutOfRange if PathTo is asked for a node outside the graph.
//	– ErrUnreachable           if PathTo's destination was never reached.
//	– ErrCorruptHeap           if WithVerify detects a broken heap invariant.
//	– ErrInfiniteBaseline      if the source would start at gridgraph.Infinity.
//	– ErrBadInfThreshold       (panic) if Run applies WithInfEdgeThreshold(0).
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source id or cell is not in the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source not in graph")

	// ErrDestinationOutOfRange indicates that a path was requested to a node outside the graph.
	ErrDestinationOutOfRange = errors.New("dijkstra: destination not in graph")

	// ErrUnreachable indicates that the destination has no finite-effort path from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrInfiniteBaseline indicates that the source's starting effort
	// (baseline, plus StepCost under ChargeOnce) saturates to Infinity.
	ErrInfiniteBaseline = errors.New("dijkstra: source effort is infinite")

	// ErrCorruptHeap indicates that the frontier heap violated its order or index invariant.
	ErrCorruptHeap = errors.New("dijkstra: frontier heap corrupted")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// StepCharge selects where the flat per-step cost C_cell is charged.
//
// ChargePerEdge – C_cell is added on every edge traversed, during relaxation.
// ChargeOnce    – C_cell is added once to the source's starting effort.
type StepCharge int

const (
	// ChargePerEdge adds StepCost to every relaxation: candidate = effort(u) + w(u,v) + StepCost.
	ChargePerEdge StepCharge = iota

	// ChargeOnce folds StepCost into the source's effort; edges cost only their weight.
	ChargeOnce
)

// String returns "edge" or "once".
func (c StepCharge) String() string {
	switch c {
	case ChargePerEdge:
		return "edge"
	case ChargeOnce:
		return "once"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node id (row-major). Default 0.
// StepCost         – C_cell, the flat cost of one move. Default 0.
// Charge           – where StepCost is charged. Default ChargePerEdge.
// Baseline         – effort assigned to the source before any step. Default 0.
// MaxEffort        – nodes with effort above this are not expanded. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Infinity.
// OnFinalize       – optional hook invoked as each node leaves the heap.
// Verify           – when true, heap invariants are checked after each extraction.
type Options struct {
	Source           int
	StepCost         gridgraph.Effort
	Charge           StepCharge
	Baseline         gridgraph.Effort
	MaxEffort        gridgraph.Effort
	InfEdgeThreshold gridgraph.Effort
	OnFinalize       func(id int, effort gridgraph.Effort)
	Verify           bool

	sourceCell *gridgraph.Cell // set by SourceCell, resolved against the graph in Run
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node by row-major id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.sourceCell = nil
	}
}

// SourceCell sets the starting node by grid position.
// Out-of-bounds cells are reported by Run as ErrSourceOutOfRange.
func SourceCell(row, col int) Option {
	return func(o *Options) {
		o.sourceCell = &gridgraph.Cell{Row: row, Col: col}
	}
}

// WithStepCost sets C_cell, the flat cost of moving from one cell to a neighbour.
func WithStepCost(c gridgraph.Effort) Option {
	return func(o *Options) {
		o.StepCost = c
	}
}

// WithStepCharge selects where StepCost is charged.
func WithStepCharge(c StepCharge) Option {
	return func(o *Options) {
		o.Charge = c
	}
}

// WithBaseline sets the effort of the source before any move.
func WithBaseline(b gridgraph.Effort) Option {
	return func(o *Options) {
		o.Baseline = b
	}
}

// WithMaxEffort sets a cap on explored effort.
// Nodes whose shortest effort would exceed max are left unreached.
func WithMaxEffort(max gridgraph.Effort) Option {
	return func(o *Options) {
		o.MaxEffort = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable. Run panics when it applies a zero threshold.
func WithInfEdgeThreshold(threshold gridgraph.Effort) Option {
	return func(o *Options) {
		if threshold == 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnFinalize registers fn to be called with each node id and its final
// effort as the node is extracted from the frontier. Efforts arrive in
// non-decreasing order.
func WithOnFinalize(fn func(id int, effort gridgraph.Effort)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// WithVerify enables an O(V) heap invariant check after every extraction.
// Intended for tests and debugging; it makes Run O(V²).
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:           0 (top-left cell).
//   - StepCost:         0.
//   - Charge:           ChargePerEdge.
//   - Baseline:         0.
//   - MaxEffort:        gridgraph.Infinity (no cap).
//   - InfEdgeThreshold: gridgraph.Infinity (only saturated edges are impassable).
func DefaultOptions() Options {
	return Options{
		Source:           0,
		Charge:           ChargePerEdge,
		MaxEffort:        gridgraph.Infinity,
		InfEdgeThreshold: gridgraph.Infinity,
	}
}

// startEffort is the source's effort before any move.
func (o Options) startEffort() gridgraph.Effort {
	if o.Charge == ChargeOnce {
		return gridgraph.SaturatingAdd(o.Baseline, o.StepCost)
	}
	return o.Baseline
}

// Path is the cheapest route found to a destination, source first.
// Cost is the destination's final effort.
type Path struct {
	Cells []gridgraph.Cell
	Cost  gridgraph.Effort
}

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p.Cells) }
