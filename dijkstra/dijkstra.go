package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/minheap"
)

// Run computes the minimum effort from the source (Options.Source) to every
// node of g, storing it in each node's Effort and the predecessor in Parent.
// The search state of g is reset first, so Run may be called repeatedly;
// a Result stays valid until the next Run on the same graph.
//
// Relaxation of u→v:
//
//	candidate = effort(u) ⊕ weight(u,v) ⊕ StepCost   (ChargePerEdge)
//	candidate = effort(u) ⊕ weight(u,v)              (ChargeOnce)
//
// where ⊕ saturates at gridgraph.Infinity. Unreachable nodes keep Infinity.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. the source must be a node of g (ErrSourceOutOfRange).
//  3. the source's starting effort must be finite (ErrInfiniteBaseline).
//
// The source is always finalized, even when its baseline exceeds MaxEffort.
//
// Edge weights are unsigned, so the non-negativity Dijkstra needs holds by construction.
//
// Complexity:
//
//   - Time:  O((V + E) log V); every node is inserted and extracted once,
//     every edge triggers at most one decrease-key.
//   - Space: O(V) for the heap and its position index.
func Run(g *gridgraph.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Resolve and validate the source
	src := cfg.Source
	if c := cfg.sourceCell; c != nil {
		if !g.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: cell (%d,%d) in %d×%d grid",
				ErrSourceOutOfRange, c.Row, c.Col, g.Rows(), g.Cols())
		}
		src = g.Index(c.Row, c.Col)
	}
	if !g.HasID(src) {
		return nil, fmt.Errorf("%w: id %d", ErrSourceOutOfRange, src)
	}
	cfg.Source = src

	// 4) The source must start finite.
	if start := cfg.startEffort(); start == gridgraph.Infinity {
		return nil, fmt.Errorf("%w: baseline %d, step cost %d (%s)",
			ErrInfiniteBaseline, cfg.Baseline, cfg.StepCost, cfg.Charge)
	}

	// 5) Run
	r := &runner{
		g:       g,
		options: cfg,
		final:   make([]bool, g.Len()),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{g: g, source: src, final: r.final, finalized: r.finalized}, nil
}

// efforts exposes node efforts as heap keys.
type efforts struct {
	g *gridgraph.Graph
}

func (e efforts) Key(id int) uint64       { return e.g.Node(id).Effort }
func (e efforts) SetKey(id int, k uint64) { e.g.Node(id).Effort = k }

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *gridgraph.Graph // Graph whose nodes carry effort/parent
	options   Options          // Resolved configuration
	heap      *minheap.Heap    // Frontier, keyed by node effort
	step      gridgraph.Effort // Cost added on each relaxation
	final     []bool           // final[id] once id has left the heap
	finalized int              // Number of extracted nodes
}

// init resets every node, seeds the source, and inserts all nodes into the heap.
func (r *runner) init() {
	cfg := r.options

	// 1) effort = +∞, parent = none for all nodes.
	r.g.Reset()

	// 2) Source effort is the baseline, plus C_cell when it is charged once.
	r.step = cfg.StepCost
	if cfg.Charge == ChargeOnce {
		r.step = 0
	}
	r.g.Node(cfg.Source).Effort = cfg.startEffort()

	// 3) Every node enters the frontier; insertion order does not matter.
	r.heap = minheap.New(efforts{g: r.g}, r.g.Len())
	for id := 0; id < r.g.Len(); id++ {
		r.heap.Insert(id)
	}
}

// process repeatedly extracts the minimum-effort node and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all nodes finalized).
//   - The minimum effort in the heap exceeds MaxEffort (the source excepted).
func (r *runner) process() error {
	cfg := r.options
	for !r.heap.IsEmpty() {
		// 1) Pop the smallest-effort node.
		u, err := r.heap.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptHeap, err)
		}
		if cfg.Verify {
			if err := r.heap.Verify(); err != nil {
				return fmt.Errorf("%w: %v", ErrCorruptHeap, err)
			}
		}
		d := r.g.Node(u).Effort

		// 2) Beyond the cap nothing left in the heap can be finalized.
		if d > cfg.MaxEffort && u != cfg.Source {
			break
		}

		// 3) u is final.
		r.final[u] = true
		r.finalized++
		if cfg.OnFinalize != nil {
			cfg.OnFinalize(u, d)
		}

		// 4) Only unreachable nodes remain once the minimum is +∞.
		if d == gridgraph.Infinity {
			continue
		}
		r.relax(u, d)
	}

	return nil
}

// relax tries to improve every neighbour of u through u.
func (r *runner) relax(u int, du gridgraph.Effort) {
	cfg := r.options
	for _, e := range r.g.Neighbors(u) {
		// Impassable edge.
		if e.Weight >= cfg.InfEdgeThreshold {
			continue
		}
		// Finalized nodes are never relaxed again.
		if r.final[e.To] {
			continue
		}

		cand := gridgraph.SaturatingAdd(gridgraph.SaturatingAdd(du, e.Weight), r.step)
		if cand > cfg.MaxEffort {
			continue
		}
		v := r.g.Node(e.To)
		if cand >= v.Effort {
			continue
		}

		r.heap.DecreaseKey(e.To, cand)
		v.Parent = u
	}
}

// Result gives access to the efforts and paths computed by Run.
type Result struct {
	g         *gridgraph.Graph
	source    int
	final     []bool
	finalized int
}

// Source returns the id the search started from.
func (res *Result) Source() int { return res.source }

// Finalized returns how many nodes were extracted from the frontier.
func (res *Result) Finalized() int { return res.finalized }

// Effort returns the final effort of node id, gridgraph.Infinity if unreached.
// Panics with gridgraph.ErrCoordinate if id is out of range.
func (res *Result) Effort(id int) gridgraph.Effort {
	return res.g.Node(id).Effort
}

// Reached reports whether id has a finite, final effort.
func (res *Result) Reached(id int) bool {
	return res.g.HasID(id) && res.final[id] && res.g.Node(id).Effort != gridgraph.Infinity
}

// PathTo rebuilds the cheapest path from the source to dst by following
// parent links back to the source and reversing them.
// It returns ErrDestinationOutOfRange for an id outside the graph and
// ErrUnreachable (with an empty Path) when dst was never reached.
// PathTo does not modify the graph; repeated calls return equal paths.
func (res *Result) PathTo(dst int) (Path, error) {
	if !res.g.HasID(dst) {
		return Path{}, fmt.Errorf("%w: id %d", ErrDestinationOutOfRange, dst)
	}
	if !res.Reached(dst) {
		r, c := res.g.Coordinate(dst)
		return Path{}, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, r, c)
	}

	var ids []int
	for at := dst; at != gridgraph.NoParent; at = res.g.Node(at).Parent {
		ids = append(ids, at)
	}
	slices.Reverse(ids)

	cells := make([]gridgraph.Cell, len(ids))
	for i, id := range ids {
		cells[i] = res.g.Cell(id)
	}

	return Path{Cells: cells, Cost: res.g.Node(dst).Effort}, nil
}

// PathToCell is PathTo addressed by grid position.
func (res *Result) PathToCell(row, col int) (Path, error) {
	if !res.g.InBounds(row, col) {
		return Path{}, fmt.Errorf("%w: cell (%d,%d)", ErrDestinationOutOfRange, row, col)
	}
	return res.PathTo(res.g.Index(row, col))
}
