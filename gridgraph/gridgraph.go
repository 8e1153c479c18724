package gridgraph

import (
	"fmt"
	"math/bits"
	"strings"
)

// neighborOffsets lists (dRow, dCol) moves in adjacency order: left, up, right, down.
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// NewGraph constructs a Graph from a non-empty, rectangular 2D slice of heights.
// It deep-copies the heights; later changes to the input do not affect the graph.
// Returns ErrEmptyGrid if heights has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrDimension if rows or columns fall outside the configured bounds,
// ErrNegativeCost if the height cost is negative.
// Every node starts with Effort=Infinity and Parent=NoParent.
// Algorithmic complexity: O(rows×cols) time and memory.
func NewGraph(heights [][]int, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(heights), len(heights[0])
	for _, row := range heights {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if rows < cfg.MinDimension || rows > cfg.MaxDimension ||
		cols < cfg.MinDimension || cols > cfg.MaxDimension {
		return nil, fmt.Errorf("%w: %d×%d not within [%d, %d]",
			ErrDimension, rows, cols, cfg.MinDimension, cfg.MaxDimension)
	}
	if cfg.HeightCost < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCost, cfg.HeightCost)
	}

	g := &Graph{
		rows:       rows,
		cols:       cols,
		heightCost: cfg.HeightCost,
		nodes:      make([]Node, rows*cols),
		adj:        make([][]Edge, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.nodes[g.Index(r, c)] = Node{
				Row:    r,
				Col:    c,
				Height: heights[r][c],
				Effort: Infinity,
				Parent: NoParent,
			}
		}
	}
	for id := range g.nodes {
		g.connect(id)
	}

	return g, nil
}

// connect appends an edge from id to each of its in-bounds neighbours.
func (g *Graph) connect(id int) {
	src := &g.nodes[id]
	edges := make([]Edge, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := src.Row+d[0], src.Col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		to := g.Index(r, c)
		edges = append(edges, Edge{
			From:   id,
			To:     to,
			Weight: EdgeWeight(src.Height, g.nodes[to].Height, g.heightCost),
		})
	}
	g.adj[id] = edges
}

// EdgeWeight returns (from-to)^2 * heightCost, clamped to Infinity on overflow.
// A negative heightCost is treated as zero; NewGraph rejects it before this point.
func EdgeWeight(from, to, heightCost int) Effort {
	if heightCost <= 0 {
		return 0
	}
	var diff uint64
	if from >= to {
		diff = uint64(from) - uint64(to)
	} else {
		diff = uint64(to) - uint64(from)
	}
	hi, sq := bits.Mul64(diff, diff)
	if hi != 0 {
		return Infinity
	}
	hi, w := bits.Mul64(sq, uint64(heightCost))
	if hi != 0 {
		return Infinity
	}

	return w
}

// SaturatingAdd returns a+b, or Infinity if the sum does not fit.
func SaturatingAdd(a, b Effort) Effort {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return Infinity
	}

	return sum
}

// Rows returns the number of grid rows.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Graph) Cols() int { return g.cols }

// Len returns the number of nodes, Rows()*Cols().
func (g *Graph) Len() int { return len(g.nodes) }

// HeightCost returns the coefficient the edge weights were built with.
func (g *Graph) HeightCost() int { return g.heightCost }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Graph) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row,col) to a row-major id: row*Cols + col.
// It does not check bounds; see InBounds.
func (g *Graph) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major id back to (row,col).
func (g *Graph) Coordinate(id int) (row, col int) {
	return id / g.cols, id % g.cols
}

// Cell returns the grid position of node id.
func (g *Graph) Cell(id int) Cell {
	r, c := g.Coordinate(id)
	return Cell{Row: r, Col: c}
}

// Node returns a pointer to node id so search state can be updated in place.
// Panics with ErrCoordinate if id is out of range.
func (g *Graph) Node(id int) *Node {
	g.mustID(id)
	return &g.nodes[id]
}

// NodeAt returns the node at (row,col). Panics with ErrCoordinate when out of bounds.
func (g *Graph) NodeAt(row, col int) *Node {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrCoordinate, row, col, g.rows, g.cols))
	}
	return &g.nodes[g.Index(row, col)]
}

// Neighbors returns the outgoing edges of node id in insertion order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(id int) []Edge {
	g.mustID(id)
	return g.adj[id]
}

// Edges returns a copy of every edge, ordered by source id then adjacency order.
func (g *Graph) Edges() []Edge {
	var n int
	for _, es := range g.adj {
		n += len(es)
	}
	out := make([]Edge, 0, n)
	for _, es := range g.adj {
		out = append(out, es...)
	}
	return out
}

// Reset clears the search state of every node: Effort=Infinity, Parent=NoParent.
func (g *Graph) Reset() {
	for i := range g.nodes {
		g.nodes[i].Effort = Infinity
		g.nodes[i].Parent = NoParent
	}
}

// HasID reports whether id addresses a node of g.
func (g *Graph) HasID(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

func (g *Graph) mustID(id int) {
	if !g.HasID(id) {
		panic(fmt.Errorf("%w: id %d not in [0, %d)", ErrCoordinate, id, len(g.nodes)))
	}
}

// String renders the height matrix followed by each node's adjacency,
// one "[row, col]-> [row, col], ..." line per node.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GRAPH (%d x %d):\n", g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fmt.Fprintf(&sb, "%d, ", g.nodes[g.Index(r, c)].Height)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("EDGES:\n")
	for id, es := range g.adj {
		r, c := g.Coordinate(id)
		fmt.Fprintf(&sb, "[%d, %d]-> ", r, c)
		for _, e := range es {
			tr, tc := g.Coordinate(e.To)
			fmt.Fprintf(&sb, "[%d, %d](%d), ", tr, tc, e.Weight)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
