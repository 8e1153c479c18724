// Package gridgraph treats a 2D height map as a directed weighted graph,
// the input model for cheapest-path searches across terrain.
//
// What:
//
//   - Graph wraps a rectangular [][]int of heights, one node per cell.
//   - Each node has an edge to every in-bounds orthogonal neighbour
//     (left, up, right, down; no diagonals).
//   - weight(u→v) = (H[u]-H[v])^2 * HeightCost, saturating at Infinity.
//   - Nodes live in an arena addressed by row-major id (row*Cols + col);
//     edges and parent links are ids, never pointers.
//
// Why:
//
//   - Squaring makes the cost symmetric in sign and penalises large jumps
//     super-linearly, while keeping every weight non-negative so Dijkstra
//     applies unchanged.
//   - A flat per-step cost is not part of the weight; search engines add it
//     during relaxation (see package dijkstra).
//
// Complexity:
//
//   - NewGraph:  O(R×C) time and memory (at most 4 edges per node).
//   - Reachable: O(R×C), Memory: O(R×C).
//
// Options:
//
//   - WithHeightCost(c): C_height, must be ≥ 0.
//   - WithDimensionBounds(min, max): allowed range for rows and columns.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimension: rows or columns outside the configured bounds.
//   - ErrNegativeCost: HeightCost < 0.
//   - ErrCoordinate: (panic) node id or cell outside the grid.
package gridgraph
