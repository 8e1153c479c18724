// Package dijkstra finds the cheapest path across a height-map grid
// (gridgraph.Graph) with Dijkstra's algorithm over an indexed min-heap.
//
// Overview:
//
//   - Every node starts at effort +∞ except the source, which starts at the
//     baseline (0 by default). All nodes are inserted into a minheap.Heap.
//   - The loop extracts the minimum-effort node u, which is then final, and
//     relaxes each edge u→v with
//     candidate = effort(u) + weight(u,v) + StepCost, using saturating
//     addition. A strictly smaller candidate lowers v's key (decrease-key)
//     and sets v's parent to u.
//   - The loop ends when the heap is empty. Unreachable nodes keep +∞.
//   - Result.PathTo walks parent links from the destination back to the
//     source and reverses them; the path cost is the destination's effort.
//
// Step cost policy:
//
//   - ChargePerEdge (default): C_cell is paid for each move.
//   - ChargeOnce: C_cell is paid once, at the source.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); V inserts, V extractions, ≤ E decrease-keys.
//   - Space: O(V) – the heap's slot array and position index. Effort and
//     parent live on the graph's nodes.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:              nil graph passed to Run.
//   - ErrSourceOutOfRange:      source id or cell not in the graph.
//   - ErrDestinationOutOfRange: PathTo/PathToCell outside the graph.
//   - ErrUnreachable:           destination has no finite path; the returned
//     Path is empty. A source-to-source path is never unreachable: it holds
//     one cell and costs the starting effort, even above MaxEffort.
//   - ErrInfiniteBaseline:      the source's starting effort is +∞.
//   - ErrCorruptHeap:           WithVerify found a broken heap invariant.
//
// API reference:
//
//	func Run(g *gridgraph.Graph, opts ...Option) (*Result, error)
//	func (*Result) PathTo(dst int) (Path, error)
//	func (*Result) PathToCell(row, col int) (Path, error)
//
// Thread safety:
//
//   - Run mutates the nodes of g. Do not share a graph between concurrent runs.
package dijkstra
