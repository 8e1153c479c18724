package gridgraph

// Reachable reports, for every node, whether it can be reached from src
// following only edges with Weight < limit. Pass Infinity to allow every
// finite edge. The result is indexed by node id.
//
// Panics with ErrCoordinate if src is out of range.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for the visited flags and queue.
func (g *Graph) Reachable(src int, limit Effort) []bool {
	g.mustID(src)
	seen := make([]bool, len(g.nodes))
	seen[src] = true
	queue := []int{src}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, e := range g.adj[u] {
			if e.Weight >= limit || seen[e.To] {
				continue
			}
			seen[e.To] = true
			queue = append(queue, e.To)
		}
	}
	return seen
}
