// Package terrapath finds least-effort routes across rectangular height maps.
//
// A height map is turned into a 4-connected grid graph whose edge weights
// grow with the squared height difference between neighbouring cells, and
// Dijkstra's algorithm, driven by an indexed min-heap with decrease-key,
// computes the cheapest route from a source cell.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/           height map → arena graph: nodes, edges, weights
//	minheap/             indexed binary min-heap with decrease-key
//	dijkstra/            single-source search and path reconstruction
//	internal/heightmap/  text input parsing
//	internal/report/     path output format
//	internal/config/     defaults, config file, environment and flags
//	cmd/terrapath/       command line tool
//
// Quick example:
//
//	g, _ := gridgraph.NewGraph([][]int{{0, 1}, {0, 0}})
//	res, _ := dijkstra.Run(g, dijkstra.WithStepCost(1))
//	p, _ := res.PathToCell(1, 1)
//	fmt.Println(p.Cells, p.Cost) // [{0 0} {1 0} {1 1}] 2
//
//	go install github.com/katalvlaran/terrapath/cmd/terrapath@latest
package terrapath
