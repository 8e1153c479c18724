// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terrapath/dijkstra"
	"github.com/katalvlaran/terrapath/gridgraph"
)

// ExampleRun_valley finds the cheapest route across a small height map.
// Each move costs C_cell=1 plus (Δheight)²·C_height with C_height=2, so the
// path hugs the flat left column and bottom row instead of climbing the ridge.
// Complexity: O((V+E) log V).
func ExampleRun_valley() {
	// 1) Build the grid graph.
	heights := [][]int{
		{0, 3, 3},
		{0, 3, 3},
		{0, 0, 0},
	}
	g, err := gridgraph.NewGraph(heights, gridgraph.WithHeightCost(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run from the top-left corner with a per-move cost of 1.
	res, err := dijkstra.Run(g, dijkstra.SourceCell(0, 0), dijkstra.WithStepCost(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Rebuild the path to the bottom-right corner.
	p, err := res.PathToCell(2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range p.Cells {
		fmt.Printf("(%d,%d) ", c.Row, c.Col)
	}
	fmt.Printf("cost=%d\n", p.Cost)
	// Output: (0,0) (1,0) (2,0) (2,1) (2,2) cost=4
}

// ExampleRun_walls demonstrates InfEdgeThreshold: any edge with weight ≥ threshold
// is impassable, and PathTo reports ErrUnreachable instead of a cost.
func ExampleRun_walls() {
	g, _ := gridgraph.NewGraph([][]int{{0, 0, 10, 0}})

	res, _ := dijkstra.Run(g, dijkstra.WithStepCost(1), dijkstra.WithInfEdgeThreshold(50))

	p, err := res.PathToCell(0, 1)
	fmt.Println(p.Cost, err)

	_, err = res.PathToCell(0, 3)
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable))
	// Output:
	// 1 <nil>
	// true
}

// ExampleRun_chargeOnce contrasts the two step-cost policies on a flat 1×4 row.
func ExampleRun_chargeOnce() {
	g, _ := gridgraph.NewGraph([][]int{{5, 5, 5, 5}})

	perEdge, _ := dijkstra.Run(g, dijkstra.WithStepCost(10))
	fmt.Println("per edge:", perEdge.Effort(3))

	once, _ := dijkstra.Run(g, dijkstra.WithStepCost(10), dijkstra.WithStepCharge(dijkstra.ChargeOnce))
	fmt.Println("once:", once.Effort(3))
	// Output:
	// per edge: 30
	// once: 10
}
