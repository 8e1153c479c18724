package main

import (
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/terrapath/dijkstra"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/internal/config"
	"github.com/katalvlaran/terrapath/internal/heightmap"
	"github.com/katalvlaran/terrapath/internal/report"
)

// run reads the input at path, searches from the top-left to the
// bottom-right cell and writes the path to stdout. Malformed input is
// reported before any search; an unreachable destination produces no output.
func (a *app) run(conf *config.Config, path string) error {
	in, err := heightmap.ReadFile(a.fs, path, a.stdin, conf.MaxDimension)
	if err != nil {
		return err
	}
	a.log.Debugw("input parsed",
		"rows", in.Rows, "cols", in.Cols,
		"c_cell", in.CellCost, "c_height", in.HeightCost)

	g, err := gridgraph.NewGraph(in.Heights,
		gridgraph.WithHeightCost(in.HeightCost),
		gridgraph.WithDimensionBounds(conf.MinDimension, conf.MaxDimension))
	if err != nil {
		return errors.Wrap(err, "build graph")
	}
	if conf.DumpGraph {
		a.log.Debug(g.String())
	}

	charge, err := conf.Charge()
	if err != nil {
		return err
	}
	opts := []dijkstra.Option{
		dijkstra.SourceCell(0, 0),
		dijkstra.WithStepCost(gridgraph.Effort(in.CellCost)),
		dijkstra.WithStepCharge(charge),
		dijkstra.WithBaseline(conf.Baseline),
	}
	if conf.Verify {
		opts = append(opts, dijkstra.WithVerify())
	}

	start := time.Now()
	res, err := dijkstra.Run(g, opts...)
	if err != nil {
		return errors.Wrap(err, "search")
	}
	p, err := res.PathToCell(g.Rows()-1, g.Cols()-1)
	if err != nil {
		return errors.Wrap(err, "extract path")
	}
	a.log.Infow("path found",
		"cells", p.Len(),
		"cost", p.Cost,
		"finalized", res.Finalized(),
		"elapsed", time.Since(start))

	return report.WritePath(a.stdout, p)
}
