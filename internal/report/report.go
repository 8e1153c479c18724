// Package report writes a cheapest path in the terrain output format:
// one "row col" line per cell from source to destination, the terminator
// line "-1 -1", then the total cost on its own line.
package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/terrapath/dijkstra"
)

// Terminator is the out-of-range coordinate that ends the cell list.
const Terminator = -1

// WritePath writes p to w.
func WritePath(w io.Writer, p dijkstra.Path) error {
	bw := bufio.NewWriter(w)
	for _, c := range p.Cells {
		writePair(bw, c.Row, c.Col)
	}
	writePair(bw, Terminator, Terminator)
	bw.WriteString(strconv.FormatUint(p.Cost, 10))
	bw.WriteByte('\n')

	return errors.Wrap(bw.Flush(), "write path")
}

// bufio.Writer keeps the first error and returns it from Flush.
func writePair(bw *bufio.Writer, a, b int) {
	bw.WriteString(strconv.Itoa(a))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(b))
	bw.WriteByte('\n')
}
