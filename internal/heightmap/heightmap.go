// Package heightmap reads the terrain input format: whitespace-separated
// integers in the order
//
//	C_cell C_height n m H[0][0] H[0][1] ... H[n-1][m-1]
//
// from a file or standard input.
package heightmap

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Stdin is the path that selects standard input instead of a file.
const Stdin = "-"

var (
	// ErrMalformed indicates a token that is not an integer.
	ErrMalformed = errors.New("heightmap: malformed integer")
	// ErrTruncated indicates the input ended before all values were read.
	ErrTruncated = errors.New("heightmap: unexpected end of input")
	// ErrNegative indicates a negative cost coefficient.
	ErrNegative = errors.New("heightmap: cost coefficients must be non-negative")
)

// Input is one parsed problem instance.
type Input struct {
	CellCost   int     // C_cell, flat cost per move
	HeightCost int     // C_height, scale of the squared height difference
	Rows, Cols int     // n, m
	Heights    [][]int // Rows × Cols height matrix
}

// Parse reads one Input from r. When maxDimension > 0, a row or column count
// above it is rejected with gridgraph.ErrDimension before the matrix is read;
// counts below 1 are always rejected.
func Parse(r io.Reader, maxDimension int) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tok := &tokens{sc: sc}

	in := &Input{}
	header := []struct {
		name string
		dst  *int
	}{
		{"C_cell", &in.CellCost},
		{"C_height", &in.HeightCost},
		{"n", &in.Rows},
		{"m", &in.Cols},
	}
	for _, h := range header {
		v, err := tok.next(h.name)
		if err != nil {
			return nil, err
		}
		*h.dst = v
	}

	if in.CellCost < 0 || in.HeightCost < 0 {
		return nil, errors.Wrapf(ErrNegative, "C_cell=%d C_height=%d", in.CellCost, in.HeightCost)
	}
	if in.Rows < 1 || in.Cols < 1 ||
		(maxDimension > 0 && (in.Rows > maxDimension || in.Cols > maxDimension)) {
		return nil, errors.Wrapf(gridgraph.ErrDimension, "%d×%d", in.Rows, in.Cols)
	}

	in.Heights = make([][]int, in.Rows)
	for i := range in.Heights {
		row := make([]int, in.Cols)
		for j := range row {
			v, err := tok.next("H[" + strconv.Itoa(i) + "][" + strconv.Itoa(j) + "]")
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		in.Heights[i] = row
	}

	return in, nil
}

// ReadFile opens path on fs and parses it; path "-" reads stdin instead.
func ReadFile(fs afero.Fs, path string, stdin io.Reader, maxDimension int) (*Input, error) {
	if path == Stdin {
		in, err := Parse(stdin, maxDimension)
		return in, errors.Wrap(err, "stdin")
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open %s", path)
	}
	defer f.Close()

	in, err := Parse(f, maxDimension)
	return in, errors.Wrap(err, path)
}

// tokens yields integers from a word scanner.
type tokens struct {
	sc *bufio.Scanner
}

func (t *tokens) next(name string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errors.Wrapf(err, "reading %s", name)
		}
		return 0, errors.Wrapf(ErrTruncated, "missing %s", name)
	}
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "%s: %q", name, t.sc.Text())
	}
	return v, nil
}
