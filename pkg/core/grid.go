package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// dimension or more than MaxCells cells.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 26

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Validate reports whether both dimensions are positive and the grid holds
// at most MaxCells cells.
func (s Size) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Rows, s.Cols)
	}
	if s.Rows > MaxCells/s.Cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidSize, s.Rows, s.Cols, MaxCells)
	}
	return nil
}

// Grid is an immutable toroidal grid of dead/alive cells stored in row-major
// order. Coordinates passed to its accessors wrap modulo the grid size.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid builds a grid by asking alive for the state of every cell in
// row-major order. A nil alive yields an all-dead grid.
func NewGrid(size Size, alive func(r, c int) bool) (*Grid, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{rows: size.Rows, cols: size.Cols, data: make([]uint8, size.Cells())}
	if alive == nil {
		return g, nil
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if alive(r, c) {
				g.data[r*g.cols+c] = 1
			}
		}
	}
	return g, nil
}

// ParseGrid builds a grid from equal-length rows where '#' or 'O' marks an
// alive cell and any other byte a dead one.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(line), cols)
		}
	}
	return NewGrid(Size{Rows: len(lines), Cols: cols}, func(r, c int) bool {
		b := lines[r][c]
		return b == '#' || b == 'O'
	})
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

// Alive reports the state of the cell at (r, c) after wrapping.
func (g *Grid) Alive(r, c int) bool {
	r, c = g.Wrap(r, c)
	return g.data[r*g.cols+c] != 0
}

// Map derives a grid of the same size whose cells are produced by fn. The
// receiver is left untouched.
func (g *Grid) Map(fn func(r, c int, alive bool) bool) *Grid {
	next := &Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			if fn(r, c, g.data[idx] != 0) {
				next.data[idx] = 1
			}
		}
	}
	return next
}

// CopyCells appends the row-major 0/1 cell values to dst and returns the
// extended slice.
func (g *Grid) CopyCells(dst []uint8) []uint8 {
	return append(dst, g.data...)
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for alive and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.data[r*g.cols+c] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
