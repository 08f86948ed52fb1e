// Package life implements Conway's Game of Life (B3/S23) on toroidal grids.
package life

import (
	"fmt"
	"math"

	"conway-stats/pkg/core"
)

// Random returns a grid where each cell is independently alive with
// probability p. Cells are sampled in row-major order so a given RNG state
// always yields the same grid.
func Random(size core.Size, p float64, rng *core.RNG) (*core.Grid, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("alive probability %v outside [0, 1]", p)
	}
	return core.NewGrid(size, func(int, int) bool {
		return rng.Bernoulli(p)
	})
}

// CountNeighbors returns the number of alive cells in the Moore neighborhood
// of (r, c), wrapping at the edges.
func CountNeighbors(g *core.Grid, r, c int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(r+dr, c+dc) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Rule applies the birth/survival thresholds to a single cell.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Next computes the following generation. The input grid is not modified.
func Next(g *core.Grid) *core.Grid {
	return g.Map(func(r, c int, alive bool) bool {
		return Rule(alive, CountNeighbors(g, r, c))
	})
}

// AliveCount returns the number of alive cells in g.
func AliveCount(g *core.Grid) int {
	total := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Alive(r, c) {
				total++
			}
		}
	}
	return total
}
