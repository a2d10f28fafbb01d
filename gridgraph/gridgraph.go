// Package gridgraph provides the weighted grid a constrained mover travels on.
//
// Each tile holds the cost of entering it. The cost of the starting tile is
// never paid; every subsequently entered tile is paid once per entry.
package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/crucible/motion"
)

// NewWeightedGrid constructs a WeightedGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost if any tile
// is negative, and ErrBadWallThreshold for a non-positive wall threshold.
// Algorithmic complexity: O(W×H) time and memory.
func NewWeightedGrid(costs [][]int, opts ...Option) (*WeightedGrid, error) {
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WallThreshold <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWallThreshold, cfg.WallThreshold)
	}

	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], costs[r])
		for c, v := range cells[r] {
			if v < 0 {
				return nil, fmt.Errorf("%w: tile (%d,%d)=%d", ErrNegativeCost, r, c, v)
			}
		}
	}

	return &WeightedGrid{
		rows:          h,
		cols:          w,
		costs:         cells,
		wallThreshold: cfg.WallThreshold,
	}, nil
}

// From2D is shorthand for NewWeightedGrid with default options.
func From2D(costs [][]int) (*WeightedGrid, error) {
	return NewWeightedGrid(costs)
}

// Rows returns the number of rows.
func (g *WeightedGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *WeightedGrid) Cols() int { return g.cols }

// WallThreshold returns the cost at and above which tiles are impassable.
func (g *WeightedGrid) WallThreshold() int { return g.wallThreshold }

// Costs returns a copy of the tile costs, indexed [row][col].
// Complexity: O(W×H).
func (g *WeightedGrid) Costs() [][]int {
	out := make([][]int, g.rows)
	for r, row := range g.costs {
		out[r] = append([]int(nil), row...)
	}

	return out
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *WeightedGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cost returns the entry cost of tile (row,col). The cell must be in bounds.
func (g *WeightedGrid) Cost(row, col int) int {
	return g.costs[row][col]
}

// Passable reports whether (row,col) is in bounds and not a wall.
func (g *WeightedGrid) Passable(row, col int) bool {
	return g.InBounds(row, col) && g.costs[row][col] < g.wallThreshold
}

// Corner returns the bottom-right cell, the conventional target.
func (g *WeightedGrid) Corner() motion.Cell {
	return motion.Cell{Row: g.rows - 1, Col: g.cols - 1}
}

// Step returns the cell one step away from (row,col) in facing d.
// ok is false when that cell is off the grid or a wall.
func (g *WeightedGrid) Step(row, col int, d motion.Direction) (cell motion.Cell, ok bool) {
	dr, dc := d.Delta()
	cell = motion.Cell{Row: row + dr, Col: col + dc}

	return cell, g.Passable(cell.Row, cell.Col)
}

// String renders the grid one row per line. Single-digit costs are written
// back to back; wider costs are separated by spaces.
func (g *WeightedGrid) String() string {
	sep := ""
	for _, row := range g.costs {
		for _, v := range row {
			if v > 9 {
				sep = " "
			}
		}
	}

	var sb strings.Builder
	for _, row := range g.costs {
		for c, v := range row {
			if c > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
