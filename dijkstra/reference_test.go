package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceCost solves the same problem by a different route: states are
// (cell, facing, run) where run counts cells entered in a straight line, and
// tentative costs are relaxed until nothing changes. No counters, no heap.
//
// Rules, read straight off the puzzle:
//   - from (0,0) the first step may go any way and starts a run of 1;
//   - going straight needs run < maxRun;
//   - turning left or right needs run >= minRun and restarts the run at 1;
//   - stopping on the corner needs run >= minRun.
//
// Tiles with cost >= wall cannot be entered. ok is false when the corner is
// unreachable.
func referenceCost(costs [][]int, maxRun, minRun, wall int) (cost int64, ok bool) {
	rows, cols := len(costs), len(costs[0])
	dr := [4]int{-1, 1, 0, 0}
	dc := [4]int{0, 0, -1, 1}
	perpendicular := func(a, b int) bool { return (a < 2) != (b < 2) }

	const inf = int64(math.MaxInt64)
	// dist[r][c][d][run], run in 1..maxRun.
	dist := make([][][][]int64, rows)
	for r := range dist {
		dist[r] = make([][][]int64, cols)
		for c := range dist[r] {
			dist[r][c] = make([][]int64, 4)
			for d := range dist[r][c] {
				dist[r][c][d] = make([]int64, maxRun+1)
				for k := range dist[r][c][d] {
					dist[r][c][d][k] = inf
				}
			}
		}
	}
	enter := func(r, c int) bool {
		return r >= 0 && r < rows && c >= 0 && c < cols && costs[r][c] < wall
	}

	for d := 0; d < 4; d++ {
		if r, c := dr[d], dc[d]; enter(r, c) {
			dist[r][c][d][1] = int64(costs[r][c])
		}
	}

	for changed := true; changed; {
		changed = false
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				for d := 0; d < 4; d++ {
					for run := 1; run <= maxRun; run++ {
						here := dist[r][c][d][run]
						if here == inf {
							continue
						}
						for nd := 0; nd < 4; nd++ {
							nextRun := 0
							switch {
							case nd == d && run < maxRun:
								nextRun = run + 1
							case perpendicular(d, nd) && run >= minRun:
								nextRun = 1
							default:
								continue
							}
							nr, nc := r+dr[nd], c+dc[nd]
							if !enter(nr, nc) {
								continue
							}
							if alt := here + int64(costs[nr][nc]); alt < dist[nr][nc][nd][nextRun] {
								dist[nr][nc][nd][nextRun] = alt
								changed = true
							}
						}
					}
				}
			}
		}
	}

	best := inf
	for d := 0; d < 4; d++ {
		for run := max(minRun, 1); run <= maxRun; run++ {
			best = min(best, dist[rows-1][cols-1][d][run])
		}
	}
	if best == inf {
		return 0, false
	}

	return best, true
}

func TestReferenceCost_KnownAnswers(t *testing.T) {
	sample := mustParse(t, sampleInput).Costs()

	cost, ok := referenceCost(sample, 3, 0, math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, int64(102), cost)

	cost, ok = referenceCost(sample, 10, 4, math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, int64(94), cost)

	_, ok = referenceCost([][]int{{1, 1, 1}}, 10, 4, math.MaxInt)
	assert.False(t, ok)
}

// searchAgrees compares ShortestPath with referenceCost on one grid.
func searchAgrees(t *testing.T, costs [][]int, c motion.Constraints, wall int) {
	t.Helper()
	g, err := gridgraph.NewWeightedGrid(costs, gridgraph.WithWallThreshold(wall))
	require.NoError(t, err)

	want, wantOK := referenceCost(costs, c.MaxStraightLine, c.MinStraightLine, wall)
	got, err := dijkstra.ShortestPath(g, dijkstra.WithConstraints(c))
	if !wantOK {
		assert.ErrorIs(t, err, dijkstra.ErrUnreachable, "%v\ngrid:\n%s", c, g)
		return
	}
	require.NoError(t, err, "%v\ngrid:\n%s", c, g)
	assert.Equal(t, want, got, "%v\ngrid:\n%s", c, g)
}

// TestShortestPath_MatchesReference_MinZero covers the plain maximum-run
// rule across a range of maxima.
func TestShortestPath_MatchesReference_MinZero(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 150; i++ {
		rows, cols := 1+r.Intn(6), 2+r.Intn(5)
		c := motion.Constraints{MaxStraightLine: 1 + r.Intn(5)}
		searchAgrees(t, randomGrid(r, rows, cols), c, math.MaxInt)
	}
}

// TestShortestPath_MatchesReference_Pairs draws random (max, min) pairs,
// so both reachable and unreachable corners show up.
func TestShortestPath_MatchesReference_Pairs(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	unreachable := 0
	for i := 0; i < 300; i++ {
		rows, cols := 1+r.Intn(7), 2+r.Intn(6)
		maxRun := 1 + r.Intn(7)
		c := motion.Constraints{MaxStraightLine: maxRun, MinStraightLine: r.Intn(maxRun + 1)}
		costs := randomGrid(r, rows, cols)
		if _, ok := referenceCost(costs, c.MaxStraightLine, c.MinStraightLine, math.MaxInt); !ok {
			unreachable++
		}
		t.Run(fmt.Sprintf("%d_%dx%d_%d_%d", i, rows, cols, c.MaxStraightLine, c.MinStraightLine), func(t *testing.T) {
			searchAgrees(t, costs, c, math.MaxInt)
		})
	}
	assert.Positive(t, unreachable, "seed should produce some unreachable corners")
}

// TestShortestPath_MatchesReference_Walls treats 8 and 9 as walls.
func TestShortestPath_MatchesReference_Walls(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	for i := 0; i < 150; i++ {
		rows, cols := 2+r.Intn(5), 2+r.Intn(5)
		maxRun := 1 + r.Intn(5)
		c := motion.Constraints{MaxStraightLine: maxRun, MinStraightLine: r.Intn(maxRun + 1)}
		costs := randomGrid(r, rows, cols)
		if costs[rows-1][cols-1] >= 8 {
			costs[rows-1][cols-1] = 1
		}
		searchAgrees(t, costs, c, 8)
	}
}

func TestReferenceCost_AgreesOnUnreachableError(t *testing.T) {
	// 2×2 with a clumsy run: every route turns after one cell.
	costs := [][]int{{1, 1}, {1, 1}}
	_, ok := referenceCost(costs, 10, 4, math.MaxInt)
	assert.False(t, ok)

	_, err := dijkstra.ShortestPath(mustGrid(t, costs), dijkstra.WithConstraints(motion.Clumsy))
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}
