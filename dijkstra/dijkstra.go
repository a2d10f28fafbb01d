// Package dijkstra implements a constrained shortest-path search on a weighted grid.
//
// The search explores states in order of increasing accumulated cost using a
// min-heap priority queue. A state is settled the first time it is popped;
// because tile costs are non-negative, that pop carries its minimal cost.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: successors are pushed every time
//     they are discovered and stale entries are skipped when popped.
//   - The closed set is keyed on the full motion.State, never on the cell alone.
//   - The first goal state popped ends the search; its cost is minimal among
//     all goal states.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/motion"
)

// ShortestPath returns the minimal cost of moving from Options.Source to a
// legal stop on Options.Target under Options.Constraints.
//
// A stop is legal only once the minimum straight run is satisfied
// (CanTurnIn == 0). When no such stop exists the error wraps ErrUnreachable.
func ShortestPath(g *gridgraph.WeightedGrid, opts ...Option) (int64, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search runs the same search as ShortestPath and also reports how much of
// the state space was explored.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Constraints must be valid (motion sentinel errors).
//  3. Source must be on the grid (ErrSourceOutOfBounds).
//  4. Target must be on the grid (ErrTargetOutOfBounds).
//  5. MaxDistance must be non-negative (ErrBadMaxDistance).
//
// Complexity:
//
//   - Time:  O(S log S)
//   - Space: O(S)
func Search(g *gridgraph.WeightedGrid, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any search work
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := cfg.Constraints.Validate(); err != nil {
		return Result{}, fmt.Errorf("dijkstra: %w", err)
	}
	if !g.InBounds(cfg.Source.Row, cfg.Source.Col) {
		return Result{}, fmt.Errorf("%w: %v on %dx%d grid", ErrSourceOutOfBounds, cfg.Source, g.Rows(), g.Cols())
	}
	target := g.Corner()
	if cfg.Target != nil {
		target = *cfg.Target
	}
	if !g.InBounds(target.Row, target.Col) {
		return Result{}, fmt.Errorf("%w: %v on %dx%d grid", ErrTargetOutOfBounds, target, g.Rows(), g.Cols())
	}
	if cfg.MaxDistance < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadMaxDistance, cfg.MaxDistance)
	}

	// 3) Run
	r := newRunner(g, cfg, target)
	r.init()

	return r.process()
}

// runner holds the mutable state for a single search execution.
// Nothing outlives the call, so concurrent searches never share data.
type runner struct {
	g       *gridgraph.WeightedGrid   // The input grid; read-only.
	options Options                   // Configuration options.
	target  motion.Cell               // Resolved goal cell.
	closed  map[motion.State]struct{} // States whose minimal cost is final.
	pq      statePQ                   // Min-heap of frontier entries.
	moves   []gridgraph.Move          // Reused neighbour buffer.
	stats   Result                    // Counters reported back to the caller.
}

// maxClosedHint caps the initial closed-set capacity.
const maxClosedHint = 1 << 16

func newRunner(g *gridgraph.WeightedGrid, cfg Options, target motion.Cell) *runner {
	hint := min(cfg.Constraints.StateBound(g.Rows(), g.Cols()), maxClosedHint)

	return &runner{
		g:       g,
		options: cfg,
		target:  target,
		closed:  make(map[motion.State]struct{}, hint),
		pq:      make(statePQ, 0, 64),
		moves:   make([]gridgraph.Move, 0, 3),
	}
}

// init pushes one zero-cost seed per facing at the source.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range motion.StartStates(r.options.Source, r.options.Constraints) {
		r.push(s, 0)
	}
}

func (r *runner) push(s motion.State, cost int64) {
	heap.Push(&r.pq, stateItem{state: s, cost: cost})
	r.stats.Pushed++
}

// process is the core loop. It pops the cheapest frontier entry until a
// goal state is popped or the frontier runs dry.
//
// Loop termination conditions:
//
//   - A goal state is popped: its cost is returned.
//   - The heap becomes empty: ErrUnreachable.
//   - The minimum cost in the heap exceeds MaxDistance: ErrUnreachable.
//   - The context is done: its error.
func (r *runner) process() (Result, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("dijkstra: search aborted after %d expansions: %w", r.stats.Expanded, err)
			}
		}

		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(stateItem)
		if item.cost > r.options.MaxDistance {
			break
		}

		// 2) Goal check. If you can't turn, you also can't stop.
		if item.state.Cell() == r.target && item.state.CanStop() {
			r.stats.Cost = item.cost
			r.stats.Goal = item.state

			return r.stats, nil
		}

		// 3) Skip stale duplicates of settled states.
		if _, done := r.closed[item.state]; done {
			r.stats.Stale++
			continue
		}
		r.closed[item.state] = struct{}{}
		r.stats.Expanded++

		// 4) Push every successor that is not settled yet.
		r.moves = r.g.AppendNeighbors(r.moves[:0], item.state, r.options.Constraints)
		for _, m := range r.moves {
			if _, done := r.closed[m.State]; done {
				continue
			}
			r.push(m.State, item.cost+int64(m.Cost))
		}
	}

	return Result{}, fmt.Errorf("%w: %v → %v under %v", ErrUnreachable, r.options.Source, r.target, r.options.Constraints)
}

// stateItem is a frontier entry: a state and the cost it was reached with.
type stateItem struct {
	state motion.State
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost ascending.
// Ties are broken arbitrarily; that never changes the returned cost.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
