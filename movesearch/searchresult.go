package movesearch

import "github.com/s-shin/stacker-core/tetris"

// foundEntry records how a placement was first reached: the move that
// produced it and the placement it was produced from.
type foundEntry struct {
	move        tetris.Move
	predecessor tetris.Placement
}

// SearchResult is a reachability map: every placement found, and the
// move/predecessor that reached it first. Get reconstructs the path to
// any found destination by walking predecessors back to Source and
// reversing.
type SearchResult struct {
	Source tetris.Placement
	found  map[tetris.Placement]foundEntry
}

func newSearchResult(source tetris.Placement) *SearchResult {
	return &SearchResult{Source: source, found: map[tetris.Placement]foundEntry{source: {}}}
}

func (r *SearchResult) record(dst tetris.Placement, move tetris.Move, predecessor tetris.Placement) bool {
	if _, ok := r.found[dst]; ok {
		return false
	}
	r.found[dst] = foundEntry{move: move, predecessor: predecessor}
	return true
}

// Has reports whether p was reached.
func (r *SearchResult) Has(p tetris.Placement) bool {
	_, ok := r.found[p]
	return ok
}

// Placements returns every reached placement, including Source.
func (r *SearchResult) Placements() []tetris.Placement {
	ps := make([]tetris.Placement, 0, len(r.found))
	for p := range r.found {
		ps = append(ps, p)
	}
	return ps
}

// Get reconstructs the MovePath from Source to dst, or reports false if
// dst was never reached.
func (r *SearchResult) Get(dst tetris.Placement) (*tetris.MovePath, bool) {
	if !r.Has(dst) {
		return nil, false
	}
	type step struct {
		move   tetris.Move
		result tetris.Placement
	}
	var steps []step
	cur := dst
	for cur != r.Source {
		e := r.found[cur]
		steps = append(steps, step{move: e.move, result: cur})
		cur = e.predecessor
	}
	path := tetris.NewMovePath(r.Source)
	for i := len(steps) - 1; i >= 0; i-- {
		path.Append(steps[i].move, steps[i].result)
	}
	return path, true
}
