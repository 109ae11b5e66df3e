// Package movesearch finds how a falling piece can reach placements
// across a playfield: brute-force reachability, A* shortest path, a
// cheap "humanly-optimized" heuristic searcher, and a composer that
// prefers the cheap one and falls back to A*.
package movesearch

import (
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

// Config bundles everything a searcher needs: the board, which kind is
// falling, where it starts, and which rotation rules govern kicks.
type Config struct {
	Playfield *tetris.Playfield
	Kind      piece.Kind
	Source    tetris.Placement
	Rules     tetris.Rules
}
