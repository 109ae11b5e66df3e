package movesearch

import "github.com/s-shin/stacker-core/tetris"

// unitMoves is the five-move alphabet brute-force search expands from
// every visited placement.
var unitMoves = []tetris.Move{
	tetris.Drop(1),
	tetris.Shift(1),
	tetris.Shift(-1),
	tetris.Rotate(1),
	tetris.Rotate(-1),
}

// BruteForce depth-first enumerates every placement reachable from
// cfg.Source under cfg.Rules. The result is a superset of lockable
// placements — callers filter with (*tetris.FallingPiece).IsLockable
// externally.
func BruteForce(cfg Config) *SearchResult {
	result := newSearchResult(cfg.Source)
	var visit func(p tetris.Placement)
	visit = func(p tetris.Placement) {
		for _, move := range unitMoves {
			next, ok := tetris.TryMove(cfg.Kind, p, move, cfg.Playfield, cfg.Rules)
			if !ok {
				continue
			}
			if result.record(next, move, p) {
				visit(next)
			}
		}
	}
	visit(cfg.Source)
	return result
}
