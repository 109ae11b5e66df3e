package movesearch

import "github.com/s-shin/stacker-core/tetris"

// GetAlmostGoodMovePath finds a path from cfg.Source to dst, preferring
// the cheap HumanlyOptimized searcher and falling back to AStar.
//
// When AStar must be used, this also tries to shorten the "unnatural"
// prefix: it looks for the destination's own path, as computed
// directly by HumanlyOptimized from the same source, and for every
// placement AStar's path passes through, checks whether
// HumanlyOptimized could have reached that same intermediate placement
// on its own. The latest such intermediate becomes a splice point: the
// humanly-optimized prefix replaces AStar's corresponding prefix, and
// only the genuinely-unreachable-by-heuristic tail keeps its A* moves.
func GetAlmostGoodMovePath(cfg Config, dst tetris.Placement) (*tetris.MovePath, bool) {
	ho := HumanlyOptimized(cfg)
	if path, ok := ho.Get(dst); ok {
		return path, true
	}

	astarPath, ok := AStar(cfg, dst)
	if !ok {
		return nil, false
	}

	bestIndex := -1
	var bestPrefix *tetris.MovePath
	for i, item := range astarPath.Items {
		if prefix, ok := ho.Get(item.Result); ok {
			bestIndex = i
			bestPrefix = prefix
		}
	}
	if bestIndex < 0 {
		return astarPath, true
	}

	composed := tetris.NewMovePath(cfg.Source)
	for _, item := range bestPrefix.Items {
		composed.Append(item.Move, item.Result)
	}
	for _, item := range astarPath.Items[bestIndex+1:] {
		composed.Append(item.Move, item.Result)
	}
	return composed, true
}

// GetAlmostGoodMovePathForTransition is GetAlmostGoodMovePath's
// GameState-facing wrapper: it builds the Config from game's current
// falling piece and targets transition's destination.
func GetAlmostGoodMovePathForTransition(game *tetris.GameState, transition MoveTransition) (*tetris.MovePath, bool) {
	cfg := Config{
		Playfield: game.Playfield,
		Kind:      game.Falling.Kind,
		Source:    game.Falling.Placement,
		Rules:     game.Rules,
	}
	return GetAlmostGoodMovePath(cfg, transition.Destination)
}
