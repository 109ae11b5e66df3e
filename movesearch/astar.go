package movesearch

import (
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

func moveCost(prev *tetris.MoveKind, kind tetris.MoveKind) int {
	switch kind {
	case tetris.MoveRotate:
		switch {
		case prev != nil && *prev == tetris.MoveDrop:
			return 4
		case prev != nil && *prev == tetris.MoveShift:
			return 3
		default:
			return 2
		}
	case tetris.MoveDrop:
		if prev != nil && *prev == tetris.MoveRotate {
			return 2
		}
		return 1
	case tetris.MoveShift:
		if prev != nil && *prev == tetris.MoveDrop {
			return 2
		}
		return 1
	default:
		return 1
	}
}

func orientationDistance(a, b piece.Orientation) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	d %= 4
	if d > 2 {
		d = 4 - d
	}
	return d
}

func heuristic(a, b tetris.Placement) int {
	dx := a.Position.X - b.Position.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Position.Y - b.Position.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy + orientationDistance(a.Orientation, b.Orientation)
}

// isOpposite reports whether move undoes prev (Shift(+1) after
// Shift(-1), Rotate(+1) after Rotate(-1)); Drop has no opposite since a
// piece never moves back up.
func isOpposite(prev, move tetris.Move) bool {
	if prev.Kind != move.Kind {
		return false
	}
	switch prev.Kind {
	case tetris.MoveShift, tetris.MoveRotate:
		return tetris.Sign(prev.N) == -tetris.Sign(move.N)
	default:
		return false
	}
}

type astarNode struct {
	placement tetris.Placement
	g         int
	f         int
	order     int
	prevMove  tetris.Move
	prevKind  *tetris.MoveKind
	hasPrev   bool
	pred      tetris.Placement
}

// AStar finds the cheapest path from cfg.Source to dst under the
// per-move cost function in this file (penalizing rotate-after-drop and
// similar orderings). Returns (nil, false) if dst is unreachable.
func AStar(cfg Config, dst tetris.Placement) (*tetris.MovePath, bool) {
	open := map[tetris.Placement]*astarNode{}
	closed := map[tetris.Placement]bool{}
	counter := 0

	start := &astarNode{placement: cfg.Source, g: 0, f: heuristic(cfg.Source, dst), order: counter}
	open[cfg.Source] = start

	popMin := func() *astarNode {
		var best *astarNode
		for _, n := range open {
			if best == nil || n.f < best.f || (n.f == best.f && n.order < best.order) {
				best = n
			}
		}
		if best != nil {
			delete(open, best.placement)
		}
		return best
	}

	cameFrom := map[tetris.Placement]astarNode{}

	for len(open) > 0 {
		cur := popMin()
		if cur.placement == dst {
			return reconstructAStarPath(cfg.Source, dst, cameFrom)
		}
		closed[cur.placement] = true

		for _, move := range unitMoves {
			if cur.hasPrev && isOpposite(cur.prevMove, move) {
				continue
			}
			next, ok := tetris.TryMove(cfg.Kind, cur.placement, move, cfg.Playfield, cfg.Rules)
			if !ok || closed[next] {
				continue
			}
			tentativeG := cur.g + moveCost(cur.prevKind, move.Kind)
			existing, inOpen := open[next]
			if inOpen && existing.g <= tentativeG {
				continue
			}
			kind := move.Kind
			node := &astarNode{
				placement: next,
				g:         tentativeG,
				f:         tentativeG + heuristic(next, dst),
				order:     counter,
				prevMove:  move,
				prevKind:  &kind,
				hasPrev:   true,
				pred:      cur.placement,
			}
			counter++
			open[next] = node
			cameFrom[next] = astarNode{prevMove: move, pred: cur.placement}
		}
	}
	return nil, false
}

func reconstructAStarPath(source, dst tetris.Placement, cameFrom map[tetris.Placement]astarNode) (*tetris.MovePath, bool) {
	type step struct {
		move   tetris.Move
		result tetris.Placement
	}
	var steps []step
	cur := dst
	for cur != source {
		n, ok := cameFrom[cur]
		if !ok {
			return nil, false
		}
		steps = append(steps, step{move: n.prevMove, result: cur})
		cur = n.pred
	}
	path := tetris.NewMovePath(source)
	for i := len(steps) - 1; i >= 0; i-- {
		path.Append(steps[i].move, steps[i].result)
	}
	return path, true
}
