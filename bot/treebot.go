package bot

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
	"github.com/s-shin/stacker-core/tree"
)

// TreeBot expands a breadth-first stack tree up to MaxNodes expansions (or
// MaxDepth plies, whichever comes first), scores every leaf by
// boardHeightScore, and returns the first action on the route to the
// best-scoring leaf. A reference "tree-filter-chain" bot: it exercises
// the move-candidate (E), game-state (F), and arena/stack-tree (I)
// contracts together but implements no real evaluation function.
type TreeBot struct {
	MaxNodes int
	MaxDepth int
}

// acceptAllExpander admits every candidate destination and hold whose
// resulting game is not already over.
type acceptAllExpander struct{}

func (acceptAllExpander) FilterDestination(movesearch.MoveTransition) bool { return true }
func (acceptAllExpander) FilterHold() bool                                 { return true }
func (acceptAllExpander) FilterNewGame(g *tetris.GameState) bool           { return !g.GameOver }

// bfsSimulator expands the tree breadth-first, capping total expansions
// at maxNodes and per-node depth at maxDepth.
type bfsSimulator struct {
	frontier []tree.Handle
	depth    map[tree.Handle]int
	expanded int
	maxNodes int
	maxDepth int
}

func newBFSSimulator(root tree.Handle, maxNodes, maxDepth int) *bfsSimulator {
	return &bfsSimulator{
		frontier: []tree.Handle{root},
		depth:    map[tree.Handle]int{root: 0},
		maxNodes: maxNodes,
		maxDepth: maxDepth,
	}
}

func (s *bfsSimulator) Select(t *tree.Tree) (tree.Handle, bool) {
	for len(s.frontier) > 0 {
		h := s.frontier[0]
		s.frontier = s.frontier[1:]
		if s.depth[h] >= s.maxDepth || s.expanded >= s.maxNodes {
			continue
		}
		s.expanded++
		return h, true
	}
	return tree.Handle{}, false
}

func (s *bfsSimulator) NewExpander(*tree.Tree, tree.Handle) tree.Expander {
	return acceptAllExpander{}
}

func (s *bfsSimulator) OnExpanded(t *tree.Tree, h tree.Handle, _ tree.Expander) {
	d := s.depth[h] + 1
	for _, c := range t.Arena.Children(h) {
		s.depth[c] = d
		s.frontier = append(s.frontier, c)
	}
}

// boardHeightScore scores a game: higher is better. It rewards fewer
// filled rows (a lower stack) and a modest bonus per lock so the bot
// prefers a deeper surviving line over an immediate stall.
func boardHeightScore(game *tetris.GameState) int {
	contour := game.Playfield.Contour()
	maxHeight := 0
	for _, h := range contour {
		if h > maxHeight {
			maxHeight = h
		}
	}
	return -maxHeight + game.Stats.Locks
}

// Think implements Bot.
func (b TreeBot) Think(game *tetris.GameState) (movesearch.Action, bool) {
	t := tree.NewTree(game.Clone())
	sim := newBFSSimulator(t.Root, b.MaxNodes, b.MaxDepth)
	for tree.SimulateOnce(t, sim) {
	}

	var best tree.Handle
	bestScore := 0
	haveBest := false
	var visit func(h tree.Handle)
	visit = func(h tree.Handle) {
		children := t.Arena.Children(h)
		if len(children) == 0 {
			data, ok := t.Arena.Get(h)
			if !ok {
				return
			}
			score := boardHeightScore(data.Game)
			if !haveBest || score > bestScore {
				bestScore = score
				best = h
				haveBest = true
			}
			return
		}
		for _, c := range children {
			visit(c)
		}
	}
	visit(t.Root)
	if !haveBest || best == t.Root {
		return movesearch.Action{}, false
	}

	route := t.Arena.Route(best)
	// route[0] is the root; the first actual step is route[1].
	data, ok := t.Arena.Get(route[1])
	if !ok || data.Incoming == nil {
		return movesearch.Action{}, false
	}
	return *data.Incoming, true
}
