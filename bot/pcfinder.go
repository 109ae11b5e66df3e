package bot

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
	"github.com/s-shin/stacker-core/tree"
)

// PCFinder searches a stack tree, breadth-first, for the shallowest
// sequence of locks that empties the playfield (a "perfect clear"),
// within MaxPieces plies and MaxNodes total expansions.
type PCFinder struct {
	MaxPieces int
	MaxNodes  int
}

// Find returns the sequence of actions from game's current state to the
// first perfect-clear node found, or false if none was found within
// the search bounds.
func (f PCFinder) Find(game *tetris.GameState) ([]movesearch.Action, bool) {
	t := tree.NewTree(game.Clone())
	sim := newBFSSimulator(t.Root, f.MaxNodes, f.MaxPieces)

	var pcNode tree.Handle
	found := false
	for !found && tree.SimulateOnce(t, sim) {
		found = scanForPerfectClear(t, t.Root, &pcNode)
	}
	if !found {
		found = scanForPerfectClear(t, t.Root, &pcNode)
	}
	if !found {
		return nil, false
	}

	route := t.Arena.Route(pcNode)
	actions := make([]movesearch.Action, 0, len(route)-1)
	for _, h := range route[1:] {
		data, ok := t.Arena.Get(h)
		if !ok || data.Incoming == nil {
			return nil, false
		}
		actions = append(actions, *data.Incoming)
	}
	return actions, true
}

func scanForPerfectClear(t *tree.Tree, h tree.Handle, out *tree.Handle) bool {
	data, ok := t.Arena.Get(h)
	if ok && data.Game.Playfield.IsEmpty() && data.Incoming != nil {
		*out = h
		return true
	}
	for _, c := range t.Arena.Children(h) {
		if scanForPerfectClear(t, c, out) {
			return true
		}
	}
	return false
}
