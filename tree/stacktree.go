package tree

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
)

// Expander decides which of a node's candidate children are admitted
// during Expand; Expand itself builds the cached decision resource for
// each one that is.
type Expander interface {
	// FilterDestination accepts or rejects one falling-piece move
	// candidate before the game is even cloned to try it.
	FilterDestination(t movesearch.MoveTransition) bool
	// FilterHold accepts or rejects trying the hold action.
	FilterHold() bool
	// FilterNewGame accepts or rejects the game resulting from an
	// admitted move or hold, after it has been played out.
	FilterNewGame(game *tetris.GameState) bool
}

// Tree is a StackTree: an Arena of NodeData plus the root handle — all
// the expansion policy lives in the Expander/Simulator the caller
// supplies.
type Tree struct {
	Arena *Arena[NodeData]
	Root  Handle
}

// NewTree builds a tree with game as its single root.
func NewTree(game *tetris.GameState) *Tree {
	a := NewArena[NodeData]()
	root := a.Create(NewRootNodeData(game))
	return &Tree{Arena: a, Root: root}
}

// Expand computes, for the node at h: for every admitted falling-piece
// destination, a child reached by forcing that placement and locking;
// and, if the game can hold and FilterHold accepts, a child reached by
// holding. Children are appended to the arena in the order produced.
func Expand(t *Tree, h Handle, expander Expander) {
	data, ok := t.Arena.Get(h)
	if !ok {
		return
	}
	game := data.Game

	if game.Falling != nil {
		for _, candidate := range data.Resource.Candidates {
			if !expander.FilterDestination(candidate) {
				continue
			}
			clone := game.Clone()
			viaRotate := candidate.RotationEdge != nil
			if err := clone.ForceFalling(candidate.Destination, viaRotate); err != nil {
				continue
			}
			if _, err := clone.Lock(); err != nil {
				continue
			}
			if !expander.FilterNewGame(clone) {
				continue
			}
			action := movesearch.Move(candidate)
			childData := NodeData{Incoming: &action, Game: clone, Resource: NewDecisionResource(clone)}
			t.Arena.AppendChild(h, childData)
		}
	}

	if game.CanHold && game.Falling != nil && expander.FilterHold() {
		clone := game.Clone()
		if err := clone.Hold(); err == nil && expander.FilterNewGame(clone) {
			action := movesearch.Hold()
			childData := NodeData{Incoming: &action, Game: clone, Resource: NewDecisionResource(clone)}
			t.Arena.AppendChild(h, childData)
		}
	}
}

// Simulator drives repeated calls to SimulateOnce: it picks which
// frontier node to expand next (depth-first: a stack; breadth-first: a
// queue — the choice lives entirely in the Simulator implementation),
// supplies the Expander to use, and reacts to the result.
type Simulator interface {
	Select(t *Tree) (Handle, bool)
	NewExpander(t *Tree, h Handle) Expander
	OnExpanded(t *Tree, h Handle, expander Expander)
}

// SimulateOnce asks sim for a node via Select; if none, returns false.
// Otherwise it builds an Expander, runs Expand, and calls OnExpanded so
// the simulator can update its frontier.
func SimulateOnce(t *Tree, sim Simulator) bool {
	h, ok := sim.Select(t)
	if !ok {
		return false
	}
	expander := sim.NewExpander(t, h)
	Expand(t, h, expander)
	sim.OnExpanded(t, h, expander)
	return true
}
