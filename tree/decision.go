package tree

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
)

// DecisionResource is the cached, reusable work a stack-tree node keeps
// around: the lockable placements reachable from its falling piece, if
// any (nil when there is no falling piece, e.g. the node is already
// game-over).
type DecisionResource struct {
	Candidates []movesearch.MoveTransition
}

// NewDecisionResource computes game's move candidates, treating
// ErrNoLegalMove (or no falling piece at all) as "nothing to offer"
// rather than an error: a dead-end node is valid, just childless.
func NewDecisionResource(game *tetris.GameState) DecisionResource {
	if game.Falling == nil {
		return DecisionResource{}
	}
	candidates, err := movesearch.GetMoveCandidates(game)
	if err != nil {
		return DecisionResource{}
	}
	return DecisionResource{Candidates: candidates}
}

// NodeData is what every stack-tree node stores: the action that
// produced it (nil for the root), the game state at this node, and its
// decision resource.
type NodeData struct {
	Incoming *movesearch.Action
	Game     *tetris.GameState
	Resource DecisionResource
}

// NewRootNodeData wraps game (no incoming action) with a freshly
// computed decision resource.
func NewRootNodeData(game *tetris.GameState) NodeData {
	return NodeData{Game: game, Resource: NewDecisionResource(game)}
}
