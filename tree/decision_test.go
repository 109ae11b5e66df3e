package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

func newGameReadyToPlay(t *testing.T) *tetris.GameState {
	t.Helper()
	g := tetris.NewGameState(tetris.DefaultRules)
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.O, piece.S, piece.Z, piece.L, piece.J, piece.I, piece.T}))
	require.NoError(t, g.SetupFallingPiece(nil))
	return g
}

func TestNewDecisionResourcePopulatesCandidatesWhenAPieceIsFalling(t *testing.T) {
	g := newGameReadyToPlay(t)
	res := NewDecisionResource(g)
	assert.NotEmpty(t, res.Candidates)
}

func TestNewDecisionResourceIsEmptyWithoutAFallingPiece(t *testing.T) {
	g := tetris.NewGameState(tetris.DefaultRules)
	res := NewDecisionResource(g)
	assert.Empty(t, res.Candidates)
}

func TestNewRootNodeDataWrapsGameWithNoIncomingAction(t *testing.T) {
	g := newGameReadyToPlay(t)
	data := NewRootNodeData(g)
	assert.Nil(t, data.Incoming)
	assert.Same(t, g, data.Game)
	assert.NotEmpty(t, data.Resource.Candidates)
}
