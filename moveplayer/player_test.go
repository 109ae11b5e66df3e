package moveplayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

func TestPlayerStepsThePathToCompletion(t *testing.T) {
	g := tetris.NewGameState(tetris.DefaultRules)
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.O, piece.S, piece.Z, piece.L, piece.J, piece.I, piece.T}))
	require.NoError(t, g.SetupFallingPiece(nil))

	initial := g.Falling.Placement
	path := tetris.NewMovePath(initial)
	next, ok := tetris.TryMove(g.Falling.Kind, initial, tetris.Shift(1), g.Playfield, g.Rules)
	require.True(t, ok)
	path.Append(tetris.Shift(1), next)
	final, ok := tetris.TryMove(g.Falling.Kind, next, tetris.FirmDropMove, g.Playfield, g.Rules)
	require.True(t, ok)
	path.Append(tetris.FirmDropMove, final)

	p := NewPlayer(path)
	assert.False(t, p.Done())
	assert.True(t, p.Step(g))
	assert.Equal(t, next, g.Falling.Placement)
	assert.False(t, p.Done())

	assert.True(t, p.Step(g))
	assert.Equal(t, final, g.Falling.Placement)
	assert.True(t, p.Done())

	assert.False(t, p.Step(g))
}

func TestPlayerDoneOnAFreshEmptyPath(t *testing.T) {
	initial := tetris.NewPlacement(piece.O0, grid.Pos(3, 3))
	path := tetris.NewMovePath(initial)
	p := NewPlayer(path)
	assert.True(t, p.Done())
}
