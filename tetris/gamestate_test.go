package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
)

func TestSetupFallingPieceGameOverWhenSpawnCollides(t *testing.T) {
	g := NewGameState(DefaultRules)
	o, pos := piece.Default.SpawnPlacement(piece.O)
	stamp := piece.Default.Stamp(piece.O, o)
	// Fill every cell the spawn stamp would occupy, so spawning collides.
	for y := 0; y < stamp.Height(); y++ {
		for x := 0; x < stamp.Width(); x++ {
			if stamp.Cell(grid.Pos(x, y)).IsFilled() {
				g.Playfield.SetCell(pos.Add(grid.Pos(x, y)), grid.Garbage)
			}
		}
	}

	err := g.SetupFallingPiece(kindPtr(piece.O))
	require.NoError(t, err, "game-over is a state, not an error")
	assert.True(t, g.GameOver)
	assert.Nil(t, g.Falling)
}

func TestRequireFallingErrorsOnEveryOpWithNoFallingPiece(t *testing.T) {
	g := NewGameState(DefaultRules)
	assert.Error(t, g.Shift(1, false))
	assert.Error(t, g.Drop(1))
	assert.Error(t, g.FirmDrop())
	assert.Error(t, g.Rotate(1))
	assert.Error(t, g.Hold())
	_, err := g.Lock()
	assert.Error(t, err)
}

func TestShouldSupplyAndSupplyNextPieces(t *testing.T) {
	g := NewGameState(DefaultRules)
	assert.True(t, g.ShouldSupplyNextPieces())
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.S, piece.Z, piece.L, piece.J, piece.I, piece.T, piece.O}))
	assert.False(t, g.ShouldSupplyNextPieces())
}

func TestCloneIsFullyIndependentOfOriginal(t *testing.T) {
	g := NewGameState(DefaultRules)
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.S, piece.Z, piece.L, piece.J, piece.I, piece.T, piece.O}))
	require.NoError(t, g.SetupFallingPiece(nil))

	cp := g.Clone()
	require.NoError(t, cp.Shift(1, false))
	require.NoError(t, cp.FirmDrop())
	_, err := cp.Lock()
	require.NoError(t, err)

	assert.NotEqual(t, g.Playfield.NumBlocks(), cp.Playfield.NumBlocks())
	assert.NotNil(t, g.Falling)
}
