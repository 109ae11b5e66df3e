package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

func TestEncodeActionHoldIsZero(t *testing.T) {
	assert.Equal(t, 0, EncodeAction(movesearch.Hold(), 0, 0))
}

func TestEncodeActionMoveIsNeverZeroAndDistinguishesFields(t *testing.T) {
	base := movesearch.Move(movesearch.MoveTransition{
		Destination: tetris.NewPlacement(piece.O0, grid.Pos(0, 0)),
	})
	encoded := EncodeAction(base, 10, 0)
	assert.NotZero(t, encoded)

	rotatedTransition := movesearch.MoveTransition{
		Destination:  tetris.NewPlacement(piece.O0, grid.Pos(0, 0)),
		RotationEdge: &movesearch.RotationEdge{Source: tetris.NewPlacement(piece.O0, grid.Pos(0, 0)), Direction: 1},
	}
	rotated := EncodeAction(movesearch.Move(rotatedTransition), 10, 0)
	assert.NotEqual(t, encoded, rotated, "the wasRotated bit must change the encoding")

	shifted := movesearch.Move(movesearch.MoveTransition{
		Destination: tetris.NewPlacement(piece.O0, grid.Pos(1, 0)),
	})
	assert.NotEqual(t, encoded, EncodeAction(shifted, 10, 0), "a different x must change the encoding")

	rotatedOrientation := movesearch.Move(movesearch.MoveTransition{
		Destination: tetris.NewPlacement(piece.O1, grid.Pos(0, 0)),
	})
	assert.NotEqual(t, encoded, EncodeAction(rotatedOrientation, 10, 0), "a different orientation must change the encoding")
}
