package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

// onePieceFromPerfectClear fills the bottom row everywhere except a
// 4-wide gap and leaves every row above empty, so a single horizontal I
// piece dropped into the gap clears that row and, since nothing sits
// above it, empties the whole playfield.
func onePieceFromPerfectClear() *tetris.Playfield {
	pf := tetris.NewPlayfield()
	for x := 0; x < tetris.Width-4; x++ {
		pf.SetCell(grid.Pos(x, 0), grid.Garbage)
	}
	return pf
}

func TestPCFinderFindsAOnePieceClear(t *testing.T) {
	g := tetris.NewGameState(tetris.DefaultRules)
	g.Playfield = onePieceFromPerfectClear()
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.I, piece.O, piece.S, piece.Z, piece.L, piece.J, piece.T}))
	require.NoError(t, g.SetupFallingPiece(nil))

	f := PCFinder{MaxPieces: 1, MaxNodes: 80}
	actions, ok := f.Find(g)
	require.True(t, ok)
	require.Len(t, actions, 1)
	assert.Equal(t, movesearch.ActionMove, actions[0].Kind)
}

func TestPCFinderReportsNoneWhenBoardCannotBeCleared(t *testing.T) {
	g := tetris.NewGameState(tetris.DefaultRules)
	g.Playfield.SetCell(grid.Pos(0, 5), grid.Garbage)
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.O, piece.S, piece.Z, piece.L, piece.J, piece.I, piece.T}))
	require.NoError(t, g.SetupFallingPiece(nil))

	f := PCFinder{MaxPieces: 1, MaxNodes: 20}
	_, ok := f.Find(g)
	assert.False(t, ok)
}
