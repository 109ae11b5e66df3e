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

// stubBot always offers a fixed action, so Template tests can tell
// whether the opener or the fallback answered.
type stubBot struct {
	action movesearch.Action
}

func (b stubBot) Think(*tetris.GameState) (movesearch.Action, bool) { return b.action, true }

func TestTemplatePlaysTheOpenerStepBeforeFallingBackToTheFallbackBot(t *testing.T) {
	opener := NewOpener(
		[]OpenerStep{{Kind: piece.I, Placement: tetris.NewPlacement(piece.O0, grid.Pos(0, 0)), Name: "i"}},
		OpenerStep{Kind: piece.T, Placement: tetris.NewPlacement(piece.O0, grid.Pos(2, 0))},
	)
	fallbackAction := movesearch.Move(movesearch.MoveTransition{Destination: tetris.NewPlacement(piece.O0, grid.Pos(9, 9))})
	tmpl := NewTemplate(opener, stubBot{action: fallbackAction})

	g := tetris.NewGameState(tetris.DefaultRules)
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.I}))
	require.NoError(t, g.SetupFallingPiece(nil))

	action, ok := tmpl.Think(g)
	require.True(t, ok)
	assert.Equal(t, grid.Pos(0, 0), action.Transition.Destination.Position, "the opener's matching step must answer first")
}

func TestTemplateFallsBackWhenTheOpenerHasNoMatchingStep(t *testing.T) {
	opener := NewOpener(
		nil,
		OpenerStep{Kind: piece.T, Placement: tetris.NewPlacement(piece.O0, grid.Pos(2, 0))},
	)
	fallbackAction := movesearch.Move(movesearch.MoveTransition{Destination: tetris.NewPlacement(piece.O0, grid.Pos(9, 9))})
	tmpl := NewTemplate(opener, stubBot{action: fallbackAction})

	g := tetris.NewGameState(tetris.DefaultRules)
	require.NoError(t, g.SupplyNextPieces([]piece.Kind{piece.O}))
	require.NoError(t, g.SetupFallingPiece(nil))

	action, ok := tmpl.Think(g)
	require.True(t, ok)
	assert.Equal(t, grid.Pos(9, 9), action.Transition.Destination.Position)
}
