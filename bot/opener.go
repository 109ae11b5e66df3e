package bot

import (
	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

// OpenerStep is one scripted placement in an Opener: the piece kind it
// applies to, the destination, a name other steps can depend on, and
// the names of steps that must already have been played.
type OpenerStep struct {
	Kind      piece.Kind
	Placement tetris.Placement
	Name      string
	DependsOn []string
}

// Opener is a short scripted sequence of placements building toward a
// final setup move (e.g. a T-spin double setup), followed by that
// final move itself. Steps may be offered out of the listed order —
// OpenerDirector plays whichever ready step matches the piece it is
// offered — since the actual piece sequence the game deals is rarely
// exactly the order the opener was authored in.
type Opener struct {
	Steps    []OpenerStep
	LastMove OpenerStep
}

// NewOpener builds an Opener from steps plus the setup-completing move.
func NewOpener(steps []OpenerStep, lastMove OpenerStep) *Opener {
	return &Opener{Steps: steps, LastMove: lastMove}
}

// OpenerDirector plays an Opener's steps against whatever pieces it is
// offered, tracking which named steps have already been played so
// dependent steps wait their turn.
type OpenerDirector struct {
	opener *Opener
	played map[string]bool
	done   bool
}

// NewOpenerDirector starts directing opener from its first step.
func NewOpenerDirector(opener *Opener) *OpenerDirector {
	return &OpenerDirector{opener: opener, played: map[string]bool{}}
}

// Done reports whether every step, including the final move, has been
// played.
func (d *OpenerDirector) Done() bool { return d.done }

func (d *OpenerDirector) ready(step OpenerStep) bool {
	for _, dep := range step.DependsOn {
		if !d.played[dep] {
			return false
		}
	}
	return true
}

// Next looks for a step (or the final move, once every other step has
// played) matching kind and returns the action that plays it.
func (d *OpenerDirector) Next(kind piece.Kind) (movesearch.Action, bool) {
	if d.done {
		return movesearch.Action{}, false
	}
	remaining := 0
	for _, step := range d.opener.Steps {
		if d.played[step.Name] {
			continue
		}
		remaining++
		if step.Kind != kind || !d.ready(step) {
			continue
		}
		d.played[step.Name] = true
		return d.actionFor(step), true
	}
	if remaining == 0 && d.opener.LastMove.Kind == kind {
		d.done = true
		return d.actionFor(d.opener.LastMove), true
	}
	return movesearch.Action{}, false
}

func (d *OpenerDirector) actionFor(step OpenerStep) movesearch.Action {
	return movesearch.Move(movesearch.MoveTransition{Destination: step.Placement})
}

// TSpinDoubleOpenerLeft is a short scripted opener building a left-side
// T-spin double well, adapted from the deep-trinity playground's
// opener_adviser shapes to this engine's placement/coordinate
// conventions (y=0 at the bottom, rather than the original's top-down
// rows).
func TSpinDoubleOpenerLeft() *Opener {
	return NewOpener(
		[]OpenerStep{
			{Kind: piece.I, Placement: tetris.NewPlacement(piece.O0, grid.Pos(2, 18)), Name: "i"},
			{Kind: piece.O, Placement: tetris.NewPlacement(piece.O0, grid.Pos(7, 18))},
			{Kind: piece.L, Placement: tetris.NewPlacement(piece.O1, grid.Pos(2, 18))},
			{Kind: piece.S, Placement: tetris.NewPlacement(piece.O1, grid.Pos(8, 18)), DependsOn: []string{"i"}},
			{Kind: piece.Z, Placement: tetris.NewPlacement(piece.O0, grid.Pos(4, 18)), Name: "z", DependsOn: []string{"i"}},
			{Kind: piece.J, Placement: tetris.NewPlacement(piece.O2, grid.Pos(4, 16)), DependsOn: []string{"z"}},
		},
		OpenerStep{Kind: piece.T, Placement: tetris.NewPlacement(piece.O1, grid.Pos(1, 17))},
	)
}
