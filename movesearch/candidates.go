package movesearch

import (
	"github.com/pkg/errors"

	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

// RotationEdge names the rotation that can produce a t-spin-qualifying
// lock: rotating Source by Direction (+1 CW, -1 CCW) lands on the
// transition's destination.
type RotationEdge struct {
	Source    tetris.Placement
	Direction int
}

// MoveTransition is one candidate move: a lockable destination, plus,
// for a T piece whose lock would be a t-spin, the rotation edge that
// produces it.
type MoveTransition struct {
	Destination  tetris.Placement
	RotationEdge *RotationEdge
}

// rotationEdgeFor looks, for a T destination, for a rotation that both
// reaches it and classifies as a t-spin under rules.
func rotationEdgeFor(pf *tetris.Playfield, dst tetris.Placement, rules tetris.Rules) *RotationEdge {
	for _, dir := range []int{1, -1} {
		sources := tetris.ReverseRotationSources(piece.T, dst, dir, pf)
		if len(sources) == 0 {
			continue
		}
		if tetris.ClassifyTSpin(pf, dst, true, rules.TSpinMode) != tetris.TSpinNone {
			return &RotationEdge{Source: sources[0], Direction: dir}
		}
	}
	return nil
}

// GetMoveCandidates computes the lockable subset of placements
// reachable from game's falling piece under brute-force search,
// collapsing alias placements (same covered cells) to one transition.
func GetMoveCandidates(game *tetris.GameState) ([]MoveTransition, error) {
	if game.Falling == nil {
		return nil, errors.Wrap(tetris.ErrPreconditionViolated, "no falling piece")
	}
	cfg := Config{
		Playfield: game.Playfield,
		Kind:      game.Falling.Kind,
		Source:    game.Falling.Placement,
		Rules:     game.Rules,
	}
	reach := BruteForce(cfg)

	var transitions []MoveTransition
	for _, p := range reach.Placements() {
		fp := tetris.NewFallingPieceAt(cfg.Kind, p)
		if !fp.IsLockable(game.Playfield) {
			continue
		}
		isDup := false
		for i := range transitions {
			if p.IsAliasOf(transitions[i].Destination, cfg.Kind) {
				isDup = true
				break
			}
		}
		if isDup {
			continue
		}
		t := MoveTransition{Destination: p}
		if cfg.Kind == piece.T {
			t.RotationEdge = rotationEdgeFor(game.Playfield, p, game.Rules)
		}
		transitions = append(transitions, t)
	}
	if len(transitions) == 0 {
		return nil, errors.Wrap(tetris.ErrNoLegalMove, "no reachable placement is lockable")
	}
	return transitions, nil
}
