// Package bot provides the think/runner contract reference automated
// players implement, plus helpers (openers, a perfect-clear finder, an
// ML-facing integer action encoding) built on top of movesearch and
// tree.
package bot

import (
	"github.com/pkg/errors"

	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/moveplayer"
	"github.com/s-shin/stacker-core/piece"
	"github.com/s-shin/stacker-core/tetris"
)

// Bot decides the next action for game. ok is false when the bot has
// no action to offer (e.g. a tree bot whose search found no children);
// the runner then treats the game as stuck.
type Bot interface {
	Think(game *tetris.GameState) (action movesearch.Action, ok bool)
}

// Generator supplies whole bags of pieces (rng.BagGenerator satisfies
// this without an import cycle between bot and rng).
type Generator interface {
	Generate() []piece.Kind
}

// Runner drives a Bot against a GameState to completion or an
// iteration cap.
type Runner struct {
	Game         *tetris.GameState
	Bot          Bot
	Generator    Generator
	Animated     bool
	IterationCap int
}

// NewRunner builds a Runner with the given collaborators.
func NewRunner(game *tetris.GameState, b Bot, gen Generator, iterationCap int) *Runner {
	return &Runner{Game: game, Bot: b, Generator: gen, IterationCap: iterationCap}
}

// Run drives the loop: supply pieces as needed, ask the bot to think,
// apply its action, lock, repeat — until game-over, the bot offers no
// action, or IterationCap iterations have run. Returns the number of
// iterations actually executed.
func (r *Runner) Run() (int, error) {
	i := 0
	for ; i < r.IterationCap; i++ {
		if r.Game.GameOver {
			return i, nil
		}
		if r.Game.ShouldSupplyNextPieces() {
			if err := r.Game.SupplyNextPieces(r.Generator.Generate()); err != nil {
				return i, err
			}
		}
		if r.Game.Falling == nil {
			if err := r.Game.SetupFallingPiece(nil); err != nil {
				return i, err
			}
			if r.Game.GameOver {
				return i, nil
			}
		}

		action, ok := r.Bot.Think(r.Game)
		if !ok {
			return i, errors.New("bot: no action offered")
		}

		if action.Kind == movesearch.ActionHold {
			if err := r.Game.Hold(); err != nil {
				return i, err
			}
			continue
		}

		if err := r.applyMove(action.Transition); err != nil {
			return i, err
		}
		if _, err := r.Game.Lock(); err != nil {
			return i, err
		}
	}
	return i, nil
}

func (r *Runner) applyMove(t movesearch.MoveTransition) error {
	if !r.Animated {
		return r.Game.ForceFalling(t.Destination, t.RotationEdge != nil)
	}
	path, ok := movesearch.GetAlmostGoodMovePathForTransition(r.Game, t)
	if !ok {
		return errors.New("bot: destination unreachable")
	}
	player := moveplayer.NewPlayer(path)
	for player.Step(r.Game) {
	}
	return nil
}
