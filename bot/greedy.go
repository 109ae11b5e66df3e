package bot

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
)

// Greedy picks, among the current falling piece's move candidates, the
// one that lands lowest (smallest resulting Position.Y). It never
// holds. A minimal reference bot: it exercises the E/F contracts
// without modeling line clears or board shape at all.
type Greedy struct{}

// Think implements Bot.
func (Greedy) Think(game *tetris.GameState) (movesearch.Action, bool) {
	candidates, err := movesearch.GetMoveCandidates(game)
	if err != nil || len(candidates) == 0 {
		return movesearch.Action{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Destination.Position.Y < best.Destination.Position.Y {
			best = c
		}
	}
	return movesearch.Move(best), true
}
