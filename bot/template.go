package bot

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
)

// Template plays a scripted Opener while it still has matching steps,
// then falls back to another Bot once the opener is exhausted (or
// offers nothing for the current piece). The reference
// "opener-template" bot.
type Template struct {
	Director *OpenerDirector
	Fallback Bot
}

// NewTemplate pairs an opener with a fallback bot.
func NewTemplate(opener *Opener, fallback Bot) *Template {
	return &Template{Director: NewOpenerDirector(opener), Fallback: fallback}
}

// Think implements Bot.
func (t *Template) Think(game *tetris.GameState) (movesearch.Action, bool) {
	if game.Falling != nil && !t.Director.Done() {
		if action, ok := t.Director.Next(game.Falling.Kind); ok {
			return action, true
		}
	}
	return t.Fallback.Think(game)
}
