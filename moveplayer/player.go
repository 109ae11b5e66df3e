// Package moveplayer replays a tetris.MovePath against a live game,
// one recorded move at a time.
package moveplayer

import "github.com/s-shin/stacker-core/tetris"

// Player steps through a MovePath's recorded moves against a
// GameState's falling piece.
type Player struct {
	path *tetris.MovePath
	next int
}

// NewPlayer wraps path, starting at its first move.
func NewPlayer(path *tetris.MovePath) *Player {
	return &Player{path: path}
}

// Step applies the next move in the path to game's falling piece,
// returning false when the path is exhausted. The path contract
// guarantees the move was valid against the playfield it was produced
// for, so a rejection here indicates the playfield has since diverged
// from that contract; Step panics in that case rather than silently
// desyncing the caller from the path.
func (p *Player) Step(game *tetris.GameState) bool {
	if p.next >= len(p.path.Items) {
		return false
	}
	item := p.path.Items[p.next]
	p.next++
	var err error
	switch item.Move.Kind {
	case tetris.MoveShift:
		err = game.Shift(item.Move.N, false)
	case tetris.MoveDrop:
		err = game.Drop(item.Move.N)
	case tetris.MoveRotate:
		err = game.Rotate(item.Move.N)
	}
	if err != nil {
		panic("moveplayer: " + err.Error())
	}
	if game.Falling == nil || game.Falling.Placement != item.Result {
		panic("moveplayer: move path diverged from playfield")
	}
	return true
}

// Done reports whether every move in the path has been applied.
func (p *Player) Done() bool { return p.next >= len(p.path.Items) }
