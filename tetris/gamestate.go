package tetris

import (
	"github.com/pkg/errors"

	"github.com/s-shin/stacker-core/piece"
)

// noCombo is the sentinel value of both Combo and BackToBack before the
// first clear, or right after a lock resets the streak.
const noCombo = -1

// GameState is the high-level, stateful game: playfield, falling
// piece, hold slot, next-piece queue, rule configuration, and the
// running combo/back-to-back counters and statistics that lock()
// maintains.
type GameState struct {
	Rules      Rules
	Playfield  *Playfield
	Falling    *FallingPiece
	HoldKind   *piece.Kind
	CanHold    bool
	Queue      *NextQueue
	GameOver   bool
	Combo      int
	BackToBack int
	Stats      Statistics
}

// NewGameState returns an empty game under rules, ready to be fed
// pieces via SupplyNextPieces.
func NewGameState(rules Rules) *GameState {
	return &GameState{
		Rules:      rules,
		Playfield:  NewPlayfield(),
		Queue:      DefaultNextQueue(),
		CanHold:    true,
		Combo:      noCombo,
		BackToBack: noCombo,
	}
}

// Clone deep-copies the game, including the playfield, falling piece,
// and queue, so further moves on the copy never affect the original.
// Used by tree expansion, which must try a candidate placement against
// an independent game.
func (g *GameState) Clone() *GameState {
	cp := &GameState{
		Rules:      g.Rules,
		Playfield:  g.Playfield.Clone(),
		CanHold:    g.CanHold,
		Queue:      g.Queue.Clone(),
		GameOver:   g.GameOver,
		Combo:      g.Combo,
		BackToBack: g.BackToBack,
		Stats:      g.Stats,
	}
	if g.Falling != nil {
		cp.Falling = g.Falling.Clone()
	}
	if g.HoldKind != nil {
		h := *g.HoldKind
		cp.HoldKind = &h
	}
	return cp
}

// ForceFalling overwrites the falling piece's placement directly,
// without going through ApplyMove. Used by tree expansion and "quick
// mode" bot runners that already computed a destination via move
// search and don't need the intermediate path. viaRotate records
// whether the destination was reached by a rotation (per the move
// candidate's RotationEdge hint), which governs t-spin detection at
// lock time.
func (g *GameState) ForceFalling(placement Placement, viaRotate bool) error {
	if err := g.requireFalling(); err != nil {
		return err
	}
	g.Falling.Placement = placement
	if viaRotate {
		g.Falling.Path.Append(Rotate(0), placement)
	} else {
		g.Falling.Path.Append(Shift(0), placement)
	}
	return nil
}

// SupplyNextPieces appends chunk to the next-piece queue.
func (g *GameState) SupplyNextPieces(chunk []piece.Kind) error {
	return g.Queue.Supply(chunk)
}

// ShouldSupplyNextPieces reports whether the queue has fallen below its
// visible window.
func (g *GameState) ShouldSupplyNextPieces() bool {
	return g.Queue.ShouldSupply()
}

// SetupFallingPiece pops the given kind (or, if nil, the queue head)
// and spawns it. If the spawn placement collides with the stack, the
// game ends instead of returning an error: game-over is a state, not a
// failure.
func (g *GameState) SetupFallingPiece(k *piece.Kind) error {
	var kind piece.Kind
	if k != nil {
		kind = *k
	} else {
		popped, ok := g.Queue.Pop()
		if !ok {
			return errors.Wrap(ErrPreconditionViolated, "next queue is empty and no piece was given")
		}
		kind = popped
	}
	fp := NewFallingPiece(kind)
	if !g.Playfield.CanPutStamp(fp.Placement.Position, piece.Default.Stamp(fp.Kind, fp.Placement.Orientation)) {
		g.GameOver = true
		g.Falling = nil
		return nil
	}
	g.Falling = fp
	return nil
}

func (g *GameState) requireFalling() error {
	if g.Falling == nil {
		return errors.Wrap(ErrPreconditionViolated, "no falling piece")
	}
	return nil
}

// Shift applies a Shift(n) move to the falling piece, or ShiftToWall(n)
// when toEnd is set.
func (g *GameState) Shift(n int, toEnd bool) error {
	if err := g.requireFalling(); err != nil {
		return err
	}
	move := Shift(n)
	if toEnd {
		move = ShiftToWall(Sign(n))
	}
	g.Falling.ApplyMove(move, g.Playfield, g.Rules)
	return nil
}

// Drop applies a Drop(n) move to the falling piece.
func (g *GameState) Drop(n int) error {
	if err := g.requireFalling(); err != nil {
		return err
	}
	g.Falling.ApplyMove(Drop(n), g.Playfield, g.Rules)
	return nil
}

// FirmDrop drops the falling piece as far as it will go.
func (g *GameState) FirmDrop() error {
	if err := g.requireFalling(); err != nil {
		return err
	}
	g.Falling.ApplyMove(FirmDropMove, g.Playfield, g.Rules)
	return nil
}

// Rotate applies a Rotate(n) move to the falling piece.
func (g *GameState) Rotate(n int) error {
	if err := g.requireFalling(); err != nil {
		return err
	}
	g.Falling.ApplyMove(Rotate(n), g.Playfield, g.Rules)
	return nil
}

// Hold requires CanHold; it swaps the falling piece with the hold slot
// (or, if the slot is empty, parks the falling piece there and spawns
// the next queued piece), then sets CanHold to false.
func (g *GameState) Hold() error {
	if err := g.requireFalling(); err != nil {
		return err
	}
	if !g.CanHold {
		return errors.Wrap(ErrPreconditionViolated, "hold already used this piece")
	}
	falling := g.Falling.Kind
	if g.HoldKind == nil {
		g.HoldKind = &falling
		g.Falling = nil
		if err := g.SetupFallingPiece(nil); err != nil {
			return err
		}
	} else {
		swapped := *g.HoldKind
		g.HoldKind = &falling
		if err := g.SetupFallingPiece(&swapped); err != nil {
			return err
		}
	}
	g.CanHold = false
	g.Stats.RecordHold()
	return nil
}

// Lock requires the falling piece to be lockable; it stamps the piece,
// clears filled rows, updates combo/back-to-back/perfect-clear/
// statistics, clears the falling piece, resets CanHold, and spawns the
// next piece (or leaves the cleared state if the queue has none).
func (g *GameState) Lock() (LineClear, error) {
	var zero LineClear
	if err := g.requireFalling(); err != nil {
		return zero, err
	}
	if !g.Falling.IsLockable(g.Playfield) {
		return zero, errors.Wrap(ErrPreconditionViolated, "falling piece is not lockable")
	}
	lc := g.Falling.Lock(g.Playfield, g.Rules)

	switch {
	case lc.IsAny():
		g.Combo++
	default:
		g.Combo = noCombo
	}
	switch {
	case lc.IsDifficult():
		g.BackToBack++
	case lc.IsAny():
		g.BackToBack = noCombo
	}
	if lc.IsAny() && g.Playfield.IsEmpty() {
		g.Stats.NotePerfectClear()
	}
	g.Stats.RecordLock(lc)
	if g.Combo >= 0 {
		g.Stats.NoteCombo(g.Combo)
	}
	if g.BackToBack >= 0 {
		g.Stats.NoteBackToBack(g.BackToBack)
	}

	g.Falling = nil
	g.CanHold = true
	if g.Queue.Len() > 0 {
		if err := g.SetupFallingPiece(nil); err != nil {
			return lc, err
		}
	}
	return lc, nil
}
