package tetris

import (
	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
)

// FallingPiece is the currently active, still-movable piece: a kind
// plus a placement plus the accumulated path of accepted moves since
// spawn.
type FallingPiece struct {
	Kind      piece.Kind
	Placement Placement
	Path      *MovePath
}

// NewFallingPiece spawns k at its catalogue spawn placement.
func NewFallingPiece(k piece.Kind) *FallingPiece {
	o, pos := piece.Default.SpawnPlacement(k)
	pl := NewPlacement(o, pos)
	return &FallingPiece{Kind: k, Placement: pl, Path: NewMovePath(pl)}
}

// NewFallingPieceAt builds a FallingPiece of kind k already at
// placement pl, with an empty move path. Used by move-search code that
// needs to probe a hypothetical placement (IsLockable, Lock) without
// having actually traversed a path to it.
func NewFallingPieceAt(k piece.Kind, pl Placement) *FallingPiece {
	return &FallingPiece{Kind: k, Placement: pl, Path: NewMovePath(pl)}
}

func (fp *FallingPiece) stamp() grid.Grid {
	return piece.Default.Stamp(fp.Kind, fp.Placement.Orientation)
}

// ApplyMove applies move against pf under rules, stepping one unit at a
// time and stopping at the first step that does not fit. Returns true
// iff at least one unit step succeeded; every successful step is
// appended to fp.Path.
func (fp *FallingPiece) ApplyMove(move Move, pf *Playfield, rules Rules) bool {
	switch move.Kind {
	case MoveShift:
		return fp.applyShift(move.N, pf)
	case MoveDrop:
		return fp.applyDrop(move.N, pf)
	case MoveRotate:
		return fp.applyRotate(move.N, pf, rules)
	default:
		return false
	}
}

func (fp *FallingPiece) applyShift(n int, pf *Playfield) bool {
	dir := Sign(n)
	if dir == 0 {
		return false
	}
	stamp := fp.stamp()
	succeeded := 0
	for i := 0; i < abs(n); i++ {
		cand := fp.Placement.Position.Add(grid.Pos(dir, 0))
		if !pf.CanPutStamp(cand, stamp) {
			break
		}
		fp.Placement.Position = cand
		succeeded++
		fp.Path.Append(Shift(dir), fp.Placement)
	}
	return succeeded > 0
}

func (fp *FallingPiece) applyDrop(n int, pf *Playfield) bool {
	dir := Sign(n)
	if dir == 0 {
		return false
	}
	stamp := fp.stamp()
	succeeded := 0
	for i := 0; i < abs(n); i++ {
		cand := fp.Placement.Position.Add(grid.Pos(0, -dir))
		if !pf.CanPutStamp(cand, stamp) {
			break
		}
		fp.Placement.Position = cand
		succeeded++
		fp.Path.Append(Drop(dir), fp.Placement)
	}
	return succeeded > 0
}

func (fp *FallingPiece) applyRotate(n int, pf *Playfield, rules Rules) bool {
	dir := Sign(n)
	if dir == 0 {
		return false
	}
	succeeded := 0
	for i := 0; i < abs(n); i++ {
		next, ok := rotateOnceFrom(fp.Kind, fp.Placement, dir, pf)
		if !ok {
			break
		}
		fp.Placement = next
		succeeded++
		fp.Path.Append(Rotate(dir), fp.Placement)
	}
	return succeeded > 0
}

// IsLockable reports whether the piece cannot move down by one.
func (fp *FallingPiece) IsLockable(pf *Playfield) bool {
	return pf.NumDroppableRows(fp.Placement.Position, fp.stamp()) == 0
}

// lastMoveWasRotate reports whether the most recently accepted move was
// a rotation.
func (fp *FallingPiece) lastMoveWasRotate() bool {
	m, ok := fp.Path.LastMove()
	return ok && m.Kind == MoveRotate
}

// Lock stamps the piece into pf and compacts any filled rows, returning
// the resulting LineClear. The caller is responsible for checking
// IsLockable first; locking a piece that still has drop distance stamps
// it mid-air.
func (fp *FallingPiece) Lock(pf *Playfield, rules Rules) LineClear {
	ts := TSpinNone
	if fp.Kind == piece.T {
		ts = tSpinKind(pf, fp.Placement, fp.lastMoveWasRotate(), rules.TSpinMode)
	}
	pf.PutColored(fp.Placement.Position, fp.stamp(), fp.Kind.Cell())
	cleared := pf.DropFilledRows()
	return LineClear{NumLines: cleared, TSpin: ts}
}

// Clone deep-copies the falling piece, including its move path.
func (fp *FallingPiece) Clone() *FallingPiece {
	return &FallingPiece{Kind: fp.Kind, Placement: fp.Placement, Path: fp.Path.Clone()}
}

// TryMove is a stateless move application used by movesearch: it
// simulates move (any magnitude, applied unit step by unit step as in
// ApplyMove) from an arbitrary placement without requiring a live
// FallingPiece, returning the resulting placement and whether at least
// one step was accepted.
func TryMove(k piece.Kind, from Placement, move Move, pf *Playfield, rules Rules) (Placement, bool) {
	fp := &FallingPiece{Kind: k, Placement: from, Path: NewMovePath(from)}
	if !fp.ApplyMove(move, pf, rules) {
		return from, false
	}
	return fp.Placement, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
