package tetris

import (
	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
)

// tCornerOffsets are the four corners of the T piece's 3x3 bounding box,
// relative to the placement position.
var tCornerOffsets = [4]grid.Position{
	{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2},
}

// tFrontCorners indexes tCornerOffsets for the two corners on the side
// the T's point faces, by orientation (O0 points up, O1 right, O2 down,
// O3 left, per piece/catalog.go's shape table).
var tFrontCorners = [4][2]int{
	{2, 3}, // O0 up:    top-left, top-right
	{1, 3}, // O1 right: bottom-right, top-right
	{0, 1}, // O2 down:  bottom-left, bottom-right
	{0, 2}, // O3 left:  bottom-left, top-left
}

func cornerFilled(pf *Playfield, p grid.Position) bool {
	if p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= InternalHeight {
		return true
	}
	return pf.Cell(p).IsFilled()
}

// ClassifyTSpin exports tSpinKind for move-search packages that need to
// classify a hypothetical T placement (e.g. when scoring move
// candidates) without owning a live FallingPiece.
func ClassifyTSpin(pf *Playfield, placement Placement, afterRotate bool, mode TSpinMode) TSpinKind {
	return tSpinKind(pf, placement, afterRotate, mode)
}

// tSpinKind classifies a T lock per the corner rule. lastMoveWasRotate
// gates the whole procedure: a T that locked after a pure shift/drop
// never qualifies, matching the "on the move after the final rotation"
// framing.
func tSpinKind(pf *Playfield, placement Placement, lastMoveWasRotate bool, mode TSpinMode) TSpinKind {
	if !lastMoveWasRotate {
		return TSpinNone
	}
	filled := [4]bool{}
	n := 0
	for i, off := range tCornerOffsets {
		filled[i] = cornerFilled(pf, placement.Position.Add(off))
		if filled[i] {
			n++
		}
	}
	switch n {
	case 4:
		return TSpinRegular
	case 3:
		front := tFrontCorners[placement.Orientation]
		frontFilled := filled[front[0]] && filled[front[1]]
		if mode == TSpinStrict {
			return TSpinRegular
		}
		if frontFilled {
			return TSpinRegular
		}
		return TSpinMiniKind
	default:
		return TSpinNone
	}
}

// classifyLock builds the LineClear for a just-locked piece of kind k at
// placement, given the number of lines dropFilledRows reported and
// whether the final accepted move was a rotation.
func classifyLock(pf *Playfield, k piece.Kind, placement Placement, numLines int, lastMoveWasRotate bool, mode TSpinMode) LineClear {
	ts := TSpinNone
	if k == piece.T {
		ts = tSpinKind(pf, placement, lastMoveWasRotate, mode)
	}
	return LineClear{NumLines: numLines, TSpin: ts}
}
