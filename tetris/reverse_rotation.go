package tetris

import (
	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
)

// rotateOnceFrom performs one SRS quarter turn (with kicks) without a
// FallingPiece receiver, for use by both FallingPiece.applyRotate and
// the reverse-rotation search below.
func rotateOnceFrom(k piece.Kind, from Placement, dir int, pf *Playfield) (Placement, bool) {
	to := from.Orientation.Add(dir)
	s := piece.Default.Stamp(k, to)
	basic := Placement{Orientation: to, Position: from.Position}
	if pf.CanPutStamp(basic.Position, s) {
		return basic, true
	}
	for _, off := range piece.KickTable(k, from.Orientation, dir) {
		cand := basic.Position.Add(off)
		if pf.CanPutStamp(cand, s) {
			return Placement{Orientation: to, Position: cand}, true
		}
	}
	return Placement{}, false
}

// ReverseRotationSources enumerates every source placement (same kind,
// orientation = dst.Orientation-dir) such that rotating it by dir with
// the kick table lands exactly on dst. Used by t-spin move planning
// (movesearch.GetMoveCandidates' rotation-edge hints).
func ReverseRotationSources(k piece.Kind, dst Placement, dir int, pf *Playfield) []Placement {
	from := dst.Orientation.Add(-dir)
	offsets := make([]grid.Position, 0, 5)
	offsets = append(offsets, grid.Pos(0, 0))
	offsets = append(offsets, piece.KickTable(k, from, dir)...)

	var sources []Placement
	seen := make(map[grid.Position]bool, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		off := offsets[i]
		srcPos := dst.Position.Sub(off)
		if seen[srcPos] {
			continue
		}
		seen[srcPos] = true
		src := Placement{Orientation: from, Position: srcPos}
		if !pf.CanPutStamp(srcPos, piece.Default.Stamp(k, from)) {
			continue
		}
		if result, ok := rotateOnceFrom(k, src, dir, pf); ok && result.Orientation == dst.Orientation && result.Position == dst.Position {
			sources = append(sources, src)
		}
	}
	return sources
}
