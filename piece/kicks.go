package piece

import "github.com/s-shin/stacker-core/grid"

// kickKey identifies a (fromOrientation, direction) pair. direction is
// +1 for clockwise, -1 for counter-clockwise; 180-degree rotations are
// resolved by the caller as two chained quarter turns (see
// FallingPiece.applyRotate in package tetris), so no direction==2 entry
// is needed here.
type kickKey struct {
	from Orientation
	dir  int
}

// jlstzKicks is the standard SRS wall-kick table shared by J, L, S, T, Z.
var jlstzKicks = map[kickKey][]grid.Position{
	{O0, 1}: {{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
	{O1, -1}: {{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	{O1, 1}: {{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	{O2, -1}: {{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
	{O2, 1}: {{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	{O3, -1}: {{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
	{O3, 1}: {{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
	{O0, -1}: {{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
}

// iKicks is the SRS wall-kick table for the I piece.
var iKicks = map[kickKey][]grid.Position{
	{O0, 1}:  {{X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
	{O1, -1}: {{X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
	{O1, 1}:  {{X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
	{O2, -1}: {{X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
	{O2, 1}:  {{X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
	{O3, -1}: {{X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
	{O3, 1}:  {{X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
	{O0, -1}: {{X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
}

// KickTable returns the ordered offsets to try, in order, when a naive
// rotation of k from "from" in the given direction (+1 CW, -1 CCW)
// fails CanPut. The empty slice (O piece) means only the basic rotated
// position is tried.
func KickTable(k Kind, from Orientation, dir int) []grid.Position {
	var table map[kickKey][]grid.Position
	switch k {
	case I:
		table = iKicks
	case O:
		return nil
	default:
		table = jlstzKicks
	}
	return table[kickKey{from: from, dir: dir}]
}
