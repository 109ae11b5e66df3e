package tetris

import (
	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/piece"
)

// Placement is an orientation plus a position (the bounding box's
// bottom-left corner in playfield coordinates).
type Placement struct {
	Orientation piece.Orientation
	Position    grid.Position
}

// NewPlacement is a small convenience constructor.
func NewPlacement(o piece.Orientation, p grid.Position) Placement {
	return Placement{Orientation: o, Position: p}
}

// cellSet returns the set of absolute cells k covers at this placement,
// used by IsAliasOf.
func (pl Placement) cellSet(k piece.Kind) map[grid.Position]bool {
	stamp := piece.Default.Stamp(k, pl.Orientation)
	set := make(map[grid.Position]bool, 4)
	for y := 0; y < stamp.Height(); y++ {
		for x := 0; x < stamp.Width(); x++ {
			if stamp.Cell(grid.Pos(x, y)).IsFilled() {
				set[pl.Position.Add(grid.Pos(x, y))] = true
			}
		}
	}
	return set
}

// IsAliasOf reports whether pl and other cover exactly the same cells
// for piece kind k — true for O in every rotation, I/S/Z in 180° pairs.
func (pl Placement) IsAliasOf(other Placement, k piece.Kind) bool {
	a, b := pl.cellSet(k), other.cellSet(k)
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}
