// Package grid implements value-typed 2-D cell containers shared by the
// bit-packed playfield and the piece catalogue: positions, cells, a plain
// reference grid, and the derived queries (contour, density, connected
// components) that bitgrid.PrimBitGrid/BasicBitGrid are checked against.
package grid

import "fmt"

// Position is a signed (x, y) lattice point. Pieces legitimately occupy
// negative positions during spawn and wall kicks, so X and Y are signed.
type Position struct {
	X, Y int
}

// Pos is a convenience constructor.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the additive inverse of p.
func (p Position) Neg() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// Less is a total, lexicographic order: compare X first, then Y.
func (p Position) Less(q Position) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String renders p as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a unit (or scaled) step used by Grid.ReachablePos.
type Direction = Position

var (
	Left  = Position{X: -1, Y: 0}
	Right = Position{X: 1, Y: 0}
	Down  = Position{X: 0, Y: -1}
	Up    = Position{X: 0, Y: 1}
)
