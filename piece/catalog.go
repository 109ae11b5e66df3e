package piece

import (
	"github.com/s-shin/stacker-core/bitgrid"
	"github.com/s-shin/stacker-core/grid"
)

// FieldWidth is the conventional playfield width the spawn positions in
// this catalogue are computed for (spec.md's data model assumes a
// 10-wide field throughout its concrete scenarios).
const FieldWidth = 10

// VisibleHeight is the conventional visible zone height used to place
// spawn rows near the top of the visible playfield.
const VisibleHeight = 20

// BoxSize returns the square bounding box side for k: 4 for I, 2 for O,
// 3 otherwise.
func BoxSize(k Kind) int {
	switch k {
	case I:
		return 4
	case O:
		return 2
	default:
		return 3
	}
}

// cellsByOrientation lists, for each kind and orientation, the filled
// (x, y) cells within the kind's bounding box (y=0 at the box's bottom).
// These are the standard Tetris Guideline / SRS shapes.
var cellsByOrientation = map[Kind][NumOrientations][]grid.Position{
	T: {
		{{1, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {2, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{1, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	J: {
		{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {2, 2}, {1, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 2}, {1, 1}, {0, 0}, {1, 0}},
	},
	L: {
		{{2, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 0}},
		{{0, 2}, {1, 2}, {1, 1}, {1, 0}},
	},
	S: {
		{{1, 2}, {2, 2}, {0, 1}, {1, 1}},
		{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 1}, {2, 1}, {0, 0}, {1, 0}},
		{{0, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	Z: {
		{{0, 2}, {1, 2}, {1, 1}, {2, 1}},
		{{2, 2}, {1, 1}, {2, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{1, 2}, {0, 1}, {1, 1}, {0, 0}},
	},
	I: {
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
}

// Store is the shared ConstantsStore backing every orientation stamp.
// Piece stamps use uint16 words: the largest box is 4x4 = 16 bits.
var Store = bitgrid.NewConstantsStore[uint16]()

// Data is one kind's immutable catalogue entry.
type Data struct {
	Kind         Kind
	BoxSize      int
	Orientations [NumOrientations]*bitgrid.PrimBitGrid[uint16]
	SpawnPos     grid.Position
}

// Catalog maps every Kind to its Data. The zero value is never used;
// Default is populated once at init.
type Catalog struct {
	data [NumKinds]*Data
}

// Get returns the catalogue entry for k.
func (c *Catalog) Get(k Kind) *Data {
	return c.data[k]
}

// Stamp returns the bit-grid stamp for (k, o).
func (c *Catalog) Stamp(k Kind, o Orientation) *bitgrid.PrimBitGrid[uint16] {
	return c.data[k].Orientations[o]
}

// SpawnPlacement returns the default (orientation 0, spawn position) for
// k.
func (c *Catalog) SpawnPlacement(k Kind) (Orientation, grid.Position) {
	return O0, c.data[k].SpawnPos
}

func buildStamp(k Kind, o Orientation) *bitgrid.PrimBitGrid[uint16] {
	size := BoxSize(k)
	g := bitgrid.NewPrimBitGrid[uint16](Store, size, size, size)
	for _, p := range cellsByOrientation[k][o] {
		g.SetCell(p, k.Cell())
	}
	return g
}

func spawnPosition(k Kind) grid.Position {
	size := BoxSize(k)
	x := (FieldWidth - size) / 2
	var y int
	if size == 4 {
		y = VisibleHeight - 3
	} else {
		y = VisibleHeight - 2
	}
	return grid.Pos(x, y)
}

// NewCatalog builds every orientation stamp and spawn position. Called
// once; the result is treated as immutable thereafter.
func NewCatalog() *Catalog {
	c := &Catalog{}
	for _, k := range AllKinds {
		d := &Data{Kind: k, BoxSize: BoxSize(k), SpawnPos: spawnPosition(k)}
		for o := Orientation(0); o < NumOrientations; o++ {
			d.Orientations[o] = buildStamp(k, o)
		}
		c.data[k] = d
	}
	return c
}

// Default is the process-wide catalogue every game/grid references,
// mirroring the teacher's pattern of global read-only tables built once
// at init (engine/attack.go, engine/zobrist.go).
var Default = NewCatalog()
