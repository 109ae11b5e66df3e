package tetris

import (
	"github.com/s-shin/stacker-core/bitgrid"
	"github.com/s-shin/stacker-core/grid"
)

// InternalHeight is the playfield's total row count, including the
// buffer zone above the visible area where pieces spawn and kick.
const InternalHeight = 40

// VisibleHeight is the number of rows rendered to a player.
const VisibleHeight = 20

// Width is the conventional playfield width (see piece.FieldWidth).
const Width = 10

// strideHeight rows pack into each BasicBitGrid slice: 10*6 = 60 bits,
// comfortably inside a uint64 word.
const strideHeight = 6

// Store is the shared bit-grid constants store backing every Playfield.
var Store = bitgrid.NewConstantsStore[uint64]()

// Playfield is a bit-packed occupancy grid of fixed internal height with
// a parallel colour overlay (the bit grid itself only distinguishes
// filled from empty — see bitgrid.PrimBitGrid's doc comment — so
// per-cell piece colour, needed for rendering/garbage bookkeeping, is
// tracked alongside it here).
type Playfield struct {
	occ    *bitgrid.BasicBitGrid[uint64]
	colors []grid.Cell // row-major, len == Width*InternalHeight
}

// NewPlayfield returns an empty playfield.
func NewPlayfield() *Playfield {
	return &Playfield{
		occ:    bitgrid.NewBasicBitGrid(Store, Width, InternalHeight, Width, strideHeight),
		colors: make([]grid.Cell, Width*InternalHeight),
	}
}

func (pf *Playfield) colorIndex(p grid.Position) (int, bool) {
	if p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= InternalHeight {
		return 0, false
	}
	return p.Y*Width + p.X, true
}

// Cell returns the coloured cell at p (Empty if out of bounds or empty).
func (pf *Playfield) Cell(p grid.Position) grid.Cell {
	idx, ok := pf.colorIndex(p)
	if !ok {
		return grid.Empty
	}
	return pf.colors[idx]
}

// SetCell sets both occupancy and colour at p.
func (pf *Playfield) SetCell(p grid.Position, c grid.Cell) {
	pf.occ.SetCell(p, c)
	if idx, ok := pf.colorIndex(p); ok {
		pf.colors[idx] = c
	}
}

// Occupancy exposes the underlying bit grid for collision queries.
func (pf *Playfield) Occupancy() *bitgrid.BasicBitGrid[uint64] { return pf.occ }

// CanPutStamp reports whether stamp (coloured Empty/Any only) fits at p.
func (pf *Playfield) CanPutStamp(p grid.Position, stamp grid.Grid) bool {
	return pf.occ.CanPut(p, stamp)
}

// NumDroppableRows is how far stamp can fall from p before colliding.
func (pf *Playfield) NumDroppableRows(p grid.Position, stamp grid.Grid) int {
	return pf.occ.NumDroppableRows(p, stamp)
}

// PutColored stamps sub's filled cells into the playfield at p with
// colour c, updating both the occupancy bit grid and the colour
// overlay. Out-of-bounds filled cells are silently dropped, matching
// grid.Grid.Put's contract.
func (pf *Playfield) PutColored(p grid.Position, sub grid.Grid, c grid.Cell) {
	for y := 0; y < sub.Height(); y++ {
		for x := 0; x < sub.Width(); x++ {
			if sub.Cell(grid.Pos(x, y)).IsEmpty() {
				continue
			}
			q := p.Add(grid.Pos(x, y))
			pf.SetCell(q, c)
		}
	}
}

// Clone duplicates the playfield, including the colour overlay.
func (pf *Playfield) Clone() *Playfield {
	cp := &Playfield{
		occ:    pf.occ.Clone().(*bitgrid.BasicBitGrid[uint64]),
		colors: make([]grid.Cell, len(pf.colors)),
	}
	copy(cp.colors, pf.colors)
	return cp
}

// DropFilledRows clears completely filled rows, compacts the remainder
// downward, and returns the number of rows cleared. The colour overlay
// is shifted in lockstep with the occupancy grid: rows are filtered by
// fullness *before* pf.occ.DropFilledRows mutates it, since the bit
// grid only reports how many rows cleared, not which ones.
func (pf *Playfield) DropFilledRows() int {
	newColors := make([]grid.Cell, len(pf.colors))
	writeY := 0
	for y := 0; y < InternalHeight; y++ {
		if pf.occ.IsRowFilled(y) {
			continue
		}
		copy(newColors[writeY*Width:(writeY+1)*Width], pf.colors[y*Width:(y+1)*Width])
		writeY++
	}
	cleared := pf.occ.DropFilledRows()
	pf.colors = newColors
	return cleared
}

// IsRowFilled/IsRowEmpty/NumBlocks delegate to the occupancy grid.
func (pf *Playfield) IsRowFilled(y int) bool { return pf.occ.IsRowFilled(y) }
func (pf *Playfield) IsRowEmpty(y int) bool  { return pf.occ.IsRowEmpty(y) }
func (pf *Playfield) NumBlocks() int         { return pf.occ.NumBlocks() }

// IsEmpty reports whether every cell is empty (used for perfect-clear
// detection).
func (pf *Playfield) IsEmpty() bool { return pf.occ.NumBlocks() == 0 }

// Contour returns, per column, 1 + the y of the topmost filled cell.
func (pf *Playfield) Contour() []int { return pf.occ.Contour() }

// Format renders the visible zone, one character per cell, top row
// first.
func (pf *Playfield) Format() string {
	g := grid.NewBasicGrid(Width, VisibleHeight)
	for y := 0; y < VisibleHeight; y++ {
		for x := 0; x < Width; x++ {
			g.SetCell(grid.Pos(x, y), pf.Cell(grid.Pos(x, y)))
		}
	}
	return g.Format()
}
