package bitgrid

import (
	"strings"

	"github.com/s-shin/stacker-core/grid"
	"github.com/s-shin/stacker-core/internal/bitutil"
	"golang.org/x/exp/constraints"
)

// PrimBitGrid stores occupancy of a width x height grid in a single word
// of type T. It only distinguishes filled from empty (grid.Any vs
// grid.Empty) — per-cell colour, where needed, is tracked alongside the
// bit grid by the caller (see tetris.Playfield); this is also exactly
// the "BasicGrid<BinaryCell>" shape the equivalence tests compare
// against.
type PrimBitGrid[T constraints.Unsigned] struct {
	c    *Constants[T]
	bits T
}

// NewPrimBitGrid builds an empty grid of the given configuration using
// constants from store (preparing them if necessary).
func NewPrimBitGrid[T constraints.Unsigned](store *ConstantsStore[T], width, height, stride int) *PrimBitGrid[T] {
	return &PrimBitGrid[T]{c: store.Prepare(width, height, stride)}
}

// WithStore builds an empty grid; it never allocates new constants if
// (width, height, stride) was already prepared in store.
func WithStore[T constraints.Unsigned](store *ConstantsStore[T], width, height, stride int) *PrimBitGrid[T] {
	return NewPrimBitGrid(store, width, height, stride)
}

// Bits returns the raw occupancy word.
func (g *PrimBitGrid[T]) Bits() T { return g.bits }

// SetBits overwrites the raw occupancy word, masked to valid cells.
func (g *PrimBitGrid[T]) SetBits(bits T) { g.bits = bits & g.c.CellsMask }

func (g *PrimBitGrid[T]) Constants() *Constants[T] { return g.c }
func (g *PrimBitGrid[T]) Width() int               { return g.c.Width }
func (g *PrimBitGrid[T]) Height() int               { return g.c.Height }
func (g *PrimBitGrid[T]) Stride() int               { return g.c.Stride }

func (g *PrimBitGrid[T]) bitIndex(p grid.Position) (uint, bool) {
	if p.X < 0 || p.X >= g.c.Width || p.Y < 0 || p.Y >= g.c.Height {
		return 0, false
	}
	return uint(p.Y*g.c.Stride + p.X), true
}

func (g *PrimBitGrid[T]) Cell(p grid.Position) grid.Cell {
	idx, ok := g.bitIndex(p)
	if !ok {
		return grid.Empty
	}
	if g.bits&(T(1)<<idx) != 0 {
		return grid.Any
	}
	return grid.Empty
}

func (g *PrimBitGrid[T]) SetCell(p grid.Position, c grid.Cell) {
	idx, ok := g.bitIndex(p)
	if !ok {
		return
	}
	if c.IsFilled() {
		g.bits |= T(1) << idx
	} else {
		g.bits &^= T(1) << idx
	}
}

func (g *PrimBitGrid[T]) Clone() grid.Grid {
	return &PrimBitGrid[T]{c: g.c, bits: g.bits}
}

// CloneTyped is Clone without the grid.Grid boxing, convenient when the
// caller wants to keep working with *PrimBitGrid[T] directly.
func (g *PrimBitGrid[T]) CloneTyped() *PrimBitGrid[T] {
	return &PrimBitGrid[T]{c: g.c, bits: g.bits}
}

// shiftedSub computes sub's bits shifted into self's coordinate frame by
// offset p, along with whether any filled bit of sub would fall outside
// self's bounding box at that offset (checked via the side masks so we
// never have to iterate cells).
func (g *PrimBitGrid[T]) shiftedSub(p grid.Position, sub *PrimBitGrid[T]) (shifted T, overflowed bool) {
	if sub.bits == 0 {
		return 0, false
	}
	// Vertical out-of-bounds pre-check using the sub's own footprint
	// against p: if p.Y is so low or so high that every row of sub lies
	// outside self's height, report overflow without shifting at all.
	if p.Y <= -sub.c.Height || p.Y >= g.c.Height {
		return 0, true
	}
	shiftAmount := p.Y*g.c.Stride + p.X
	var moved T
	if shiftAmount >= 0 {
		moved = sub.bits << uint(shiftAmount)
	} else {
		moved = sub.bits >> uint(-shiftAmount)
	}
	// A filled row of sub below row 0 or above the top row is shifted
	// out of the word (or masked off) rather than wrapped, so it has to
	// be detected row by row.
	for j := 0; j < sub.c.Height; j++ {
		if y := p.Y + j; (y < 0 || y >= g.c.Height) && sub.c.RowMask[j]&sub.bits != 0 {
			return moved & g.c.CellsMask, true
		}
	}
	// Detect column wrap/overflow: if sub has any bit set in its
	// leftmost column and p.X would push it left of column 0 (or
	// symmetric on the right), bits wrap into the previous/next row
	// instead of vanishing, which put/can_put must treat as overflow.
	if p.X < 0 {
		// Any column of sub with index < -p.X is pushed out on the left.
		for x := 0; x < -p.X && x < sub.c.Width; x++ {
			if sub.c.ColMask[x]&sub.bits != 0 {
				return moved & g.c.CellsMask, true
			}
		}
	}
	if rightOverflow := p.X + sub.c.Width - g.c.Width; rightOverflow > 0 {
		for x := sub.c.Width - rightOverflow; x < sub.c.Width; x++ {
			if x >= 0 && sub.c.ColMask[x]&sub.bits != 0 {
				return moved & g.c.CellsMask, true
			}
		}
	}
	return moved & g.c.CellsMask, false
}

func (g *PrimBitGrid[T]) Put(p grid.Position, sub grid.Grid) {
	s, ok := sub.(*PrimBitGrid[T])
	if !ok || s.c.Stride != g.c.Stride {
		genericPut(g, p, sub)
		return
	}
	shifted, _ := g.shiftedSub(p, s)
	g.bits |= shifted
}

func (g *PrimBitGrid[T]) CanPut(p grid.Position, sub grid.Grid) bool {
	s, ok := sub.(*PrimBitGrid[T])
	if !ok || s.c.Stride != g.c.Stride {
		return genericCanPut(g, p, sub)
	}
	shifted, overflowed := g.shiftedSub(p, s)
	if overflowed {
		return false
	}
	return shifted&g.bits == 0
}

func (g *PrimBitGrid[T]) NumDroppableRows(p grid.Position, sub grid.Grid) int {
	if !g.CanPut(p, sub) {
		return 0
	}
	n := 0
	for g.CanPut(grid.Pos(p.X, p.Y-n-1), sub) {
		n++
	}
	return n
}

func (g *PrimBitGrid[T]) ReachablePos(p grid.Position, sub grid.Grid, dir grid.Direction) grid.Position {
	last := p
	for {
		next := grid.Pos(last.X+dir.X, last.Y+dir.Y)
		if !g.CanPut(next, sub) {
			return last
		}
		last = next
	}
}

func (g *PrimBitGrid[T]) IsRowFilled(y int) bool {
	if y < 0 || y >= g.c.Height {
		return false
	}
	return g.bits&g.c.RowMask[y] == g.c.RowMask[y]
}

func (g *PrimBitGrid[T]) IsRowEmpty(y int) bool {
	if y < 0 || y >= g.c.Height {
		return true
	}
	return g.bits&g.c.RowMask[y] == 0
}

func (g *PrimBitGrid[T]) NumBlocks() int {
	return bitutil.PopCount(g.bits)
}

func (g *PrimBitGrid[T]) NumBlocksOfRow(y int) int {
	if y < 0 || y >= g.c.Height {
		return 0
	}
	return bitutil.PopCount(g.bits & g.c.RowMask[y])
}

// swapRows exchanges rows y1 and y2 via three mask-and-shift operations.
func (g *PrimBitGrid[T]) swapRows(y1, y2 int) {
	if y1 == y2 {
		return
	}
	m1 := g.c.RowMask[y1]
	m2 := g.c.RowMask[y2]
	row1 := g.bits & m1
	row2 := g.bits & m2
	shift := (y2 - y1) * g.c.Stride
	g.bits &^= m1 | m2
	if shift > 0 {
		g.bits |= row1 << uint(shift)
		g.bits |= row2 >> uint(shift)
	} else {
		g.bits |= row1 >> uint(-shift)
		g.bits |= row2 << uint(-shift)
	}
}

func (g *PrimBitGrid[T]) DropFilledRows() int {
	cleared := 0
	write := 0
	for read := 0; read < g.c.Height; read++ {
		if g.IsRowFilled(read) {
			cleared++
			continue
		}
		if write != read {
			g.swapRows(write, read)
		}
		write++
	}
	for y := write; y < g.c.Height; y++ {
		g.bits &^= g.c.RowMask[y]
	}
	return cleared
}

func (g *PrimBitGrid[T]) BottomPadding() int {
	n := 0
	for y := 0; y < g.c.Height; y++ {
		if !g.IsRowEmpty(y) {
			break
		}
		n++
	}
	return n
}

func (g *PrimBitGrid[T]) Contour() []int {
	out := make([]int, g.c.Width)
	for x := 0; x < g.c.Width; x++ {
		col := g.bits & g.c.ColMask[x]
		top := 0
		for y := 0; y < g.c.Height; y++ {
			if col&(T(1)<<uint(y*g.c.Stride+x)) != 0 {
				top = y + 1
			}
		}
		out[x] = top
	}
	return out
}

func (g *PrimBitGrid[T]) NumCoveredEmptyCells() []int {
	contour := g.Contour()
	out := make([]int, g.c.Width)
	for x := 0; x < g.c.Width; x++ {
		n := 0
		for y := 0; y < contour[x]; y++ {
			if g.bits&(T(1)<<uint(y*g.c.Stride+x)) == 0 {
				n++
			}
		}
		out[x] = n
	}
	return out
}

func (g *PrimBitGrid[T]) Density() float64 {
	total := g.c.Width * g.c.Height
	if total == 0 {
		return 0
	}
	return float64(g.NumBlocks()) / float64(total)
}

func (g *PrimBitGrid[T]) Traverse(start grid.Position, cb func(p grid.Position) bool) {
	genericTraverse(g, start, cb)
}

func (g *PrimBitGrid[T]) SearchSpace(start grid.Position) []grid.Position {
	return genericSearchSpace(g, start)
}

func (g *PrimBitGrid[T]) SearchSpaces(origin grid.Position, size grid.Position) [][]grid.Position {
	return genericSearchSpaces(g, origin, size)
}

func (g *PrimBitGrid[T]) Format() string {
	var b strings.Builder
	for y := g.c.Height - 1; y >= 0; y-- {
		for x := 0; x < g.c.Width; x++ {
			b.WriteByte(g.Cell(grid.Pos(x, y)).Rune())
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
