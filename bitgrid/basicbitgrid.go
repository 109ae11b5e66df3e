package bitgrid

import (
	"strings"

	"github.com/s-shin/stacker-core/grid"
	"golang.org/x/exp/constraints"
)

// BasicBitGrid composes a vector of equal-stride PrimBitGrid slices so a
// playfield taller than one machine word can still be queried with the
// same Grid contract. A request at row y is routed to slice
// floor(y/strideHeight), local row y mod strideHeight. The topmost slice
// may have a smaller height than the others.
type BasicBitGrid[T constraints.Unsigned] struct {
	store              *ConstantsStore[T]
	width, height      int
	stride, strideHeight int
	slices             []*PrimBitGrid[T]
}

// NewBasicBitGrid builds an empty grid. strideHeight is the number of
// rows packed into each slice; it must be small enough that
// strideHeight*stride bits fit in T.
func NewBasicBitGrid[T constraints.Unsigned](store *ConstantsStore[T], width, height, stride, strideHeight int) *BasicBitGrid[T] {
	g := &BasicBitGrid[T]{store: store, width: width, height: height, stride: stride, strideHeight: strideHeight}
	remaining := height
	for remaining > 0 {
		h := strideHeight
		if h > remaining {
			h = remaining
		}
		g.slices = append(g.slices, NewPrimBitGrid(store, width, h, stride))
		remaining -= h
	}
	return g
}

func (g *BasicBitGrid[T]) Width() int  { return g.width }
func (g *BasicBitGrid[T]) Height() int { return g.height }

// locate maps an absolute row y to (slice index, local row). ok is false
// when y is outside [0, height).
func (g *BasicBitGrid[T]) locate(y int) (sliceIdx, local int, ok bool) {
	if y < 0 || y >= g.height {
		return 0, 0, false
	}
	return y / g.strideHeight, y % g.strideHeight, true
}

func (g *BasicBitGrid[T]) Cell(p grid.Position) grid.Cell {
	idx, local, ok := g.locate(p.Y)
	if !ok {
		return grid.Empty
	}
	return g.slices[idx].Cell(grid.Pos(p.X, local))
}

func (g *BasicBitGrid[T]) SetCell(p grid.Position, c grid.Cell) {
	idx, local, ok := g.locate(p.Y)
	if !ok {
		return
	}
	g.slices[idx].SetCell(grid.Pos(p.X, local), c)
}

func (g *BasicBitGrid[T]) Clone() grid.Grid {
	cp := &BasicBitGrid[T]{store: g.store, width: g.width, height: g.height, stride: g.stride, strideHeight: g.strideHeight}
	cp.slices = make([]*PrimBitGrid[T], len(g.slices))
	for i, s := range g.slices {
		cp.slices[i] = s.CloneTyped()
	}
	return cp
}

// rowPattern extracts row j of s (a same-T PrimBitGrid) as bits aligned
// to start at x=0, i.e. shifted down by j*stride.
func rowPattern[T constraints.Unsigned](s *PrimBitGrid[T], j int) T {
	rowMask := s.c.RowMask[j]
	return (s.bits & rowMask) >> uint(j*s.c.Stride)
}

// eachSubRow walks sub row by row (top or bottom first does not matter,
// since rows are independent once extracted) and, for rows with at least
// one filled cell, invokes fn with the absolute destination row and a
// height-1 PrimBitGrid holding that row's pattern aligned at x=0. fn's
// bool return stops the walk early (used by CanPut to short-circuit).
func (g *BasicBitGrid[T]) eachSubRow(p grid.Position, sub *PrimBitGrid[T], fn func(absY int, row *PrimBitGrid[T]) bool) {
	rowConsts := g.store.Prepare(sub.c.Width, 1, sub.c.Stride)
	for j := 0; j < sub.c.Height; j++ {
		bits := rowPattern(sub, j)
		if bits == 0 {
			continue
		}
		row := &PrimBitGrid[T]{c: rowConsts, bits: bits}
		if !fn(p.Y+j, row) {
			return
		}
	}
}

func (g *BasicBitGrid[T]) Put(p grid.Position, sub grid.Grid) {
	s, ok := sub.(*PrimBitGrid[T])
	if !ok || s.c.Stride != g.stride {
		genericPut(g, p, sub)
		return
	}
	g.eachSubRow(p, s, func(absY int, row *PrimBitGrid[T]) bool {
		idx, local, ok := g.locate(absY)
		if !ok {
			return true // out-of-bounds filled cells are silently dropped
		}
		g.slices[idx].Put(grid.Pos(p.X, local), row)
		return true
	})
}

func (g *BasicBitGrid[T]) CanPut(p grid.Position, sub grid.Grid) bool {
	s, ok := sub.(*PrimBitGrid[T])
	if !ok || s.c.Stride != g.stride {
		return genericCanPut(g, p, sub)
	}
	ok = true
	g.eachSubRow(p, s, func(absY int, row *PrimBitGrid[T]) bool {
		idx, local, locOk := g.locate(absY)
		if !locOk {
			ok = false
			return false
		}
		if !g.slices[idx].CanPut(grid.Pos(p.X, local), row) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func (g *BasicBitGrid[T]) NumDroppableRows(p grid.Position, sub grid.Grid) int {
	if !g.CanPut(p, sub) {
		return 0
	}
	n := 0
	for g.CanPut(grid.Pos(p.X, p.Y-n-1), sub) {
		n++
	}
	return n
}

func (g *BasicBitGrid[T]) ReachablePos(p grid.Position, sub grid.Grid, dir grid.Direction) grid.Position {
	last := p
	for {
		next := grid.Pos(last.X+dir.X, last.Y+dir.Y)
		if !g.CanPut(next, sub) {
			return last
		}
		last = next
	}
}

func (g *BasicBitGrid[T]) IsRowFilled(y int) bool {
	idx, local, ok := g.locate(y)
	if !ok {
		return false
	}
	return g.slices[idx].IsRowFilled(local)
}

func (g *BasicBitGrid[T]) IsRowEmpty(y int) bool {
	idx, local, ok := g.locate(y)
	if !ok {
		return true
	}
	return g.slices[idx].IsRowEmpty(local)
}

func (g *BasicBitGrid[T]) NumBlocks() int {
	n := 0
	for _, s := range g.slices {
		n += s.NumBlocks()
	}
	return n
}

func (g *BasicBitGrid[T]) NumBlocksOfRow(y int) int {
	idx, local, ok := g.locate(y)
	if !ok {
		return 0
	}
	return g.slices[idx].NumBlocksOfRow(local)
}

// DropFilledRows clears every completely filled row and compacts the
// remaining rows downward, preserving order, across slice boundaries: a
// row "borrowed" from the slice above can end up written into the slice
// below once enough rows clear.
func (g *BasicBitGrid[T]) DropFilledRows() int {
	rowConsts := g.store.Prepare(g.width, 1, g.stride)
	kept := make([]T, 0, g.height)
	cleared := 0
	for y := 0; y < g.height; y++ {
		if g.IsRowFilled(y) {
			cleared++
			continue
		}
		idx, local, _ := g.locate(y)
		kept = append(kept, rowPattern(g.slices[idx], local))
	}
	for y := 0; y < g.height; y++ {
		idx, local, _ := g.locate(y)
		var bits T
		if y < len(kept) {
			bits = kept[y]
		}
		row := &PrimBitGrid[T]{c: rowConsts, bits: bits}
		g.slices[idx].SetBits(g.slices[idx].bits &^ g.slices[idx].c.RowMask[local])
		g.slices[idx].Put(grid.Pos(0, local), row)
	}
	return cleared
}

func (g *BasicBitGrid[T]) BottomPadding() int {
	n := 0
	for y := 0; y < g.height; y++ {
		if !g.IsRowEmpty(y) {
			break
		}
		n++
	}
	return n
}

func (g *BasicBitGrid[T]) Contour() []int {
	out := make([]int, g.width)
	for x := 0; x < g.width; x++ {
		top := 0
		for y := 0; y < g.height; y++ {
			if g.Cell(grid.Pos(x, y)).IsFilled() {
				top = y + 1
			}
		}
		out[x] = top
	}
	return out
}

func (g *BasicBitGrid[T]) NumCoveredEmptyCells() []int {
	contour := g.Contour()
	out := make([]int, g.width)
	for x := 0; x < g.width; x++ {
		n := 0
		for y := 0; y < contour[x]; y++ {
			if g.Cell(grid.Pos(x, y)).IsEmpty() {
				n++
			}
		}
		out[x] = n
	}
	return out
}

func (g *BasicBitGrid[T]) Density() float64 {
	total := g.width * g.height
	if total == 0 {
		return 0
	}
	return float64(g.NumBlocks()) / float64(total)
}

func (g *BasicBitGrid[T]) Traverse(start grid.Position, cb func(p grid.Position) bool) {
	genericTraverse(g, start, cb)
}

func (g *BasicBitGrid[T]) SearchSpace(start grid.Position) []grid.Position {
	return genericSearchSpace(g, start)
}

func (g *BasicBitGrid[T]) SearchSpaces(origin grid.Position, size grid.Position) [][]grid.Position {
	return genericSearchSpaces(g, origin, size)
}

func (g *BasicBitGrid[T]) Format() string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.Cell(grid.Pos(x, y)).Rune())
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
