package grid

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrOutOfDomain is the sentinel for a value outside its defined
// domain. No function in this module returns it: CellFromRune always
// yields a Cell, and piece.KindFromByte reports an unknown character
// through its bool result.
var ErrOutOfDomain = errors.New("value outside of defined domain")

// Grid is implemented by any rectangle of Cells. Implementations are
// value-typed: Clone must duplicate contents, not alias them.
type Grid interface {
	Width() int
	Height() int
	Cell(p Position) Cell
	SetCell(p Position, c Cell)
	Clone() Grid

	// Put copies every filled cell of sub into self at p + subCell.
	// Out-of-bounds filled cells are silently dropped.
	Put(p Position, sub Grid)
	// CanPut returns true iff every filled cell of sub lands inside self
	// on an empty cell.
	CanPut(p Position, sub Grid) bool
	// NumDroppableRows returns the maximum non-negative n such that
	// CanPut((p.X, p.Y-n), sub) holds. Zero if CanPut(p, sub) is false.
	NumDroppableRows(p Position, sub Grid) int
	// ReachablePos iterates p += dir while CanPut holds and returns the
	// last position for which CanPut was true.
	ReachablePos(p Position, sub Grid, dir Direction) Position

	IsRowFilled(y int) bool
	IsRowEmpty(y int) bool
	NumBlocks() int
	NumBlocksOfRow(y int) int
	// DropFilledRows clears every completely filled row, compacts the
	// remaining rows downward preserving order, and returns the count of
	// cleared rows.
	DropFilledRows() int
	// BottomPadding returns the number of fully empty rows at the bottom.
	BottomPadding() int
	// Contour returns, for each column, 1 + the y of the topmost filled
	// cell, or 0 if the column is empty.
	Contour() []int
	// NumCoveredEmptyCells returns, for each column, the count of empty
	// cells strictly below the topmost filled cell.
	NumCoveredEmptyCells() []int
	// Density is NumBlocks / (Width*Height), 0 for an empty grid.
	Density() float64

	// Traverse performs a four-neighbour BFS from start. cb decides, for
	// each visited position, whether to expand its neighbours.
	Traverse(start Position, cb func(p Position) bool)
	// SearchSpace returns the connected component of empty cells
	// containing start (empty if start itself is filled).
	SearchSpace(start Position) []Position
	// SearchSpaces partitions the empty cells of the rectangle
	// [origin, origin+size) into maximal connected components.
	SearchSpaces(origin Position, size Position) [][]Position

	// Format writes one character per cell per row, top to bottom,
	// newline-separated.
	Format() string
}

// BasicGrid is the straightforward, non-bit-packed reference
// implementation: a row-major slice of Cell. bitgrid types are checked
// for equivalence against it (spec.md §8, "Bit-grid equivalence").
type BasicGrid struct {
	width, height int
	cells         []Cell // row-major, cells[y*width+x]
}

// NewBasicGrid returns an empty w x h grid.
func NewBasicGrid(w, h int) *BasicGrid {
	return &BasicGrid{width: w, height: h, cells: make([]Cell, w*h)}
}

func (g *BasicGrid) Width() int  { return g.width }
func (g *BasicGrid) Height() int { return g.height }

func (g *BasicGrid) inBounds(p Position) bool {
	return 0 <= p.X && p.X < g.width && 0 <= p.Y && p.Y < g.height
}

func (g *BasicGrid) Cell(p Position) Cell {
	if !g.inBounds(p) {
		return Empty
	}
	return g.cells[p.Y*g.width+p.X]
}

func (g *BasicGrid) SetCell(p Position, c Cell) {
	if !g.inBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = c
}

func (g *BasicGrid) Clone() Grid {
	cp := &BasicGrid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

func (g *BasicGrid) Put(p Position, sub Grid) {
	for y := 0; y < sub.Height(); y++ {
		for x := 0; x < sub.Width(); x++ {
			sc := sub.Cell(Pos(x, y))
			if sc.IsEmpty() {
				continue
			}
			g.SetCell(p.Add(Pos(x, y)), sc)
		}
	}
}

func (g *BasicGrid) CanPut(p Position, sub Grid) bool {
	for y := 0; y < sub.Height(); y++ {
		for x := 0; x < sub.Width(); x++ {
			sc := sub.Cell(Pos(x, y))
			if sc.IsEmpty() {
				continue
			}
			q := p.Add(Pos(x, y))
			if !g.inBounds(q) || g.Cell(q).IsFilled() {
				return false
			}
		}
	}
	return true
}

func (g *BasicGrid) NumDroppableRows(p Position, sub Grid) int {
	if !g.CanPut(p, sub) {
		return 0
	}
	n := 0
	for g.CanPut(Pos(p.X, p.Y-n-1), sub) {
		n++
	}
	return n
}

func (g *BasicGrid) ReachablePos(p Position, sub Grid, dir Direction) Position {
	last := p
	for {
		next := Pos(last.X+dir.X, last.Y+dir.Y)
		if !g.CanPut(next, sub) {
			return last
		}
		last = next
	}
}

func (g *BasicGrid) IsRowFilled(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for x := 0; x < g.width; x++ {
		if g.Cell(Pos(x, y)).IsEmpty() {
			return false
		}
	}
	return true
}

func (g *BasicGrid) IsRowEmpty(y int) bool {
	if y < 0 || y >= g.height {
		return true
	}
	for x := 0; x < g.width; x++ {
		if g.Cell(Pos(x, y)).IsFilled() {
			return false
		}
	}
	return true
}

func (g *BasicGrid) NumBlocks() int {
	n := 0
	for _, c := range g.cells {
		if c.IsFilled() {
			n++
		}
	}
	return n
}

func (g *BasicGrid) NumBlocksOfRow(y int) int {
	if y < 0 || y >= g.height {
		return 0
	}
	n := 0
	for x := 0; x < g.width; x++ {
		if g.Cell(Pos(x, y)).IsFilled() {
			n++
		}
	}
	return n
}

func (g *BasicGrid) DropFilledRows() int {
	kept := make([]Cell, 0, len(g.cells))
	cleared := 0
	for y := 0; y < g.height; y++ {
		if g.IsRowFilled(y) {
			cleared++
			continue
		}
		kept = append(kept, g.cells[y*g.width:(y+1)*g.width]...)
	}
	pad := make([]Cell, cleared*g.width)
	g.cells = append(kept, pad...)
	return cleared
}

func (g *BasicGrid) BottomPadding() int {
	n := 0
	for y := 0; y < g.height; y++ {
		if !g.IsRowEmpty(y) {
			break
		}
		n++
	}
	return n
}

func (g *BasicGrid) Contour() []int {
	out := make([]int, g.width)
	for x := 0; x < g.width; x++ {
		top := 0
		for y := 0; y < g.height; y++ {
			if g.Cell(Pos(x, y)).IsFilled() {
				top = y + 1
			}
		}
		out[x] = top
	}
	return out
}

func (g *BasicGrid) NumCoveredEmptyCells() []int {
	contour := g.Contour()
	out := make([]int, g.width)
	for x := 0; x < g.width; x++ {
		n := 0
		for y := 0; y < contour[x]; y++ {
			if g.Cell(Pos(x, y)).IsEmpty() {
				n++
			}
		}
		out[x] = n
	}
	return out
}

func (g *BasicGrid) Density() float64 {
	total := g.width * g.height
	if total == 0 {
		return 0
	}
	return float64(g.NumBlocks()) / float64(total)
}

func (g *BasicGrid) Traverse(start Position, cb func(p Position) bool) {
	if !g.inBounds(start) {
		return
	}
	visited := make(map[Position]bool)
	queue := []Position{start}
	visited[start] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !cb(p) {
			continue
		}
		for _, d := range []Direction{Left, Right, Up, Down} {
			q := p.Add(d)
			if !g.inBounds(q) || visited[q] {
				continue
			}
			visited[q] = true
			queue = append(queue, q)
		}
	}
}

func (g *BasicGrid) SearchSpace(start Position) []Position {
	if !g.inBounds(start) || g.Cell(start).IsFilled() {
		return nil
	}
	var out []Position
	g.Traverse(start, func(p Position) bool {
		if g.Cell(p).IsFilled() {
			return false
		}
		out = append(out, p)
		return true
	})
	return out
}

func (g *BasicGrid) SearchSpaces(origin Position, size Position) [][]Position {
	seen := make(map[Position]bool)
	var spaces [][]Position
	for y := origin.Y; y < origin.Y+size.Y; y++ {
		for x := origin.X; x < origin.X+size.X; x++ {
			p := Pos(x, y)
			if !g.inBounds(p) || seen[p] || g.Cell(p).IsFilled() {
				continue
			}
			space := g.SearchSpace(p)
			for _, q := range space {
				seen[q] = true
			}
			spaces = append(spaces, space)
		}
	}
	return spaces
}

func (g *BasicGrid) Format() string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.Cell(Pos(x, y)).Rune())
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Parse builds a BasicGrid from Format's output (top row first).
func Parse(s string) *BasicGrid {
	lines := strings.Split(s, "\n")
	h := len(lines)
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	g := NewBasicGrid(w, h)
	for i, l := range lines {
		y := h - 1 - i
		for x := 0; x < len(l); x++ {
			g.SetCell(Pos(x, y), CellFromRune(l[x]))
		}
	}
	return g
}
