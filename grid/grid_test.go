package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(w, h int, c Cell) *BasicGrid {
	g := NewBasicGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetCell(Pos(x, y), c)
		}
	}
	return g
}

func TestBasicGridPutIncreasesBlockCountAndIsIdempotent(t *testing.T) {
	g := NewBasicGrid(10, 10)
	sub := square(2, 2, CellO)
	require.True(t, g.CanPut(Pos(3, 3), sub))

	before := g.NumBlocks()
	g.Put(Pos(3, 3), sub)
	assert.Equal(t, before+sub.NumBlocks(), g.NumBlocks())

	snapshot := g.Format()
	g.Put(Pos(3, 3), sub)
	assert.Equal(t, snapshot, g.Format(), "a second put at the same position must leave the grid unchanged")
}

func TestBasicGridPutNeverOverwritesFilledCells(t *testing.T) {
	g := NewBasicGrid(4, 4)
	g.SetCell(Pos(1, 1), CellT)
	sub := square(1, 1, CellO)
	assert.False(t, g.CanPut(Pos(1, 1), sub))
}

func TestNumDroppableRows(t *testing.T) {
	g := NewBasicGrid(4, 10)
	for x := 0; x < 4; x++ {
		g.SetCell(Pos(x, 0), Garbage)
	}
	sub := square(1, 1, CellO)
	n := g.NumDroppableRows(Pos(0, 5), sub)
	require.True(t, g.CanPut(Pos(0, 5-n), sub))
	assert.False(t, g.CanPut(Pos(0, 5-n-1), sub))
}

func TestDropFilledRowsCompactsAndClearsExactlyTheFilledRows(t *testing.T) {
	g := NewBasicGrid(3, 3)
	for x := 0; x < 3; x++ {
		g.SetCell(Pos(x, 0), Garbage)
	}
	g.SetCell(Pos(0, 1), Garbage)
	before := g.NumBlocks()

	cleared := g.DropFilledRows()
	assert.Equal(t, 1, cleared)
	assert.False(t, g.IsRowFilled(0))
	assert.False(t, g.IsRowFilled(1))
	assert.Equal(t, before-cleared*g.Width(), g.NumBlocks())
	// the surviving row compacted down to row 0.
	assert.True(t, g.Cell(Pos(0, 0)).IsFilled())
}

func TestContour(t *testing.T) {
	g := NewBasicGrid(3, 5)
	g.SetCell(Pos(0, 0), Garbage)
	g.SetCell(Pos(1, 2), Garbage)
	contour := g.Contour()
	assert.Equal(t, []int{1, 3, 0}, contour)
}

func TestFormatParseRoundTrip(t *testing.T) {
	g := NewBasicGrid(3, 2)
	g.SetCell(Pos(0, 0), CellI)
	g.SetCell(Pos(2, 1), CellO)
	s := g.Format()
	cp := Parse(s)
	assert.Equal(t, s, cp.Format())
}

func TestCellRuneRoundTripIsTotal(t *testing.T) {
	for _, c := range PieceKindRunes {
		assert.Equal(t, c, CellFromRune(c.Rune()))
	}
	assert.Equal(t, Empty, CellFromRune('?'))
}

func TestSearchSpaceIsTheConnectedEmptyComponent(t *testing.T) {
	g := NewBasicGrid(3, 3)
	g.SetCell(Pos(1, 0), Garbage)
	g.SetCell(Pos(1, 1), Garbage)
	g.SetCell(Pos(1, 2), Garbage)
	left := g.SearchSpace(Pos(0, 0))
	assert.Len(t, left, 3)
	for _, p := range left {
		assert.Less(t, p.X, 1)
	}
}
