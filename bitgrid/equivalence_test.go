package bitgrid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-shin/stacker-core/grid"
)

// fill scatters n filled cells across a w x h rectangle deterministically
// (fixed seed), used to compare implementations against the same pattern.
func fill(w, h, n int, seed int64) []grid.Position {
	r := rand.New(rand.NewSource(seed))
	seen := map[grid.Position]bool{}
	var out []grid.Position
	for len(out) < n {
		p := grid.Pos(r.Intn(w), r.Intn(h))
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func TestPrimBitGridMatchesBasicGrid(t *testing.T) {
	store := NewConstantsStore[uint32]()
	const w, h = 6, 5
	prim := NewPrimBitGrid[uint32](store, w, h, w)
	ref := grid.NewBasicGrid(w, h)

	for _, p := range fill(w, h, 10, 1) {
		prim.SetCell(p, grid.Any)
		ref.SetCell(p, grid.Any)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := grid.Pos(x, y)
			assert.Equal(t, ref.Cell(p).IsFilled(), prim.Cell(p).IsFilled())
		}
		assert.Equal(t, ref.IsRowFilled(y), prim.IsRowFilled(y))
		assert.Equal(t, ref.IsRowEmpty(y), prim.IsRowEmpty(y))
	}
	assert.Equal(t, ref.NumBlocks(), prim.NumBlocks())
	assert.Equal(t, ref.Contour(), prim.Contour())
	assert.Equal(t, ref.NumCoveredEmptyCells(), prim.NumCoveredEmptyCells())

	sub := NewPrimBitGrid[uint32](store, 2, 2, 2)
	sub.SetCell(grid.Pos(0, 0), grid.Any)
	sub.SetCell(grid.Pos(1, 1), grid.Any)
	subRef := grid.NewBasicGrid(2, 2)
	subRef.SetCell(grid.Pos(0, 0), grid.Any)
	subRef.SetCell(grid.Pos(1, 1), grid.Any)

	for _, p := range []grid.Position{grid.Pos(0, 0), grid.Pos(3, 3), grid.Pos(5, 4)} {
		assert.Equal(t, ref.CanPut(p, subRef), prim.CanPut(p, sub), "CanPut at %v", p)
		assert.Equal(t, ref.NumDroppableRows(p, subRef), prim.NumDroppableRows(p, sub), "NumDroppableRows at %v", p)
	}
}

func TestBasicBitGridMatchesBasicGridAcrossSliceBoundary(t *testing.T) {
	store := NewConstantsStore[uint64]()
	const w, h, stride, strideHeight = 10, 40, 10, 6
	bbg := NewBasicBitGrid[uint64](store, w, h, stride, strideHeight)
	ref := grid.NewBasicGrid(w, h)

	for _, p := range fill(w, h, 80, 2) {
		bbg.SetCell(p, grid.Any)
		ref.SetCell(p, grid.Any)
	}
	// also exercise rows that straddle a slice boundary (slice height 6).
	for _, y := range []int{5, 6, 11, 12, 35, 36, 39} {
		bbg.SetCell(grid.Pos(3, y), grid.Any)
		ref.SetCell(grid.Pos(3, y), grid.Any)
	}

	for y := 0; y < h; y++ {
		assert.Equal(t, ref.IsRowFilled(y), bbg.IsRowFilled(y), "row %d", y)
		assert.Equal(t, ref.IsRowEmpty(y), bbg.IsRowEmpty(y), "row %d", y)
	}
	assert.Equal(t, ref.NumBlocks(), bbg.NumBlocks())
	assert.Equal(t, ref.Contour(), bbg.Contour())

	refCleared := ref.DropFilledRows()
	bbgCleared := bbg.DropFilledRows()
	require.Equal(t, refCleared, bbgCleared)
	assert.Equal(t, ref.NumBlocks(), bbg.NumBlocks())
	for y := 0; y < h; y++ {
		assert.Equal(t, ref.IsRowFilled(y), bbg.IsRowFilled(y), "post-clear row %d", y)
	}
}

func TestBasicBitGridCloneIsIndependent(t *testing.T) {
	store := NewConstantsStore[uint64]()
	g := NewBasicBitGrid[uint64](store, 10, 12, 10, 6)
	g.SetCell(grid.Pos(0, 0), grid.Any)
	cp := g.Clone()
	g.SetCell(grid.Pos(1, 1), grid.Any)
	assert.False(t, cp.Cell(grid.Pos(1, 1)).IsFilled())
}
