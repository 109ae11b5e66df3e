// Package bitgrid implements bit-packed specializations of grid.Grid: a
// single-word PrimBitGrid and a multi-word BasicBitGrid composed of
// PrimBitGrid slices, plus the read-only Constants/ConstantsStore tables
// that make put/can_put pure bitwise operations.
package bitgrid

import (
	"sync"

	"github.com/s-shin/stacker-core/internal/bitutil"
	"golang.org/x/exp/constraints"
)

// key identifies a (width, height, stride) configuration.
type key struct {
	width, height, stride int
}

// Constants precomputes every mask a PrimBitGrid[T] of this configuration
// needs. Bits outside CellsMask are always zero in a well-formed grid;
// any operation that would set such a bit must mask it off first.
type Constants[T constraints.Unsigned] struct {
	Width, Height, Stride int

	CellsMask T
	RowMask   []T // len == Height
	ColMask   []T // len == Width

	LeftMask, RightMask T // column 0 / column Width-1
	TopMask, BottomMask T // row Height-1 / row 0
}

func build[T constraints.Unsigned](width, height, stride int) *Constants[T] {
	c := &Constants[T]{
		Width: width, Height: height, Stride: stride,
		RowMask: make([]T, height),
		ColMask: make([]T, width),
	}
	for y := 0; y < height; y++ {
		c.RowMask[y] = bitutil.Mask[T](width) << uint(y*stride)
		c.CellsMask |= c.RowMask[y]
	}
	for x := 0; x < width; x++ {
		var col T
		for y := 0; y < height; y++ {
			col |= T(1) << uint(y*stride+x)
		}
		c.ColMask[x] = col
	}
	if width > 0 {
		c.LeftMask = c.ColMask[0]
		c.RightMask = c.ColMask[width-1]
	}
	if height > 0 {
		c.BottomMask = c.RowMask[0]
		c.TopMask = c.RowMask[height-1]
	}
	return c
}

// ConstantsStore is the lifetime owner of Constants tables for a given
// backing word type T. Callers "prepare" the sizes they will use; a grid
// created with WithStore never allocates new constants for a size that
// was already prepared.
type ConstantsStore[T constraints.Unsigned] struct {
	mu    sync.RWMutex
	cache map[key]*Constants[T]
}

// NewConstantsStore returns an empty store.
func NewConstantsStore[T constraints.Unsigned]() *ConstantsStore[T] {
	return &ConstantsStore[T]{cache: make(map[key]*Constants[T])}
}

// Prepare ensures constants for (width, height, stride) exist and returns
// them. Safe to call from multiple goroutines (read-only downstream use
// is always safe; stacker-core itself is single-threaded per spec.md §5,
// but a test suite running packages in parallel still touches a shared
// store).
func (s *ConstantsStore[T]) Prepare(width, height, stride int) *Constants[T] {
	k := key{width, height, stride}
	s.mu.RLock()
	if c, ok := s.cache[k]; ok {
		s.mu.RUnlock()
		return c
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cache[k]; ok {
		return c
	}
	c := build[T](width, height, stride)
	s.cache[k] = c
	return c
}

// Get returns already-prepared constants, or nil if the size was never
// prepared.
func (s *ConstantsStore[T]) Get(width, height, stride int) *Constants[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key{width, height, stride}]
}
