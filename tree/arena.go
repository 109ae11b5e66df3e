// Package tree implements a generational-handle arena and, on top of
// it, the stack-search framework used by tree-search bots: nodes hold a
// game state snapshot, expansion grows children by trying candidate
// moves, and each simulation step expands one node chosen by a
// caller-supplied Simulator.
package tree

import "github.com/pkg/errors"

// ErrStaleHandle names the condition of a Handle that refers to a slot
// that has since been destroyed and (possibly) recycled. The Arena
// methods themselves report staleness through their bool (or nil)
// results and do not return this error.
var ErrStaleHandle = errors.New("tree: stale handle")

// Handle is a small, trivially comparable generational index into an
// Arena. Equality/hashing are just struct equality.
type Handle struct {
	index      uint32
	generation uint32
}

// NoHandle is the zero Handle, never returned by Create/AppendChild.
var NoHandle = Handle{}

type slot[T any] struct {
	data       T
	parent     Handle
	children   []Handle
	generation uint32
	free       bool
}

// Arena owns every node of one or more trees. Handles are generational
// indices: destroying a node recycles its slot, but any handle minted
// before the destruction fails Get rather than aliasing the recycled
// node's replacement.
type Arena[T any] struct {
	slots     []slot[T]
	freeList  []uint32
}

// NewArena returns an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Create allocates a fresh root node holding data, reusing a recycled
// slot if one is available.
func (a *Arena[T]) Create(data T) Handle {
	return a.alloc(data, NoHandle)
}

// AppendChild allocates a node holding data as a child of parent,
// wiring both directions of the link.
func (a *Arena[T]) AppendChild(parent Handle, data T) (Handle, bool) {
	if !a.isLive(parent) {
		return NoHandle, false
	}
	h := a.alloc(data, parent)
	a.slots[parent.index].children = append(a.slots[parent.index].children, h)
	return h, true
}

func (a *Arena[T]) alloc(data T, parent Handle) Handle {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		s := &a.slots[idx]
		s.data = data
		s.parent = parent
		s.children = nil
		s.free = false
		return Handle{index: idx, generation: s.generation}
	}
	idx := uint32(len(a.slots))
	// Fresh slots start at generation 1 so no live handle equals NoHandle.
	a.slots = append(a.slots, slot[T]{data: data, parent: parent, generation: 1})
	return Handle{index: idx, generation: 1}
}

func (a *Arena[T]) isLive(h Handle) bool {
	if int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return !s.free && s.generation == h.generation
}

// Get returns the data stored at h, or (zero, false) if h is stale or
// was never allocated.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if !a.isLive(h) {
		return zero, false
	}
	return a.slots[h.index].data, true
}

// Set overwrites the data stored at h, failing silently (returning
// false) if h is stale.
func (a *Arena[T]) Set(h Handle, data T) bool {
	if !a.isLive(h) {
		return false
	}
	a.slots[h.index].data = data
	return true
}

// Children returns h's direct children, or nil if h is stale.
func (a *Arena[T]) Children(h Handle) []Handle {
	if !a.isLive(h) {
		return nil
	}
	return a.slots[h.index].children
}

// Parent returns h's parent and whether h has one (roots don't).
func (a *Arena[T]) Parent(h Handle) (Handle, bool) {
	if !a.isLive(h) {
		return NoHandle, false
	}
	p := a.slots[h.index].parent
	return p, p != NoHandle
}

// Destroy recursively marks h and every descendant as recycled;
// existing handles to any of them subsequently fail Get. It also
// unlinks h from its parent's children list.
func (a *Arena[T]) Destroy(h Handle) {
	if !a.isLive(h) {
		return
	}
	if parent, ok := a.Parent(h); ok && a.isLive(parent) {
		siblings := a.slots[parent.index].children
		for i, c := range siblings {
			if c == h {
				a.slots[parent.index].children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	a.destroyRecursive(h)
}

func (a *Arena[T]) destroyRecursive(h Handle) {
	s := &a.slots[h.index]
	children := s.children
	var zero T
	s.data = zero
	s.children = nil
	s.free = true
	s.generation++
	for _, c := range children {
		if a.isLive(c) {
			a.destroyRecursive(c)
		}
	}
}

// Route returns the sequence of handles from the root down to h,
// inclusive, or nil if h is stale.
func (a *Arena[T]) Route(h Handle) []Handle {
	if !a.isLive(h) {
		return nil
	}
	var rev []Handle
	for cur := h; cur != NoHandle; {
		rev = append(rev, cur)
		p, ok := a.Parent(cur)
		if !ok {
			break
		}
		cur = p
	}
	route := make([]Handle, len(rev))
	for i, h := range rev {
		route[len(rev)-1-i] = h
	}
	return route
}

// VisitPlan is returned by a VisitDepthFirst visitor to control
// traversal.
type VisitPlan uint8

const (
	// PlanContinue descends into the visited node's children before
	// moving to its next sibling.
	PlanContinue VisitPlan = iota
	// PlanSkipSiblingsAndReturn skips the visited node's children and
	// its remaining siblings, resuming at the parent's next sibling.
	PlanSkipSiblingsAndReturn
	// PlanStop aborts the entire traversal immediately.
	PlanStop
)

// VisitDepthFirst calls visitor on every descendant of start
// (exclusive of start itself), depth-first, honoring each call's
// returned VisitPlan.
func (a *Arena[T]) VisitDepthFirst(start Handle, visitor func(h Handle, data T) VisitPlan) {
	a.visitChildren(a.Children(start), visitor)
}

func (a *Arena[T]) visitChildren(handles []Handle, visitor func(h Handle, data T) VisitPlan) bool {
	for _, h := range handles {
		data, ok := a.Get(h)
		if !ok {
			continue
		}
		switch visitor(h, data) {
		case PlanStop:
			return true
		case PlanSkipSiblingsAndReturn:
			return false
		default:
			if a.visitChildren(a.Children(h), visitor) {
				return true
			}
		}
	}
	return false
}
