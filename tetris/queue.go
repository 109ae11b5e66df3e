package tetris

import (
	"github.com/pkg/errors"

	"github.com/s-shin/stacker-core/piece"
)

// DefaultVisibleWindow is how many upcoming pieces a client is expected
// to render; should_supply_next_pieces uses it as the refill floor.
const DefaultVisibleWindow = 6

// DefaultQueueCapacity bounds how many pieces NextQueue will hold at
// once — large enough for several 7-bags of lookahead plus the visible
// window, small enough that a runaway supplier is caught as a
// precondition violation rather than growing the queue unbounded.
const DefaultQueueCapacity = 3 * piece.NumKinds

// NextQueue is a finite ordered sequence of upcoming pieces.
type NextQueue struct {
	pieces        []piece.Kind
	visibleWindow int
	capacity      int
}

// NewNextQueue builds an empty queue with the given visible window and
// capacity.
func NewNextQueue(visibleWindow, capacity int) *NextQueue {
	return &NextQueue{visibleWindow: visibleWindow, capacity: capacity}
}

// DefaultNextQueue builds an empty queue with the package defaults.
func DefaultNextQueue() *NextQueue {
	return NewNextQueue(DefaultVisibleWindow, DefaultQueueCapacity)
}

// Len is the number of pieces currently queued.
func (q *NextQueue) Len() int { return len(q.pieces) }

// Peek returns the pieces currently queued without consuming them.
func (q *NextQueue) Peek() []piece.Kind { return q.pieces }

// ShouldSupply reports whether the queue has fallen below the visible
// window and needs another chunk appended.
func (q *NextQueue) ShouldSupply() bool { return len(q.pieces) < q.visibleWindow }

// Supply appends chunk to the queue, failing with ErrPreconditionViolated
// if doing so would exceed capacity.
func (q *NextQueue) Supply(chunk []piece.Kind) error {
	if len(q.pieces)+len(chunk) > q.capacity {
		return errors.Wrap(ErrPreconditionViolated, "next queue is full")
	}
	q.pieces = append(q.pieces, chunk...)
	return nil
}

// Clone deep-copies the queue.
func (q *NextQueue) Clone() *NextQueue {
	cp := &NextQueue{visibleWindow: q.visibleWindow, capacity: q.capacity}
	cp.pieces = make([]piece.Kind, len(q.pieces))
	copy(cp.pieces, q.pieces)
	return cp
}

// Pop removes and returns the head of the queue.
func (q *NextQueue) Pop() (piece.Kind, bool) {
	if len(q.pieces) == 0 {
		return 0, false
	}
	k := q.pieces[0]
	q.pieces = q.pieces[1:]
	return k, true
}
