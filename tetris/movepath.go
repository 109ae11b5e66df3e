package tetris

// MovePathItem is one accepted step: the move that was applied and the
// placement it produced.
type MovePathItem struct {
	Move   Move
	Result Placement
}

// MovePath records every accepted move from an initial placement,
// merging adjacent same-kind, same-direction moves (Shift(1) then
// Shift(1) → Shift(2); same for Drop and Rotate) as it is appended to.
// Moves of opposite direction stay separate items.
type MovePath struct {
	Initial Placement
	Items   []MovePathItem
}

// NewMovePath starts a path at initial with no moves yet.
func NewMovePath(initial Placement) *MovePath {
	return &MovePath{Initial: initial}
}

// Append records move as having produced result, merging into the last
// item when both are the same MoveKind with the same sign of N.
func (p *MovePath) Append(move Move, result Placement) {
	if n := len(p.Items); n > 0 && p.Items[n-1].Move.Kind == move.Kind && Sign(p.Items[n-1].Move.N) == Sign(move.N) {
		p.Items[n-1].Move.N += move.N
		p.Items[n-1].Result = result
		return
	}
	p.Items = append(p.Items, MovePathItem{Move: move, Result: result})
}

// Final returns the path's last placement, or Initial if it has no
// items.
func (p *MovePath) Final() Placement {
	if n := len(p.Items); n > 0 {
		return p.Items[n-1].Result
	}
	return p.Initial
}

// LastMove returns the most recently appended move and reports whether
// one exists.
func (p *MovePath) LastMove() (Move, bool) {
	if n := len(p.Items); n > 0 {
		return p.Items[n-1].Move, true
	}
	return Move{}, false
}

// Clone deep-copies the path so appending to the copy never aliases the
// original's backing array.
func (p *MovePath) Clone() *MovePath {
	cp := &MovePath{Initial: p.Initial, Items: make([]MovePathItem, len(p.Items))}
	copy(cp.Items, p.Items)
	return cp
}
