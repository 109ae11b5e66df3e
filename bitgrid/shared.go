package bitgrid

import "github.com/s-shin/stacker-core/grid"

// genericPut/genericCanPut fall back to a cell-by-cell implementation
// for puts between grids of incompatible concrete types (e.g. a
// grid.BasicGrid piece stamp against a PrimBitGrid playfield slice).
// The fast paths in primbitgrid.go/basicbitgrid.go bypass these whenever
// both sides share a representation.
func genericPut(dst grid.Grid, p grid.Position, sub grid.Grid) {
	for y := 0; y < sub.Height(); y++ {
		for x := 0; x < sub.Width(); x++ {
			c := sub.Cell(grid.Pos(x, y))
			if c.IsEmpty() {
				continue
			}
			dst.SetCell(p.Add(grid.Pos(x, y)), c)
		}
	}
}

func genericCanPut(dst grid.Grid, p grid.Position, sub grid.Grid) bool {
	for y := 0; y < sub.Height(); y++ {
		for x := 0; x < sub.Width(); x++ {
			c := sub.Cell(grid.Pos(x, y))
			if c.IsEmpty() {
				continue
			}
			q := p.Add(grid.Pos(x, y))
			if q.X < 0 || q.X >= dst.Width() || q.Y < 0 || q.Y >= dst.Height() {
				return false
			}
			if dst.Cell(q).IsFilled() {
				return false
			}
		}
	}
	return true
}

func genericTraverse(g grid.Grid, start grid.Position, cb func(p grid.Position) bool) {
	if start.X < 0 || start.X >= g.Width() || start.Y < 0 || start.Y >= g.Height() {
		return
	}
	visited := make(map[grid.Position]bool)
	queue := []grid.Position{start}
	visited[start] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !cb(p) {
			continue
		}
		for _, d := range []grid.Direction{grid.Left, grid.Right, grid.Up, grid.Down} {
			q := p.Add(d)
			if q.X < 0 || q.X >= g.Width() || q.Y < 0 || q.Y >= g.Height() || visited[q] {
				continue
			}
			visited[q] = true
			queue = append(queue, q)
		}
	}
}

func genericSearchSpace(g grid.Grid, start grid.Position) []grid.Position {
	if start.X < 0 || start.X >= g.Width() || start.Y < 0 || start.Y >= g.Height() || g.Cell(start).IsFilled() {
		return nil
	}
	var out []grid.Position
	genericTraverse(g, start, func(p grid.Position) bool {
		if g.Cell(p).IsFilled() {
			return false
		}
		out = append(out, p)
		return true
	})
	return out
}

func genericSearchSpaces(g grid.Grid, origin grid.Position, size grid.Position) [][]grid.Position {
	seen := make(map[grid.Position]bool)
	var spaces [][]grid.Position
	for y := origin.Y; y < origin.Y+size.Y; y++ {
		for x := origin.X; x < origin.X+size.X; x++ {
			p := grid.Pos(x, y)
			if p.X < 0 || p.X >= g.Width() || p.Y < 0 || p.Y >= g.Height() || seen[p] || g.Cell(p).IsFilled() {
				continue
			}
			space := genericSearchSpace(g, p)
			for _, q := range space {
				seen[q] = true
			}
			spaces = append(spaces, space)
		}
	}
	return spaces
}
