package bot

import (
	"github.com/s-shin/stacker-core/movesearch"
	"github.com/s-shin/stacker-core/tetris"
)

// EncodeAction packs an Action into a single non-negative integer for
// ML-adjacent consumers: 0 denotes Hold; any other value encodes a
// destination placement as
// 1 + x*(H*4*2) + y*(4*2) + orientation*2 + wasRotated, where H is the
// playfield's internal height and x/y are shifted by offsetX/offsetY
// so they are never negative (the caller picks offsets large enough
// for its piece catalogue's bounding boxes, e.g. 2 and 2, since an I
// piece against the left wall or on the floor has a box position of -2).
func EncodeAction(action movesearch.Action, offsetX, offsetY int) int {
	if action.Kind == movesearch.ActionHold {
		return 0
	}
	dst := action.Transition.Destination
	x := dst.Position.X + offsetX
	y := dst.Position.Y + offsetY
	orientation := int(dst.Orientation)
	wasRotated := 0
	if action.Transition.RotationEdge != nil {
		wasRotated = 1
	}
	h := tetris.InternalHeight
	return 1 + x*(h*4*2) + y*(4*2) + orientation*2 + wasRotated
}
