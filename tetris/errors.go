package tetris

import "github.com/pkg/errors"

// Sentinel errors, tested with errors.Is; wrapped with context via
// errors.Wrap/Wrapf at the call site (see SPEC_FULL.md §3/§8).
var (
	// ErrPreconditionViolated: the operation requires a state that is
	// not present (hold without CanHold, rotate without a falling
	// piece, supplying pieces to a full queue).
	ErrPreconditionViolated = errors.New("precondition violated")
	// ErrNoLegalMove: GetMoveCandidates found no placement that is both
	// reachable and lockable.
	ErrNoLegalMove = errors.New("no legal move")
)
