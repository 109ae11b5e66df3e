package tetris

// RotationMode selects the kick table used by FallingPiece.ApplyMove's
// Rotate case. SRS is the only mode implemented today; the type is kept
// as a proper enum (rather than a bool) so a future mode can be added
// without changing every call site.
type RotationMode uint8

const (
	RotationSRS RotationMode = iota
)

// TSpinMode selects how tSpinKind classifies a three-corner lock: the
// strict variant (corner rule only) awards a standard T-spin for every
// three-corner lock; the mini-friendly variant this engine uses by
// default awards standard only when both front corners are filled, and
// a mini otherwise. In both modes four corners give a standard T-spin,
// fewer than three give none, and the kick used is not consulted.
// See DESIGN.md's Open Question decision.
type TSpinMode uint8

const (
	TSpinMini TSpinMode = iota
	TSpinStrict
)

// Rules bundles the game's configurable rotation and t-spin semantics.
type Rules struct {
	RotationMode RotationMode
	TSpinMode    TSpinMode
}

// DefaultRules is SRS rotation with the mini-friendly t-spin mode.
var DefaultRules = Rules{RotationMode: RotationSRS, TSpinMode: TSpinMini}
