package gltext

import (
	"errors"
	"fmt"
)

// Errors returned by AddString and AddStringRelative.
var (
	// ErrInvalidScale is returned for a scale that is not positive.
	ErrInvalidScale = errors.New("gltext: scale must be positive")

	// ErrInvalidPlacement is returned for an unknown placement, or for
	// PlacementRelative passed to AddString.
	ErrInvalidPlacement = errors.New("gltext: invalid placement")

	// ErrInvalidAlignment is returned for an unknown alignment.
	ErrInvalidAlignment = errors.New("gltext: invalid alignment")

	// ErrStringTooLong is returned together with the record of a string
	// that was truncated to MaxStringLen code points.
	ErrStringTooLong = fmt.Errorf("gltext: string truncated to %d code points", MaxStringLen)
)

// OriginError reports a relative origin outside [0, 1].
type OriginError struct {
	X, Y float32
}

func (e *OriginError) Error() string {
	return fmt.Sprintf("gltext: relative origin (%g, %g) outside [0, 1]", e.X, e.Y)
}
