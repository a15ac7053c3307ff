package bitmap

import "errors"

var (
	// ErrInvalidSize reports a size with a negative dimension or a point
	// count that does not fit in an int. Raised by every constructor and
	// by Resize; never clamped or defaulted.
	ErrInvalidSize = errors.New("bitmap: invalid size")

	// ErrShapeMismatch reports a source slice whose length does not match
	// the requested size's point count. Raised only by FromSlice.
	ErrShapeMismatch = errors.New("bitmap: shape mismatch")

	// ErrOutOfRange reports a coordinate outside [0,width) x [0,height).
	// Raised by the checked access paths; the unchecked paths never
	// report it.
	ErrOutOfRange = errors.New("bitmap: point out of range")
)
