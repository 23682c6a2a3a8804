package affine

import "errors"

var (
	// ErrDimensionMismatch indicates an operation on operands of
	// incompatible dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange indicates a component access outside of the
	// valid range. The reserved homogeneous slot is always out of
	// range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidWeights indicates an affine combination whose weights
	// do not sum to one or do not match the points given with them.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrUnsupportedOperation indicates an operation with no affine
	// meaning, such as converting a homogeneous value whose trailing
	// coordinate marks it as neither a point nor a vector.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
