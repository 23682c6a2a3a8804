package flat

import (
	"errors"

	"deedles.dev/affine"
)

// Status is the boundary representation of the affine error kinds. It
// crosses the foreign-call boundary as a plain integer.
type Status int32

const (
	StatusOK Status = iota
	StatusDimensionMismatch
	StatusIndexOutOfRange
	StatusInvalidWeights
	StatusUnsupported
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDimensionMismatch:
		return "dimension mismatch"
	case StatusIndexOutOfRange:
		return "index out of range"
	case StatusInvalidWeights:
		return "invalid weights"
	case StatusUnsupported:
		return "unsupported operation"
	case StatusInternal:
		return "internal error"
	default:
		return "unknown status"
	}
}

// StatusOf maps an error from the affine core to its boundary status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, affine.ErrDimensionMismatch):
		return StatusDimensionMismatch
	case errors.Is(err, affine.ErrIndexOutOfRange):
		return StatusIndexOutOfRange
	case errors.Is(err, affine.ErrInvalidWeights):
		return StatusInvalidWeights
	case errors.Is(err, affine.ErrUnsupportedOperation):
		return StatusUnsupported
	default:
		return StatusInternal
	}
}

// Guard invokes fn and converts a panic into StatusInternal, so that
// no unwind ever crosses the foreign-call boundary.
func Guard(fn func() Status) (s Status) {
	defer func() {
		if recover() != nil {
			s = StatusInternal
		}
	}()
	return fn()
}
