// Package affine provides points and vectors over an affine space of
// generic dimension and scalar type.
//
// A Point is a location and a Vector is a displacement. Both wrap the
// same homogeneous coordinate storage, an extra trailing slot that is
// always 1 for points and 0 for vectors, but they are distinct types:
// operations without affine meaning, such as adding two points or
// scaling a point, do not exist and will not compile.
//
// All types are immutable values. Every operation returns a new value
// and no operation mutates its receiver or arguments, so values may be
// shared freely between goroutines.
package affine

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that can be used as point and
// vector coordinates.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for coordinates with integer types.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for coordinates with floating-point types.
// Operations involving a square root are only available for these.
type Float interface {
	constraints.Float
}

// Signed is a constraint for coordinate types that can represent
// negative values.
type Signed interface {
	constraints.Signed | constraints.Float
}
