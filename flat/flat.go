// Package flat provides fixed, flattened instantiations of the affine
// types for use across a foreign-call boundary: 2D and 3D, int64 and
// float64, vectors and points.
//
// Nothing here is generic in dimension or scalar type, every value is
// a flat fixed-size struct, and no operation panics. Fallible entry
// points report failure through a [Status] instead of an error so that
// nothing language-specific crosses the boundary.
//
// The float64 arithmetic is backed by gonum's r2 and r3 spatial
// packages.
package flat
