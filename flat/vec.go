package flat

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 is a 2D float64 vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) r2() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }
func fromR2(u r2.Vec) Vec2 { return Vec2{X: u.X, Y: u.Y} }

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return fromR2(r2.Add(v.r2(), w.r2())) }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return fromR2(r2.Sub(v.r2(), w.r2())) }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return fromR2(r2.Scale(-1, v.r2())) }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return fromR2(r2.Scale(s, v.r2())) }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return r2.Dot(v.r2(), w.r2()) }

// Norm returns the euclidean norm of v.
func (v Vec2) Norm() float64 { return r2.Norm(v.r2()) }

// NormSquared returns the squared euclidean norm of v.
func (v Vec2) NormSquared() float64 { return r2.Norm2(v.r2()) }

// Cross returns the scalar cross product of v and w, the signed area
// of the parallelogram they span.
func (v Vec2) Cross(w Vec2) float64 { return r2.Cross(v.r2(), w.r2()) }

// Normalize returns the unit vector pointing in the direction of v, or
// v itself if it is the zero vector.
func (v Vec2) Normalize() Vec2 {
	if v == (Vec2{}) {
		return v
	}
	return fromR2(r2.Unit(v.r2()))
}

// Vec3 is a 3D float64 vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) r3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }
func fromR3(u r3.Vec) Vec3 { return Vec3{X: u.X, Y: u.Y, Z: u.Z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return fromR3(r3.Add(v.r3(), w.r3())) }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return fromR3(r3.Sub(v.r3(), w.r3())) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return fromR3(r3.Scale(-1, v.r3())) }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return fromR3(r3.Scale(s, v.r3())) }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return r3.Dot(v.r3(), w.r3()) }

// Norm returns the euclidean norm of v.
func (v Vec3) Norm() float64 { return r3.Norm(v.r3()) }

// NormSquared returns the squared euclidean norm of v.
func (v Vec3) NormSquared() float64 { return r3.Norm2(v.r3()) }

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 { return fromR3(r3.Cross(v.r3(), w.r3())) }

// Normalize returns the unit vector pointing in the direction of v, or
// v itself if it is the zero vector.
func (v Vec3) Normalize() Vec3 {
	if v == (Vec3{}) {
		return v
	}
	return fromR3(r3.Unit(v.r3()))
}

// Vec2i is a 2D int64 vector. Norms are only offered squared; gonum
// has no integer vector type, so the arithmetic is direct.
type Vec2i struct {
	X, Y int64
}

// Add returns v + w.
func (v Vec2i) Add(w Vec2i) Vec2i { return Vec2i{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2i) Sub(w Vec2i) Vec2i { return Vec2i{X: v.X - w.X, Y: v.Y - w.Y} }

// Neg returns -v.
func (v Vec2i) Neg() Vec2i { return Vec2i{X: -v.X, Y: -v.Y} }

// Scale returns v scaled by s.
func (v Vec2i) Scale(s int64) Vec2i { return Vec2i{X: v.X * s, Y: v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2i) Dot(w Vec2i) int64 { return v.X*w.X + v.Y*w.Y }

// NormSquared returns the squared euclidean norm of v.
func (v Vec2i) NormSquared() int64 { return v.Dot(v) }

// Cross returns the scalar cross product of v and w.
func (v Vec2i) Cross(w Vec2i) int64 { return v.X*w.Y - v.Y*w.X }

// Vec3i is a 3D int64 vector.
type Vec3i struct {
	X, Y, Z int64
}

// Add returns v + w.
func (v Vec3i) Add(w Vec3i) Vec3i { return Vec3i{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3i) Sub(w Vec3i) Vec3i { return Vec3i{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z} }

// Neg returns -v.
func (v Vec3i) Neg() Vec3i { return Vec3i{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Scale returns v scaled by s.
func (v Vec3i) Scale(s int64) Vec3i { return Vec3i{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Dot returns the dot product of v and w.
func (v Vec3i) Dot(w Vec3i) int64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// NormSquared returns the squared euclidean norm of v.
func (v Vec3i) NormSquared() int64 { return v.Dot(v) }

// Cross returns the cross product of v and w.
func (v Vec3i) Cross(w Vec3i) Vec3i {
	return Vec3i{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}
