package flat

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point2 is a 2D float64 point. Points only subtract from each other
// and translate by vectors; there is no point addition or scaling.
type Point2 struct {
	X, Y float64
}

func (p Point2) r2() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Sub returns the displacement from q to p.
func (p Point2) Sub(q Point2) Vec2 { return fromR2(r2.Sub(p.r2(), q.r2())) }

// Add returns p translated by v.
func (p Point2) Add(v Vec2) Point2 {
	u := r2.Add(p.r2(), v.r2())
	return Point2{X: u.X, Y: u.Y}
}

// SubVec returns p translated by the negation of v.
func (p Point2) SubVec(v Vec2) Point2 {
	u := r2.Sub(p.r2(), v.r2())
	return Point2{X: u.X, Y: u.Y}
}

// Point3 is a 3D float64 point.
type Point3 struct {
	X, Y, Z float64
}

func (p Point3) r3() r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vec3 { return fromR3(r3.Sub(p.r3(), q.r3())) }

// Add returns p translated by v.
func (p Point3) Add(v Vec3) Point3 {
	u := r3.Add(p.r3(), v.r3())
	return Point3{X: u.X, Y: u.Y, Z: u.Z}
}

// SubVec returns p translated by the negation of v.
func (p Point3) SubVec(v Vec3) Point3 {
	u := r3.Sub(p.r3(), v.r3())
	return Point3{X: u.X, Y: u.Y, Z: u.Z}
}

// Point2i is a 2D int64 point.
type Point2i struct {
	X, Y int64
}

// Sub returns the displacement from q to p.
func (p Point2i) Sub(q Point2i) Vec2i { return Vec2i{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p translated by v.
func (p Point2i) Add(v Vec2i) Point2i { return Point2i{X: p.X + v.X, Y: p.Y + v.Y} }

// SubVec returns p translated by the negation of v.
func (p Point2i) SubVec(v Vec2i) Point2i { return Point2i{X: p.X - v.X, Y: p.Y - v.Y} }

// Point3i is a 3D int64 point.
type Point3i struct {
	X, Y, Z int64
}

// Sub returns the displacement from q to p.
func (p Point3i) Sub(q Point3i) Vec3i {
	return Vec3i{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns p translated by v.
func (p Point3i) Add(v Vec3i) Point3i {
	return Point3i{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// SubVec returns p translated by the negation of v.
func (p Point3i) SubVec(v Vec3i) Point3i {
	return Point3i{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}
