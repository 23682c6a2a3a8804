//go:build js && wasm

package wasm

import (
	"syscall/js"

	"deedles.dev/affine/flat"
)

func api() map[string]any {
	return map[string]any{
		"vec2":     vec2API(),
		"vec3":     vec3API(),
		"vec2i":    vec2iAPI(),
		"vec3i":    vec3iAPI(),
		"point2":   point2API(),
		"point3":   point3API(),
		"point2i":  point2iAPI(),
		"point3i":  point3iAPI(),
		"combine2": combine2Fn(),
		"combine3": combine3Fn(),
	}
}

func v2(c []float64) flat.Vec2 { return flat.Vec2{X: c[0], Y: c[1]} }
func v3(c []float64) flat.Vec3 { return flat.Vec3{X: c[0], Y: c[1], Z: c[2]} }
func p2(c []float64) flat.Point2 { return flat.Point2{X: c[0], Y: c[1]} }
func p3(c []float64) flat.Point3 { return flat.Point3{X: c[0], Y: c[1], Z: c[2]} }

func v2i(c []float64) flat.Vec2i { return flat.Vec2i{X: int64(c[0]), Y: int64(c[1])} }
func v3i(c []float64) flat.Vec3i {
	return flat.Vec3i{X: int64(c[0]), Y: int64(c[1]), Z: int64(c[2])}
}
func p2i(c []float64) flat.Point2i { return flat.Point2i{X: int64(c[0]), Y: int64(c[1])} }
func p3i(c []float64) flat.Point3i {
	return flat.Point3i{X: int64(c[0]), Y: int64(c[1]), Z: int64(c[2])}
}

func tagV2(v flat.Vec2) map[string]any { return ok(tagged("v2", v.X, v.Y)) }
func tagV3(v flat.Vec3) map[string]any { return ok(tagged("v3", v.X, v.Y, v.Z)) }
func tagP2(p flat.Point2) map[string]any { return ok(tagged("p2", p.X, p.Y)) }
func tagP3(p flat.Point3) map[string]any { return ok(tagged("p3", p.X, p.Y, p.Z)) }

func tagV2i(v flat.Vec2i) map[string]any {
	return ok(tagged("v2i", float64(v.X), float64(v.Y)))
}
func tagV3i(v flat.Vec3i) map[string]any {
	return ok(tagged("v3i", float64(v.X), float64(v.Y), float64(v.Z)))
}
func tagP2i(p flat.Point2i) map[string]any {
	return ok(tagged("p2i", float64(p.X), float64(p.Y)))
}
func tagP3i(p flat.Point3i) map[string]any {
	return ok(tagged("p3i", float64(p.X), float64(p.Y), float64(p.Z)))
}

func vec2API() map[string]any {
	return map[string]any{
		"of":        of("v2", 2),
		"add":       binary("v2", "v2", func(a, b []float64) any { return tagV2(v2(a).Add(v2(b))) }),
		"sub":       binary("v2", "v2", func(a, b []float64) any { return tagV2(v2(a).Sub(v2(b))) }),
		"neg":       unary("v2", func(c []float64) any { return tagV2(v2(c).Neg()) }),
		"scale":     scalarArg("v2", func(c []float64, s float64) any { return tagV2(v2(c).Scale(s)) }),
		"dot":       binary("v2", "v2", func(a, b []float64) any { return okNum(v2(a).Dot(v2(b))) }),
		"norm":      unary("v2", func(c []float64) any { return okNum(v2(c).Norm()) }),
		"cross":     binary("v2", "v2", func(a, b []float64) any { return okNum(v2(a).Cross(v2(b))) }),
		"normalize": unary("v2", func(c []float64) any { return tagV2(v2(c).Normalize()) }),
	}
}

func vec3API() map[string]any {
	return map[string]any{
		"of":        of("v3", 3),
		"add":       binary("v3", "v3", func(a, b []float64) any { return tagV3(v3(a).Add(v3(b))) }),
		"sub":       binary("v3", "v3", func(a, b []float64) any { return tagV3(v3(a).Sub(v3(b))) }),
		"neg":       unary("v3", func(c []float64) any { return tagV3(v3(c).Neg()) }),
		"scale":     scalarArg("v3", func(c []float64, s float64) any { return tagV3(v3(c).Scale(s)) }),
		"dot":       binary("v3", "v3", func(a, b []float64) any { return okNum(v3(a).Dot(v3(b))) }),
		"norm":      unary("v3", func(c []float64) any { return okNum(v3(c).Norm()) }),
		"cross":     binary("v3", "v3", func(a, b []float64) any { return tagV3(v3(a).Cross(v3(b))) }),
		"normalize": unary("v3", func(c []float64) any { return tagV3(v3(c).Normalize()) }),
	}
}

func vec2iAPI() map[string]any {
	return map[string]any{
		"of":          of("v2i", 2),
		"add":         binary("v2i", "v2i", func(a, b []float64) any { return tagV2i(v2i(a).Add(v2i(b))) }),
		"sub":         binary("v2i", "v2i", func(a, b []float64) any { return tagV2i(v2i(a).Sub(v2i(b))) }),
		"neg":         unary("v2i", func(c []float64) any { return tagV2i(v2i(c).Neg()) }),
		"scale":       scalarArg("v2i", func(c []float64, s float64) any { return tagV2i(v2i(c).Scale(int64(s))) }),
		"dot":         binary("v2i", "v2i", func(a, b []float64) any { return okNum(float64(v2i(a).Dot(v2i(b)))) }),
		"normSquared": unary("v2i", func(c []float64) any { return okNum(float64(v2i(c).NormSquared())) }),
		"cross":       binary("v2i", "v2i", func(a, b []float64) any { return okNum(float64(v2i(a).Cross(v2i(b)))) }),
	}
}

func vec3iAPI() map[string]any {
	return map[string]any{
		"of":          of("v3i", 3),
		"add":         binary("v3i", "v3i", func(a, b []float64) any { return tagV3i(v3i(a).Add(v3i(b))) }),
		"sub":         binary("v3i", "v3i", func(a, b []float64) any { return tagV3i(v3i(a).Sub(v3i(b))) }),
		"neg":         unary("v3i", func(c []float64) any { return tagV3i(v3i(c).Neg()) }),
		"scale":       scalarArg("v3i", func(c []float64, s float64) any { return tagV3i(v3i(c).Scale(int64(s))) }),
		"dot":         binary("v3i", "v3i", func(a, b []float64) any { return okNum(float64(v3i(a).Dot(v3i(b)))) }),
		"normSquared": unary("v3i", func(c []float64) any { return okNum(float64(v3i(c).NormSquared())) }),
		"cross":       binary("v3i", "v3i", func(a, b []float64) any { return tagV3i(v3i(a).Cross(v3i(b))) }),
	}
}

func point2API() map[string]any {
	return map[string]any{
		"of":     of("p2", 2),
		"origin": guard(func([]js.Value) any { return tagP2(flat.Point2{}) }),
		"sub":    binary("p2", "p2", func(a, b []float64) any { return tagV2(p2(a).Sub(p2(b))) }),
		"add":    binary("p2", "v2", func(a, b []float64) any { return tagP2(p2(a).Add(v2(b))) }),
		"subVec": binary("p2", "v2", func(a, b []float64) any { return tagP2(p2(a).SubVec(v2(b))) }),
	}
}

func point3API() map[string]any {
	return map[string]any{
		"of":     of("p3", 3),
		"origin": guard(func([]js.Value) any { return tagP3(flat.Point3{}) }),
		"sub":    binary("p3", "p3", func(a, b []float64) any { return tagV3(p3(a).Sub(p3(b))) }),
		"add":    binary("p3", "v3", func(a, b []float64) any { return tagP3(p3(a).Add(v3(b))) }),
		"subVec": binary("p3", "v3", func(a, b []float64) any { return tagP3(p3(a).SubVec(v3(b))) }),
	}
}

func point2iAPI() map[string]any {
	return map[string]any{
		"of":     of("p2i", 2),
		"origin": guard(func([]js.Value) any { return tagP2i(flat.Point2i{}) }),
		"sub":    binary("p2i", "p2i", func(a, b []float64) any { return tagV2i(p2i(a).Sub(p2i(b))) }),
		"add":    binary("p2i", "v2i", func(a, b []float64) any { return tagP2i(p2i(a).Add(v2i(b))) }),
		"subVec": binary("p2i", "v2i", func(a, b []float64) any { return tagP2i(p2i(a).SubVec(v2i(b))) }),
	}
}

func point3iAPI() map[string]any {
	return map[string]any{
		"of":     of("p3i", 3),
		"origin": guard(func([]js.Value) any { return tagP3i(flat.Point3i{}) }),
		"sub":    binary("p3i", "p3i", func(a, b []float64) any { return tagV3i(p3i(a).Sub(p3i(b))) }),
		"add":    binary("p3i", "v3i", func(a, b []float64) any { return tagP3i(p3i(a).Add(v3i(b))) }),
		"subVec": binary("p3i", "v3i", func(a, b []float64) any { return tagP3i(p3i(a).SubVec(v3i(b))) }),
	}
}

func combine2Fn() js.Func {
	return guard(func(args []js.Value) any {
		points, weights, status := combineArgs(args, "p2")
		if status != flat.StatusOK {
			return fail(status)
		}
		ps := make([]flat.Point2, len(points))
		for i, c := range points {
			ps[i] = p2(c)
		}
		res, status := flat.Combine2(ps, weights)
		if status != flat.StatusOK {
			return fail(status)
		}
		return tagP2(res)
	})
}

func combine3Fn() js.Func {
	return guard(func(args []js.Value) any {
		points, weights, status := combineArgs(args, "p3")
		if status != flat.StatusOK {
			return fail(status)
		}
		ps := make([]flat.Point3, len(points))
		for i, c := range points {
			ps[i] = p3(c)
		}
		res, status := flat.Combine3(ps, weights)
		if status != flat.StatusOK {
			return fail(status)
		}
		return tagP3(res)
	})
}

// combineArgs unpacks (pointArray, weightArray) arguments. Bad point
// values report the same statuses as the typed entry points; only a
// malformed weight list comes back as invalid weights.
func combineArgs(args []js.Value, kind string) ([][]float64, []float64, flat.Status) {
	if len(args) != 2 || args[0].Type() != js.TypeObject || args[1].Type() != js.TypeObject {
		return nil, nil, flat.StatusUnsupported
	}
	np := args[0].Length()
	points := make([][]float64, np)
	for i := range np {
		k, c, decoded := decode(args[0].Index(i))
		if !decoded || k != kind {
			return nil, nil, mismatch(kind, k)
		}
		if len(c) != kindLen[kind] {
			return nil, nil, flat.StatusDimensionMismatch
		}
		points[i] = c
	}
	nw := args[1].Length()
	weights := make([]float64, nw)
	for i := range nw {
		w := args[1].Index(i)
		if w.Type() != js.TypeNumber {
			return nil, nil, flat.StatusInvalidWeights
		}
		weights[i] = w.Float()
	}
	return points, weights, flat.StatusOK
}
