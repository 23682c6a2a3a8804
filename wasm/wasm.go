//go:build js && wasm

// Package wasm exposes the fixed instantiations from the flat package
// to JavaScript.
//
// Values cross the boundary as plain objects {k, c} where k is a kind
// tag ("v2", "p3i", ...) and c is a flat array of the fixed number of
// components. Every operation returns {status, value}; status is a
// [flat.Status] integer and value is absent on failure. No call ever
// panics across the boundary: mistyped arguments, mixed dimensions,
// and affine-invalid combinations such as adding two points all come
// back as a non-zero status.
package wasm

import (
	"syscall/js"

	"deedles.dev/affine/flat"
)

// Register installs the API as an "affine" property of the given
// JavaScript value, usually globalThis.
func Register(global js.Value) {
	global.Set("affine", js.ValueOf(api()))
}

func tagged(kind string, comps ...float64) map[string]any {
	c := make([]any, len(comps))
	for i, x := range comps {
		c[i] = x
	}
	return map[string]any{"k": kind, "c": c}
}

func ok(value map[string]any) map[string]any {
	return map[string]any{"status": int32(flat.StatusOK), "value": value}
}

func okNum(x float64) map[string]any {
	return map[string]any{"status": int32(flat.StatusOK), "value": x}
}

func fail(s flat.Status) map[string]any {
	return map[string]any{"status": int32(s)}
}

// decode unpacks a boundary value. It reports the kind tag along with
// the components so that callers can distinguish a wrong dimension
// from a wrong role.
func decode(v js.Value) (kind string, comps []float64, decoded bool) {
	if v.Type() != js.TypeObject {
		return "", nil, false
	}
	k := v.Get("k")
	c := v.Get("c")
	if k.Type() != js.TypeString || c.Type() != js.TypeObject {
		return "", nil, false
	}
	n := c.Length()
	comps = make([]float64, n)
	for i := range n {
		e := c.Index(i)
		if e.Type() != js.TypeNumber {
			return "", nil, false
		}
		comps[i] = e.Float()
	}
	return k.String(), comps, true
}

var kindLen = map[string]int{
	"v2": 2, "p2": 2, "v2i": 2, "p2i": 2,
	"v3": 3, "p3": 3, "v3i": 3, "p3i": 3,
}

// mismatch maps a wrong argument to its boundary status: same role in
// another dimension is a dimension mismatch, anything else has no
// affine meaning.
func mismatch(want, got string) flat.Status {
	if got != "" && want != "" && got[0] == want[0] {
		return flat.StatusDimensionMismatch
	}
	return flat.StatusUnsupported
}

func guard(fn func(args []js.Value) any) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) (res any) {
		defer func() {
			if recover() != nil {
				res = fail(flat.StatusInternal)
			}
		}()
		return fn(args)
	})
}

// unary wraps an operation on one boundary value of the given kind.
func unary(kind string, fn func(c []float64) any) js.Func {
	return guard(func(args []js.Value) any {
		if len(args) != 1 {
			return fail(flat.StatusUnsupported)
		}
		k, c, decoded := decode(args[0])
		if !decoded || k != kind {
			return fail(mismatch(kind, k))
		}
		if len(c) != kindLen[kind] {
			return fail(flat.StatusDimensionMismatch)
		}
		return fn(c)
	})
}

// binary wraps an operation on two boundary values of the given kinds.
func binary(ka, kb string, fn func(a, b []float64) any) js.Func {
	return guard(func(args []js.Value) any {
		if len(args) != 2 {
			return fail(flat.StatusUnsupported)
		}
		k1, a, ok1 := decode(args[0])
		if !ok1 || k1 != ka {
			return fail(mismatch(ka, k1))
		}
		k2, b, ok2 := decode(args[1])
		if !ok2 || k2 != kb {
			return fail(mismatch(kb, k2))
		}
		if len(a) != kindLen[ka] || len(b) != kindLen[kb] {
			return fail(flat.StatusDimensionMismatch)
		}
		return fn(a, b)
	})
}

// scalarArg wraps an operation on one boundary value and one number.
func scalarArg(kind string, fn func(c []float64, s float64) any) js.Func {
	return guard(func(args []js.Value) any {
		if len(args) != 2 {
			return fail(flat.StatusUnsupported)
		}
		k, c, decoded := decode(args[0])
		if !decoded || k != kind {
			return fail(mismatch(kind, k))
		}
		if len(c) != kindLen[kind] {
			return fail(flat.StatusDimensionMismatch)
		}
		if args[1].Type() != js.TypeNumber {
			return fail(flat.StatusUnsupported)
		}
		return fn(c, args[1].Float())
	})
}

// of builds the constructor for a kind with the fixed component count.
func of(kind string, n int) js.Func {
	return guard(func(args []js.Value) any {
		if len(args) != n {
			return fail(flat.StatusDimensionMismatch)
		}
		comps := make([]float64, n)
		for i, a := range args {
			if a.Type() != js.TypeNumber {
				return fail(flat.StatusUnsupported)
			}
			comps[i] = a.Float()
		}
		return ok(tagged(kind, comps...))
	})
}
