// Package pga provides primitives for 3D projective geometric algebra.
//
// The algebra is the degenerate exterior algebra over e1, e2, e3, e4 with
// e4e4 = 0. Points, lines, planes and free directions are small fixed-size
// value types holding only the coordinates of their grade; the join raises
// grade, the meet lowers it, and duality maps an entity to its orthogonal
// complement. Every operation is total: degenerate inputs (coincident
// points, parallel planes, and so on) produce the zero element of the
// target grade rather than an error, and callers decide what zero means by
// testing IsZero or IsValid.
//
// https://bivector.net/tools.html?p=3&q=0&r=1
// https://projectivegeometricalgebra.org/
package pga

import "math"

// DefaultEpsilon is the tolerance used by ApproxEq.
const DefaultEpsilon = 1e-6

// eps32 is the machine epsilon of float32. IsZero and IsValid compare
// against this, not DefaultEpsilon.
const eps32 = 1.1920929e-07

// Entity is the behavior common to every graded element.
type Entity interface {
	Grade() int
	NormSq() float32
	Norm() float32
	IsZero() bool
}

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func eq(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}
