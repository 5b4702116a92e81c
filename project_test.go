package pga

import (
	"testing"
	"testing/quick"
)

func TestPerpendicularLineThroughPoint(t *testing.T) {
	l := PerpendicularLine(NewPoint(1, 0, 0), Left)
	if !l.ApproxEq(XAxis.Neg()) {
		t.Errorf("have %+v, want %+v", l, XAxis.Neg())
	}
}

func TestPerpendicularPlaneThroughLine(t *testing.T) {
	if a := PerpendicularPlane(ZAxis, Left); !a.ApproxEq(Up.Neg()) {
		t.Errorf("have %+v, want %+v", a, Up.Neg())
	}
	// A line already perpendicular to the plane spans no new plane.
	if a := PerpendicularPlane(XAxis, Left); !a.IsZero() {
		t.Errorf("perpendicular line rejected as %+v", a)
	}
}

func TestPerpendicularPlaneThroughPoint(t *testing.T) {
	a := PerpendicularPlaneThroughPoint(NewPoint(0, 0, 1), ZAxis)
	if !a.ApproxEq(NewPlane(0, 0, 1, -1)) {
		t.Errorf("have %+v, want z=1", a)
	}
}

func TestProjectPointOntoPlane(t *testing.T) {
	p := ProjectPointOntoPlane(NewPoint(3, 0, 0), Left)
	if !p.ApproxEq(NewPoint(0, 0, 0)) {
		t.Errorf("have %+v, want origin", p)
	}
}

func TestProjectPlaneOntoPoint(t *testing.T) {
	a := ProjectPlaneOntoPoint(NewPlane(1, 0, 0, 1), NewPoint(1, 0, 0))
	// The normal flips and the distance term keeps the plane on the point.
	if !a.ApproxEq(NewPlane(-1, 0, 0, 1)) {
		t.Errorf("have %+v, want (-1 0 0 1)", a)
	}
}

func TestProjectLineOntoPlane(t *testing.T) {
	l := ProjectLineOntoPlane(XAxis, NewPlane(0, 1, 0, -1))
	if !l.IsValid() {
		t.Fatalf("projection of transverse line is ideal: %+v", l)
	}
	u := l.Unitized()
	if !u.ApproxEq(NewLine(1, 0, 0, 0, 0, -1)) {
		t.Errorf("have %+v", u)
	}
	if anchor := u.Anchor(); !eq(anchor[0], 0, DefaultEpsilon) ||
		!eq(anchor[1], 1, DefaultEpsilon) || !eq(anchor[2], 0, DefaultEpsilon) {
		t.Errorf("anchor %v, want (0 1 0)", anchor)
	}
}

// The projected point satisfies the plane equation for arbitrary inputs.
func TestProjectionIncidence(t *testing.T) {
	f := func(px, py, pz, nx, ny, nz, d float32) bool {
		a := Plane{nx, ny, nz, d}
		if a.Weight().Norm() < 0.1 {
			return true
		}
		p := ProjectPointOntoPlane(NewPoint(px, py, pz), a)
		if !p.IsValid() {
			return true
		}
		v := p.Vec3()
		return eq(a.X*v[0]+a.Y*v[1]+a.Z*v[2]+a.W, 0, 1e-3)
	}
	if err := quick.Check(f, quickConfig(5, 1000)); err != nil {
		t.Error(err)
	}
}

func TestUnitizeIdempotent(t *testing.T) {
	f := func(ax, ay, az, aw, bx, by, bz, bw float32) bool {
		a, b := Point{ax, ay, az, aw}, Point{bx, by, bz, bw}
		l := a.Wedge(b)
		pl := Plane{ax, ay, az, bw}
		ok := true
		if a.IsValid() {
			ok = ok && a.Unitized().Unitized().ApproxEq(a.Unitized())
		}
		if l.IsValid() {
			ok = ok && l.Unitized().Unitized().ApproxEq(l.Unitized())
		}
		if pl.IsValid() {
			ok = ok && pl.Unitized().Unitized().ApproxEq(pl.Unitized())
		}
		return ok
	}
	if err := quick.Check(f, quickConfig(6, 1000)); err != nil {
		t.Error(err)
	}
}
