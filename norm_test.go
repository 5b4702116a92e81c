package pga

import "testing"

func TestIsZero(t *testing.T) {
	if !(Line{}).IsZero() || !(Plane{}).IsZero() || !(Point{}).IsZero() {
		t.Error("zero values not zero")
	}
	if (Line{VX: 1e-3}).IsZero() {
		t.Error("small but real line reported zero")
	}
}

func TestIsValidFollowsWeight(t *testing.T) {
	if NewLine(0, 0, 0, 1, 2, 3).IsValid() {
		t.Error("ideal line reported valid")
	}
	if NewPlane(0, 0, 0, 5).IsValid() {
		t.Error("horizon-only plane reported valid")
	}
	if InfinitePoint(1, 0, 0).IsValid() {
		t.Error("ideal point reported valid")
	}
	if !NewPoint(0, 0, 0).IsValid() {
		t.Error("origin point reported invalid")
	}
}

func TestUnitize(t *testing.T) {
	l := NewLine(0, 3, 0, 0, 0, 6)
	u := l.Unitized()
	if !u.ApproxEq(NewLine(0, 1, 0, 0, 0, 2)) {
		t.Errorf("line: %+v", u)
	}
	if !eq(u.Weight().Norm(), 1, DefaultEpsilon) {
		t.Errorf("line weight norm %v", u.Weight().Norm())
	}

	a := NewPlane(0, -2, 0, 4)
	if have := a.Unitized(); !have.ApproxEq(NewPlane(0, -1, 0, 2)) {
		t.Errorf("plane: %+v", have)
	}

	p := Point{2, 4, 6, -2}
	if have := p.Unitized(); !have.ApproxEq(Point{1, 2, 3, -1}) {
		t.Errorf("point: %+v", have)
	}

	// In-place form mutates its receiver.
	m := NewLine(2, 0, 0, 0, 4, 0)
	m.Unitize()
	if !m.ApproxEq(NewLine(1, 0, 0, 0, 2, 0)) {
		t.Errorf("in place: %+v", m)
	}

	d := NewDirection(0, 0, 0)
	if have := *d.Unitize(); !have.ApproxEq(Direction{}) {
		t.Errorf("zero direction: %+v", have)
	}
}

func TestApproxEq(t *testing.T) {
	a := NewPoint(1, 2, 3)
	b := Point{1 + 5e-7, 2, 3 - 5e-7, 1}
	if !a.ApproxEq(b) {
		t.Error("points within default epsilon differ")
	}
	if a.ApproxEqEps(b, 1e-8) {
		t.Error("points beyond tight epsilon equal")
	}
	if a.ApproxEq(NewPoint(1, 2, 3.001)) {
		t.Error("distinct points equal")
	}
	if !XAxis.ApproxEq(XAxis) || !Left.ApproxEq(Left) {
		t.Error("self comparison")
	}
}

func TestNorm(t *testing.T) {
	if n := NewDirection(3, 4, 0).Norm(); !eq(n, 5, DefaultEpsilon) {
		t.Errorf("direction norm %v", n)
	}
	if n := NewLine(1, 1, 1, 1, 1, 1).NormSq(); !eq(n, 6, DefaultEpsilon) {
		t.Errorf("line norm squared %v", n)
	}
	if n := (Origin{-2}).Norm(); !eq(n, 2, DefaultEpsilon) {
		t.Errorf("origin norm %v", n)
	}
}
