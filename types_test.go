package pga

import (
	"testing"

	"golang.org/x/image/math/f32"
)

var (
	_ Entity = Direction{}
	_ Entity = Origin{}
	_ Entity = Horizon{}
	_ Entity = Point{}
	_ Entity = LineDirection{}
	_ Entity = LineMoment{}
	_ Entity = Line{}
	_ Entity = PlaneDirection{}
	_ Entity = Plane{}
)

func TestConstructors(t *testing.T) {
	if p := NewPoint(1, 2, 3); p.W != 1 || !p.IsValid() {
		t.Errorf("NewPoint: %+v", p)
	}
	if p := InfinitePoint(1, 2, 3); p.W != 0 || p.IsValid() || p.IsZero() {
		t.Errorf("InfinitePoint: %+v", p)
	}
	if l := LineThroughOrigin(0, 1, 0); !l.Bulk().IsZero() || !l.IsValid() {
		t.Errorf("LineThroughOrigin: %+v", l)
	}
	if l := NewLine(1, 0, 0, 0, 2, 0); l.Weight() != (LineDirection{1, 0, 0}) || l.Bulk() != (LineMoment{0, 2, 0}) {
		t.Errorf("NewLine: %+v", l)
	}
}

func TestPlaneFromNormalPoint(t *testing.T) {
	a := PlaneFromNormalPoint(f32.Vec3{0, 2, 0}, f32.Vec3{0, 3, 0})
	if !a.ApproxEq(NewPlane(0, 1, 0, -3)) {
		t.Errorf("have %+v, want (0 1 0 -3)", a)
	}
	if z := PlaneFromNormalPoint(f32.Vec3{}, f32.Vec3{1, 1, 1}); !z.IsZero() {
		t.Errorf("zero normal: %+v", z)
	}
}

func TestPointVec3(t *testing.T) {
	if v := (Point{2, 4, 6, 2}).Vec3(); v != (f32.Vec3{1, 2, 3}) {
		t.Errorf("perspective divide: %v", v)
	}
	if v := InfinitePoint(1, 2, 3).Vec3(); v != (f32.Vec3{}) {
		t.Errorf("ideal point: %v", v)
	}
}

func TestAnchors(t *testing.T) {
	// Line through (0, 1, 0) along x.
	l := NewPoint(0, 1, 0).Wedge(NewPoint(2, 1, 0)).Unitized()
	if a := l.Anchor(); !eq(a[0], 0, DefaultEpsilon) || !eq(a[1], 1, DefaultEpsilon) || !eq(a[2], 0, DefaultEpsilon) {
		t.Errorf("line anchor %v, want (0 1 0)", a)
	}
	if a := LineThroughOrigin(0, 0, 0).Anchor(); a != (f32.Vec3{}) {
		t.Errorf("zero line anchor %v", a)
	}

	p := NewPlane(0, 2, 0, -4)
	if a := p.Anchor(); !eq(a[1], 2, DefaultEpsilon) {
		t.Errorf("plane anchor %v, want (0 2 0)", a)
	}
}

func TestBulkWeightDecomposition(t *testing.T) {
	p := Point{1, 2, 3, 4}
	if p.Bulk() != (Direction{1, 2, 3}) || p.Weight() != (Origin{4}) {
		t.Errorf("point: %+v %+v", p.Bulk(), p.Weight())
	}
	l := NewLine(1, 2, 3, 4, 5, 6)
	if l.Weight() != (LineDirection{1, 2, 3}) || l.Bulk() != (LineMoment{4, 5, 6}) {
		t.Errorf("line: %+v %+v", l.Weight(), l.Bulk())
	}
	a := Plane{1, 2, 3, 4}
	if a.Weight() != (PlaneDirection{1, 2, 3}) || a.Bulk() != (Horizon{4}) {
		t.Errorf("plane: %+v %+v", a.Weight(), a.Bulk())
	}
}

func TestGrades(t *testing.T) {
	for _, tt := range []struct {
		e    Entity
		want int
	}{
		{Direction{}, 1},
		{Origin{}, 1},
		{Point{}, 1},
		{LineDirection{}, 2},
		{LineMoment{}, 2},
		{Line{}, 2},
		{PlaneDirection{}, 3},
		{Horizon{}, 3},
		{Plane{}, 3},
	} {
		if have := tt.e.Grade(); have != tt.want {
			t.Errorf("%T grade %d, want %d", tt.e, have, tt.want)
		}
	}
}

func TestBlades(t *testing.T) {
	if GradeOf(E41) != 2 || GradeOf(E321) != 3 || GradeOf(E4) != 1 {
		t.Error("blade grades")
	}
	if AntiGradeOf(E423) != 1 || AntiGradeOf(E12) != 2 {
		t.Error("blade antigrades")
	}
	if !Degenerate(E41) || Degenerate(E23) || !Degenerate(E4) || Degenerate(E321) {
		t.Error("degenerate blades")
	}
}
