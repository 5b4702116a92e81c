package pga

import "golang.org/x/image/math/f32"

// Direction is a free vector, an ideal point with coordinates on e1, e2, e3.
// The zero value carries no direction.
type Direction struct {
	X, Y, Z float32
}

// NewDirection returns the free vector (x, y, z).
func NewDirection(x, y, z float32) Direction { return Direction{x, y, z} }

// DirectionFromVec3 converts a plain vector to a Direction.
func DirectionFromVec3(v f32.Vec3) Direction { return Direction{v[0], v[1], v[2]} }

// Origin is the weight of a point, a scalar on e4. It is the dual of Horizon.
type Origin struct {
	W float32
}

// Horizon is the bulk of a plane, the signed distance term on e321.
type Horizon struct {
	W float32
}

// Point holds a bulk direction (X, Y, Z) on e1, e2, e3 and a weight W on e4.
// It is a finite point when W is non-negligible and an ideal point (a pure
// direction) when W vanishes.
type Point struct {
	X, Y, Z, W float32
}

// NewPoint returns the finite point (x, y, z) with unit weight.
func NewPoint(x, y, z float32) Point { return Point{x, y, z, 1} }

// InfinitePoint returns the ideal point in direction (x, y, z).
func InfinitePoint(x, y, z float32) Point { return Point{x, y, z, 0} }

// LineDirection is the weight of a line, coordinates on e41, e42, e43.
type LineDirection struct {
	X, Y, Z float32
}

// LineMoment is the bulk of a line, its moment about the origin on
// e23, e31, e12.
type LineMoment struct {
	X, Y, Z float32
}

// Line is a line in space as a Plücker-like pair: direction (VX, VY, VZ)
// on e41, e42, e43 and moment (MX, MY, MZ) on e23, e31, e12. A line with
// negligible direction is ideal.
type Line struct {
	VX, VY, VZ float32
	MX, MY, MZ float32
}

// NewLine returns the line with direction (vx, vy, vz) and moment
// (mx, my, mz).
func NewLine(vx, vy, vz, mx, my, mz float32) Line {
	return Line{vx, vy, vz, mx, my, mz}
}

// LineThroughOrigin returns the line through the origin in direction
// (x, y, z).
func LineThroughOrigin(x, y, z float32) Line {
	return Line{VX: x, VY: y, VZ: z}
}

// LineFromVecs returns the line with direction v and moment m.
func LineFromVecs(v, m f32.Vec3) Line {
	return Line{v[0], v[1], v[2], m[0], m[1], m[2]}
}

// PlaneDirection is the weight of a plane, its normal on e423, e431, e412.
type PlaneDirection struct {
	X, Y, Z float32
}

// Plane is the plane n·x + d = 0 with normal (X, Y, Z) on e423, e431, e412
// and distance term W on e321. A plane with negligible normal is invalid.
type Plane struct {
	X, Y, Z, W float32
}

// NewPlane returns the plane ax + by + cz + d = 0.
func NewPlane(a, b, c, d float32) Plane { return Plane{a, b, c, d} }

// PlaneFromNormalDistance returns the plane with the given normal and
// distance term.
func PlaneFromNormalDistance(normal f32.Vec3, distance float32) Plane {
	return Plane{normal[0], normal[1], normal[2], distance}
}

// PlaneFromNormalPoint returns the plane through point with the given
// normal; the normal is normalized first.
func PlaneFromNormalPoint(normal, point f32.Vec3) Plane {
	n := norm3(normal)
	if n <= eps32 {
		return Plane{}
	}
	x, y, z := normal[0]/n, normal[1]/n, normal[2]/n
	return Plane{x, y, z, -(x*point[0] + y*point[1] + z*point[2])}
}

// Coordinate axes and planes, fixing the right-handed, y-up convention of
// the algebra: Left.Meet(Up) is -ZAxis along with its cyclic permutations.
var (
	XAxis = Line{VX: 1}
	YAxis = Line{VY: 1}
	ZAxis = Line{VZ: 1}

	Left    = Plane{X: 1}
	Up      = Plane{Y: 1}
	Forward = Plane{Z: 1}
)

// Grades of the entity types.

func (Direction) Grade() int      { return GradeOf(E1) }
func (Origin) Grade() int         { return GradeOf(E4) }
func (Point) Grade() int          { return GradeOf(E1) }
func (LineDirection) Grade() int  { return GradeOf(E41) }
func (LineMoment) Grade() int     { return GradeOf(E23) }
func (Line) Grade() int           { return GradeOf(E41) }
func (PlaneDirection) Grade() int { return GradeOf(E423) }
func (Horizon) Grade() int        { return GradeOf(E321) }
func (Plane) Grade() int          { return GradeOf(E423) }

// Negations.

func (d Direction) Neg() Direction { return Direction{-d.X, -d.Y, -d.Z} }
func (o Origin) Neg() Origin       { return Origin{-o.W} }
func (h Horizon) Neg() Horizon     { return Horizon{-h.W} }
func (p Point) Neg() Point         { return Point{-p.X, -p.Y, -p.Z, -p.W} }

func (d LineDirection) Neg() LineDirection { return LineDirection{-d.X, -d.Y, -d.Z} }
func (m LineMoment) Neg() LineMoment       { return LineMoment{-m.X, -m.Y, -m.Z} }

func (l Line) Neg() Line {
	return Line{-l.VX, -l.VY, -l.VZ, -l.MX, -l.MY, -l.MZ}
}

func (d PlaneDirection) Neg() PlaneDirection { return PlaneDirection{-d.X, -d.Y, -d.Z} }
func (p Plane) Neg() Plane                   { return Plane{-p.X, -p.Y, -p.Z, -p.W} }

// Bulk returns the part of p that vanishes for a point at the origin.
func (p Point) Bulk() Direction { return Direction{p.X, p.Y, p.Z} }

// Weight returns the part of p that vanishes for an ideal point.
func (p Point) Weight() Origin { return Origin{p.W} }

// Bulk returns the moment of l about the origin.
func (l Line) Bulk() LineMoment { return LineMoment{l.MX, l.MY, l.MZ} }

// Weight returns the direction of l.
func (l Line) Weight() LineDirection { return LineDirection{l.VX, l.VY, l.VZ} }

// Bulk returns the distance term of p.
func (p Plane) Bulk() Horizon { return Horizon{p.W} }

// Weight returns the normal of p.
func (p Plane) Weight() PlaneDirection { return PlaneDirection{p.X, p.Y, p.Z} }

// Conversions for a rendering or UI layer that needs raw coordinates.

func (d Direction) Vec3() f32.Vec3      { return f32.Vec3{d.X, d.Y, d.Z} }
func (d LineDirection) Vec3() f32.Vec3  { return f32.Vec3{d.X, d.Y, d.Z} }
func (m LineMoment) Vec3() f32.Vec3     { return f32.Vec3{m.X, m.Y, m.Z} }
func (d PlaneDirection) Vec3() f32.Vec3 { return f32.Vec3{d.X, d.Y, d.Z} }

func (p Point) Vec4() f32.Vec4 { return f32.Vec4{p.X, p.Y, p.Z, p.W} }
func (p Plane) Vec4() f32.Vec4 { return f32.Vec4{p.X, p.Y, p.Z, p.W} }

// Vec3 returns the cartesian coordinates of p. The result is the zero
// vector for an ideal point; callers distinguish the two with IsValid.
func (p Point) Vec3() f32.Vec3 {
	if !p.IsValid() {
		return f32.Vec3{}
	}
	return f32.Vec3{p.X / p.W, p.Y / p.W, p.Z / p.W}
}

// Anchor returns the point of l closest to the origin, v×m/|v|², or the
// zero vector for an ideal line.
func (l Line) Anchor() f32.Vec3 {
	vv := l.VX*l.VX + l.VY*l.VY + l.VZ*l.VZ
	if vv <= eps32 {
		return f32.Vec3{}
	}
	return f32.Vec3{
		(l.VY*l.MZ - l.VZ*l.MY) / vv,
		(l.VZ*l.MX - l.VX*l.MZ) / vv,
		(l.VX*l.MY - l.VY*l.MX) / vv,
	}
}

// Anchor returns the point of p closest to the origin, -d·n/|n|², or the
// zero vector for an invalid plane.
func (p Plane) Anchor() f32.Vec3 {
	nn := p.X*p.X + p.Y*p.Y + p.Z*p.Z
	if nn <= eps32 {
		return f32.Vec3{}
	}
	s := -p.W / nn
	return f32.Vec3{p.X * s, p.Y * s, p.Z * s}
}

func norm3(v f32.Vec3) float32 {
	return sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
