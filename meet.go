package pga

// The meet, or antiwedge, intersects two entities, lowering grade. It is
// the dual of the join of the duals, implemented directly with closed-form
// coordinate formulas for the pairs that occur. Like the join it is
// anticommutative, and non-intersecting operands degrade to the zero or
// ideal element of the target grade.

// Meet returns the intersection line of a and b. Parallel planes yield
// the zero line.
func (a Plane) Meet(b Plane) Line {
	return Line{
		VX: a.Z*b.Y - a.Y*b.Z,
		VY: a.X*b.Z - a.Z*b.X,
		VZ: a.Y*b.X - a.X*b.Y,
		MX: a.X*b.W - a.W*b.X,
		MY: a.Y*b.W - a.W*b.Y,
		MZ: a.Z*b.W - a.W*b.Z,
	}
}

// MeetLine returns the intersection point of a and l. A line parallel to
// the plane yields an ideal point, a line on the plane through the origin
// the zero point.
func (a Plane) MeetLine(l Line) Point {
	return Point{
		X: a.Z*l.MY - a.Y*l.MZ + a.W*l.VX,
		Y: a.X*l.MZ - a.Z*l.MX + a.W*l.VY,
		Z: a.Y*l.MX - a.X*l.MY + a.W*l.VZ,
		W: -(a.X*l.VX + a.Y*l.VY + a.Z*l.VZ),
	}
}

// MeetPlane is the negation of Plane.MeetLine.
func (l Line) MeetPlane(a Plane) Point {
	return a.MeetLine(l).Neg()
}

// MeetPlanes returns the common point of a, b and c. Three planes sharing
// a line meet in an ideal point; parallel planes in the zero point.
func MeetPlanes(a, b, c Plane) Point {
	return a.Meet(b).MeetPlane(c)
}
