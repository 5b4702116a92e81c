package pga

// The join, or wedge, combines two entities into the smallest entity
// incident to both, raising grade. All pairs are antisymmetric: swapping
// the operands negates the result. Already-incident operands (coincident
// points, a point on the line) produce the zero element of the target
// grade.

// Wedge returns the line through p and q. Coincident points yield the
// zero line.
func (p Point) Wedge(q Point) Line {
	return Line{
		VX: q.X*p.W - p.X*q.W,
		VY: q.Y*p.W - p.Y*q.W,
		VZ: q.Z*p.W - p.Z*q.W,
		MX: p.Y*q.Z - p.Z*q.Y,
		MY: p.Z*q.X - p.X*q.Z,
		MZ: p.X*q.Y - p.Y*q.X,
	}
}

// WedgeDirection returns the line through p with direction d.
func (p Point) WedgeDirection(d Direction) Line {
	return Line{
		VX: d.X * p.W,
		VY: d.Y * p.W,
		VZ: d.Z * p.W,
		MX: p.Y*d.Z - p.Z*d.Y,
		MY: p.Z*d.X - p.X*d.Z,
		MZ: p.X*d.Y - p.Y*d.X,
	}
}

// WedgePoint is the negation of Point.WedgeDirection.
func (d Direction) WedgePoint(p Point) Line {
	return p.WedgeDirection(d).Neg()
}

// WedgePoint returns the plane containing l and p. A point on l yields
// the zero plane.
func (l Line) WedgePoint(p Point) Plane {
	return Plane{
		X: l.VY*p.Z - l.VZ*p.Y + l.MX*p.W,
		Y: l.VZ*p.X - l.VX*p.Z + l.MY*p.W,
		Z: l.VX*p.Y - l.VY*p.X + l.MZ*p.W,
		W: -(l.MX*p.X + l.MY*p.Y + l.MZ*p.Z),
	}
}

// WedgeLine is the negation of Line.WedgePoint.
func (p Point) WedgeLine(l Line) Plane {
	return l.WedgePoint(p).Neg()
}

// WedgeMoment returns the plane through p carrying m as its ideal line.
// Joining a point with the dual of a line direction gives the plane
// through the point perpendicular to that line.
func (p Point) WedgeMoment(m LineMoment) Plane {
	return Plane{
		X: -m.X * p.W,
		Y: -m.Y * p.W,
		Z: -m.Z * p.W,
		W: m.X*p.X + m.Y*p.Y + m.Z*p.Z,
	}
}

// WedgePoint is the negation of Point.WedgeMoment.
func (m LineMoment) WedgePoint(p Point) Plane {
	return p.WedgeMoment(m).Neg()
}

// WedgeDirection returns the plane containing l that runs along d. A
// direction parallel to l yields the zero plane.
func (l Line) WedgeDirection(d Direction) Plane {
	return Plane{
		X: l.VY*d.Z - l.VZ*d.Y,
		Y: l.VZ*d.X - l.VX*d.Z,
		Z: l.VX*d.Y - l.VY*d.X,
		W: -(l.MX*d.X + l.MY*d.Y + l.MZ*d.Z),
	}
}

// WedgeLine is the negation of Line.WedgeDirection.
func (d Direction) WedgeLine(l Line) Plane {
	return l.WedgeDirection(d).Neg()
}

// JoinPoints returns the plane through a, b and c. Collinear points yield
// the zero plane.
func JoinPoints(a, b, c Point) Plane {
	return a.Wedge(b).WedgePoint(c)
}
