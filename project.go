package pga

// Projections and rejections are compounds of wedge, dual and meet; no new
// algebra lives here. Results are raw join/meet outputs and carry whatever
// scale the algebra produced; unitize them when a canonical representative
// is required.

// PerpendicularLine returns the line through p perpendicular to plane a.
func PerpendicularLine(p Point, a Plane) Line {
	return p.WedgeDirection(a.Weight().Dual())
}

// PerpendicularPlane returns the plane containing l perpendicular to
// plane a. A line perpendicular to the plane yields the zero plane.
func PerpendicularPlane(l Line, a Plane) Plane {
	return l.WedgeDirection(a.Weight().Dual())
}

// PerpendicularPlaneThroughPoint returns the plane through p
// perpendicular to line l.
func PerpendicularPlaneThroughPoint(p Point, l Line) Plane {
	return p.WedgeMoment(l.Weight().Dual())
}

// ProjectPointOntoPlane returns the point of plane a closest to p.
func ProjectPointOntoPlane(p Point, a Plane) Point {
	return a.MeetLine(PerpendicularLine(p, a))
}

// ProjectPlaneOntoPoint returns the plane through p parallel to a. The
// normal of the result faces the opposite way.
func ProjectPlaneOntoPoint(a Plane, p Point) Plane {
	return p.WedgeMoment(PerpendicularLine(p, a).Weight().Dual())
}

// ProjectLineOntoPlane returns the line of plane a closest to l. A line
// perpendicular to the plane yields the zero line.
func ProjectLineOntoPlane(l Line, a Plane) Line {
	return a.Meet(PerpendicularPlane(l, a))
}
