// Package scene catalogues small demonstrations of the pga kernel for a
// viewer: each scene names an operation, lists its input entities, and
// carries the entities the kernel computed from them. The package holds
// no algebra of its own; everything derived goes through pga.
package scene

import (
	"dasa.cc/pga"
)

// Scene is one demonstration. The first InputPoints points, InputPlanes
// planes and InputDirections directions are operation inputs; everything
// after them was computed.
type Scene struct {
	Name       string
	Points     []pga.Point
	Lines      []pga.Line
	Planes     []pga.Plane
	Directions []pga.Direction

	InputPoints     int
	InputPlanes     int
	InputDirections int
}

// Scene names, in catalogue order.
const (
	Empty                    = "Empty scene"
	TwoPointsJoinInALine     = "Two points join in a line: L0 = P0 ^ P1"
	DirectionAndPointJoin    = "A direction and a point join in a line: L0 = P0 ^ D0"
	ThreePointsJoinInAPlane  = "Three points join in a plane: p0 = P0 ^ P1 ^ P2"
	LineAndPointJoinInAPlane = "A line and a point join in a plane: p0 = L0 ^ P0"
	TwoPlanesMeetInALine     = "Two planes meet in a line: L0 = p0 & p1"
	ThreePlanesMeetInAPoint  = "Three planes meet in a point: P0 = p0 & p1 & p2"
	LineAndPlaneMeetInAPoint = "A line and a plane meet in a point: P2 = p0 & L0"
	PlanePerpThroughLine     = "The plane perpendicular to plane p0 through line L0: p1 = L0 ^ !p0.dir"
	LinePerpThroughPoint     = "The line perpendicular to plane p0 through point P0: L0 = P0 ^ !p0.dir"
	PlanePerpThroughPoint    = "The plane perpendicular to line L0 through point P0: p0 = P0 ^ !L0.dir"
	ProjectPointOntoPlane    = "The projection of point P0 onto plane p0: P1 = p0 & (P0 ^ !p0.dir)"
	ProjectPlaneOntoPoint    = "The projection of plane p0 onto point P0: p1 = P0 ^ !(P0 ^ !p0.dir).dir"
	ProjectLineOntoPlane     = "The projection of line L0 onto plane p0: L1 = p0 & (L0 ^ !p0.dir)"
)

// Catalogue builds the full demonstration list.
func Catalogue() []Scene {
	p0 := pga.NewPoint(1, 0, 0)
	p1 := pga.NewPoint(0, 1, 0)
	p2 := pga.NewPoint(0, 0, 1)

	// Three triples spanning the planes x=1, y=2 and z=1.
	plane0 := pga.JoinPoints(pga.NewPoint(1, 1, 0), pga.NewPoint(1, 0, 2), pga.NewPoint(1, 2, 0))
	plane1 := pga.JoinPoints(pga.NewPoint(0, 2, 1), pga.NewPoint(0, 2, 3), pga.NewPoint(3, 2, 0))
	plane2 := pga.JoinPoints(pga.NewPoint(0, 1, 1), pga.NewPoint(0, 3, 1), pga.NewPoint(3, 0, 1))

	tilted := pga.NewPlane(1, 0, 1, 1)

	return []Scene{
		{Name: Empty},
		{
			Name:        TwoPointsJoinInALine,
			Points:      []pga.Point{p0, p1},
			Lines:       []pga.Line{p0.Wedge(p1)},
			InputPoints: 2,
		},
		{
			Name:            DirectionAndPointJoin,
			Points:          []pga.Point{pga.NewPoint(1, 1, 0)},
			Directions:      []pga.Direction{pga.NewDirection(0, 1, 0)},
			Lines:           []pga.Line{pga.NewPoint(1, 1, 0).WedgeDirection(pga.NewDirection(0, 1, 0))},
			InputPoints:     1,
			InputDirections: 1,
		},
		{
			Name:        ThreePointsJoinInAPlane,
			Points:      []pga.Point{p0, p1, p2},
			Planes:      []pga.Plane{pga.JoinPoints(p0, p1, p2)},
			InputPoints: 3,
		},
		{
			Name:        LineAndPointJoinInAPlane,
			Points:      []pga.Point{p1, p2, p0},
			Lines:       []pga.Line{p1.Wedge(p2)},
			Planes:      []pga.Plane{p1.Wedge(p2).WedgePoint(p0)},
			InputPoints: 3,
		},
		{
			Name:        TwoPlanesMeetInALine,
			Planes:      []pga.Plane{plane0, plane1},
			Lines:       []pga.Line{plane0.Meet(plane1)},
			InputPlanes: 2,
		},
		{
			Name:        ThreePlanesMeetInAPoint,
			Planes:      []pga.Plane{plane0, plane1, plane2},
			Points:      []pga.Point{pga.MeetPlanes(plane0, plane1, plane2).Unitized()},
			InputPlanes: 3,
		},
		{
			Name:        LineAndPlaneMeetInAPoint,
			Points:      []pga.Point{p1, p2, tilted.MeetLine(p1.Wedge(p2)).Unitized()},
			Lines:       []pga.Line{p1.Wedge(p2)},
			Planes:      []pga.Plane{tilted},
			InputPoints: 2,
			InputPlanes: 1,
		},
		{
			Name:        PlanePerpThroughLine,
			Points:      []pga.Point{p0, p1},
			Lines:       []pga.Line{p0.Wedge(p1)},
			Planes:      []pga.Plane{tilted, pga.PerpendicularPlane(p0.Wedge(p1), tilted)},
			InputPoints: 2,
			InputPlanes: 1,
		},
		{
			Name:        LinePerpThroughPoint,
			Points:      []pga.Point{p0},
			Lines:       []pga.Line{pga.PerpendicularLine(p0, tilted)},
			Planes:      []pga.Plane{tilted},
			InputPoints: 1,
			InputPlanes: 1,
		},
		{
			Name:        PlanePerpThroughPoint,
			Points:      []pga.Point{pga.NewPoint(1, 0, 1), p1, p2},
			Lines:       []pga.Line{p1.Wedge(p2)},
			Planes:      []pga.Plane{pga.PerpendicularPlaneThroughPoint(pga.NewPoint(1, 0, 1), p1.Wedge(p2))},
			InputPoints: 3,
		},
		{
			Name:        ProjectPointOntoPlane,
			Points:      []pga.Point{pga.NewPoint(0, 1, 0), pga.ProjectPointOntoPlane(pga.NewPoint(0, 1, 0), pga.NewPlane(-1, 1, 1, 1)).Unitized()},
			Planes:      []pga.Plane{pga.NewPlane(-1, 1, 1, 1)},
			InputPoints: 1,
			InputPlanes: 1,
		},
		{
			Name:        ProjectPlaneOntoPoint,
			Points:      []pga.Point{pga.NewPoint(1, 2, 3)},
			Planes:      []pga.Plane{pga.NewPlane(-1, 1, 1, 1), pga.ProjectPlaneOntoPoint(pga.NewPlane(-1, 1, 1, 1), pga.NewPoint(1, 2, 3))},
			InputPoints: 1,
			InputPlanes: 1,
		},
		{
			Name:        ProjectLineOntoPlane,
			Points:      []pga.Point{p0, pga.NewPoint(1, 1, 1)},
			Lines:       []pga.Line{p0.Wedge(pga.NewPoint(1, 1, 1)), pga.ProjectLineOntoPlane(p0.Wedge(pga.NewPoint(1, 1, 1)), tilted)},
			Planes:      []pga.Plane{tilted},
			InputPoints: 2,
			InputPlanes: 1,
		},
	}
}
