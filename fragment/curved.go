package fragment

import (
	"math"

	"github.com/vasalvit/svgpath"
)

// CurvedElement describes a ring segment: the band between Radius and
// Radius+Width spanning Angle degrees from Rotation.
type CurvedElement struct {
	Center svgpath.Vector2D
	// Radius is the inner radius of the band.
	Radius float64
	Width  float64
	// Angle defaults to 90.
	Angle    float64
	Rotation float64
	// Addition grows the segment by this length on every side. It is
	// limited to Radius.
	Addition float64
}

// CurvedElementPath returns the closed outline of e. Each edge arc is
// lengthened by the addition and stays centered on the original span. A
// right angle segment has no inner arc: its inner edge becomes the
// corner where the two straight edges meet.
func CurvedElementPath(e CurvedElement) *svgpath.Path {
	angle := e.Angle
	if angle == 0 {
		angle = 90
	}
	addition := math.Min(e.Addition, e.Radius)

	inner := e.Radius - addition
	outer := e.Radius + e.Width + addition

	outerAngle := svgpath.EnlargeArc(angle, outer, addition)
	outerStart := e.Rotation + (angle-outerAngle)/2
	outerEnd := svgpath.FromPolar(outer, outerStart+outerAngle, e.Center)

	p := svgpath.NewPath()

	if angle == 90 {
		a := svgpath.FromPolar(outer, outerStart, e.Center)
		corner, ok := svgpath.Intersect(
			a, a.Add(svgpath.FromPolar(1, e.Rotation, svgpath.Origin)),
			outerEnd, outerEnd.Add(svgpath.FromPolar(1, e.Rotation+angle, svgpath.Origin)),
		)
		if !ok {
			corner = e.Center
		}
		return p.MoveTo(corner).
			LineTo(outerEnd).
			ArcAroundTo(e.Center, -outerAngle).
			Close()
	}

	innerAngle := svgpath.EnlargeArc(angle, inner, addition)
	innerStart := e.Rotation + (angle-innerAngle)/2

	return p.MoveTo(svgpath.FromPolar(inner, innerStart, e.Center)).
		ArcAroundTo(e.Center, innerAngle).
		LineTo(outerEnd).
		ArcAroundTo(e.Center, -outerAngle).
		Close()
}
