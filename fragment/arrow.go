package fragment

import "github.com/vasalvit/svgpath"

// CurvedArrow describes an arrow bent along the circle of radius
// TipEdgeRadius. The shaft is centered on that circle and ends in a
// triangular tip whose point lies on it.
type CurvedArrow struct {
	Center svgpath.Vector2D
	// TipEdgeRadius is the radius of the arrow's center line, not an
	// inner radius as in CurvedElement.
	TipEdgeRadius float64
	// Width is the length of the arrow along the circle. It is used only
	// when Angle is unset.
	Width float64
	// Height is the radial size of the tip and also its length.
	Height float64
	// Angle is the span of the whole arrow in degrees; it defaults to the
	// angle Width subtends at TipEdgeRadius.
	Angle    float64
	Rotation float64
	// Thickness is the radial size of the shaft; it defaults to Height/3.
	Thickness float64
	// CounterClockwise puts the tail at Rotation+Angle and the tip at
	// Rotation. By default the arrow points from Rotation towards
	// Rotation+Angle.
	CounterClockwise bool
}

// CurvedArrowPath returns the closed outline of a. Both orientations wind
// the same way so the outline fills identically under either fill rule.
func CurvedArrowPath(a CurvedArrow) *svgpath.Path {
	angle := a.Angle
	if angle == 0 {
		angle = svgpath.GetArcAngle(a.Width, a.TipEdgeRadius)
	}
	thickness := a.Thickness
	if thickness == 0 {
		thickness = a.Height / 3
	}

	tipInner := a.TipEdgeRadius - a.Height/2
	tipOuter := a.TipEdgeRadius + a.Height/2
	shaftInner := a.TipEdgeRadius - thickness/2
	shaftOuter := a.TipEdgeRadius + thickness/2

	shaft := svgpath.EnlargeArc(angle, tipOuter, -a.Height)

	polar := func(radius, at float64) svgpath.Vector2D {
		return svgpath.FromPolar(radius, at, a.Center)
	}

	p := svgpath.NewPath()

	if !a.CounterClockwise {
		tail := a.Rotation
		neck := tail + shaft
		return p.MoveTo(polar(shaftInner, tail)).
			ArcAroundTo(a.Center, shaft).
			LineTo(svgpath.Points(
				polar(tipInner, neck),
				polar(a.TipEdgeRadius, a.Rotation+angle),
				polar(tipOuter, neck),
				polar(shaftOuter, neck),
			)).
			ArcAroundTo(a.Center, -shaft).
			Close()
	}

	tail := a.Rotation + angle
	neck := tail - shaft
	return p.MoveTo(polar(shaftOuter, tail)).
		ArcAroundTo(a.Center, -shaft).
		LineTo(svgpath.Points(
			polar(tipOuter, neck),
			polar(a.TipEdgeRadius, a.Rotation),
			polar(tipInner, neck),
			polar(shaftInner, neck),
		)).
		ArcAroundTo(a.Center, shaft).
		Close()
}
