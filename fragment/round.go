package fragment

import "github.com/vasalvit/svgpath"

// RoundElement returns the outline of a circle of radius radius+addition
// around (x,y), drawn as two half arcs. The path is left open.
func RoundElement(x, y, radius, addition float64) *svgpath.Path {
	r := radius + addition
	return svgpath.NewPath().
		MoveTo(svgpath.XY(x-r, y)).
		ArcTo(r, r, 0, false, true, svgpath.XY(x+r, y)).
		ArcTo(r, r, 0, false, true, svgpath.XY(x-r, y))
}
