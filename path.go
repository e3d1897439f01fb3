package svgpath

import (
	"math"
	"strings"
)

// Coords is the argument of the drawing methods. It is either a single
// point or a list of points: XY(x, y), a Vector2D, or Points(...).
type Coords interface {
	points() []Vector2D
}

// Pair is an X,Y coordinate passed as two numbers.
type Pair struct {
	X, Y float64
}

func (c Pair) points() []Vector2D {
	return []Vector2D{{c.X, c.Y}}
}

// XY returns the coordinate (x,y).
func XY(x, y float64) Pair {
	return Pair{X: x, Y: y}
}

// PointList is an ordered list of points passed to a single command.
type PointList []Vector2D

func (c PointList) points() []Vector2D {
	return c
}

// Points returns the given points as Coords.
func Points(points ...Vector2D) PointList {
	return append(PointList(nil), points...)
}

// Path builds a path description from drawing calls. Methods ending in To
// take absolute coordinates and methods ending in By take coordinates
// relative to the current point; both emit absolute commands. Every
// method returns the path so calls can be chained, including calls that
// turn out to draw nothing.
//
// A Path tracks its start point, set by the first move, and its current
// point, the end of the last command. Both are the origin before anything
// is drawn. The zero Path is empty and ready to use.
//
// A Path is not safe for concurrent mutation.
type Path struct {
	commands []Command
	start    Vector2D
	current  Vector2D
	// detached is set once the pen has drawn away from the start point;
	// while unset, a move also moves the start point.
	detached bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// FromPolygon returns a closed path through the points of polygon.
func FromPolygon(polygon *Polygon2D) *Path {
	return NewPath().AddPolygon(polygon).Close()
}

// ValidatePath returns a *TypeError unless v is a non-nil *Path.
func ValidatePath(v interface{}) error {
	if p, ok := v.(*Path); ok && p != nil {
		return nil
	}
	return typeError("Path", v)
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.commands)
}

// Commands returns a copy of the commands.
func (p *Path) Commands() []Command {
	return append([]Command(nil), p.commands...)
}

// Last returns the most recent command. The second result is false for
// an empty path.
func (p *Path) Last() (Command, bool) {
	if len(p.commands) == 0 {
		return Command{}, false
	}
	return p.commands[len(p.commands)-1], true
}

// Start returns the start point of the path.
func (p *Path) Start() Vector2D {
	return p.start
}

// Current returns the end point of the last command.
func (p *Path) Current() Vector2D {
	return p.current
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.commands = p.Commands()
	return &c
}

// MoveTo moves the pen to c. Several points produce a single move
// command; consecutive moves collapse into the last one.
func (p *Path) MoveTo(c Coords) *Path {
	return p.draw(MoveCode, c, false, 1, false)
}

// MoveBy moves the pen relative to the current point.
func (p *Path) MoveBy(c Coords) *Path {
	return p.draw(MoveCode, c, true, 1, false)
}

// LineTo draws straight lines through the points of c. Points equal to
// the point before them are skipped.
func (p *Path) LineTo(c Coords) *Path {
	return p.draw(LineCode, c, false, 1, true)
}

// LineBy draws straight lines through relative points.
func (p *Path) LineBy(c Coords) *Path {
	return p.draw(LineCode, c, true, 1, true)
}

// HorizontalLineTo draws a horizontal line to x.
func (p *Path) HorizontalLineTo(x float64) *Path {
	p.push(NewCommand(HorizontalLineCode, Number(x)))
	return p
}

// HorizontalLineBy draws a horizontal line of length dx.
func (p *Path) HorizontalLineBy(dx float64) *Path {
	return p.HorizontalLineTo(p.current.X + dx)
}

// VerticalLineTo draws a vertical line to y.
func (p *Path) VerticalLineTo(y float64) *Path {
	p.push(NewCommand(VerticalLineCode, Number(y)))
	return p
}

// VerticalLineBy draws a vertical line of length dy.
func (p *Path) VerticalLineBy(dy float64) *Path {
	return p.VerticalLineTo(p.current.Y + dy)
}

// CurveTo draws cubic Bézier curves. The points of c come in groups of
// three: first control point, second control point, end point.
func (p *Path) CurveTo(c Coords) *Path {
	return p.draw(CubicCurveCode, c, false, 3, false)
}

// CurveBy draws cubic Bézier curves. All points of a group are relative
// to the end of the previous group.
func (p *Path) CurveBy(c Coords) *Path {
	return p.draw(CubicCurveCode, c, true, 3, false)
}

// SmoothCurveTo draws smooth cubic Bézier curves from groups of two
// points: second control point, end point.
func (p *Path) SmoothCurveTo(c Coords) *Path {
	return p.draw(SmoothCubicCurveCode, c, false, 2, false)
}

// SmoothCurveBy is the relative form of SmoothCurveTo.
func (p *Path) SmoothCurveBy(c Coords) *Path {
	return p.draw(SmoothCubicCurveCode, c, true, 2, false)
}

// QuadraticCurveTo draws quadratic Bézier curves from groups of two
// points: control point, end point.
func (p *Path) QuadraticCurveTo(c Coords) *Path {
	return p.draw(QuadraticCurveCode, c, false, 2, false)
}

// QuadraticCurveBy is the relative form of QuadraticCurveTo.
func (p *Path) QuadraticCurveBy(c Coords) *Path {
	return p.draw(QuadraticCurveCode, c, true, 2, false)
}

// SmoothQuadraticCurveTo draws smooth quadratic Bézier curves through the
// points of c. Points equal to the point before them are skipped.
func (p *Path) SmoothQuadraticCurveTo(c Coords) *Path {
	return p.draw(SmoothQuadraticCurveCode, c, false, 1, true)
}

// SmoothQuadraticCurveBy is the relative form of SmoothQuadraticCurveTo.
func (p *Path) SmoothQuadraticCurveBy(c Coords) *Path {
	return p.draw(SmoothQuadraticCurveCode, c, true, 1, true)
}

// ArcTo draws elliptical arcs with radii rx and ry, x-axis rotation in
// degrees and the given flags, ending at each point of c in turn.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, c Coords) *Path {
	return p.arc(rx, ry, rotation, largeArc, sweep, c, false)
}

// ArcBy is the relative form of ArcTo.
func (p *Path) ArcBy(rx, ry, rotation float64, largeArc, sweep bool, c Coords) *Path {
	return p.arc(rx, ry, rotation, largeArc, sweep, c, true)
}

// ArcAroundTo draws a circular arc turning the current point around
// center by angle degrees. Positive angles sweep towards increasing
// angles. A full turn is drawn as two half arcs.
func (p *Path) ArcAroundTo(center Vector2D, angle float64) *Path {
	angle = Degrees(angle)
	if angle == 0 || p.current.Equals(center) {
		return p
	}

	radius := p.current.Distance(center)
	steps := []float64{angle}
	if math.Abs(angle) == 360 {
		steps = []float64{angle / 2, angle / 2}
	}

	var params []Param
	pos := p.current
	for _, step := range steps {
		pos = pos.RotateAround(step, center)
		params = append(params,
			Number(radius), Number(radius), Number(0),
			Flag(math.Abs(step) > 180), Flag(step > 0),
			pos,
		)
	}

	p.push(NewCommand(ArcCode, params...))
	return p
}

// ArcAroundBy is ArcAroundTo with center relative to the current point.
func (p *Path) ArcAroundBy(center Vector2D, angle float64) *Path {
	return p.ArcAroundTo(p.current.Add(center), angle)
}

// Close closes the path and returns the pen to the start point. Repeated
// closes collapse into one.
func (p *Path) Close() *Path {
	p.push(NewCommand(CloseCode))
	return p
}

// AddPath appends the commands of other as if they were drawn on p. A
// move or close at the end of p followed by the same command at the
// beginning of other collapses into one. other is not modified.
func (p *Path) AddPath(other *Path) *Path {
	if other == nil {
		return p
	}
	for _, c := range other.commands {
		p.push(c)
	}
	return p
}

// AddPolygon draws lines through the points of polygon. An empty path
// first moves to the first point.
func (p *Path) AddPolygon(polygon *Polygon2D) *Path {
	if polygon == nil || polygon.Len() == 0 {
		return p
	}

	points := polygon.points
	if len(p.commands) == 0 {
		p.MoveTo(points[0])
		points = points[1:]
	}
	return p.LineTo(PointList(points))
}

// String returns the path description, ready to be used as the d
// attribute of a path element.
func (p *Path) String() string {
	s := make([]string, len(p.commands))
	for i, c := range p.commands {
		s[i] = c.String()
	}
	return strings.Join(s, " ")
}

func (p *Path) draw(code Code, c Coords, relative bool, group int, dedupe bool) *Path {
	points := p.extract(c, relative, group, dedupe)
	if len(points) == 0 {
		return p
	}

	params := make([]Param, len(points))
	for i, v := range points {
		params[i] = v
	}
	p.push(NewCommand(code, params...))
	return p
}

func (p *Path) arc(rx, ry, rotation float64, largeArc, sweep bool, c Coords, relative bool) *Path {
	points := p.extract(c, relative, 1, false)
	if len(points) == 0 {
		return p
	}

	params := make([]Param, 0, len(points)*6)
	for _, v := range points {
		params = append(params,
			Number(rx), Number(ry), Number(rotation),
			Flag(largeArc), Flag(sweep),
			v,
		)
	}
	p.push(NewCommand(ArcCode, params...))
	return p
}

// extract resolves c to absolute points. Relative points of a group are
// all relative to the end of the previous group. Incomplete trailing
// groups are dropped.
func (p *Path) extract(c Coords, relative bool, group int, dedupe bool) []Vector2D {
	var raw []Vector2D
	switch c := c.(type) {
	case nil:
		return nil
	case *Vector2D:
		if c == nil {
			return nil
		}
		raw = c.points()
	default:
		raw = c.points()
	}

	anchor, prev := p.current, p.current
	points := make([]Vector2D, 0, len(raw))
	for i, v := range raw {
		if relative {
			v = anchor.Add(v)
		}
		if (i+1)%group == 0 {
			anchor = v
		}
		if dedupe && v.Equals(prev) {
			continue
		}
		prev = v
		points = append(points, v)
	}

	return points[:len(points)-len(points)%group]
}

// push appends c, collapsing it into the last command when both are the
// same replaceable command, and moves the pen to the end of c.
func (p *Path) push(c Command) {
	if n := len(p.commands); n > 0 && c.code.replaceable() && p.commands[n-1].code == c.code {
		p.commands[n-1] = c
	} else {
		p.commands = append(p.commands, c)
	}

	switch c.code {
	case MoveCode:
		if first, ok := c.first(); ok && !p.detached {
			p.start = first
		}
		p.current = c.end(p.current, p.start)
		if c.Len() > 1 {
			p.detached = true
		}
	case CloseCode:
		p.current = p.start
		p.detached = false
	default:
		p.current = c.end(p.current, p.start)
		p.detached = true
	}
}
