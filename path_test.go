package svgpath

import (
	"testing"

	gl "github.com/rustyoz/genericlexer"
	"github.com/stretchr/testify/require"
)

// commandLetters lexes a path description and returns its command letters.
func commandLetters(d string) []string {
	const codes = "MLHVCSQTAZ"

	l, _ := gl.Lex("path", d)
	var letters []string
	for {
		i := l.NextItem()
		switch {
		case i.Type == gl.ItemEOS, i.Type == gl.ItemError:
			return letters
		case i.Type == gl.ItemLetter && len(i.Value) == 1 && containsByte(codes, i.Value[0]):
			letters = append(letters, i.Value)
		}
	}
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

type PathTest struct {
	Description string
	Build       func(p *Path) *Path
	D           string
	Start       Vector2D
	Current     Vector2D
}

var tests = []PathTest{
	{
		"empty path",
		func(p *Path) *Path { return p },
		"",
		Origin, Origin,
	},
	{
		"move line close",
		func(p *Path) *Path { return p.MoveTo(XY(4, 2)).LineTo(XY(9, 1)).Close() },
		"M 4,2 L 9,1 Z",
		Vec(4, 2), Vec(4, 2),
	},
	{
		"repeated close collapses",
		func(p *Path) *Path { return p.MoveTo(XY(4, 2)).LineTo(XY(9, 1)).Close().Close() },
		"M 4,2 L 9,1 Z",
		Vec(4, 2), Vec(4, 2),
	},
	{
		"repeated move collapses",
		func(p *Path) *Path { return p.MoveTo(XY(1, 1)).MoveTo(Vec(2, 2)).LineTo(XY(3, 3)) },
		"M 2,2 L 3,3",
		Vec(2, 2), Vec(3, 3),
	},
	{
		"grouped line",
		func(p *Path) *Path { return p.LineTo(Points(Vec(1, 2), Vec(3, 4))) },
		"L 1,2 3,4",
		Origin, Vec(3, 4),
	},
	{
		"zero length lines are skipped",
		func(p *Path) *Path {
			return p.MoveTo(XY(5, 5)).LineTo(XY(5, 5)).LineTo(Points(Vec(1, 1), Vec(1, 1), Vec(2, 2)))
		},
		"M 5,5 L 1,1 2,2",
		Vec(5, 5), Vec(2, 2),
	},
	{
		"relative move and line",
		func(p *Path) *Path { return p.MoveBy(XY(1, 1)).LineBy(Points(Vec(1, 0), Vec(0, 1))).LineBy(XY(0, 0)) },
		"M 1,1 L 2,1 2,2",
		Vec(1, 1), Vec(2, 2),
	},
	{
		"horizontal and vertical lines",
		func(p *Path) *Path { return p.MoveTo(XY(1, 2)).HorizontalLineBy(3).VerticalLineTo(7).HorizontalLineTo(0).VerticalLineBy(-2) },
		"M 1,2 H 4 V 7 H 0 V 5",
		Vec(1, 2), Vec(0, 5),
	},
	{
		"relative cubic curves advance per group",
		func(p *Path) *Path {
			return p.MoveTo(XY(10, 10)).CurveBy(Points(Vec(1, 1), Vec(2, 2), Vec(3, 3), Vec(1, 0), Vec(2, 0), Vec(3, 0)))
		},
		"M 10,10 C 11,11 12,12 13,13 14,13 15,13 16,13",
		Vec(10, 10), Vec(16, 13),
	},
	{
		"incomplete cubic group is dropped",
		func(p *Path) *Path {
			return p.MoveTo(XY(0, 0)).CurveTo(Points(Vec(1, 1), Vec(2, 2), Vec(3, 3), Vec(4, 4))).CurveTo(Points(Vec(5, 5)))
		},
		"M 0,0 C 1,1 2,2 3,3",
		Origin, Vec(3, 3),
	},
	{
		"relative quadratic curves advance per group",
		func(p *Path) *Path {
			return p.MoveTo(XY(1, 1)).QuadraticCurveBy(Points(Vec(1, 0), Vec(2, 0), Vec(1, 1), Vec(2, 2)))
		},
		"M 1,1 Q 2,1 3,1 4,2 5,3",
		Vec(1, 1), Vec(5, 3),
	},
	{
		"smooth curves",
		func(p *Path) *Path {
			return p.MoveTo(XY(1, 1)).
				SmoothCurveBy(Points(Vec(1, 0), Vec(2, 0))).
				SmoothCurveTo(Points(Vec(0, 0), Vec(9, 9))).
				SmoothQuadraticCurveTo(Points(Vec(9, 9), Vec(8, 8))).
				SmoothQuadraticCurveBy(XY(1, 0))
		},
		"M 1,1 S 2,1 3,1 S 0,0 9,9 T 8,8 T 9,8",
		Vec(1, 1), Vec(9, 8),
	},
	{
		"absolute and relative arcs",
		func(p *Path) *Path {
			return p.MoveTo(XY(0, 0)).ArcTo(5, 5, 0, true, false, XY(10, 0)).ArcBy(5, 5, 30, false, true, XY(-10, 0))
		},
		"M 0,0 A 5 5 0 1 0 10,0 A 5 5 30 0 1 0,0",
		Origin, Origin,
	},
	{
		"move after close starts a new sub path",
		func(p *Path) *Path {
			return p.MoveTo(XY(1, 1)).LineTo(XY(2, 2)).Close().MoveTo(XY(5, 5)).LineTo(XY(6, 6)).Close()
		},
		"M 1,1 L 2,2 Z M 5,5 L 6,6 Z",
		Vec(5, 5), Vec(5, 5),
	},
	{
		"move after drawing keeps the start",
		func(p *Path) *Path { return p.MoveTo(XY(1, 1)).LineTo(XY(2, 2)).MoveTo(XY(5, 5)).Close() },
		"M 1,1 L 2,2 M 5,5 Z",
		Vec(1, 1), Vec(1, 1),
	},
	{
		"empty coordinates draw nothing",
		func(p *Path) *Path {
			var nilVec *Vector2D
			return p.MoveTo(nil).LineTo(Points()).CurveTo(nilVec).ArcTo(1, 1, 0, false, false, PointList(nil))
		},
		"",
		Origin, Origin,
	},
}

func TestPathList(t *testing.T) {
	for _, test := range tests {
		p := NewPath()
		got := test.Build(p)

		require.Same(t, p, got, test.Description)
		require.Equal(t, test.D, p.String(), test.Description)
		require.Equal(t, test.Start, p.Start(), test.Description)
		require.Equal(t, test.Current, p.Current(), test.Description)
	}
}

func TestZeroPath(t *testing.T) {
	var p Path
	require.Equal(t, 0, p.Len())
	require.Equal(t, "", p.String())

	p.MoveTo(XY(4, 2)).LineTo(XY(9, 1)).Close()
	require.Equal(t, "M 4,2 L 9,1 Z", p.String())
	require.Equal(t, Vec(4, 2), p.Current())
}

func TestPathCommands(t *testing.T) {
	p := NewPath().MoveTo(XY(4, 2)).LineTo(XY(9, 1))

	_, ok := NewPath().Last()
	require.False(t, ok)

	last, ok := p.Last()
	require.True(t, ok)
	require.Equal(t, "L 9,1", last.String())

	cmds := p.Commands()
	require.Len(t, cmds, 2)
	cmds[0] = NewCommand(CloseCode)
	require.Equal(t, "M 4,2 L 9,1", p.String())

	require.Equal(t, []string{"M", "L", "Z"}, commandLetters(p.Close().String()))
}

func TestArcAround(t *testing.T) {
	p := NewPath().MoveTo(XY(10, 0)).ArcAroundTo(Origin, 90)
	require.Equal(t, 2, p.Len())

	arc, _ := p.Last()
	require.Equal(t, ArcCode, arc.Code())
	params := arc.Params()
	require.Len(t, params, 6)
	require.Equal(t, []Param{Number(10), Number(10), Number(0), Number(0), Number(1)}, params[:5])
	requireVec(t, Vec(0, 10), p.Current())

	p.ArcAroundBy(Vec(0, -10), -270)
	arc, _ = p.Last()
	require.Equal(t, []Param{Number(10), Number(10), Number(0), Number(1), Number(0)}, arc.Params()[:5])
	requireVec(t, Vec(-10, 0), p.Current())

	full := NewPath().MoveTo(XY(5, 0)).ArcAroundTo(Origin, 360)
	arc, _ = full.Last()
	require.Equal(t, 12, arc.Len())
	requireVec(t, Vec(5, 0), full.Current())
	require.Equal(t, []string{"M", "A"}, commandLetters(full.String()))

	same := NewPath().MoveTo(XY(5, 0))
	require.Same(t, same, same.ArcAroundTo(Origin, 0).ArcAroundTo(Vec(5, 0), 90))
	require.Equal(t, 1, same.Len())
}

func TestArcAroundString(t *testing.T) {
	p := NewPath().MoveTo(XY(10, 0)).ArcAroundTo(Origin, 90)
	require.Equal(t, "M 10,0 A 10 10 0 0 1 6.123233995736766e-16,10", p.String())

	p.ArcAroundBy(Vec(0, -10), -270)
	require.Equal(t, "M 10,0 A 10 10 0 0 1 6.123233995736766e-16,10 A 10 10 0 1 0 -10,-1.8369701987210296e-15", p.String())

	full := NewPath().MoveTo(XY(5, 0)).ArcAroundTo(Origin, 360)
	require.Equal(t, "M 5,0 A 5 5 0 0 1 -5,6.123233995736766e-16 5 5 0 0 1 5,-1.2246467991473533e-15", full.String())

	off := NewPath().MoveTo(XY(3, 4)).ArcAroundTo(Vec(1, 1), 45)
	require.Equal(t, "M 3,4 A 3.605551275463989 3.605551275463989 0 0 1 0.29289321881345276,4.535533905932738", off.String())
}

func TestAddPath(t *testing.T) {
	a := NewPath().MoveTo(XY(1, 1)).LineTo(XY(2, 2))
	b := NewPath().MoveTo(XY(3, 3)).LineTo(XY(4, 4))
	require.Equal(t, "M 1,1 L 2,2 M 3,3 L 4,4", a.AddPath(b).String())
	require.Equal(t, "M 3,3 L 4,4", b.String())
	require.Equal(t, Vec(4, 4), a.Current())
	require.Equal(t, Vec(1, 1), a.Start())

	a = NewPath().MoveTo(XY(1, 1)).LineTo(XY(2, 2)).MoveTo(XY(5, 5))
	require.Equal(t, "M 1,1 L 2,2 M 3,3 L 4,4", a.AddPath(b).String(), "moves collapse across paths")

	a = NewPath().MoveTo(XY(1, 1)).LineTo(XY(2, 2)).Close()
	require.Equal(t, "M 1,1 L 2,2 Z", a.AddPath(NewPath().Close()).String(), "closes collapse across paths")

	a = NewPath()
	a.AddPath(b)
	require.Equal(t, Vec(3, 3), a.Start(), "start taken from the added path")
	require.Equal(t, Vec(4, 4), a.Current())

	a = NewPath()
	a.AddPath(NewPath().MoveTo(XY(1, 1)).LineTo(XY(2, 2)).Close())
	require.Equal(t, Vec(1, 1), a.Current())

	a = NewPath().MoveTo(XY(0, 5))
	a.AddPath(NewPath().HorizontalLineTo(7))
	require.Equal(t, "M 0,5 H 7", a.String())
	require.Equal(t, Vec(7, 5), a.Current(), "horizontal line replayed from the current point")

	a = NewPath().MoveTo(XY(1, 1))
	require.Same(t, a, a.AddPath(NewPath()).AddPath(nil))
	require.Equal(t, "M 1,1", a.String())
}

func TestAddPolygon(t *testing.T) {
	p := FromPolygon(testPolygon())
	require.Equal(t, "M 1,2 L 3,4 5,6 7,8 Z", p.String())
	require.Equal(t, 3, p.Len())
	require.Equal(t, Vec(1, 2), p.Current())

	p = NewPath().AddPolygon(testPolygon())
	require.Equal(t, 2, p.Len())
	require.Equal(t, 3, p.Close().Len())

	p = NewPath().MoveTo(XY(0, 0)).AddPolygon(NewPolygon(Vec(1, 1), Vec(2, 2)))
	require.Equal(t, "M 0,0 L 1,1 2,2", p.String())

	require.Equal(t, "M 0,0", NewPath().MoveTo(XY(0, 0)).AddPolygon(NewPolygon()).AddPolygon(nil).String())
	require.Equal(t, "M 1,1", NewPath().AddPolygon(NewPolygon(Vec(1, 1))).String())
}

func TestClone(t *testing.T) {
	p := NewPath().MoveTo(XY(1, 1)).LineTo(XY(2, 2))
	c := p.Clone()
	c.LineTo(XY(3, 3)).Close()

	require.Equal(t, "M 1,1 L 2,2", p.String())
	require.Equal(t, "M 1,1 L 2,2 L 3,3 Z", c.String())
	require.Equal(t, Vec(2, 2), p.Current())
}

func TestValidatePath(t *testing.T) {
	require.NoError(t, ValidatePath(NewPath()))

	var nilPath *Path
	require.EqualError(t, ValidatePath(nilPath), "expected instance of Path, got *svgpath.Path")
	require.EqualError(t, ValidatePath("M 0,0"), "expected instance of Path, got string")
}
