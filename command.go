package svgpath

import "strings"

// Code identifies a path command. Only absolute commands are emitted;
// relative builder calls are resolved to absolute points first.
type Code byte

// These are the path commands a Path can emit.
const (
	MoveCode                 Code = 'M'
	LineCode                 Code = 'L'
	HorizontalLineCode       Code = 'H'
	VerticalLineCode         Code = 'V'
	CubicCurveCode           Code = 'C'
	SmoothCubicCurveCode     Code = 'S'
	QuadraticCurveCode       Code = 'Q'
	SmoothQuadraticCurveCode Code = 'T'
	ArcCode                  Code = 'A'
	CloseCode                Code = 'Z'
)

func (c Code) String() string {
	return string(rune(c))
}

// replaceable reports whether a command with this code overwrites a
// directly preceding command with the same code instead of following it.
func (c Code) replaceable() bool {
	return c == MoveCode || c == CloseCode
}

// Param is a single command parameter. Number and Vector2D implement it.
type Param interface {
	String() string
}

// Number is a plain numeric command parameter.
type Number float64

func (n Number) String() string {
	return formatNumber(float64(n))
}

// Flag returns the arc flag parameter for b: 1 or 0.
func Flag(b bool) Number {
	if b {
		return 1
	}
	return 0
}

// Command is a single immutable path instruction.
type Command struct {
	code   Code
	params []Param
}

// NewCommand returns the command code with the given parameters.
func NewCommand(code Code, params ...Param) Command {
	return Command{
		code:   code,
		params: append([]Param(nil), params...),
	}
}

// Code returns the command code.
func (c Command) Code() Code {
	return c.code
}

// Params returns a copy of the command parameters.
func (c Command) Params() []Param {
	return append([]Param(nil), c.params...)
}

// Len returns the number of parameters.
func (c Command) Len() int {
	return len(c.params)
}

// end returns the pen position after the command is drawn from current,
// with start being the start of the path.
func (c Command) end(current, start Vector2D) Vector2D {
	switch c.code {
	case CloseCode:
		return start
	case HorizontalLineCode, VerticalLineCode:
		n, ok := c.last().(Number)
		if !ok {
			return current
		}
		if c.code == HorizontalLineCode {
			return Vector2D{float64(n), current.Y}
		}
		return Vector2D{current.X, float64(n)}
	}

	for i := len(c.params) - 1; i >= 0; i-- {
		if v, ok := c.params[i].(Vector2D); ok {
			return v
		}
	}
	return current
}

// first returns the first point parameter, if any.
func (c Command) first() (Vector2D, bool) {
	for _, p := range c.params {
		if v, ok := p.(Vector2D); ok {
			return v, true
		}
	}
	return Vector2D{}, false
}

func (c Command) last() Param {
	if len(c.params) == 0 {
		return nil
	}
	return c.params[len(c.params)-1]
}

// String renders the command as "<code> <p1> <p2> ...".
func (c Command) String() string {
	if len(c.params) == 0 {
		return c.code.String()
	}

	var b strings.Builder
	b.WriteString(c.code.String())
	for _, p := range c.params {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}
