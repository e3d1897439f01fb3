package svgpath

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Polygon2D is an ordered, mutable list of points.
//
// A Polygon2D is not safe for concurrent mutation.
type Polygon2D struct {
	points []Vector2D
}

// NewPolygon returns a polygon holding the given points.
func NewPolygon(points ...Vector2D) *Polygon2D {
	return &Polygon2D{points: append([]Vector2D(nil), points...)}
}

// PolygonOf returns a polygon from a mixed list of points, point slices
// and polygons, flattened in order. Any other value is a *TypeError.
func PolygonOf(values ...interface{}) (*Polygon2D, error) {
	points, err := flatten(values)
	if err != nil {
		return nil, err
	}
	return &Polygon2D{points: points}, nil
}

// ParsePolygon reads a polygon in the form produced by String:
// whitespace separated "x,y" pairs. Anything other than numbers, commas
// and whitespace is an error.
func ParsePolygon(s string) (*Polygon2D, error) {
	l, _ := gl.Lex("polygon", s)

	var numbers []float64
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			if len(numbers)%2 != 0 {
				return nil, fmt.Errorf("polygon %q: odd number of coordinates", s)
			}
			p := &Polygon2D{}
			for j := 0; j < len(numbers); j += 2 {
				p.points = append(p.points, Vector2D{numbers[j], numbers[j+1]})
			}
			return p, nil
		case gl.ItemError:
			return nil, fmt.Errorf("polygon %q: %s", s, i.Value)
		case gl.ItemNumber:
			n, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("polygon %q: invalid number %q", s, i.Value)
			}
			numbers = append(numbers, n)
		case gl.ItemLetter:
			return nil, fmt.Errorf("polygon %q: unexpected %q", s, i.Value)
		default:
			if v := strings.TrimSpace(i.Value); v != "" && v != "," {
				return nil, fmt.Errorf("polygon %q: unexpected %q", s, i.Value)
			}
		}
	}
}

// ValidatePoints returns a *TypeError for the first value that is not a
// Vector2D.
func ValidatePoints(values ...interface{}) error {
	for _, v := range values {
		if err := ValidateInstance(v); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePolygon returns a *TypeError unless v is a non-nil *Polygon2D.
func ValidatePolygon(v interface{}) error {
	if p, ok := v.(*Polygon2D); ok && p != nil {
		return nil
	}
	return typeError("Polygon2D", v)
}

// Len returns the number of points.
func (p *Polygon2D) Len() int {
	return len(p.points)
}

// Get returns the point at index i. The second result is false when i is
// out of range.
func (p *Polygon2D) Get(i int) (Vector2D, bool) {
	if i < 0 || i >= len(p.points) {
		return Vector2D{}, false
	}
	return p.points[i], true
}

// Set replaces the point at index i.
func (p *Polygon2D) Set(i int, v Vector2D) error {
	if i < 0 || i >= len(p.points) {
		return fmt.Errorf("set point %d of %d: %w", i, len(p.points), ErrIndexOutOfRange)
	}
	p.points[i] = v
	return nil
}

// Insert inserts points before index i. A negative index counts from the
// end; indexes past the end append.
func (p *Polygon2D) Insert(i int, points ...Vector2D) *Polygon2D {
	i = p.clamp(i)
	p.points = append(p.points[:i], append(append([]Vector2D(nil), points...), p.points[i:]...)...)
	return p
}

// Add appends points.
func (p *Polygon2D) Add(points ...Vector2D) *Polygon2D {
	p.points = append(p.points, points...)
	return p
}

// Delete removes up to count points starting at index i and returns the
// number removed. Index i follows the same rules as Insert.
func (p *Polygon2D) Delete(i, count int) int {
	i = p.clamp(i)
	if count <= 0 {
		return 0
	}
	if rest := len(p.points) - i; count > rest {
		count = rest
	}
	p.points = append(p.points[:i], p.points[i+count:]...)
	return count
}

// Clear removes all points.
func (p *Polygon2D) Clear() *Polygon2D {
	p.points = nil
	return p
}

// Load replaces the points with those of src, which may be a []Vector2D,
// a *Polygon2D, an iter.Seq[Vector2D] or a []interface{} of points. Any
// other source leaves the polygon untouched.
func (p *Polygon2D) Load(src interface{}) error {
	var points []Vector2D

	switch s := src.(type) {
	case []Vector2D:
		points = append(points, s...)
	case *Polygon2D:
		if s == nil {
			return nil
		}
		points = s.Points()
	case iter.Seq[Vector2D]:
		for v := range s {
			points = append(points, v)
		}
	case []interface{}:
		if err := ValidatePoints(s...); err != nil {
			return err
		}
		for _, v := range s {
			points = append(points, pointOf(v))
		}
	default:
		return nil
	}

	p.points = points
	return nil
}

// Points returns a copy of the points.
func (p *Polygon2D) Points() []Vector2D {
	return append([]Vector2D(nil), p.points...)
}

// All iterates over the index and point pairs.
func (p *Polygon2D) All() iter.Seq2[int, Vector2D] {
	return func(yield func(int, Vector2D) bool) {
		for i, v := range p.points {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ForEach calls fn with every point, its index and the polygon.
func (p *Polygon2D) ForEach(fn func(Vector2D, int, *Polygon2D)) error {
	if fn == nil {
		return fmt.Errorf("polygon for each: %w", ErrNotCallable)
	}
	for i, v := range p.points {
		fn(v, i, p)
	}
	return nil
}

// Map returns a new polygon holding fn applied to every point.
func (p *Polygon2D) Map(fn func(Vector2D, int, *Polygon2D) Vector2D) (*Polygon2D, error) {
	points, err := MapPolygon(p, fn)
	if err != nil {
		return nil, err
	}
	return &Polygon2D{points: points}, nil
}

// MapPolygon returns fn applied to every point of p.
func MapPolygon[T any](p *Polygon2D, fn func(Vector2D, int, *Polygon2D) T) ([]T, error) {
	if fn == nil {
		return nil, fmt.Errorf("polygon map: %w", ErrNotCallable)
	}
	out := make([]T, 0, len(p.points))
	for i, v := range p.points {
		out = append(out, fn(v, i, p))
	}
	return out, nil
}

// Transform returns a new polygon with every point mapped through t.
func (p *Polygon2D) Transform(t mt.Transform) *Polygon2D {
	out := &Polygon2D{points: make([]Vector2D, len(p.points))}
	for i, v := range p.points {
		out.points[i] = v.Transform(t)
	}
	return out
}

// String joins the points as "x,y x,y ...".
func (p *Polygon2D) String() string {
	s := make([]string, len(p.points))
	for i, v := range p.points {
		s[i] = v.String()
	}
	return strings.Join(s, " ")
}

func (p *Polygon2D) clamp(i int) int {
	n := len(p.points)
	switch {
	case i < 0 && i+n < 0:
		return 0
	case i < 0:
		return i + n
	case i > n:
		return n
	}
	return i
}

func pointOf(v interface{}) Vector2D {
	if p, ok := v.(*Vector2D); ok {
		return *p
	}
	return v.(Vector2D)
}

func flatten(values []interface{}) ([]Vector2D, error) {
	var points []Vector2D
	for _, v := range values {
		switch s := v.(type) {
		case []Vector2D:
			points = append(points, s...)
		case *Polygon2D:
			if err := ValidatePolygon(s); err != nil {
				return nil, err
			}
			points = append(points, s.points...)
		case []interface{}:
			nested, err := flatten(s)
			if err != nil {
				return nil, err
			}
			points = append(points, nested...)
		default:
			if err := ValidateInstance(v); err != nil {
				return nil, err
			}
			points = append(points, pointOf(v))
		}
	}
	return points, nil
}
