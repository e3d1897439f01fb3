package svgpath

import (
	"math"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/svgpath/internal/fdlibm"
)

// Vector2D is an X,Y coordinate. It is used both as a point and as a
// vector. All operations return a new value; only the Set methods modify
// the receiver.
//
// Results are reproducible to the last bit across platforms: sine and
// cosine come from fdlibm and products are never fused into
// multiply-adds.
type Vector2D struct {
	X float64
	Y float64
}

// Origin is the point (0,0).
var Origin = Vector2D{}

// Vec returns the vector (x,y).
func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// FromPolar returns the point at the given radius and angle (in degrees)
// around center.
func FromPolar(radius, angle float64, center Vector2D) Vector2D {
	sin, cos := fdlibm.Sincos(ToRadians(angle))
	return Vector2D{
		X: center.X + float64(radius*cos),
		Y: center.Y + float64(radius*sin),
	}
}

// Intersect returns the intersection of the infinite line through a1 and
// b1 with the infinite line through a2 and b2. The second result is false
// when the lines are parallel or coincident.
func Intersect(a1, b1, a2, b2 Vector2D) (Vector2D, bool) {
	d1 := b1.Sub(a1)
	d2 := b2.Sub(a2)

	det := d1.Cross(d2)
	if det == 0 {
		return Vector2D{}, false
	}

	t := a2.Sub(a1).Cross(d2) / det
	return a1.Add(d1.MulScalar(t)), true
}

// ValidateInstance returns a *TypeError unless v is a Vector2D or a
// non-nil *Vector2D.
func ValidateInstance(v interface{}) error {
	switch p := v.(type) {
	case Vector2D:
		return nil
	case *Vector2D:
		if p != nil {
			return nil
		}
	}
	return typeError("Vector2D", v)
}

// Set replaces both components in place.
func (v *Vector2D) Set(x, y float64) *Vector2D {
	v.X, v.Y = x, y
	return v
}

// SetX replaces the X component in place.
func (v *Vector2D) SetX(x float64) *Vector2D {
	v.X = x
	return v
}

// SetY replaces the Y component in place.
func (v *Vector2D) SetY(y float64) *Vector2D {
	v.Y = y
	return v
}

// Add returns v+o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.X + o.X, v.Y + o.Y}
}

// AddScalar adds n to both components.
func (v Vector2D) AddScalar(n float64) Vector2D {
	return Vector2D{v.X + n, v.Y + n}
}

// AddX adds n to the X component.
func (v Vector2D) AddX(n float64) Vector2D {
	return Vector2D{v.X + n, v.Y}
}

// AddY adds n to the Y component.
func (v Vector2D) AddY(n float64) Vector2D {
	return Vector2D{v.X, v.Y + n}
}

// Sub returns v-o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{v.X - o.X, v.Y - o.Y}
}

// SubScalar subtracts n from both components.
func (v Vector2D) SubScalar(n float64) Vector2D {
	return Vector2D{v.X - n, v.Y - n}
}

// SubX subtracts n from the X component.
func (v Vector2D) SubX(n float64) Vector2D {
	return Vector2D{v.X - n, v.Y}
}

// SubY subtracts n from the Y component.
func (v Vector2D) SubY(n float64) Vector2D {
	return Vector2D{v.X, v.Y - n}
}

// Mul multiplies component-wise.
func (v Vector2D) Mul(o Vector2D) Vector2D {
	return Vector2D{float64(v.X * o.X), float64(v.Y * o.Y)}
}

// MulScalar scales both components by n.
func (v Vector2D) MulScalar(n float64) Vector2D {
	return Vector2D{float64(v.X * n), float64(v.Y * n)}
}

// MulX scales the X component by n.
func (v Vector2D) MulX(n float64) Vector2D {
	return Vector2D{float64(v.X * n), v.Y}
}

// MulY scales the Y component by n.
func (v Vector2D) MulY(n float64) Vector2D {
	return Vector2D{v.X, float64(v.Y * n)}
}

// Div divides component-wise. Division by zero follows IEEE-754.
func (v Vector2D) Div(o Vector2D) Vector2D {
	return Vector2D{v.X / o.X, v.Y / o.Y}
}

// DivScalar divides both components by n.
func (v Vector2D) DivScalar(n float64) Vector2D {
	return Vector2D{v.X / n, v.Y / n}
}

// DivX divides the X component by n.
func (v Vector2D) DivX(n float64) Vector2D {
	return Vector2D{v.X / n, v.Y}
}

// DivY divides the Y component by n.
func (v Vector2D) DivY(n float64) Vector2D {
	return Vector2D{v.X, v.Y / n}
}

// Negate returns -v.
func (v Vector2D) Negate() Vector2D {
	return Vector2D{-v.X, -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector2D) Dot(o Vector2D) float64 {
	return float64(v.X*o.X) + float64(v.Y*o.Y)
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector2D) Cross(o Vector2D) float64 {
	return float64(v.X*o.Y) - float64(v.Y*o.X)
}

// Length returns the euclidean length of v.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared length of v.
func (v Vector2D) LengthSquared() float64 {
	return float64(v.X*v.X) + float64(v.Y*v.Y)
}

// Distance returns the distance between the points v and o.
func (v Vector2D) Distance(o Vector2D) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector pointing in the direction of v. The
// zero vector normalizes to (1,0).
func (v Vector2D) Normalize() Vector2D {
	l := v.Length()
	if l == 0 {
		return Vector2D{1, 0}
	}
	return v.DivScalar(l)
}

// Lerp interpolates linearly between v (t=0) and o (t=1).
func (v Vector2D) Lerp(o Vector2D, t float64) Vector2D {
	return v.Add(o.Sub(v).MulScalar(t))
}

// Angle returns the direction of v in degrees, in (-180,180].
func (v Vector2D) Angle() float64 {
	return ToDegrees(math.Atan2(v.Y, v.X))
}

// AngleWith returns the signed angle in degrees from v to o.
func (v Vector2D) AngleWith(o Vector2D) float64 {
	return ToDegrees(math.Atan2(v.Cross(o), v.Dot(o)))
}

// Rotate rotates v around the origin by angle degrees.
func (v Vector2D) Rotate(angle float64) Vector2D {
	sin, cos := fdlibm.Sincos(ToRadians(angle))
	return Vector2D{
		X: float64(v.X*cos) - float64(v.Y*sin),
		Y: float64(v.X*sin) + float64(v.Y*cos),
	}
}

// RotateAround rotates v around center by angle degrees.
func (v Vector2D) RotateAround(angle float64, center Vector2D) Vector2D {
	return v.Sub(center).Rotate(angle).Add(center)
}

// RotateTo rotates v around the origin so that its direction becomes
// angle degrees.
func (v Vector2D) RotateTo(angle float64) Vector2D {
	return v.Rotate(angle - v.Angle())
}

// RotateAroundTo rotates v around center so that the direction from
// center to the result becomes angle degrees.
func (v Vector2D) RotateAroundTo(angle float64, center Vector2D) Vector2D {
	return v.RotateAround(angle-v.Sub(center).Angle(), center)
}

// Transform maps v through the affine transform t.
func (v Vector2D) Transform(t mt.Transform) Vector2D {
	x, y := t.Apply(v.X, v.Y)
	return Vector2D{x, y}
}

// Equals reports whether both components are exactly equal.
func (v Vector2D) Equals(o Vector2D) bool {
	return v.X == o.X && v.Y == o.Y
}

// String returns "x,y".
func (v Vector2D) String() string {
	return formatNumber(v.X) + "," + formatNumber(v.Y)
}

func (v Vector2D) points() []Vector2D {
	return []Vector2D{v}
}
