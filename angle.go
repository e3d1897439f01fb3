package svgpath

import (
	"math"

	"github.com/vasalvit/svgpath/internal/fdlibm"
)

// Angles throughout the package are plain float64 degrees.

// DegreesPerRadian converts radians to degrees.
const DegreesPerRadian = 180 / math.Pi

// adjustEpsilon is the distance to an integer below which Adjust snaps.
const adjustEpsilon = 1e-13

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees / DegreesPerRadian
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * DegreesPerRadian
}

// AbsDegrees normalizes an angle to [0,360).
func AbsDegrees(angle float64) float64 {
	return math.Mod(math.Mod(angle, 360)+360, 360)
}

// Degrees keeps an angle within [-360,360]. Angles already inside are
// returned unchanged; others are reduced keeping their sign.
func Degrees(angle float64) float64 {
	if math.Abs(angle) <= 360 {
		return angle
	}
	return math.Mod(angle, 360)
}

// Quadrant returns the quadrant index of angle, in {0,1,2,3}.
func Quadrant(angle float64) int {
	return int(math.Floor(AbsDegrees(angle) / 90))
}

// QuadrantAngle returns the multiple of 90 nearest to angle. An angle
// close to the top of the circle yields 360 rather than 0.
func QuadrantAngle(angle float64) float64 {
	q := Quadrant(Adjust(angle) + 45)
	if q == 0 && angle > 270 {
		return 360
	}
	return float64(q * 90)
}

// QuadrantRange returns the quadrant angle of start or end, in that order,
// which lies strictly between start and end. The span is expected to be
// at most 90 degrees wide. The second result is false if neither does.
func QuadrantRange(start, end float64) (float64, bool) {
	if a := QuadrantAngle(start); start < a && a < end {
		return a, true
	}
	if a := QuadrantAngle(end); start < a && a < end {
		return a, true
	}
	return 0, false
}

// Adjust snaps n to the nearest integer when it is within 1e-13 of it.
// It is meant to absorb trigonometric drift before comparisons.
func Adjust(n float64) float64 {
	r := math.Round(n)
	if math.Abs(n-r) < adjustEpsilon {
		return r
	}
	return n
}

// Circumference returns the circumference of a circle of the given radius.
func Circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// GetArcWidth returns the length of the arc spanning angle degrees at
// radius. The result has the sign of angle.
func GetArcWidth(angle, radius float64) float64 {
	return Circumference(radius) * angle / 360
}

// GetArcAngle returns the angle in degrees subtended by an arc of length
// width at radius. The result is in [0,360]; a zero radius yields 0.
func GetArcAngle(width, radius float64) float64 {
	if radius == 0 {
		return 0
	}
	return math.Min(math.Abs(width)/Circumference(radius)*360, 360)
}

// GetChordWidth returns the length of the chord closing an arc of angle
// degrees at radius.
func GetChordWidth(angle, radius float64) float64 {
	return float64(2 * radius * fdlibm.Sin(ToRadians(angle)/2))
}

// GetChordDistance returns the distance from the circle center to the
// chord closing an arc of angle degrees at radius.
func GetChordDistance(angle, radius float64) float64 {
	return float64(radius * fdlibm.Cos(ToRadians(angle)/2))
}

// GetChordHeight returns the sagitta: the distance from the chord to the
// arc it closes.
func GetChordHeight(angle, radius float64) float64 {
	return radius - GetChordDistance(angle, radius)
}

// GetChordAngle returns the arc angle in degrees closed by a chord of
// length width at radius. Chords reaching the diameter yield 180.
func GetChordAngle(width, radius float64) float64 {
	if width >= 2*radius {
		return 180
	}
	return ToDegrees(2 * math.Asin(width/(2*radius)))
}

// EnlargeArc returns the angle of the arc at radius whose length is the
// length of the arc of angle degrees plus addition. The result saturates
// at 0 and 360.
func EnlargeArc(angle, radius, addition float64) float64 {
	if addition == 0 {
		return Degrees(angle)
	}

	width := GetArcWidth(angle, radius) + addition
	if width <= 0 {
		return 0
	}
	if width >= Circumference(radius) {
		return 360
	}
	return GetArcAngle(width, radius)
}

// EnlargeChord returns the arc angle at radius whose chord is the chord of
// angle degrees lengthened by addition. Additions of at least a radius in
// either direction saturate at 0 and 180.
func EnlargeChord(angle, radius, addition float64) float64 {
	if addition == 0 {
		return Degrees(angle)
	}
	if addition <= -radius {
		return 0
	}
	if addition >= radius {
		return 180
	}
	return GetChordAngle(GetChordWidth(angle, radius)+addition, radius)
}
