// Package fdlibm computes sine and cosine with the fdlibm 5.3 algorithms,
// the ones behind Math.sin and Math.cos in JavaScript engines. Results
// are bit-identical to those engines for arguments up to 2^19*(pi/2);
// larger arguments fall back to the math package.
//
// Every product that feeds an addition is converted explicitly so the
// compiler cannot fuse it into a multiply-add.
package fdlibm

import "math"

const (
	s1 = -1.66666666666666324348e-01 // 0xBFC55555, 0x55555549
	s2 = 8.33333333332248946124e-03  // 0x3F811111, 0x1110F8A6
	s3 = -1.98412698298579493134e-04 // 0xBF2A01A0, 0x19C161D5
	s4 = 2.75573137070700676789e-06  // 0x3EC71DE3, 0x57B1FE7D
	s5 = -2.50507602534068634195e-08 // 0xBE5AE5E6, 0x8A2B9CEB
	s6 = 1.58969099521155010221e-10  // 0x3DE5D93A, 0x5ACFD57C

	c1 = 4.16666666666666019037e-02  // 0x3FA55555, 0x5555554C
	c2 = -1.38888888888741095749e-03 // 0xBF56C16C, 0x16C15177
	c3 = 2.48015872894767294178e-05  // 0x3EFA01A0, 0x19CB1590
	c4 = -2.75573143513906633035e-07 // 0xBE927E4F, 0x809C52AD
	c5 = 2.08757232129817482790e-09  // 0x3E21EE9E, 0xBDB4B1C4
	c6 = -1.13596475577881948265e-11 // 0xBDA8FAE9, 0xBE8838D4

	invpio2   = 6.36619772367581382433e-01 // 0x3FE45F30, 0x6DC9C883
	pio2A     = 1.57079632673412561417e+00 // 0x3FF921FB, 0x54400000
	pio2ATail = 6.07710050650619224932e-11 // 0x3DD0B461, 0x1A626331
	pio2B     = 6.07710050630396597660e-11 // 0x3DD0B461, 0x1A600000
	pio2BTail = 2.02226624879595063154e-21 // 0x3BA3198A, 0x2E037073
	pio2C     = 2.02226624871116645580e-21 // 0x3BA3198A, 0x2E000000
	pio2CTail = 8.47842766036889956997e-32 // 0x397B839A, 0x252049C1
)

// npio2hw holds the high words of n*pi/2 for n in [1,32].
var npio2hw = [32]uint32{
	0x3FF921FB, 0x400921FB, 0x4012D97C, 0x401921FB, 0x401F6A7A, 0x4022D97C,
	0x4025FDBB, 0x402921FB, 0x402C463A, 0x402F6A7A, 0x4031475C, 0x4032D97C,
	0x40346B9C, 0x4035FDBB, 0x40378FDB, 0x403921FB, 0x403AB41B, 0x403C463A,
	0x403DD85A, 0x403F6A7A, 0x40407E4C, 0x4041475C, 0x4042106C, 0x4042D97C,
	0x4043A28C, 0x40446B9C, 0x404534AC, 0x4045FDBB, 0x4046C6CB, 0x40478FDB,
	0x404858EB, 0x404921FB,
}

const (
	piOver4High   = 0x3fe921fb
	maxMediumHigh = 0x413921fb
	expMask       = 0x7ff00000
)

func high(x float64) uint32 {
	return uint32(math.Float64bits(x) >> 32)
}

// Sin returns the sine of the radian argument x.
func Sin(x float64) float64 {
	ix := high(x) & 0x7fffffff
	switch {
	case ix <= piOver4High:
		return kernelSin(x, 0, false)
	case ix >= expMask:
		return x - x
	case ix > maxMediumHigh:
		return math.Sin(x)
	}

	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelSin(y0, y1, true)
	case 1:
		return kernelCos(y0, y1)
	case 2:
		return -kernelSin(y0, y1, true)
	default:
		return -kernelCos(y0, y1)
	}
}

// Cos returns the cosine of the radian argument x.
func Cos(x float64) float64 {
	ix := high(x) & 0x7fffffff
	switch {
	case ix <= piOver4High:
		return kernelCos(x, 0)
	case ix >= expMask:
		return x - x
	case ix > maxMediumHigh:
		return math.Cos(x)
	}

	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelCos(y0, y1)
	case 1:
		return -kernelSin(y0, y1, true)
	case 2:
		return -kernelCos(y0, y1)
	default:
		return kernelSin(y0, y1, true)
	}
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float64) (sin, cos float64) {
	return Sin(x), Cos(x)
}

// kernelSin is sin on [-pi/4,pi/4]; y is the tail of x when tail is set.
func kernelSin(x, y float64, tail bool) float64 {
	if high(x)&0x7fffffff < 0x3e400000 {
		return x
	}
	z := float64(x * x)
	v := float64(z * x)
	r := s2 + float64(z*(s3+float64(z*(s4+float64(z*(s5+float64(z*s6)))))))
	if !tail {
		return x + float64(v*(s1+float64(z*r)))
	}
	return x - ((float64(z*(float64(0.5*y)-float64(v*r))) - y) - float64(v*s1))
}

// kernelCos is cos on [-pi/4,pi/4]; y is the tail of x.
func kernelCos(x, y float64) float64 {
	ix := high(x) & 0x7fffffff
	if ix < 0x3e400000 {
		return 1
	}
	z := float64(x * x)
	r := float64(z * (c1 + float64(z*(c2+float64(z*(c3+float64(z*(c4+float64(z*(c5+float64(z*c6)))))))))))
	if ix < 0x3fd33333 {
		return 1 - (float64(0.5*z) - (float64(z*r) - float64(x*y)))
	}

	qx := 0.28125
	if ix <= 0x3fe90000 {
		qx = math.Float64frombits(uint64(ix-0x00200000) << 32)
	}
	hz := float64(0.5*z) - qx
	a := 1 - qx
	return a - (hz - (float64(z*r) - float64(x*y)))
}

// remPio2 reduces x to y0+y1 in [-pi/4,pi/4] and returns the number of
// quarter turns n such that x = n*pi/2 + y0 + y1. x must be at most
// 2^19*(pi/2) in magnitude.
func remPio2(x float64) (n int32, y0, y1 float64) {
	hx := high(x)
	ix := hx & 0x7fffffff
	negative := hx>>31 != 0

	if ix <= piOver4High {
		return 0, x, 0
	}

	if ix < 0x4002d97c {
		// |x| < 3pi/4
		if !negative {
			z := x - pio2A
			if ix != 0x3ff921fb {
				y0 = z - pio2ATail
				y1 = (z - y0) - pio2ATail
			} else {
				z -= pio2B
				y0 = z - pio2BTail
				y1 = (z - y0) - pio2BTail
			}
			return 1, y0, y1
		}
		z := x + pio2A
		if ix != 0x3ff921fb {
			y0 = z + pio2ATail
			y1 = (z - y0) + pio2ATail
		} else {
			z += pio2B
			y0 = z + pio2BTail
			y1 = (z - y0) + pio2BTail
		}
		return -1, y0, y1
	}

	t := math.Abs(x)
	n = int32(float64(t*invpio2) + 0.5)
	fn := float64(n)
	r := t - float64(fn*pio2A)
	w := float64(fn * pio2ATail)
	if n < 32 && ix != npio2hw[n-1] {
		y0 = r - w
	} else {
		j := ix >> 20
		y0 = r - w
		if i := int32(j) - int32((high(y0)>>20)&0x7ff); i > 16 {
			t = r
			w = float64(fn * pio2B)
			r = t - w
			w = float64(fn*pio2BTail) - ((t - r) - w)
			y0 = r - w
			if i := int32(j) - int32((high(y0)>>20)&0x7ff); i > 49 {
				t = r
				w = float64(fn * pio2C)
				r = t - w
				w = float64(fn*pio2CTail) - ((t - r) - w)
				y0 = r - w
			}
		}
	}
	y1 = (r - y0) - w
	if negative {
		return -n, -y0, -y1
	}
	return n, y0, y1
}
