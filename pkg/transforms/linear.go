package transforms

import (
	"math"
	"math/cmplx"

	"github.com/willbeason/snowflake/pkg/geometry"
)

// Linear treats the plane as the complex numbers and maps z to z*Multiply + Add.
// That is a uniform scale and rotation followed by a translation.
type Linear struct {
	Multiply complex128
	Add      complex128
}

// Identity leaves every point in place.
var Identity = Linear{Multiply: 1}

func (l Linear) Next(z complex128) complex128 {
	return z*l.Multiply + l.Add
}

func (l Linear) Apply(xy geometry.XY) geometry.XY {
	z := l.Next(complex(xy.X, xy.Y))
	return geometry.XY{X: real(z), Y: imag(z)}
}

// Then returns the map that applies l and then o.
func (l Linear) Then(o Linear) Linear {
	return Linear{
		Multiply: l.Multiply * o.Multiply,
		Add:      l.Add*o.Multiply + o.Add,
	}
}

// Scale is the factor by which l stretches distances.
func (l Linear) Scale() float64 {
	return cmplx.Abs(l.Multiply)
}

// Rotation turns points by degrees counter-clockwise about center.
func Rotation(center geometry.XY, degrees float64) Linear {
	c := complex(center.X, center.Y)
	m := cmplx.Rect(1, geometry.Radians(degrees))
	return Linear{Multiply: m, Add: c - c*m}
}

// Translation moves points by d.
func Translation(d geometry.XY) Linear {
	return Linear{Multiply: 1, Add: complex(d.X, d.Y)}
}

// Fit scales and centers the box [lo, hi] into a width by height frame,
// leaving margin on every side. A degenerate box is centered unscaled.
func Fit(lo, hi geometry.XY, width, height, margin float64) Linear {
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	availX, availY := width-2*margin, height-2*margin

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(availX/spanX, availY/spanY)
	case spanX > 0:
		scale = availX / spanX
	case spanY > 0:
		scale = availY / spanY
	}

	center := complex((lo.X+hi.X)/2, (lo.Y+hi.Y)/2)
	frame := complex(width/2, height/2)
	m := complex(scale, 0)

	return Linear{Multiply: m, Add: frame - center*m}
}

var _ Transform = Linear{}
