// Package geometry holds the planar point math shared by layout and outline
// construction. Angles are in degrees, measured counter-clockwise from +X.
package geometry

import (
	"math"

	"github.com/willbeason/snowflake/pkg/errors"
)

const (
	// AngleTolerance is how close two angles, in degrees and mod 360, must be to
	// count as the same direction.
	AngleTolerance = 1e-9
)

// XY is a point or vector in the plane.
type XY struct {
	X, Y float64
}

func (p XY) Add(o XY) XY {
	return XY{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p XY) Sub(o XY) XY {
	return XY{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p XY) Scale(s float64) XY {
	return XY{X: p.X * s, Y: p.Y * s}
}

// Rotate turns p about the origin by degrees counter-clockwise.
func (p XY) Rotate(degrees float64) XY {
	sin, cos := math.Sincos(Radians(degrees))
	return XY{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Dist is the Euclidean distance between p and o.
func (p XY) Dist(o XY) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// ApproxEqual reports whether both coordinates differ by at most tol.
func (p XY) ApproxEqual(o XY, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p XY) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Polar returns the point radius away from origin in the direction degrees.
func Polar(origin XY, radius, degrees float64) XY {
	sin, cos := math.Sincos(Radians(degrees))
	return XY{
		X: origin.X + radius*cos,
		Y: origin.Y + radius*sin,
	}
}

// SameAngle reports whether a and b name the same direction, mod 360.
func SameAngle(a, b float64) bool {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	return d <= AngleTolerance || 360-d <= AngleTolerance
}

// Elbow returns the corner where the outer edges of two branches of the given
// width meet. Both branches leave origin, one at angle a and one at angle b.
// The corner lies on the bisector (a+b)/2, width/(2·sin(|b-a|/2)) from origin.
//
// Coincident angles have no corner; Elbow reports ErrCodeDegenerateElbow for them.
func Elbow(origin XY, width, a, b float64) (XY, error) {
	if SameAngle(a, b) {
		return XY{}, errors.New(errors.ErrCodeDegenerateElbow,
			"no elbow between coincident angles %g and %g", a, b)
	}

	between := b - a
	middle := (a + b) / 2
	offset := width / (2 * math.Sin(math.Abs(between)*math.Pi/360))

	return Polar(origin, offset, middle), nil
}
