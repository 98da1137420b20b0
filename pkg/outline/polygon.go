package outline

import (
	"math"

	"github.com/willbeason/snowflake/pkg/geometry"
)

// A Polygon is a closed loop of vertices; the last joins back to the first.
type Polygon []geometry.XY

func (p Polygon) Len() int {
	return len(p)
}

// Bounds returns the corners of the smallest axis-aligned box holding p.
// An empty polygon has inverted infinite bounds.
func (p Polygon) Bounds() (lo, hi geometry.XY) {
	lo = geometry.XY{X: math.Inf(1), Y: math.Inf(1)}
	hi = geometry.XY{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range p {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

// Area is the signed shoelace area: positive when p winds counter-clockwise.
func (p Polygon) Area() float64 {
	sum := 0.0
	for i, v := range p {
		w := p[(i+1)%len(p)]
		sum += v.X*w.Y - w.X*v.Y
	}
	return sum / 2
}

// Rotate returns a copy of p turned by degrees about center.
func (p Polygon) Rotate(center geometry.XY, degrees float64) Polygon {
	result := make(Polygon, len(p))
	for i, v := range p {
		result[i] = v.Sub(center).Rotate(degrees).Add(center)
	}
	return result
}
