// Package transforms maps snowflake coordinates between frames, for example
// from layout space into the pixels of an output image.
package transforms

import (
	"github.com/willbeason/snowflake/pkg/geometry"
)

// A Transform maps a point to a new point.
type Transform interface {
	Apply(geometry.XY) geometry.XY
}

// Chain applies each Transform in order.
type Chain []Transform

func (c Chain) Apply(xy geometry.XY) geometry.XY {
	for _, t := range c {
		xy = t.Apply(xy)
	}
	return xy
}

// ApplyAll maps every point in points with t.
func ApplyAll(t Transform, points []geometry.XY) []geometry.XY {
	result := make([]geometry.XY, len(points))
	for i, p := range points {
		result[i] = t.Apply(p)
	}
	return result
}

var _ Transform = Chain{}
