// Package spec describes snowflakes abstractly: each Branch says how far its
// children sit from it, how wide it is drawn, and over what angle its
// children fan out. A Branch carries no position; see package tree.
package spec

import (
	"fmt"
	"math"

	"github.com/willbeason/snowflake/pkg/errors"
)

const (
	// FullCircle is the spread at which children are spaced evenly all the way
	// around rather than from one edge of the spread to the other.
	FullCircle = 360.0
)

// A Branch is one junction of a snowflake and the branches growing from it.
type Branch struct {
	// Spread is the angle in degrees over which Children are distributed.
	// At FullCircle children are spaced evenly around the junction. Below it
	// the first and last child sit on the two edges of the spread.
	Spread float64 `toml:"spread" json:"spread"`

	// Length is the distance from this junction to each of its children.
	Length float64 `toml:"length" json:"length"`

	// Width is how thick the branches leaving this junction are drawn.
	Width float64 `toml:"width" json:"width"`

	// Children are the junctions this one branches into, in angular order.
	// Empty for an endpoint.
	Children []Branch `toml:"children" json:"children,omitempty"`
}

// IsLeaf reports whether b is an endpoint.
func (b Branch) IsLeaf() bool {
	return len(b.Children) == 0
}

// Validate checks b and every descendant, before any layout happens.
// The first offending branch is reported with its path from the root.
func Validate(b Branch) error {
	return validate(b, "root")
}

func validate(b Branch, path string) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"spread", b.Spread},
		{"length", b.Length},
		{"width", b.Width},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.New(errors.ErrCodeInvalidSpec, "%s: %s must be finite, got %v", path, f.name, f.value)
		}
	}

	if b.Length <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: length must be positive, got %v", path, b.Length)
	}
	if b.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: width must be positive, got %v", path, b.Width)
	}
	if b.Spread < 0 || b.Spread > FullCircle {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: spread must be within [0, 360], got %v", path, b.Spread)
	}
	// Several children over no spread would all leave along one ray.
	if len(b.Children) > 1 && b.Spread == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: spread 0 cannot separate %d children", path, len(b.Children))
	}

	for i, child := range b.Children {
		if err := validate(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}

	return nil
}

// Count returns the number of junctions in b, b included.
func Count(b Branch) int {
	n := 1
	for _, child := range b.Children {
		n += Count(child)
	}
	return n
}
