// Package tree resolves an abstract spec.Branch into absolute positions.
package tree

import (
	"math"

	"github.com/willbeason/snowflake/pkg/geometry"
	"github.com/willbeason/snowflake/pkg/spec"
)

// A Node is a junction of a snowflake placed in the plane.
//
// The recursive structure mirrors the spec.Branch it was laid out from.
type Node struct {
	// Origin is where the junction sits.
	Origin geometry.XY

	// Angle is the direction, in degrees counter-clockwise from +X, of the
	// branch that arrives at Origin from the parent.
	Angle float64

	// Width is how thick the branches leaving Origin are drawn.
	Width float64

	// Children are the junctions placed from the spec's children, index-aligned.
	Children []Node
}

// IsLeaf reports whether n is an endpoint.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Layout places b at origin, arriving from the direction angle, and
// recursively places each of its children b.Length away.
//
// Layout does not validate b; see LayoutChecked.
func Layout(b spec.Branch, origin geometry.XY, angle float64) Node {
	result := Node{
		Origin: origin,
		Angle:  angle,
		Width:  b.Width,
	}

	if b.IsLeaf() {
		return result
	}

	increment, start := childAngles(b, angle)

	result.Children = make([]Node, len(b.Children))
	for i, child := range b.Children {
		childAngle := start + float64(i)*increment
		childOrigin := geometry.Polar(origin, b.Length, childAngle)
		result.Children[i] = Layout(child, childOrigin, childAngle)
	}

	return result
}

// childAngles returns the angular step between b's children and the
// direction of the first child.
func childAngles(b spec.Branch, angle float64) (increment, start float64) {
	n := len(b.Children)
	switch {
	case n == 1:
		// A lone child continues straight on.
		return 0, angle
	case b.Spread == spec.FullCircle:
		// Children wrap all the way around, so the first and last may not coincide.
		return b.Spread / float64(n), angle - b.Spread/2
	default:
		// Put one child on each edge of the spread.
		return b.Spread / float64(n-1), angle - b.Spread/2
	}
}

// LayoutChecked validates b in full and then lays it out.
// No tree is returned for an invalid spec.
func LayoutChecked(b spec.Branch, origin geometry.XY, angle float64) (Node, error) {
	if err := spec.Validate(b); err != nil {
		return Node{}, err
	}
	return Layout(b, origin, angle), nil
}

// Walk visits n and its descendants in pre-order. parent is nil for n itself.
// Returning false from fn skips the children of the visited node.
func Walk(n Node, fn func(parent *Node, node Node, depth int) bool) {
	walk(nil, n, 0, fn)
}

func walk(parent *Node, n Node, depth int, fn func(*Node, Node, int) bool) {
	if !fn(parent, n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(&n, child, depth+1, fn)
	}
}

// Count returns the number of nodes in n, n included.
func Count(n Node) int {
	count := 0
	Walk(n, func(*Node, Node, int) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels below n; 0 for a leaf.
func Depth(n Node) int {
	deepest := 0
	Walk(n, func(_ *Node, _ Node, depth int) bool {
		deepest = max(deepest, depth)
		return true
	})
	return deepest
}

// Bounds returns the corners of the smallest axis-aligned box holding every
// origin in n.
func Bounds(n Node) (lo, hi geometry.XY) {
	lo = geometry.XY{X: math.Inf(1), Y: math.Inf(1)}
	hi = geometry.XY{X: math.Inf(-1), Y: math.Inf(-1)}
	Walk(n, func(_ *Node, node Node, _ int) bool {
		lo.X = math.Min(lo.X, node.Origin.X)
		lo.Y = math.Min(lo.Y, node.Origin.Y)
		hi.X = math.Max(hi.X, node.Origin.X)
		hi.Y = math.Max(hi.Y, node.Origin.Y)
		return true
	})
	return lo, hi
}
