package outline

import (
	"fmt"

	"github.com/willbeason/snowflake/pkg/errors"
	"github.com/willbeason/snowflake/pkg/geometry"
	"github.com/willbeason/snowflake/pkg/spec"
	"github.com/willbeason/snowflake/pkg/tree"
)

// Build returns the outline fragment for n.
//
// A leaf contributes only its origin. An interior junction walks its
// children in order, starting from the direction opposite its incoming
// branch. Between each pair of adjacent directions it places the elbow where
// the two branch edges meet, unless the directions coincide. It finishes
// with the elbow between the last child and the far side of the incoming
// branch.
func Build(n tree.Node) (Nested, error) {
	return build(n, "root")
}

func build(n tree.Node, path string) (Nested, error) {
	if n.IsLeaf() {
		return Nested{Vertex(n.Origin)}, nil
	}

	result := make(Nested, 0, 2*len(n.Children)+1)

	previous := n.Angle - 180
	for i, child := range n.Children {
		if !geometry.SameAngle(previous, child.Angle) {
			elbow, err := geometry.Elbow(n.Origin, n.Width, previous, child.Angle)
			if err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "%s: elbow before child %d", path, i)
			}
			result = append(result, Vertex(elbow))
		}

		childOutline, err := build(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		result = append(result, childOutline)

		previous = child.Angle
	}

	elbow, err := geometry.Elbow(n.Origin, n.Width, previous, n.Angle+180)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s: closing elbow", path)
	}
	result = append(result, Vertex(elbow))

	return result, nil
}

// Snowflake validates b, lays it out at origin facing angle, and traces its
// outline. It returns both the positioned tree and the flattened polygon.
func Snowflake(b spec.Branch, origin geometry.XY, angle float64) (tree.Node, Polygon, error) {
	root, err := tree.LayoutChecked(b, origin, angle)
	if err != nil {
		return tree.Node{}, nil, err
	}

	nested, err := Build(root)
	if err != nil {
		return tree.Node{}, nil, err
	}

	return root, Flatten(nested), nil
}
