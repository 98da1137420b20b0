// Package outline traces the boundary of a laid-out snowflake.
//
// Build returns the boundary as a tree of Fragments, one Nested per junction,
// holding the elbow corners at that junction interleaved with the Nested of each
// child. Flatten reads the tree depth first into the closed Polygon.
package outline

import (
	"github.com/willbeason/snowflake/pkg/geometry"
)

// A Fragment is either a Vertex or a Nested list of Fragments.
type Fragment interface {
	// Visit calls the Visitor method matching the Fragment's kind.
	Visit(v Visitor)

	fragment()
}

// A Visitor receives each kind of Fragment.
type Visitor interface {
	Vertex(Vertex)
	Nested(Nested)
}

// A Vertex is one corner of the outline.
type Vertex geometry.XY

func (p Vertex) Visit(v Visitor) { v.Vertex(p) }
func (Vertex) fragment()         {}

// XY returns p as a plain point.
func (p Vertex) XY() geometry.XY {
	return geometry.XY(p)
}

// Nested is the boundary contributed by one junction and everything below it.
type Nested []Fragment

func (n Nested) Visit(v Visitor) { v.Nested(n) }
func (Nested) fragment()         {}

// Vertices flattens n; see Flatten.
func (n Nested) Vertices() Polygon {
	return Flatten(n)
}

var (
	_ Fragment = Vertex{}
	_ Fragment = Nested{}
)

// flattener appends vertices in depth-first, left-to-right order.
type flattener struct {
	vertices Polygon
}

func (f *flattener) Vertex(p Vertex) {
	f.vertices = append(f.vertices, p.XY())
}

func (f *flattener) Nested(n Nested) {
	for _, child := range n {
		child.Visit(f)
	}
}

// Flatten returns the vertices under fragment in depth-first, left-to-right
// order. Read as a closed path they trace the outline once.
func Flatten(fragment Fragment) Polygon {
	f := &flattener{}
	fragment.Visit(f)
	return f.vertices
}
