// Package nodelink renders the junction tree of a laid-out snowflake as a
// Graphviz node-link diagram, each junction pinned at its layout position.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/willbeason/snowflake/pkg/errors"
	"github.com/willbeason/snowflake/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// Scale converts layout units to Graphviz points.
	Scale float64

	// Detailed adds origin, angle and width to every node label.
	Detailed bool
}

// DefaultOptions pins junctions at 10 points per layout unit with short labels.
var DefaultOptions = Options{Scale: 10}

// ToDOT converts n to Graphviz DOT. Nodes are named n0, n1, ... in pre-order
// and pinned with pos so the neato engine keeps the snowflake's shape.
func ToDOT(n tree.Node, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultOptions.Scale
	}

	var buf bytes.Buffer
	buf.WriteString("graph snowflake {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	var edges []string
	next := 0

	var visit func(parent int, node *tree.Node)
	visit = func(parent int, node *tree.Node) {
		id := next
		next++

		fmt.Fprintf(&buf, "  n%d [label=%q, pos=\"%.3f,%.3f!\"];\n",
			id, label(*node, id, opts.Detailed), node.Origin.X*scale, node.Origin.Y*scale)
		if parent >= 0 {
			edges = append(edges, fmt.Sprintf("  n%d -- n%d;", parent, id))
		}

		for i := range node.Children {
			visit(id, &node.Children[i])
		}
	}
	visit(-1, &n)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(n tree.Node, id int, detailed bool) string {
	if !detailed {
		return fmt.Sprint(id)
	}

	parts := []string{
		fmt.Sprint(id),
		fmt.Sprintf("(%.2f, %.2f)", n.Origin.X, n.Origin.Y),
		fmt.Sprintf("angle: %g", n.Angle),
		fmt.Sprintf("width: %g", n.Width),
	}
	return strings.Join(parts, "\n")
}

// RenderSVG lays out and renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
