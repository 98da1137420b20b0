// Package svg writes snowflakes as SVG documents.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/willbeason/snowflake/pkg/errors"
	"github.com/willbeason/snowflake/pkg/geometry"
	"github.com/willbeason/snowflake/pkg/outline"
	"github.com/willbeason/snowflake/pkg/tree"
)

const (
	// Namespace is the standard SVG XML namespace.
	Namespace = "http://www.w3.org/2000/svg"

	defaultFill      = "black"
	defaultStroke    = "steelblue"
	defaultMargin    = 2.0
	defaultPrecision = 3
	markerRadius     = 1.0
)

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	namespace string
	fill      string
	stroke    string
	margin    float64
	precision int
	width     int
	height    int
	skeleton  *tree.Node
}

// WithNamespace sets the xmlns of the root element.
func WithNamespace(ns string) Option { return func(r *renderer) { r.namespace = ns } }

// WithFill sets the outline fill color.
func WithFill(color string) Option { return func(r *renderer) { r.fill = color } }

// WithStroke sets the color of branch lines and junction markers.
func WithStroke(color string) Option { return func(r *renderer) { r.stroke = color } }

// WithMargin pads the viewBox on every side, in layout units.
func WithMargin(m float64) Option { return func(r *renderer) { r.margin = m } }

// WithPrecision sets the number of decimals written for coordinates.
func WithPrecision(p int) Option { return func(r *renderer) { r.precision = p } }

// WithSize sets the width and height attributes of the document, in pixels.
func WithSize(width, height int) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

// WithTree draws the junction skeleton of n over the outline: a marker
// at each origin and a line along each branch as wide as the branch.
func WithTree(n tree.Node) Option { return func(r *renderer) { r.skeleton = &n } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		namespace: Namespace,
		fill:      defaultFill,
		stroke:    defaultStroke,
		margin:    defaultMargin,
		precision: defaultPrecision,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render writes p as a filled polygon in a standalone SVG document.
func Render(w io.Writer, p outline.Polygon, opts ...Option) error {
	if len(p) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot render an empty outline")
	}

	r := newRenderer(opts...)
	bw := bufio.NewWriter(w)

	lo, hi := r.bounds(p)
	fmt.Fprintf(bw, `<svg xmlns="%s" viewBox="%s %s %s %s"`,
		r.namespace, r.num(lo.X), r.num(lo.Y), r.num(hi.X-lo.X), r.num(hi.Y-lo.Y))
	if r.width > 0 && r.height > 0 {
		fmt.Fprintf(bw, ` width="%d" height="%d"`, r.width, r.height)
	}
	bw.WriteString(">\n")

	fmt.Fprintf(bw, `  <polygon points="%s" fill="%s"/>`+"\n", r.points(p), r.fill)

	if r.skeleton != nil {
		r.renderSkeleton(bw, *r.skeleton)
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// bounds covers the outline, the skeleton if any, and the margin.
func (r *renderer) bounds(p outline.Polygon) (lo, hi geometry.XY) {
	lo, hi = p.Bounds()
	if r.skeleton != nil {
		tlo, thi := tree.Bounds(*r.skeleton)
		lo = geometry.XY{X: math.Min(lo.X, tlo.X-markerRadius), Y: math.Min(lo.Y, tlo.Y-markerRadius)}
		hi = geometry.XY{X: math.Max(hi.X, thi.X+markerRadius), Y: math.Max(hi.Y, thi.Y+markerRadius)}
	}

	pad := geometry.XY{X: r.margin, Y: r.margin}
	return lo.Sub(pad), hi.Add(pad)
}

// points encodes p as the "x y x y ..." list of a polygon element.
func (r *renderer) points(p outline.Polygon) string {
	parts := make([]string, 0, 2*len(p))
	for _, v := range p {
		parts = append(parts, r.num(v.X), r.num(v.Y))
	}
	return strings.Join(parts, " ")
}

func (r *renderer) renderSkeleton(w *bufio.Writer, root tree.Node) {
	fmt.Fprintf(w, `  <g class="branches" stroke="%s" stroke-linecap="round">`+"\n", r.stroke)
	tree.Walk(root, func(parent *tree.Node, n tree.Node, _ int) bool {
		if parent != nil {
			fmt.Fprintf(w, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s"/>`+"\n",
				r.num(parent.Origin.X), r.num(parent.Origin.Y), r.num(n.Origin.X), r.num(n.Origin.Y), r.num(parent.Width))
		}
		return true
	})
	w.WriteString("  </g>\n")

	fmt.Fprintf(w, `  <g class="junctions" fill="%s">`+"\n", r.stroke)
	tree.Walk(root, func(_ *tree.Node, n tree.Node, _ int) bool {
		fmt.Fprintf(w, `    <circle cx="%s" cy="%s" r="%s"/>`+"\n", r.num(n.Origin.X), r.num(n.Origin.Y), r.num(markerRadius))
		return true
	})
	w.WriteString("  </g>\n")
}

// num formats f at the configured precision without a trailing ".000" or "-0".
func (r *renderer) num(f float64) string {
	s := strconv.FormatFloat(f, 'f', r.precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
