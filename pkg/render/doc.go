// Package render groups the output adapters for laid-out snowflakes.
//
// Each subpackage consumes the positioned tree.Node, the flattened
// outline.Polygon, or both:
//   - svg: vector document with the filled outline and optional branch skeleton
//   - raster: PNG fill of the outline
//   - nodelink: Graphviz view of the junction tree
package render
