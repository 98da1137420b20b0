package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes n as an indented listing of its fields, two spaces per level,
// for debugging.
func Dump(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	dump(bw, n, 0)
	return bw.Flush()
}

func dump(w *bufio.Writer, n Node, level int) {
	indent := strings.Repeat("  ", level)

	fmt.Fprintf(w, "%sorigin: (%.3f, %.3f)\n", indent, n.Origin.X, n.Origin.Y)
	fmt.Fprintf(w, "%sangle: %g\n", indent, n.Angle)
	fmt.Fprintf(w, "%swidth: %g\n", indent, n.Width)

	if n.IsLeaf() {
		return
	}

	fmt.Fprintf(w, "%schildren:\n", indent)
	for _, child := range n.Children {
		dump(w, child, level+1)
	}
}
