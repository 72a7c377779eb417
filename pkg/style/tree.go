package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/c9s/bstree/pkg/bst"
)

// DepthColors cycles by node depth in the sideways rendering.
var DepthColors = []color.Attribute{
	color.FgHiYellow,
	color.FgHiGreen,
	color.FgHiCyan,
	color.FgHiMagenta,
	color.FgHiBlue,
}

// FprintTree writes the sideways rendering of the tree; with color, each depth
// level is printed in its own color.
func FprintTree(w io.Writer, tree *bst.Tree, withColor bool) {
	if tree.IsEmpty() {
		fmt.Fprintln(w, "<empty>")
		return
	}

	if !withColor {
		tree.Fprint(w)
		return
	}

	printers := make([]func(io.Writer, string, ...interface{}), len(DepthColors))
	for i, attr := range DepthColors {
		c := color.New(attr)
		// the writer is often not a terminal, keep the escape codes anyway
		c.EnableColor()
		printers[i] = c.FprintfFunc()
	}

	tree.SidewaysOf(tree.Root(), func(n *bst.Node, depth int) {
		write := printers[depth%len(printers)]
		write(w, "%s%d\n", strings.Repeat(" ", depth*bst.DefaultIndent), n.Data())
	})
}
