package style

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	dto "github.com/prometheus/client_model/go"

	"github.com/c9s/bstree/pkg/bst"
)

func newTable(w io.Writer, style *table.Style, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if style != nil {
		t.SetStyle(*style)
	}
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func formatValues(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatOptional renders a comma-ok query result, "-" when there is no value.
func FormatOptional(v int, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

// RenderTraversals prints the three depth-first orders of the tree.
func RenderTraversals(w io.Writer, style *table.Style, title string, tree *bst.Tree) {
	t := newTable(w, style, title)
	t.AppendHeader(table.Row{"traversal", "values"})
	t.AppendRows([]table.Row{
		{"preorder", formatValues(tree.Preorder())},
		{"inorder", formatValues(tree.Inorder())},
		{"postorder", formatValues(tree.Postorder())},
	})
	t.Render()
}

// RenderQueries prints min, max and range for both the iterative and the
// recursive variants, plus the membership of each probe.
func RenderQueries(w io.Writer, style *table.Style, title string, tree *bst.Tree, probes []int) {
	t := newTable(w, style, title)
	t.AppendHeader(table.Row{"query", "iterative", "recursive"})

	min, minOk := tree.Min()
	rmin, rminOk := tree.MinRecursive()
	max, maxOk := tree.Max()
	rmax, rmaxOk := tree.MaxRecursive()
	r, rOk := tree.Range()
	rr, rrOk := tree.RangeRecursive()

	t.AppendRows([]table.Row{
		{"empty", tree.IsEmpty(), tree.IsEmpty()},
		{"size", tree.Size(), tree.Size()},
		{"height", tree.Height(), tree.Height()},
		{"min", FormatOptional(min, minOk), FormatOptional(rmin, rminOk)},
		{"max", FormatOptional(max, maxOk), FormatOptional(rmax, rmaxOk)},
		{"range", FormatOptional(r, rOk), FormatOptional(rr, rrOk)},
	})

	for _, p := range probes {
		t.AppendRow(table.Row{fmt.Sprintf("contains(%d)", p), tree.Contains(p), tree.ContainsRecursive(p)})
	}

	t.Render()
}

// RenderMetrics prints the gathered metric families whose name has the given prefix.
func RenderMetrics(w io.Writer, style *table.Style, prefix string, families []*dto.MetricFamily) {
	t := newTable(w, style, "metrics")
	t.AppendHeader(table.Row{"name", "labels", "value"})

	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), prefix) {
			continue
		}

		for _, m := range family.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}

			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}

			t.AppendRow(table.Row{family.GetName(), strings.Join(labels, ","), value})
		}
	}

	t.Render()
}
