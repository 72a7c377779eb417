package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/bstree/pkg/bst"
)

const (
	VariantIterative = "iterative"
	VariantRecursive = "recursive"
)

var OperationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bstree_operations_total",
		Help: "number of tree operations by operation and variant",
	}, []string{"op", "variant"})

var TreeSizeMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bstree_tree_size",
		Help: "number of nodes in the tree",
	}, []string{"tree"})

var TreeHeightMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "bstree_tree_height",
		Help: "height of the tree, -1 when empty",
	}, []string{"tree"})

func init() {
	prometheus.MustRegister(OperationsTotal, TreeSizeMetrics, TreeHeightMetrics)
}

// Variant returns the variant label for the recursive flag.
func Variant(recursive bool) string {
	if recursive {
		return VariantRecursive
	}
	return VariantIterative
}

func IncOperation(op, variant string) {
	OperationsTotal.With(prometheus.Labels{"op": op, "variant": variant}).Inc()
}

func AddOperations(op, variant string, n int) {
	OperationsTotal.With(prometheus.Labels{"op": op, "variant": variant}).Add(float64(n))
}

// ObserveTree records the size and height of the named tree.
func ObserveTree(name string, tree *bst.Tree) {
	TreeSizeMetrics.With(prometheus.Labels{"tree": name}).Set(float64(tree.Size()))
	TreeHeightMetrics.With(prometheus.Labels{"tree": name}).Set(float64(tree.Height()))
}
