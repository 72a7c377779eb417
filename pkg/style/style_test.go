package style

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bstree/pkg/bst"
)

func TestFprintTree(t *testing.T) {
	tree := bst.FromValues(10, 5, 2, 6, 15, 13)

	var buf bytes.Buffer
	FprintTree(&buf, tree, false)
	assert.Equal(t, tree.String(), buf.String())

	buf.Reset()
	FprintTree(&buf, tree, true)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "10\n")

	buf.Reset()
	FprintTree(&buf, bst.New(), true)
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestRenderTraversals(t *testing.T) {
	var buf bytes.Buffer
	RenderTraversals(&buf, NewPlainTableStyle(), "scenario", bst.FromValues(10, 5, 2, 6, 15, 13))

	out := buf.String()
	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "[10, 5, 2, 6, 15, 13]")
	assert.Contains(t, out, "[2, 5, 6, 10, 13, 15]")
	assert.Contains(t, out, "[2, 6, 5, 13, 15, 10]")
}

func TestRenderQueries(t *testing.T) {
	var buf bytes.Buffer
	RenderQueries(&buf, NewPlainTableStyle(), "", bst.FromValues(10, 5, 2, 6, 15, 13), []int{6, 7})

	out := buf.String()
	assert.Contains(t, out, "contains(6)")
	assert.Contains(t, out, "contains(7)")
	assert.Contains(t, out, "13")

	buf.Reset()
	RenderQueries(&buf, NewPlainTableStyle(), "", bst.New(), nil)
	assert.Contains(t, buf.String(), "-")
}

func TestRenderQueries_RangeOverflow(t *testing.T) {
	var buf bytes.Buffer
	RenderQueries(&buf, NewPlainTableStyle(), "", bst.FromValues(0, math.MinInt, math.MaxInt), nil)

	out := buf.String()
	assert.Contains(t, out, strconv.Itoa(math.MaxInt))
	assert.Regexp(t, `range\s*\S\s*-\s*\S\s*-\s`, out)
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "-", FormatOptional(0, false))
	assert.Equal(t, "0", FormatOptional(0, true))
	assert.Equal(t, "-4", FormatOptional(-4, true))
}

func TestRenderMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "bstree_test_size", Help: "test"}, []string{"tree"})
	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_total", Help: "test"})
	registry.MustRegister(gauge, other)
	gauge.WithLabelValues("demo").Set(6)

	families, err := registry.Gather()
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderMetrics(&buf, NewPlainTableStyle(), "bstree_", families)
	assert.Contains(t, buf.String(), "bstree_test_size")
	assert.Contains(t, buf.String(), "tree=demo")
	assert.NotContains(t, buf.String(), "other_total")
}

func TestTableStyle(t *testing.T) {
	colored := TableStyle(true)
	assert.Equal(t, "StyleBSTree", colored.Name)
	assert.NotEmpty(t, colored.Color.Row)

	plain := TableStyle(false)
	assert.Equal(t, "StyleBSTreePlain", plain.Name)
	assert.Empty(t, plain.Color.Row)

	// the shared rounded style must not be modified
	assert.Equal(t, "StyleRounded", table.StyleRounded.Name)
}
