package bst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Empty(t *testing.T) {
	tree := New()
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, -1, tree.Height())

	for _, v := range []int{0, -1, 1, 42} {
		assert.False(t, tree.Contains(v))
		assert.False(t, tree.ContainsRecursive(v))
	}

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.MinRecursive()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
	_, ok = tree.MaxRecursive()
	assert.False(t, ok)
	_, ok = tree.Range()
	assert.False(t, ok)

	// queries never mutate
	assert.True(t, tree.IsEmpty())
	assert.NoError(t, tree.Validate())
}

func TestTree_Scenario(t *testing.T) {
	tree := New()
	tree.Insert(10).Insert(5).Insert(2).Insert(6).Insert(15).Insert(13)

	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 6, tree.Size())
	assert.Equal(t, 2, tree.Height())

	min, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, 2, min)

	max, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, 15, max)

	r, ok := tree.Range()
	require.True(t, ok)
	assert.Equal(t, 13, r)

	assert.True(t, tree.Contains(6))
	assert.False(t, tree.Contains(7))
	assert.True(t, tree.ContainsRecursive(6))
	assert.False(t, tree.ContainsRecursive(7))

	assert.NoError(t, tree.Validate())
}

func TestTree_SingleNode(t *testing.T) {
	tree := FromValues(10)
	assert.Equal(t, 0, tree.Height())
	assert.True(t, tree.Root().IsLeaf())

	for _, query := range []func() (int, bool){tree.Min, tree.MinRecursive, tree.Max, tree.MaxRecursive} {
		v, ok := query()
		assert.True(t, ok)
		assert.Equal(t, 10, v)
	}

	r, ok := tree.Range()
	assert.True(t, ok)
	assert.Equal(t, 0, r)
}

func TestTree_TieGoesLeft(t *testing.T) {
	for name, tree := range map[string]*Tree{
		"iterative": FromValues(10, 10),
		"recursive": FromValuesRecursive(10, 10),
	} {
		t.Run(name, func(t *testing.T) {
			root := tree.Root()
			require.NotNil(t, root)
			assert.Equal(t, 10, root.Data())
			assert.Nil(t, root.Right())
			require.NotNil(t, root.Left())
			assert.Equal(t, 10, root.Left().Data())
			assert.True(t, root.Left().IsLeaf())
		})
	}
}

func TestTree_SubTreeQueries(t *testing.T) {
	tree := FromValues(25, 15, 10, 22, 4, 12, 18, 24, 50, 35, 70, 31, 44, 66, 90)

	sub := tree.Search(15)
	require.NotNil(t, sub)

	min, ok := tree.MinOf(sub)
	assert.True(t, ok)
	assert.Equal(t, 4, min)

	max, ok := tree.MaxRecursiveOf(sub)
	assert.True(t, ok)
	assert.Equal(t, 24, max)

	r, ok := tree.RangeOf(sub)
	assert.True(t, ok)
	assert.Equal(t, 20, r)

	assert.True(t, tree.ContainsRecursiveOf(12, sub))
	assert.False(t, tree.ContainsRecursiveOf(50, sub), "50 is outside the subtree")

	_, ok = tree.RangeOf(nil)
	assert.False(t, ok)
	_, ok = tree.MinOf(nil)
	assert.False(t, ok)
	_, ok = tree.MaxOf(nil)
	assert.False(t, ok)

	assert.Nil(t, tree.Search(100))
}

func TestMinAndMax(t *testing.T) {
	values := []int{2, 1, 3, 4, 0, 6, 6, 10, -1, 9}
	mins := []int{2, 1, 1, 1, 0, 0, 0, 0, -1, -1}
	maxs := []int{2, 2, 3, 4, 4, 6, 6, 10, 10, 10}

	tree := New()

	for i := 0; i < len(values); i++ {
		tree.Insert(values[i])

		min, _ := tree.Min()
		if min != mins[i] {
			t.Fatalf("at %d actual %d expected %d", i, min, mins[i])
		}

		if rmin, _ := tree.MinRecursive(); rmin != min {
			t.Fatalf("at %d recursive min %d differs from %d", i, rmin, min)
		}

		max, _ := tree.Max()
		if max != maxs[i] {
			t.Fatalf("at %d actual %d expected %d", i, max, maxs[i])
		}

		if rmax, _ := tree.MaxRecursive(); rmax != max {
			t.Fatalf("at %d recursive max %d differs from %d", i, rmax, max)
		}
	}
}

func TestTree_Validate(t *testing.T) {
	tree := FromValues(10, 5, 15)
	assert.NoError(t, tree.Validate())

	// 12 hangs under 5 but is greater than the root
	tree.root.left.right = newNode(12)
	tree.size++
	// 3 sits in the right subtree of 10
	tree.root.right.left = newNode(3)

	err := tree.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node 12 is in the left subtree of 10")
	assert.Contains(t, err.Error(), "node 3 is in the right subtree of 10")
	assert.Contains(t, err.Error(), "size mismatch: recorded 4, reachable 5")
}

func TestTree_Height(t *testing.T) {
	assert.Equal(t, 1, FromValues(10, 5, 15).Height())
	assert.Equal(t, 4, FromValues(1, 2, 3, 4, 5).Height())
	assert.Equal(t, 3, FromValues(25, 15, 10, 22, 4, 12, 18, 24, 50, 35, 70, 31, 44, 66, 90).Height())
}

func TestTree_RangeExtremes(t *testing.T) {
	testcases := []struct {
		name     string
		values   []int
		min, max int
		rangeOk  bool
		rng      int
	}{
		{"full int span", []int{0, math.MinInt, math.MaxInt}, math.MinInt, math.MaxInt, false, 0},
		{"min to -1", []int{-1, math.MinInt}, math.MinInt, -1, true, math.MaxInt},
		{"0 to max", []int{math.MaxInt, 0}, 0, math.MaxInt, true, math.MaxInt},
		{"min to 0 overflows by one", []int{0, math.MinInt}, math.MinInt, 0, false, 0},
		{"mixed sign just fits", []int{-1, math.MaxInt - 1, 0}, -1, math.MaxInt - 1, true, math.MaxInt},
		{"mixed sign overflows", []int{-2, math.MaxInt - 1}, -2, math.MaxInt - 1, false, 0},
		{"only min", []int{math.MinInt, math.MinInt}, math.MinInt, math.MinInt, true, 0},
		{"only max", []int{math.MaxInt}, math.MaxInt, math.MaxInt, true, 0},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			for variant, tree := range map[string]*Tree{
				"iterative": FromValues(tc.values...),
				"recursive": FromValuesRecursive(tc.values...),
			} {
				require.NoError(t, tree.Validate(), variant)

				for _, query := range []func() (int, bool){tree.Min, tree.MinRecursive} {
					v, ok := query()
					assert.True(t, ok, variant)
					assert.Equal(t, tc.min, v, variant)
				}

				for _, query := range []func() (int, bool){tree.Max, tree.MaxRecursive} {
					v, ok := query()
					assert.True(t, ok, variant)
					assert.Equal(t, tc.max, v, variant)
				}

				for _, query := range []func() (int, bool){tree.Range, tree.RangeRecursive} {
					v, ok := query()
					assert.Equal(t, tc.rangeOk, ok, variant)
					assert.Equal(t, tc.rng, v, variant)
					assert.GreaterOrEqual(t, v, 0, variant)
				}

				for _, v := range tc.values {
					assert.True(t, tree.Contains(v), "%s: contains(%d)", variant, v)
					assert.True(t, tree.ContainsRecursive(v), "%s: contains(%d)", variant, v)
				}

				for _, v := range []int{math.MinInt + 1, math.MaxInt - 2, 1} {
					assert.Equal(t, tree.Contains(v), tree.ContainsRecursive(v), "%s: contains(%d)", variant, v)
				}
			}
		})
	}
}

func TestTree_RangeRecursive(t *testing.T) {
	tree := FromValues(25, 15, 10, 22, 4, 12, 18, 24, 50, 35, 70, 31, 44, 66, 90)

	r, ok := tree.RangeRecursive()
	assert.True(t, ok)
	assert.Equal(t, 86, r)

	r, ok = tree.RangeRecursiveOf(tree.Search(50))
	assert.True(t, ok)
	assert.Equal(t, 59, r)

	_, ok = New().RangeRecursive()
	assert.False(t, ok)
}
