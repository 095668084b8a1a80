package succtree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var textbook = []int{15, 6, 18, 3, 7, 17, 20}

func buildTree(t *testing.T, keys ...int) *Tree {
	t.Helper()
	tree := New()
	for _, k := range keys {
		if !tree.Insert(k) {
			t.Fatalf("failed to insert key %d", k)
		}
	}
	return tree
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	var tree Tree
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("zero tree should be empty, has %d keys", tree.Len())
	}
	if tree.Search(1) != nil {
		t.Errorf("empty tree should not find key 1")
	}
	if tree.Delete(1) {
		t.Errorf("delete on empty tree should be a no-op")
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("empty tree should not have a minimum")
	}
	if tree.First() != nil || tree.Last() != nil {
		t.Errorf("empty tree should not have first or last node")
	}
	if len(tree.Chain()) != 0 || tree.Height() != 0 {
		t.Errorf("empty tree should have empty chain and height 0")
	}
	if tree.String() != "[]" {
		t.Errorf("expected [], got %s", tree.String())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected empty tree to be valid, got %v", err)
	}
}

func TestTextbookChain(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, textbook...)
	assert.Equal(t, []int{3, 6, 7, 15, 17, 18, 20}, tree.Chain())
	assert.Equal(t, "[3 6 7 15 17 18 20]", tree.String())
	assert.Equal(t, 7, tree.Len())
	require.NoError(t, tree.Check())
}

func TestDeleteInnerNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	if !tree.Delete(15) {
		t.Fatalf("failed to delete key 15")
	}
	assert.Nil(t, tree.Search(15))
	assert.Equal(t, []int{3, 6, 7, 17, 18, 20}, tree.Chain())
	require.NoError(t, tree.Check())
	root, _ := tree.Parent(18)
	assert.Equal(t, 17, root, "17 should have moved into the root node")
}

func TestDeleteEveryShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	for _, k := range textbook { // leaf, one child, two children, root
		tree := buildTree(t, textbook...)
		require.True(t, tree.Delete(k), "delete %d", k)
		want := slices.DeleteFunc(slices.Sorted(slices.Values(textbook)), func(x int) bool {
			return x == k
		})
		assert.Equal(t, want, tree.Chain(), "chain after deleting %d", k)
		assert.Equal(t, want, slices.Collect(tree.InOrder()), "in-order after deleting %d", k)
		require.NoError(t, tree.Check(), "after deleting %d", k)
	}
	tree := buildTree(t, 10, 5)
	require.True(t, tree.Delete(10)) // root with a single child
	assert.Equal(t, []int{5}, tree.Chain())
	require.NoError(t, tree.Check())
}

func TestDuplicateRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	if tree.Insert(7) {
		t.Errorf("duplicate key 7 should be rejected")
	}
	assert.Equal(t, len(textbook), tree.Len())
	require.NoError(t, tree.Check())
}

func TestDeleteMissingIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	if tree.Delete(16) {
		t.Errorf("delete of missing key 16 should report false")
	}
	assert.Equal(t, []int{3, 6, 7, 15, 17, 18, 20}, tree.Chain())
}

func TestDeleteSoleNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, 42)
	require.True(t, tree.Delete(42))
	assert.True(t, tree.IsEmpty())
	assert.Empty(t, tree.Chain())
	require.NoError(t, tree.Check())
	require.True(t, tree.Insert(1), "tree should be usable after becoming empty")
	assert.Equal(t, []int{1}, tree.Chain())
}

func TestDeleteMaximum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	for !tree.IsEmpty() {
		max, _ := tree.Max()
		require.True(t, tree.Delete(max))
		if last := tree.Last(); last != nil && last.Next() != nil {
			t.Fatalf("new maximum %d has successor %d", last.Key(), last.Next().Key())
		}
		require.NoError(t, tree.Check())
	}
}

func TestPredecessorOfMinimum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	if p := predecessor(tree.First()); p != nil {
		t.Errorf("minimum should not have a predecessor, has %d", p.Key())
	}
	for n := tree.First().Next(); n != nil; n = n.Next() {
		p := predecessor(n)
		require.NotNil(t, p, "node %d should have a predecessor", n.Key())
		if p.Next() != n {
			t.Errorf("successor of predecessor of %d is not %d", n.Key(), n.Key())
		}
	}
}

func TestNodeNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	var backwards []int
	for n := tree.Last(); n != nil; n = n.Prev() {
		backwards = append(backwards, n.Key())
	}
	assert.Equal(t, []int{20, 18, 17, 15, 7, 6, 3}, backwards)
	n := tree.Search(7)
	require.NotNil(t, n)
	assert.Equal(t, 15, n.Next().Key())
	assert.Equal(t, 6, n.Prev().Key())
	var none *Node
	assert.Nil(t, none.Next())
	assert.Nil(t, none.Prev())
}

func TestLookupByValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	cases := []struct {
		key        int
		succ, pred int
		hasS, hasP bool
	}{
		{15, 17, 7, true, true},
		{16, 17, 15, true, true},
		{3, 6, 0, true, false},
		{1, 3, 0, true, false},
		{20, 0, 18, false, true},
		{25, 0, 20, false, true},
	}
	for _, c := range cases {
		s, ok := tree.Successor(c.key)
		assert.Equal(t, c.hasS, ok, "successor of %d", c.key)
		if ok {
			assert.Equal(t, c.succ, s, "successor of %d", c.key)
		}
		p, ok := tree.Predecessor(c.key)
		assert.Equal(t, c.hasP, ok, "predecessor of %d", c.key)
		if ok {
			assert.Equal(t, c.pred, p, "predecessor of %d", c.key)
		}
	}
	min, _ := tree.Min()
	max, _ := tree.Max()
	assert.Equal(t, 3, min)
	assert.Equal(t, 20, max)
	assert.True(t, tree.Contains(17))
	assert.False(t, tree.Contains(16))
}

func TestTraversalsAndShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	assert.Equal(t, []int{15, 6, 3, 7, 18, 17, 20}, slices.Collect(tree.PreOrder()))
	assert.Equal(t, []int{3, 6, 7, 15, 17, 18, 20}, slices.Collect(tree.InOrder()))
	assert.Equal(t, []int{3, 7, 6, 17, 20, 18, 15}, slices.Collect(tree.PostOrder()))
	assert.Equal(t, 3, tree.Height())
	p, ok := tree.Parent(7)
	assert.True(t, ok)
	assert.Equal(t, 6, p)
	_, ok = tree.Parent(15)
	assert.False(t, ok, "root has no parent")
	_, ok = tree.Parent(99)
	assert.False(t, ok, "missing key has no parent")
	// stop early
	var firstTwo []int
	for k := range tree.Keys() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, k)
	}
	assert.Equal(t, []int{3, 6}, firstTwo)
}

func TestDegenerateTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	const n = 5000 // sorted input, tree degenerates to a list
	tree := New()
	for i := range n {
		tree.Insert(i)
	}
	assert.Equal(t, n, tree.Height())
	assert.Equal(t, n, len(slices.Collect(tree.PostOrder())))
	require.NoError(t, tree.Check())
	for i := n - 1; i >= 0; i -= 2 {
		tree.Delete(i)
	}
	assert.Equal(t, n/2, tree.Len())
	require.NoError(t, tree.Check())
}

func TestClear(t *testing.T) {
	tree := buildTree(t, textbook...)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, "[]", tree.String())
}

// --- Properties with random keys -------------------------------------------

const (
	tAddN        = 4000
	tAddValRange = 10000
)

var rg = rand.New(rand.NewSource(0))

func TestRandomInsertChainMatchesInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := New()
	content := make(map[int]struct{})
	for range tAddN {
		k := rg.Intn(tAddValRange)
		_, in := content[k]
		if inserted := tree.Insert(k); inserted == in {
			t.Fatalf("insert of %d reported %v, key present before: %v", k, inserted, in)
		}
		content[k] = struct{}{}
	}
	require.NoError(t, tree.Check())
	chain := tree.Chain()
	assert.Equal(t, len(content), len(chain))
	assert.Equal(t, slices.Collect(tree.InOrder()), chain)
	assert.True(t, slices.IsSorted(chain))
	t.Logf("height: %d, size: %d", tree.Height(), tree.Len())
}

func TestRandomDeleteKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	keys := rg.Perm(tAddN)
	tree := New()
	for _, k := range keys {
		tree.Insert(k)
	}
	sorted := slices.Sorted(slices.Values(keys))
	for _, k := range keys[:tAddN/4] {
		require.True(t, tree.Delete(k), "failed to delete key %d", k)
		require.Nil(t, tree.Search(k), "key %d still present", k)
		i, _ := slices.BinarySearch(sorted, k)
		sorted = slices.Delete(sorted, i, i+1)
		if tree.Delete(k) {
			t.Fatalf("can delete a second time key %d", k)
		}
	}
	assert.Equal(t, sorted, tree.Chain())
	require.NoError(t, tree.Check())
}

func TestRandomDeleteAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	keys := rg.Perm(tAddN)
	tree := New()
	for round := range 3 {
		for _, k := range keys {
			tree.Insert(k)
		}
		rg.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
		for i, k := range keys {
			require.True(t, tree.Delete(k), "round %d: failed to delete key %d", round, k)
			if i%500 == 0 {
				require.NoError(t, tree.Check())
			}
		}
		assert.Equal(t, 0, len(tree.Chain()), "round %d: chain should be empty", round)
		assert.True(t, tree.IsEmpty())
	}
}

// --- Corruption ------------------------------------------------------------

func TestCheckDetectsBrokenChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, textbook...)
	tree.Search(6).succ = tree.Search(15) // skips 7
	err := tree.Check()
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got %v", err)
	}
	t.Logf("err = %v", err)
	//
	tree = buildTree(t, textbook...)
	tree.Last().succ = tree.First()
	assert.ErrorIs(t, tree.Check(), ErrInvariantViolation)
	//
	tree = buildTree(t, textbook...)
	tree.size++
	assert.ErrorIs(t, tree.Check(), ErrInvariantViolation)
	//
	tree = buildTree(t, textbook...)
	tree.Search(3).parent = tree.Search(18)
	assert.ErrorIs(t, tree.Check(), ErrInvariantViolation)
	//
	tree = buildTree(t, textbook...)
	tree.Search(3).key = 8
	assert.ErrorIs(t, tree.Check(), ErrInvariantViolation)
}

func TestDeleteWithBrokenParentPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	tree := buildTree(t, 15, 6)
	tree.Search(6).parent = &Node{key: 99}
	assert.Panics(t, func() {
		tree.Delete(6)
	})
}

func TestNilTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "succtree")
	defer teardown()
	//
	var tree *Tree
	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Len())
	assert.Nil(t, tree.Search(3))
	assert.False(t, tree.Delete(3))
	assert.NotPanics(t, tree.Clear)
	assert.PanicsWithValue(t, ErrNilTree, func() {
		tree.Insert(3)
	})
}
