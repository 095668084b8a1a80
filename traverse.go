package succtree

import "iter"

// Keys returns an iterator over all keys in ascending order. It starts at the
// minimum and follows the successor links; the tree structure is not touched.
//
// The tree must not be modified during iteration.
func (t *Tree) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := t.First(); n != nil; n = n.succ {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Chain collects the keys of the successor chain, in ascending order.
func (t *Tree) Chain() []int {
	keys := make([]int, 0, t.Len())
	for k := range t.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// InOrder returns an iterator over the keys in symmetric order, walking the
// child links. For a consistent tree it yields the same sequence as Keys.
func (t *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		n := t.rootOrNil()
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.left {
				stack = append(stack, n)
			}
			n, stack = stack[len(stack)-1], stack[:len(stack)-1]
			if !yield(n.key) {
				return
			}
			n = n.right
		}
	}
}

// PreOrder returns an iterator over the keys, visiting every node before its
// children.
func (t *Tree) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.IsEmpty() {
			return
		}
		stack := []*Node{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// PostOrder returns an iterator over the keys, visiting every node after its
// children.
func (t *Tree) PostOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		var last *Node // node yielded last
		n := t.rootOrNil()
		for n != nil || len(stack) > 0 {
			if n != nil {
				stack = append(stack, n)
				n = n.left
				continue
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			if !yield(top.key) {
				return
			}
			last = top
			stack = stack[:len(stack)-1]
		}
	}
}
