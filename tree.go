package succtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strconv"
	"strings"
)

// Node is a node of a Tree, holding a single key.
//
// Child links own their nodes. The successor and parent links are relations
// only: they never keep a node alive on their own, as every node reachable by
// them is reachable from the root as well.
//
// Node references are valid until the next call to Delete on the tree. Deleting
// a key whose node has two children moves the successor's key into that node.
type Node struct {
	key         int
	left, right *Node
	parent      *Node // nil for the root
	succ        *Node // in-order successor, nil for the maximum
}

// Key returns the key of node n.
func (n *Node) Key() int {
	return n.key
}

// Next returns the node holding the next-larger key, or nil if n holds the
// maximum. Time: O(1)
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.succ
}

// Left returns the left child of n, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Prev returns the node holding the next-smaller key, or nil if n holds the
// minimum. Time: O(h)
func (n *Node) Prev() *Node {
	if n == nil {
		return nil
	}
	return predecessor(n)
}

// Tree is a binary search tree over unique integer keys, which links every node
// to its in-order successor.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like an empty tree.
//
// Operations are not balanced. h denotes the current height of the tree.
//
//	Operation     |   Time
//	--------------+----------
//	Search        |   O(h)
//	Insert        |   O(h)
//	Delete        |   O(h)
//	Min/Max       |   O(h)
//	Node.Next     |   O(1)
//	Keys          |   O(n)
type Tree struct {
	root *Node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.rootOrNil()
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Clear drops all nodes of the tree. Clearing a nil tree is a no-op.
func (t *Tree) Clear() {
	if t == nil {
		return
	}
	t.root, t.size = nil, 0
}

// Search returns the node holding key, or nil if key is not present.
func (t *Tree) Search(key int) *Node {
	if t == nil {
		return nil
	}
	x := t.root
	for x != nil && x.key != key {
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	return x
}

// Contains reports whether key is present in the tree.
func (t *Tree) Contains(key int) bool {
	return t.Search(key) != nil
}

// Insert adds key to the tree. Keys are unique: if key is already present,
// the tree remains unchanged and Insert returns false.
//
// Insert needs a non-nil tree to hold the new node; it panics with
// ErrNilTree when called on a nil *Tree.
func (t *Tree) Insert(key int) bool {
	if t == nil {
		panic(ErrNilTree)
	}
	if t.root == nil {
		t.root = &Node{key: key}
		t.size = 1
		T().Debugf("succtree: insert %d as root", key)
		return true
	}
	var y *Node // parent-to-be
	for x := t.root; x != nil; {
		y = x
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			T().Debugf("succtree: key %d already present", key)
			return false
		}
	}
	n := &Node{key: key, parent: y}
	if key < y.key {
		// n sits between y and y's former predecessor
		y.left = n
		if p := predecessor(n); p != nil {
			p.succ = n
		}
		n.succ = y
	} else {
		y.right = n
		n.succ = y.succ
		y.succ = n
	}
	t.size++
	T().Debugf("succtree: insert %d below %d", key, y.key)
	return true
}

// Delete removes key from the tree. If key is not present, Delete is a no-op
// and returns false.
func (t *Tree) Delete(key int) bool {
	z := t.Search(key)
	if z == nil {
		return false
	}
	pred := predecessor(z)
	y := z // the node to splice out
	if z.left != nil && z.right != nil {
		y = z.succ
		assertThat(y != nil && y.left == nil, "inner node without proper successor")
	}
	x := y.left
	if x == nil {
		x = y.right
	}
	t.replace(y, x)
	if y == z {
		if pred != nil {
			pred.succ = z.succ
		}
	} else {
		T().Debugf("succtree: delete %d, moving up %d", key, y.key)
		z.key = y.key
		z.succ = y.succ
	}
	y.left, y.right, y.parent, y.succ = nil, nil, nil, nil
	t.size--
	return true
}

// replace puts x in the place of y, as seen from y's parent.
func (t *Tree) replace(y, x *Node) {
	if x != nil {
		x.parent = y.parent
	}
	switch p := y.parent; {
	case p == nil:
		assertThat(t.root == y, "node without parent is not the root")
		t.root = x
	case p.left == y:
		p.left = x
	case p.right == y:
		p.right = x
	default:
		assertThat(false, "parent does not link to its child")
	}
}

// First returns the node holding the minimum key, or nil for an empty tree.
func (t *Tree) First() *Node {
	if t.IsEmpty() {
		return nil
	}
	return minimum(t.root)
}

// Last returns the node holding the maximum key, or nil for an empty tree.
func (t *Tree) Last() *Node {
	if t.IsEmpty() {
		return nil
	}
	return maximum(t.root)
}

// Min returns the minimum key. The second return value is false for an
// empty tree.
func (t *Tree) Min() (int, bool) {
	if n := t.First(); n != nil {
		return n.key, true
	}
	return 0, false
}

// Max returns the maximum key. The second return value is false for an
// empty tree.
func (t *Tree) Max() (int, bool) {
	if n := t.Last(); n != nil {
		return n.key, true
	}
	return 0, false
}

// Successor returns the smallest key greater than key. key need not be
// present in the tree.
func (t *Tree) Successor(key int) (int, bool) {
	var s *Node
	for x := t.rootOrNil(); x != nil; {
		if key == x.key {
			s = x.succ
			break
		}
		if key < x.key {
			s = x
			x = x.left
		} else {
			x = x.right
		}
	}
	if s == nil {
		return 0, false
	}
	return s.key, true
}

// Predecessor returns the greatest key less than key. key need not be
// present in the tree.
func (t *Tree) Predecessor(key int) (int, bool) {
	var p *Node
	for x := t.rootOrNil(); x != nil; {
		if key == x.key {
			p = predecessor(x)
			break
		}
		if key > x.key {
			p = x
			x = x.right
		} else {
			x = x.left
		}
	}
	if p == nil {
		return 0, false
	}
	return p.key, true
}

// Parent returns the key of the parent of the node holding key. The second
// return value is false if key is not present or is held by the root.
func (t *Tree) Parent(key int) (int, bool) {
	n := t.Search(key)
	if n == nil || n.parent == nil {
		return 0, false
	}
	return n.parent.key, true
}

// Height returns the number of levels of the tree, 0 for an empty tree.
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	h := 0
	level := []*Node{t.root}
	for len(level) > 0 {
		h++
		var next []*Node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return h
}

// String returns the keys of the tree in ascending order, e.g. "[3 6 7]".
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := t.First(); n != nil; n = n.succ {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n.key))
	}
	b.WriteByte(']')
	return b.String()
}

func (t *Tree) rootOrNil() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// --- Helpers ---------------------------------------------------------------

func minimum(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// predecessor is the maximum of n's left subtree, if present. Otherwise it is
// the closest ancestor which has n in its right subtree.
func predecessor(n *Node) *Node {
	if n.left != nil {
		return maximum(n.left)
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.right {
			return p
		}
	}
	return nil
}
