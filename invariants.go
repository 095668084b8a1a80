package succtree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - keys are strictly increasing in symmetric order (BST ordering),
//   - every child links back to its parent, and the root has no parent,
//   - the successor chain starts at the minimum, visits every node exactly once
//     in ascending order and ends at the maximum,
//   - the node count matches Len.
//
// Errors returned by Check wrap ErrInvariantViolation.
// Time: O(n); Space: O(n)
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %d has parent %d", ErrInvariantViolation, t.root.key, t.root.parent.key)
	}
	nodes, err := t.checkStructure()
	if err != nil {
		return err
	}
	if len(nodes) != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes != %d)", ErrInvariantViolation, len(nodes), t.size)
	}
	return checkChain(nodes)
}

// checkStructure walks the child links in symmetric order and returns the
// nodes visited.
func (t *Tree) checkStructure() ([]*Node, error) {
	nodes := make([]*Node, 0, t.size)
	var stack []*Node
	n := t.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			if n.left != nil && n.left.parent != n {
				return nil, fmt.Errorf("%w: left child of %d does not link back", ErrInvariantViolation, n.key)
			}
			if n.right != nil && n.right.parent != n {
				return nil, fmt.Errorf("%w: right child of %d does not link back", ErrInvariantViolation, n.key)
			}
			stack = append(stack, n)
		}
		n, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if l := len(nodes); l > 0 && nodes[l-1].key >= n.key {
			return nil, fmt.Errorf("%w: keys out of order (%d before %d)", ErrInvariantViolation,
				nodes[l-1].key, n.key)
		}
		nodes = append(nodes, n)
		n = n.right
	}
	return nodes, nil
}

func checkChain(nodes []*Node) error {
	for i, n := range nodes {
		var want *Node
		if i+1 < len(nodes) {
			want = nodes[i+1]
		}
		if n.succ == want {
			continue
		}
		if want == nil {
			return fmt.Errorf("%w: maximum %d has successor %d", ErrInvariantViolation, n.key, n.succ.key)
		}
		if n.succ == nil {
			return fmt.Errorf("%w: chain ends at %d, expected successor %d", ErrInvariantViolation,
				n.key, want.key)
		}
		return fmt.Errorf("%w: successor of %d is %d, expected %d", ErrInvariantViolation,
			n.key, n.succ.key, want.key)
	}
	return nil
}
