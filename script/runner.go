package script

import (
	"context"
	"fmt"
	"slices"

	"github.com/guiguan/caster"
	"github.com/npillmayer/succtree"
)

// Event reports a single applied operation. Result tells whether an insert or
// delete changed the tree, or whether a search found its key. Expect events
// carry the chain of the tree instead of a key.
type Event struct {
	Step   int // 1-based index of the step
	Op     Op
	Key    int
	Result bool
	Chain  []int
}

func (e Event) String() string {
	if e.Op == OpExpect {
		return fmt.Sprintf("#%d %s %v: %v", e.Step, e.Op, e.Chain, e.Result)
	}
	return fmt.Sprintf("#%d %s %d: %v", e.Step, e.Op, e.Key, e.Result)
}

// Runner applies scripts to a tree, publishing an Event for every operation.
type Runner struct {
	tree *succtree.Tree
	cast *caster.Caster // broadcaster for applied operations
}

// NewRunner creates a runner operating on tree. If tree is nil, the runner
// starts with an empty tree.
func NewRunner(tree *succtree.Tree) *Runner {
	if tree == nil {
		tree = succtree.New()
	}
	return &Runner{
		tree: tree,
		cast: caster.New(context.Background()),
	}
}

// Tree returns the tree the runner operates on.
func (r *Runner) Tree() *succtree.Tree {
	return r.tree
}

// Subscribe returns a channel receiving an Event for every operation applied
// from now on. The channel is closed when ctx is done or the runner is closed.
// Subscribers must keep receiving, as publishing blocks on a full channel.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return r.cast.Sub(ctx, capacity)
}

// Close stops publishing events and closes all subscriber channels.
func (r *Runner) Close() {
	r.cast.Close()
}

// Run applies all steps of s, in order. It stops at the first step which
// fails, i.e. an expectation not met or a tree found to be corrupt.
func (r *Runner) Run(s *Script) error {
	tracer().Infof("running script %q", s.Name)
	for i, step := range s.Steps {
		if err := r.Apply(i+1, step); err != nil {
			tracer().Errorf("script %q: %v", s.Name, err)
			return fmt.Errorf("script %q: %w", s.Name, err)
		}
	}
	return nil
}

// Apply applies a single step, numbered n for events and error messages.
func (r *Runner) Apply(n int, step Step) error {
	switch step.Op {
	case OpInsert, OpDelete, OpSearch:
		for _, k := range step.Keys {
			r.publish(Event{Step: n, Op: step.Op, Key: k, Result: r.applyKey(step.Op, k)})
		}
		if step.Op == OpSearch {
			return nil
		}
		if err := r.tree.Check(); err != nil {
			return fmt.Errorf("step %d (%s): %w", n, step.Op, err)
		}
	case OpExpect:
		chain := r.tree.Chain()
		ok := slices.Equal(chain, step.Keys)
		r.publish(Event{Step: n, Op: OpExpect, Result: ok, Chain: chain})
		if !ok {
			return fmt.Errorf("step %d: %w: chain is %v, expected %v", n, ErrExpectationFailed,
				chain, step.Keys)
		}
	default:
		return fmt.Errorf("step %d: %w: %s", n, ErrMalformedStep, step.Op)
	}
	return nil
}

func (r *Runner) applyKey(op Op, k int) bool {
	switch op {
	case OpInsert:
		return r.tree.Insert(k)
	case OpDelete:
		return r.tree.Delete(k)
	}
	return r.tree.Contains(k)
}

func (r *Runner) publish(e Event) {
	tracer().Debugf("%v", e)
	r.cast.Pub(e)
}
