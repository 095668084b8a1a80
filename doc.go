/*
Package succtree implements an unbalanced binary search tree over unique
integer keys, where every node carries a direct link to its in-order
successor.

# Successor Chains

Besides the usual child links, each node of a tree points to the node holding
the next-larger key. Starting at the minimum and following these links yields
all keys in ascending order, without a stack and without parent walks:

	tree := succtree.New()
	for _, k := range []int{15, 6, 18, 3, 7, 17, 20} {
		tree.Insert(k)
	}
	for k := range tree.Keys() {
		fmt.Println(k) // 3, 6, 7, 15, 17, 18, 20
	}

Insert and Delete repair the chain with a constant number of pointer updates
on top of the O(h) descent, h being the current height of the tree. Deleting
a node with two children finds the node to splice out in O(1), as it is the
successor of the node to delete.

The tree is not balanced. Inserting keys in sorted order degenerates it into
a list, with h = n.

Duplicate keys are rejected: inserting a key which is already present leaves
the tree unchanged and reports false.

# Concurrency

A Tree is not safe for concurrent use. Every mutation updates several node
links, and a reader observing a half-done update may see a broken chain.
Clients sharing a tree between goroutines should use Locked, which guards a
tree with a single read/write mutex.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package succtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the succtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvariantViolation is flagged whenever the structure of a tree has been
// found to be corrupt, either by Check or by an internal consistency test.
const ErrInvariantViolation = TreeError("tree invariant violated")

// ErrNilTree is raised by Insert called on a nil *Tree.
const ErrNilTree = TreeError("insert into nil tree")

func assertThat(condition bool, msg string) {
	if !condition {
		T().Errorf("succtree: %s", msg)
		panic(ErrInvariantViolation.Error() + ": " + msg)
	}
}
