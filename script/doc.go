/*
Package script replays sequences of tree operations, read from YAML files.

A script is a list of steps, each naming exactly one operation and a list
of keys:

	name: textbook
	steps:
	  - insert: [15, 6, 18, 3, 7, 17, 20]
	  - delete: [15]
	  - search: [7, 99]
	  - expect: [3, 6, 7, 17, 18, 20]

Insert, delete and search are applied key by key. An expect step compares the
successor chain of the tree to the keys given. After every mutating step the
runner validates the tree's invariants.

Every applied operation is published as an Event to all subscribers of the
runner, so clients may trace or visualize a replay while it happens.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package script

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'succtree'
func tracer() tracing.Trace {
	return tracing.Select("succtree")
}

var (
	// ErrMalformedStep signals a script step which does not name exactly one
	// known operation.
	ErrMalformedStep = errors.New("script: malformed step")
	// ErrMalformedKeys signals a key file containing something other than
	// integer keys.
	ErrMalformedKeys = errors.New("script: malformed key list")
	// ErrExpectationFailed signals that the successor chain differs from the
	// one expected by a script.
	ErrExpectationFailed = errors.New("script: expectation failed")
)
