/*
Package display renders successor trees for humans: as a coloured chain of
keys on a terminal, or as nested HTML lists.

Console output wraps the chain to the width of the terminal, if stdout is
interactive. Widths of keys and separators are measured in fixed-width
positions (‘en’s), following UAX#11, so separators outside of ASCII are
accounted for correctly.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'succtree'
func tracer() tracing.Trace {
	return tracing.Select("succtree")
}
