/*
Package content implements the layout tree of nested columnar arrays.

A Content is one node of the tree. Leaves carry data, wrappers carry one or
more child contents plus structural bookkeeping:

	Leaves      Numeric, Empty, Strings, ByteStrings
	Wrappers    FixedList, OffsetList, StartStopList, Record, Union

Contents are immutable once constructed. Constructors validate the
node-local invariants and return an error wrapping ErrInvalidLayout if
these are violated; Check validates a complete tree. Accessors returning
slices return copies.

Two measures are defined on every tree: the weight is the number of leaf
scalars reachable from a node (each element of a string leaf counts once),
the depth is the number of wrapper layers from the node to its deepest leaf.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package content

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged'
func tracer() tracing.Trace {
	return tracing.Select("ragged")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
