/*
Package virtual serializes content trees into a projection of form, length
and buffers, and back.

The form describes the structure of a tree without its data, the buffers
hold the data of every node under a key derived from the node's form key:

	node3-data      raw values of a numeric leaf
	node1-offsets   offsets of a list (int64, little endian)
	node2-starts    starts of a start/stop list
	node2-stops     stops of a start/stop list
	node0-tags      tags of a union (int8)
	node0-index     index of a union (int64, little endian)

String and byte-string leaves are serialized as a list of characters
(bytes), occupying two nodes.

Buffers may be lazy: instead of holding data, they hold a function
producing it on first access. Virtualize replaces a selection of buffers of
a projection by lazy ones, exercising consumers which have to deal with
lazily loaded columns. Clients may watch a projection to be notified
whenever a lazy buffer materializes.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package virtual

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged'
func tracer() tracing.Trace {
	return tracing.Select("ragged")
}

var (
	// ErrMalformedProjection signals a projection which does not describe a
	// valid content tree.
	ErrMalformedProjection = errors.New("virtual: malformed projection")
	// ErrUnknownBuffer signals a reference to a buffer key not present in a
	// projection.
	ErrUnknownBuffer = errors.New("virtual: unknown buffer")
)
