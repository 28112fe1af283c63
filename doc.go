/*
Package ragged generates random nested columnar arrays for property-based
testing.

Ragged Arrays

Nested columnar arrays store nested, variable-length data (lists of lists,
lists of records, unions of both) as a tree of flat buffers. The layout tree
is described by package content. Code consuming such arrays has to cope with
a large number of layouts: empty lists, lists of empty lists, zero-size
fixed lists, records without fields, unions whose variants are lists of
unions, and so on. Package ragged produces these layouts at random, so tests
do not depend on the imagination of whoever writes the fixtures.

Generation is bounded by a budget: the total number of leaf scalars in the
tree (its weight) never exceeds WithMaxWeight, and the number of wrapper
layers (its depth) never exceeds WithMaxDepth. At every level the generator
decides between a leaf and a wrapper, splits the remaining budget among the
children of a wrapper and synthesizes the wrapper's bookkeeping (offsets,
start/stop pairs, tags and index, field names) such that every tree is valid
by construction.

All nondeterminism is drawn from a sampler.Sampler. Replaying a recorded
draw trace reproduces the same tree:

	s := sampler.Record(sampler.NewRandom(42))
	c, err := ragged.Contents(s, ragged.WithMaxWeight(20))
	...
	again, _ := ragged.Contents(sampler.NewReplay(s.Trace()), ragged.WithMaxWeight(20))
	// content.Equal(c, again) holds

Arrays additionally serializes a tree into a (form, length, buffers)
projection, optionally with a random subset of buffers replaced by lazy
thunks (see package virtual).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package ragged

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ragged'
func tracer() tracing.Trace {
	return tracing.Select("ragged")
}
