/*
Package sampler provides the source of nondeterministic choices for
generators of nested arrays.

Generators never call a random number generator directly. Every choice
(bounded integers, coin flips, picks from a list, "keep going?" decisions)
is drawn from a Sampler. This keeps generation referentially transparent:
replaying the same draw trace against the same configuration reproduces
the same result.

Three implementations are provided:

	Random    seeded pseudo-random draws (math/rand)
	Recorder  wraps another Sampler and records every draw into a Trace
	Replay    plays back a Trace; draws beyond its end return the simplest value

A zero draw always maps to the "simplest" outcome: the lower bound of an
integer range, false, the first choice, or "stop". Replaying an empty trace
therefore yields minimal structures, which makes traces shrink friendly.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sampler

import "errors"

// Sampler supplies primitive nondeterministic choices.
//
// Implementations need not be safe for concurrent use; concurrent generation
// calls must each own a Sampler.
type Sampler interface {
	// Int returns an integer in the closed interval [min, max].
	// If max <= min, min is returned without consuming a draw.
	Int(min, max int) int
	// Bool returns a fair coin flip.
	Bool() bool
	// Choice returns an index in [0, n). n must be positive.
	Choice(n int) int
	// More is the "keep going?" decision of loops and recursions.
	More() bool
	// Bits returns n (<= 64) random bits in the low bits of the result.
	Bits(n uint) uint64
}

// ErrNotFound is returned by Find if no candidate satisfied the predicate.
var ErrNotFound = errors.New("sampler: no example found")

// Find searches for a value satisfying pred, trying seeds start, start+1, …
// for at most tries attempts. It returns the value and the seed which
// produced it. Errors from build are returned immediately.
func Find[T any](start int64, tries int, build func(Sampler) (T, error), pred func(T) bool) (T, int64, error) {
	var zero T
	for i := 0; i < tries; i++ {
		seed := start + int64(i)
		v, err := build(NewRandom(seed))
		if err != nil {
			return zero, seed, err
		}
		if pred(v) {
			return v, seed, nil
		}
	}
	return zero, start, ErrNotFound
}

func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
