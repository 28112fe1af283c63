package content

import (
	"iter"

	"github.com/npillmayer/ragged/dtype"
)

// Weight returns the number of leaf scalars reachable from c. Every element of
// a string or byte-string leaf counts as one scalar.
func Weight(c Content) int {
	if c.Kind().IsLeaf() {
		return c.Len()
	}
	w := 0
	for _, child := range Children(c) {
		w += Weight(child)
	}
	return w
}

// Depth returns the number of wrapper layers from c to its deepest leaf.
// Leaves have depth 0, a record or union without contents has depth 1.
func Depth(c Content) int {
	if c.Kind().IsLeaf() {
		return 0
	}
	d := 0
	for _, child := range Children(c) {
		d = max(d, Depth(child))
	}
	return d + 1
}

// Walk iterates over all nodes of the tree rooted at c in pre-order.
func Walk(c Content) iter.Seq[Content] {
	return func(yield func(Content) bool) {
		walk(c, yield)
	}
}

func walk(c Content, yield func(Content) bool) bool {
	if !yield(c) {
		return false
	}
	for _, child := range Children(c) {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// Leaves iterates over the leaves of the tree rooted at c, left to right.
func Leaves(c Content) iter.Seq[Content] {
	return func(yield func(Content) bool) {
		for n := range Walk(c) {
			if n.Kind().IsLeaf() && !yield(n) {
				return
			}
		}
	}
}

// Count returns the number of nodes of kind k in the tree rooted at c.
func Count(c Content, k Kind) int {
	cnt := 0
	for n := range Walk(c) {
		if n.Kind() == k {
			cnt++
		}
	}
	return cnt
}

// AnyNaN reports whether any floating point or complex leaf of the tree holds
// a NaN value.
func AnyNaN(c Content) bool {
	for n := range Leaves(c) {
		if num, ok := n.(*Numeric); ok && dtype.HasNaN(num.dtype, num.data) {
			return true
		}
	}
	return false
}

// AnyNaT reports whether any datetime or timedelta leaf of the tree holds
// a not-a-time value.
func AnyNaT(c Content) bool {
	for n := range Leaves(c) {
		if num, ok := n.(*Numeric); ok && dtype.HasNaT(num.dtype, num.data) {
			return true
		}
	}
	return false
}
