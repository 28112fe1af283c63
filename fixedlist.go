package ragged

import (
	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
)

// FixedListPolicy bounds the bookkeeping drawn for a fixed-size list.
type FixedListPolicy struct {
	MaxSize        int // largest sublist size
	MaxZerosLength int // largest length of a list of size 0
}

// WrapFixedList wraps child into a list of equally sized sublists.
//
// For a child of length L > 0 the size is one of the divisors of L not
// exceeding p.MaxSize. If there is no such divisor, or the child is empty
// and a size of 0 is drawn, the result is a list of empty sublists with a
// drawn length.
func WrapFixedList(s sampler.Sampler, child content.Content, p FixedListPolicy) (*content.FixedList, error) {
	L := child.Len()
	if L == 0 {
		if size := s.Int(0, p.MaxSize); size > 0 {
			return content.NewFixedList(child, size, -1)
		}
		return content.NewFixedList(child, 0, s.Int(0, p.MaxZerosLength))
	}
	divs := divisors(L, p.MaxSize)
	if len(divs) == 0 {
		tracer().Debugf("fixed list: no divisor of %d up to %d", L, p.MaxSize)
		return content.NewFixedList(child, 0, s.Int(0, p.MaxZerosLength))
	}
	return content.NewFixedList(child, divs[s.Choice(len(divs))], -1)
}

// divisors returns the divisors of n not exceeding limit, in ascending order.
func divisors(n, limit int) []int {
	var divs []int
	for d := 1; d <= min(n, limit); d++ {
		if n%d == 0 {
			divs = append(divs, d)
		}
	}
	return divs
}
