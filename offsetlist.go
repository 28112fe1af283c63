package ragged

import (
	"slices"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
)

// ListPolicy bounds the bookkeeping drawn for variable-length lists.
type ListPolicy struct {
	MaxListLength int  // largest number of sublists
	Scattered     bool // start/stop lists only: draw ranges independently
}

// WrapOffsetList wraps child into a list of variable-length sublists which
// cover the child contiguously.
func WrapOffsetList(s sampler.Sampler, child content.Content, p ListPolicy) (*content.OffsetList, error) {
	return content.NewOffsetList(child, splitOffsets(s, child.Len(), p.MaxListLength))
}

// WrapStartStopList wraps child into a list of sublists given by start and
// stop positions. By default the ranges partition the child like the ones of
// an offset list. With p.Scattered every range is drawn independently, so
// ranges may overlap, leave gaps or appear out of order.
func WrapStartStopList(s sampler.Sampler, child content.Content, p ListPolicy) (*content.StartStopList, error) {
	L := child.Len()
	if p.Scattered {
		n := s.Int(0, p.MaxListLength)
		starts, stops := make([]int64, n), make([]int64, n)
		for i := range n {
			start := s.Int(0, L)
			starts[i], stops[i] = int64(start), int64(s.Int(start, L))
		}
		return content.NewStartStopList(child, starts, stops)
	}
	offsets := splitOffsets(s, L, p.MaxListLength)
	return content.NewStartStopList(child, offsets[:len(offsets)-1], offsets[1:])
}

// splitOffsets draws a list length n and returns n+1 offsets. For n > 0 and a
// non-empty child the offsets run from 0 to childLen.
func splitOffsets(s sampler.Sampler, childLen, maxListLength int) []int64 {
	n := s.Int(0, maxListLength)
	offsets := make([]int64, n+1)
	if n == 0 || childLen == 0 {
		return offsets
	}
	for i := 1; i < n; i++ {
		offsets[i] = int64(s.Int(0, childLen))
	}
	slices.Sort(offsets[1:n])
	offsets[n] = int64(childLen)
	return offsets
}
