package ragged

import (
	"fmt"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
)

// WrapUnion combines children into a tagged union. Every element of every
// child is referenced exactly once; the order of elements is a random
// permutation. Children must not be unions themselves.
func WrapUnion(s sampler.Sampler, children []content.Content) (*content.Union, error) {
	if len(children) > content.MaxVariants {
		return nil, fmt.Errorf("%w: %d union variants", content.ErrInvalidLayout, len(children))
	}
	for i, c := range children {
		if c.Kind() == content.KindUnion {
			return nil, fmt.Errorf("%w: union variant %d is a union", content.ErrInvalidLayout, i)
		}
	}
	var tags []int8
	var index []int64
	for v, c := range children {
		for i := range c.Len() {
			tags = append(tags, int8(v))
			index = append(index, int64(i))
		}
	}
	// Fisher-Yates
	for i := len(tags) - 1; i > 0; i-- {
		j := s.Int(0, i)
		tags[i], tags[j] = tags[j], tags[i]
		index[i], index[j] = index[j], index[i]
	}
	return content.NewUnion(tags, index, children)
}
