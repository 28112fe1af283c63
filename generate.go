package ragged

import (
	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
	"github.com/npillmayer/ragged/virtual"
)

// Contents generates a random content tree, bounded by the weight and depth
// given by the options.
func Contents(s sampler.Sampler, opts ...Option) (content.Content, error) {
	g, err := NewGenerator(s, opts...)
	if err != nil {
		return nil, err
	}
	return g.Tree(g.cfg.maxWeight, g.cfg.maxDepth, true)
}

// Arrays generates a random content tree and serializes it into a
// projection of form, length and buffers. Unless disabled by AllowVirtual,
// a random subset of the buffers is replaced by lazy buffers.
func Arrays(s sampler.Sampler, opts ...Option) (*virtual.Projection, error) {
	g, err := NewGenerator(s, opts...)
	if err != nil {
		return nil, err
	}
	c, err := g.Tree(g.cfg.maxWeight, g.cfg.maxDepth, true)
	if err != nil {
		return nil, err
	}
	if !g.cfg.allowVirtual {
		return virtual.ToBuffers(c)
	}
	return virtual.Virtualize(c, virtual.PickRandom(s))
}
