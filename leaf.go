package ragged

import (
	"fmt"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/dtype"
	"github.com/npillmayer/ragged/sampler"
)

// Generator builds random content trees from a sampler.
//
// A Generator is not safe for concurrent use, as its sampler is not.
type Generator struct {
	s   sampler.Sampler
	cfg *config
}

// NewGenerator creates a generator drawing from s. It returns
// ErrNoLeafKind if every leaf content type has been disabled; no draw is
// consumed in this case.
func NewGenerator(s sampler.Sampler, opts ...Option) (*Generator, error) {
	if s == nil {
		panic("ragged: NewGenerator(nil)")
	}
	cfg := newConfig(opts)
	if len(cfg.leafKinds()) == 0 {
		tracer().Errorf("generator: %s", ErrNoLeafKind)
		return nil, ErrNoLeafKind
	}
	return &Generator{s: s, cfg: cfg}, nil
}

// Leaf builds a leaf with a length in [min, max]. The leaf kind is picked
// uniformly among the allowed leaf kinds; empty leaves are candidates only
// for min == 0.
func (g *Generator) Leaf(min, max int) (content.Content, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("%w: leaf size range [%d,%d]", ErrInvalidOption, min, max)
	}
	c, _, err := g.leaf(min, max)
	return c, err
}

func (g *Generator) leaf(min, max int) (content.Content, int, error) {
	kinds := g.cfg.leafKinds()
	if len(kinds) == 0 {
		return nil, 0, ErrNoLeafKind
	}
	if min > 0 {
		kinds = without(kinds, content.KindEmpty)
		if len(kinds) == 0 {
			return nil, 0, ErrLeafTooSmall
		}
	}
	kind := kinds[g.s.Choice(len(kinds))]
	var c content.Content
	var err error
	switch kind {
	case content.KindNumeric:
		dt := g.cfg.dtypes(g.s)
		n := g.s.Int(min, max)
		c, err = content.NewNumeric(dt, dtype.Sample(g.s, dt, n, g.cfg.allowNaN))
	case content.KindEmpty:
		c = content.NewEmpty()
	case content.KindStrings:
		texts := make([]string, g.s.Int(min, max))
		for i := range texts {
			texts[i] = sampleText(g.s, g.cfg.maxStringLength)
		}
		c, err = content.NewStrings(texts)
	case content.KindByteStrings:
		elems := make([][]byte, g.s.Int(min, max))
		for i := range elems {
			elems[i] = sampleBytes(g.s, g.cfg.maxStringLength)
		}
		c = content.NewByteStrings(elems)
	default:
		panic(fmt.Sprintf("ragged: unexpected leaf kind %s", kind))
	}
	if err != nil {
		return nil, 0, err
	}
	tracer().Debugf("leaf %s of length %d", kind, c.Len())
	return c, c.Len(), nil
}

// alphabet mixes ASCII with multi-byte characters, to make consumers deal
// with byte lengths differing from character counts.
var alphabet = []rune("abcxyzABC019 _-.äöüßéñ€→ƒ中文字😀🎉")

func sampleText(s sampler.Sampler, maxLen int) string {
	runes := make([]rune, s.Int(0, maxLen))
	for i := range runes {
		runes[i] = alphabet[s.Choice(len(alphabet))]
	}
	return string(runes)
}

func sampleBytes(s sampler.Sampler, maxLen int) []byte {
	b := make([]byte, s.Int(0, maxLen))
	for i := range b {
		b[i] = byte(s.Bits(8))
	}
	return b
}

func without(kinds []content.Kind, k content.Kind) []content.Kind {
	r := make([]content.Kind, 0, len(kinds))
	for _, kk := range kinds {
		if kk != k {
			r = append(r, kk)
		}
	}
	return r
}
