package ragged

import (
	"fmt"

	"github.com/npillmayer/ragged/content"
)

// Tree builds a random content tree of at most the given weight and depth.
// If allowUnion is false, the root of the tree will not be a union.
//
// At every level, Tree either terminates in a leaf or picks one of the
// allowed wrapper kinds. Single-child wrappers pass the complete weight
// budget on to their child. Records and unions split the budget among
// their children.
func (g *Generator) Tree(weight, depth int, allowUnion bool) (content.Content, error) {
	c, _, err := g.tree(weight, depth, allowUnion)
	return c, err
}

func (g *Generator) tree(weight, depth int, allowUnion bool) (content.Content, int, error) {
	if depth <= 0 || weight <= 0 || !g.s.More() {
		return g.leaf(0, max(weight, 0))
	}
	kinds := g.cfg.wrapperKinds()
	if !allowUnion {
		kinds = without(kinds, content.KindUnion)
	}
	if len(kinds) == 0 {
		return g.leaf(0, weight)
	}
	kind := kinds[g.s.Choice(len(kinds))]
	tracer().Debugf("tree: %s at depth %d with budget %d", kind, depth, weight)
	switch kind {
	case content.KindFixedList, content.KindOffsetList, content.KindStartStopList:
		child, w, err := g.tree(weight, depth-1, true)
		if err != nil {
			return nil, 0, err
		}
		c, err := g.wrapSingle(kind, child)
		if err != nil {
			return nil, 0, err
		}
		return c, w, nil
	case content.KindRecord:
		children, w, err := Allocate(g.s, Allocation{
			Budget:   weight,
			MinDraws: 1,
			MaxDraws: g.cfg.maxFields,
		}, g.subtree(depth-1, true))
		if err != nil {
			return nil, 0, err
		}
		r, err := WrapRecord(g.s, children, RecordPolicy{
			AllowTuple: g.cfg.allowTuple,
			MaxLength:  g.cfg.recordMaxLength,
		})
		if err != nil {
			return nil, 0, err
		}
		return r, w, nil
	case content.KindUnion:
		children, w, err := Allocate(g.s, Allocation{
			Budget:   weight,
			MinDraws: 2,
			MaxDraws: g.cfg.maxVariants,
		}, g.subtree(depth-1, false))
		if err != nil {
			return nil, 0, err
		}
		u, err := WrapUnion(g.s, children)
		if err != nil {
			return nil, 0, err
		}
		return u, w, nil
	default:
		panic(fmt.Sprintf("ragged: unexpected wrapper kind %s", kind))
	}
}

func (g *Generator) wrapSingle(kind content.Kind, child content.Content) (c content.Content, err error) {
	switch kind {
	case content.KindFixedList:
		c, err = WrapFixedList(g.s, child, FixedListPolicy{
			MaxSize:        g.cfg.maxFixedSize,
			MaxZerosLength: g.cfg.maxFixedSize,
		})
	case content.KindOffsetList:
		c, err = WrapOffsetList(g.s, child, ListPolicy{MaxListLength: g.cfg.maxListLength})
	case content.KindStartStopList:
		c, err = WrapStartStopList(g.s, child, ListPolicy{
			MaxListLength: g.cfg.maxListLength,
			Scattered:     g.cfg.scattered,
		})
	default:
		panic(fmt.Sprintf("ragged: %s is not a single-child wrapper", kind))
	}
	return c, err
}

// subtree is the draw function for the children of records and unions.
func (g *Generator) subtree(depth int, allowUnion bool) Draw[content.Content] {
	return func(_, max int) (content.Content, int, error) {
		return g.tree(max, depth, allowUnion)
	}
}
