package content

import (
	"fmt"
	"slices"
)

// MaxVariants is the maximum number of contents of a union, limited by the
// 8-bit tags.
const MaxVariants = 127

// Union is a tagged union of contents. Element i of the union is element
// index[i] of contents[tags[i]].
//
// Every element of every content is referenced exactly once, and no direct
// content of a union is a union itself.
type Union struct {
	tags     []int8
	index    []int64
	contents []Content
}

// NewUnion creates a union. tags and index are copied.
func NewUnion(tags []int8, index []int64, contents []Content) (*Union, error) {
	if len(contents) > MaxVariants {
		return nil, fmt.Errorf("%w: union of %d contents exceeds %d", ErrInvalidLayout, len(contents), MaxVariants)
	}
	if len(tags) != len(index) {
		return nil, fmt.Errorf("%w: %d tags but %d index entries", ErrInvalidLayout, len(tags), len(index))
	}
	total := 0
	seen := make([][]bool, len(contents))
	for v, c := range contents {
		if c == nil {
			return nil, fmt.Errorf("%w: union content %d is nil", ErrInvalidLayout, v)
		}
		if c.Kind() == KindUnion {
			return nil, fmt.Errorf("%w: union content %d is a union", ErrInvalidLayout, v)
		}
		total += c.Len()
		seen[v] = make([]bool, c.Len())
	}
	if len(tags) != total {
		return nil, fmt.Errorf("%w: union has %d tags, contents have %d elements", ErrInvalidLayout, len(tags), total)
	}
	for i, t := range tags {
		if t < 0 || int(t) >= len(contents) {
			return nil, fmt.Errorf("%w: tag %d at position %d out of range", ErrInvalidLayout, t, i)
		}
		j := index[i]
		if j < 0 || j >= int64(len(seen[t])) {
			return nil, fmt.Errorf("%w: index %d at position %d out of range for content %d",
				ErrInvalidLayout, j, i, t)
		}
		if seen[t][j] {
			return nil, fmt.Errorf("%w: element %d of content %d referenced twice", ErrInvalidLayout, j, t)
		}
		seen[t][j] = true
	}
	// every element referenced at most once and counts match, so all are referenced
	return &Union{
		tags:     slices.Clone(tags),
		index:    slices.Clone(index),
		contents: slices.Clone(contents),
	}, nil
}

// Kind is part of interface Content.
func (u *Union) Kind() Kind { return KindUnion }

// Len is part of interface Content.
func (u *Union) Len() int { return len(u.tags) }

func (u *Union) isContent() {}

// Tags returns a copy of the tags.
func (u *Union) Tags() []int8 {
	return slices.Clone(u.tags)
}

// Index returns a copy of the index.
func (u *Union) Index() []int64 {
	return slices.Clone(u.index)
}

// Contents returns a copy of the list of variant contents.
func (u *Union) Contents() []Content {
	return slices.Clone(u.contents)
}

// Element returns the variant and position within that variant of element i.
func (u *Union) Element(i int) (variant int, pos int, err error) {
	if i < 0 || i >= len(u.tags) {
		return 0, 0, fmt.Errorf("%w: element %d of union of length %d", ErrIndexOutOfBounds, i, len(u.tags))
	}
	return int(u.tags[i]), int(u.index[i]), nil
}
