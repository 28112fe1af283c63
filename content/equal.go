package content

import (
	"bytes"
	"fmt"
	"slices"
)

// Equal reports whether two trees are structurally equal, including their
// leaf data.
func Equal(a, b Content) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}
	switch x := a.(type) {
	case *Numeric:
		y := b.(*Numeric)
		return x.dtype == y.dtype && bytes.Equal(x.data, y.data)
	case *Empty:
		return true
	case *Strings:
		return x.seg.equal(b.(*Strings).seg)
	case *ByteStrings:
		return x.seg.equal(b.(*ByteStrings).seg)
	case *FixedList:
		y := b.(*FixedList)
		return x.size == y.size && Equal(x.child, y.child)
	case *OffsetList:
		y := b.(*OffsetList)
		return slices.Equal(x.offsets, y.offsets) && Equal(x.child, y.child)
	case *StartStopList:
		y := b.(*StartStopList)
		return slices.Equal(x.starts, y.starts) && slices.Equal(x.stops, y.stops) &&
			Equal(x.child, y.child)
	case *Record:
		y := b.(*Record)
		if x.IsTuple() != y.IsTuple() || !slices.Equal(x.fields, y.fields) {
			return false
		}
		return slices.EqualFunc(x.contents, y.contents, Equal)
	case *Union:
		y := b.(*Union)
		return slices.Equal(x.tags, y.tags) && slices.Equal(x.index, y.index) &&
			slices.EqualFunc(x.contents, y.contents, Equal)
	default:
		panic(fmt.Sprintf("content: unexpected content type %T", a))
	}
}

func (seg segments) equal(other segments) bool {
	return slices.Equal(seg.offsets, other.offsets) && bytes.Equal(seg.data, other.data)
}
