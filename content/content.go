package content

import "fmt"

// Kind identifies the variant of a Content.
type Kind uint8

// Content variants.
const (
	KindNumeric Kind = iota
	KindEmpty
	KindStrings
	KindByteStrings
	KindFixedList
	KindOffsetList
	KindStartStopList
	KindRecord
	KindUnion
)

var kindNames = [...]string{
	"Numeric", "Empty", "Strings", "ByteStrings",
	"FixedList", "OffsetList", "StartStopList", "Record", "Union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<unknown kind>"
}

// IsLeaf reports whether contents of kind k carry no child content.
func (k Kind) IsLeaf() bool {
	return k <= KindByteStrings
}

// Kinds returns all content kinds.
func Kinds() []Kind {
	return []Kind{
		KindNumeric, KindEmpty, KindStrings, KindByteStrings,
		KindFixedList, KindOffsetList, KindStartStopList, KindRecord, KindUnion,
	}
}

// Content is a node of a layout tree. The set of implementations is closed;
// it consists of the types of this package.
type Content interface {
	// Kind returns the variant of this content.
	Kind() Kind
	// Len returns the number of top-level elements.
	Len() int
	isContent()
}

// Children returns the direct child contents of c (nil for leaves).
func Children(c Content) []Content {
	switch n := c.(type) {
	case *Numeric, *Empty, *Strings, *ByteStrings:
		return nil
	case *FixedList:
		return []Content{n.child}
	case *OffsetList:
		return []Content{n.child}
	case *StartStopList:
		return []Content{n.child}
	case *Record:
		return n.Contents()
	case *Union:
		return n.Contents()
	default:
		panic(fmt.Sprintf("content: unexpected content type %T", c))
	}
}
