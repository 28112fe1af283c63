package content

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/ragged/dtype"
)

// --- Numeric ---------------------------------------------------------------

// Numeric is a leaf holding scalar values of a primitive type, stored as a
// little-endian byte buffer.
type Numeric struct {
	dtype dtype.DType
	data  []byte
}

// NewNumeric creates a numeric leaf from a raw buffer. The buffer is copied.
func NewNumeric(dt dtype.DType, data []byte) (*Numeric, error) {
	if !dt.IsValid() {
		return nil, fmt.Errorf("%w: numeric leaf with invalid dtype", ErrInvalidLayout)
	}
	if len(data)%dt.ItemSize() != 0 {
		return nil, fmt.Errorf("%w: buffer of %d bytes is not a multiple of %s item size",
			ErrInvalidLayout, len(data), dt)
	}
	return &Numeric{dtype: dt, data: append([]byte{}, data...)}, nil
}

// Kind is part of interface Content.
func (n *Numeric) Kind() Kind { return KindNumeric }

// Len is part of interface Content.
func (n *Numeric) Len() int {
	return len(n.data) / n.dtype.ItemSize()
}

func (n *Numeric) isContent() {}

// DType returns the primitive type of the elements.
func (n *Numeric) DType() dtype.DType {
	return n.dtype
}

// Data returns a copy of the raw buffer.
func (n *Numeric) Data() []byte {
	return append([]byte{}, n.data...)
}

// Format renders element i for display.
func (n *Numeric) Format(i int) string {
	return dtype.FormatValue(n.dtype, n.data, i)
}

// --- Empty -----------------------------------------------------------------

// Empty is a leaf of length 0 without a type.
type Empty struct{}

var theEmpty = &Empty{}

// NewEmpty returns an empty leaf.
func NewEmpty() *Empty {
	return theEmpty
}

// Kind is part of interface Content.
func (e *Empty) Kind() Kind { return KindEmpty }

// Len is part of interface Content. It is always 0.
func (e *Empty) Len() int { return 0 }

func (e *Empty) isContent() {}

// --- Strings and byte strings ----------------------------------------------

// segments is an offset-segmented byte buffer; element i spans
// data[offsets[i]:offsets[i+1]].
type segments struct {
	offsets []int64
	data    []byte
}

func newSegments(elems [][]byte) segments {
	seg := segments{offsets: make([]int64, len(elems)+1)}
	for i, e := range elems {
		seg.data = append(seg.data, e...)
		seg.offsets[i+1] = seg.offsets[i] + int64(len(e))
	}
	if seg.data == nil {
		seg.data = []byte{}
	}
	return seg
}

func segmentsFromBuffers(offsets []int64, data []byte) (segments, error) {
	if len(offsets) == 0 || offsets[0] != 0 {
		return segments{}, fmt.Errorf("%w: segment offsets must start at 0", ErrInvalidLayout)
	}
	if err := checkMonotone(offsets); err != nil {
		return segments{}, err
	}
	if offsets[len(offsets)-1] != int64(len(data)) {
		return segments{}, fmt.Errorf("%w: segment offsets end at %d, data has %d bytes",
			ErrInvalidLayout, offsets[len(offsets)-1], len(data))
	}
	return segments{
		offsets: append([]int64{}, offsets...),
		data:    append([]byte{}, data...),
	}, nil
}

func (seg segments) len() int {
	return len(seg.offsets) - 1
}

func (seg segments) at(i int) []byte {
	assert(i >= 0 && i < seg.len(), "segment index out of bounds")
	return seg.data[seg.offsets[i]:seg.offsets[i+1]]
}

// Strings is a leaf of UTF-8 texts.
type Strings struct {
	seg segments
}

// NewStrings creates a string leaf from texts.
func NewStrings(texts []string) (*Strings, error) {
	elems := make([][]byte, len(texts))
	for i, s := range texts {
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: string element %d is not valid UTF-8", ErrInvalidLayout, i)
		}
		elems[i] = []byte(s)
	}
	return &Strings{seg: newSegments(elems)}, nil
}

// NewStringsFromBuffers creates a string leaf from an offset and a data buffer.
func NewStringsFromBuffers(offsets []int64, data []byte) (*Strings, error) {
	seg, err := segmentsFromBuffers(offsets, data)
	if err != nil {
		return nil, err
	}
	for i := 0; i < seg.len(); i++ {
		if !utf8.Valid(seg.at(i)) {
			return nil, fmt.Errorf("%w: string element %d is not valid UTF-8", ErrInvalidLayout, i)
		}
	}
	return &Strings{seg: seg}, nil
}

// Kind is part of interface Content.
func (s *Strings) Kind() Kind { return KindStrings }

// Len is part of interface Content.
func (s *Strings) Len() int { return s.seg.len() }

func (s *Strings) isContent() {}

// At returns element i.
func (s *Strings) At(i int) string {
	return string(s.seg.at(i))
}

// Offsets returns a copy of the offset buffer.
func (s *Strings) Offsets() []int64 {
	return append([]int64{}, s.seg.offsets...)
}

// Data returns a copy of the concatenated UTF-8 bytes.
func (s *Strings) Data() []byte {
	return append([]byte{}, s.seg.data...)
}

// ByteStrings is a leaf of byte sequences.
type ByteStrings struct {
	seg segments
}

// NewByteStrings creates a byte-string leaf. Elements are copied.
func NewByteStrings(elems [][]byte) *ByteStrings {
	return &ByteStrings{seg: newSegments(elems)}
}

// NewByteStringsFromBuffers creates a byte-string leaf from an offset and a
// data buffer.
func NewByteStringsFromBuffers(offsets []int64, data []byte) (*ByteStrings, error) {
	seg, err := segmentsFromBuffers(offsets, data)
	if err != nil {
		return nil, err
	}
	return &ByteStrings{seg: seg}, nil
}

// Kind is part of interface Content.
func (b *ByteStrings) Kind() Kind { return KindByteStrings }

// Len is part of interface Content.
func (b *ByteStrings) Len() int { return b.seg.len() }

func (b *ByteStrings) isContent() {}

// At returns a copy of element i.
func (b *ByteStrings) At(i int) []byte {
	return append([]byte{}, b.seg.at(i)...)
}

// Offsets returns a copy of the offset buffer.
func (b *ByteStrings) Offsets() []int64 {
	return append([]int64{}, b.seg.offsets...)
}

// Data returns a copy of the concatenated bytes.
func (b *ByteStrings) Data() []byte {
	return append([]byte{}, b.seg.data...)
}
