package virtual

import (
	"encoding/binary"
	"fmt"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/dtype"
)

// Buffer roles.
const (
	RoleData    = "data"
	RoleOffsets = "offsets"
	RoleStarts  = "starts"
	RoleStops   = "stops"
	RoleTags    = "tags"
	RoleIndex   = "index"
)

// ToBuffers serializes c into a projection with materialized buffers.
func ToBuffers(c content.Content) (*Projection, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil content", ErrMalformedProjection)
	}
	enc := &encoder{buffers: make(map[string]*Buffer)}
	form := enc.encode(c)
	return &Projection{
		Form:    form,
		Length:  c.Len(),
		Buffers: enc.buffers,
	}, nil
}

type encoder struct {
	next    int
	buffers map[string]*Buffer
}

func (enc *encoder) node(class string, length int) *Form {
	f := &Form{Class: class, Length: length, FormKey: fmt.Sprintf("node%d", enc.next)}
	enc.next++
	return f
}

func (enc *encoder) put(f *Form, role string, data []byte) {
	enc.buffers[f.Key(role)] = Materialized(data)
}

func (enc *encoder) encode(c content.Content) *Form {
	switch n := c.(type) {
	case *content.Numeric:
		f := enc.node(ClassNumpy, n.Len())
		f.Primitive = n.DType().Name()
		enc.put(f, RoleData, n.Data())
		return f
	case *content.Empty:
		return enc.node(ClassEmpty, 0)
	case *content.Strings:
		return enc.encodeSegments(n.Len(), "string", "char", n.Offsets(), n.Data())
	case *content.ByteStrings:
		return enc.encodeSegments(n.Len(), "bytestring", "byte", n.Offsets(), n.Data())
	case *content.FixedList:
		f := enc.node(ClassRegular, n.Len())
		f.Size = n.Size()
		f.Content = enc.encode(n.Child())
		return f
	case *content.OffsetList:
		f := enc.node(ClassListOffset, n.Len())
		enc.put(f, RoleOffsets, int64sToBytes(n.Offsets()))
		f.Content = enc.encode(n.Child())
		return f
	case *content.StartStopList:
		f := enc.node(ClassList, n.Len())
		enc.put(f, RoleStarts, int64sToBytes(n.Starts()))
		enc.put(f, RoleStops, int64sToBytes(n.Stops()))
		f.Content = enc.encode(n.Child())
		return f
	case *content.Record:
		f := enc.node(ClassRecord, n.Len())
		f.Fields = n.Fields()
		f.Tuple = n.IsTuple()
		for _, child := range n.Contents() {
			f.Contents = append(f.Contents, enc.encode(child))
		}
		return f
	case *content.Union:
		f := enc.node(ClassUnion, n.Len())
		tags := n.Tags()
		tb := make([]byte, len(tags))
		for i, t := range tags {
			tb[i] = byte(t)
		}
		enc.put(f, RoleTags, tb)
		enc.put(f, RoleIndex, int64sToBytes(n.Index()))
		for _, child := range n.Contents() {
			f.Contents = append(f.Contents, enc.encode(child))
		}
		return f
	default:
		panic(fmt.Sprintf("virtual: unexpected content type %T", c))
	}
}

func (enc *encoder) encodeSegments(length int, array, item string, offsets []int64, data []byte) *Form {
	f := enc.node(ClassListOffset, length)
	f.Parameters = map[string]string{ParamArray: array}
	enc.put(f, RoleOffsets, int64sToBytes(offsets))
	chars := enc.node(ClassNumpy, len(data))
	chars.Primitive = dtype.Uint8.Name()
	chars.Parameters = map[string]string{ParamArray: item}
	enc.put(chars, RoleData, data)
	f.Content = chars
	return f
}

// FromBuffers reconstructs the content tree of a projection. Lazy buffers
// are materialized.
func FromBuffers(p *Projection) (content.Content, error) {
	if p == nil || p.Form == nil {
		return nil, fmt.Errorf("%w: missing form", ErrMalformedProjection)
	}
	c, err := decode(p, p.Form)
	if err != nil {
		return nil, err
	}
	if c.Len() != p.Length {
		return nil, fmt.Errorf("%w: length %d, form describes %d", ErrMalformedProjection, p.Length, c.Len())
	}
	return c, nil
}

func decode(p *Projection, f *Form) (content.Content, error) {
	c, err := decodeNode(p, f)
	if err != nil {
		return nil, err
	}
	if c.Len() != f.Length {
		return nil, fmt.Errorf("%w: %s has length %d, form says %d", ErrMalformedProjection, f.FormKey, c.Len(), f.Length)
	}
	return c, nil
}

func decodeNode(p *Projection, f *Form) (content.Content, error) {
	switch f.Class {
	case ClassNumpy:
		dt, err := dtype.Parse(f.Primitive)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedProjection, f.FormKey, err)
		}
		data, err := p.Buffer(f.Key(RoleData))
		if err != nil {
			return nil, err
		}
		return wrapLayout(content.NewNumeric(dt, data))
	case ClassEmpty:
		return content.NewEmpty(), nil
	case ClassRegular:
		child, err := decodeChild(p, f)
		if err != nil {
			return nil, err
		}
		length := f.Length
		if f.Size > 0 {
			length = -1
		}
		return wrapLayout(content.NewFixedList(child, f.Size, length))
	case ClassListOffset:
		offsets, err := bufferInt64s(p, f.Key(RoleOffsets))
		if err != nil {
			return nil, err
		}
		if array := f.Parameters[ParamArray]; array == "string" || array == "bytestring" {
			return decodeSegments(p, f, array, offsets)
		}
		child, err := decodeChild(p, f)
		if err != nil {
			return nil, err
		}
		return wrapLayout(content.NewOffsetList(child, offsets))
	case ClassList:
		starts, err := bufferInt64s(p, f.Key(RoleStarts))
		if err != nil {
			return nil, err
		}
		stops, err := bufferInt64s(p, f.Key(RoleStops))
		if err != nil {
			return nil, err
		}
		child, err := decodeChild(p, f)
		if err != nil {
			return nil, err
		}
		return wrapLayout(content.NewStartStopList(child, starts, stops))
	case ClassRecord:
		children, err := decodeChildren(p, f)
		if err != nil {
			return nil, err
		}
		var fields []string
		if !f.Tuple {
			fields = append([]string{}, f.Fields...)
		}
		return wrapLayout(content.NewRecord(fields, children, f.Length))
	case ClassUnion:
		tb, err := p.Buffer(f.Key(RoleTags))
		if err != nil {
			return nil, err
		}
		tags := make([]int8, len(tb))
		for i, t := range tb {
			tags[i] = int8(t)
		}
		index, err := bufferInt64s(p, f.Key(RoleIndex))
		if err != nil {
			return nil, err
		}
		children, err := decodeChildren(p, f)
		if err != nil {
			return nil, err
		}
		return wrapLayout(content.NewUnion(tags, index, children))
	}
	return nil, fmt.Errorf("%w: unknown class %q of %s", ErrMalformedProjection, f.Class, f.FormKey)
}

func decodeSegments(p *Projection, f *Form, array string, offsets []int64) (content.Content, error) {
	if f.Content == nil || f.Content.Class != ClassNumpy {
		return nil, fmt.Errorf("%w: %s without characters", ErrMalformedProjection, array)
	}
	data, err := p.Buffer(f.Content.Key(RoleData))
	if err != nil {
		return nil, err
	}
	if array == "string" {
		return wrapLayout(content.NewStringsFromBuffers(offsets, data))
	}
	return wrapLayout(content.NewByteStringsFromBuffers(offsets, data))
}

func decodeChild(p *Projection, f *Form) (content.Content, error) {
	if f.Content == nil {
		return nil, fmt.Errorf("%w: %s has no content", ErrMalformedProjection, f.FormKey)
	}
	return decode(p, f.Content)
}

func decodeChildren(p *Projection, f *Form) ([]content.Content, error) {
	children := make([]content.Content, len(f.Contents))
	for i, cf := range f.Contents {
		c, err := decode(p, cf)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return children, nil
}

// wrapLayout converts the result of a content constructor.
func wrapLayout[C content.Content](c C, err error) (content.Content, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProjection, err)
	}
	return c, nil
}

func bufferInt64s(p *Projection, key string) ([]int64, error) {
	b, err := p.Buffer(key)
	if err != nil {
		return nil, err
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("%w: buffer %s of %d bytes is not int64", ErrMalformedProjection, key, len(b))
	}
	v := make([]int64, len(b)/8)
	for i := range v {
		v[i] = int64(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return v, nil
}

func int64sToBytes(v []int64) []byte {
	b := make([]byte, 8*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint64(b[8*i:], uint64(x))
	}
	return b
}
