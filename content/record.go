package content

import (
	"fmt"
	"slices"
)

// Record is a list of structs. Every field is a content of its own; element i
// of the record is the tuple of element i of all fields.
//
// A record without field names is a tuple.
type Record struct {
	fields   []string // nil for tuples
	contents []Content
	length   int
}

// NewRecord creates a record. fields may be nil to create a tuple. length must
// not exceed the length of any content; pass length < 0 to use the minimum
// content length (0 for a record without contents).
func NewRecord(fields []string, contents []Content, length int) (*Record, error) {
	if fields != nil && len(fields) != len(contents) {
		return nil, fmt.Errorf("%w: %d field names for %d contents", ErrInvalidLayout, len(fields), len(contents))
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			return nil, fmt.Errorf("%w: duplicate field name %q", ErrInvalidLayout, f)
		}
		seen[f] = struct{}{}
	}
	minLen := 0
	for i, c := range contents {
		if c == nil {
			return nil, fmt.Errorf("%w: record content %d is nil", ErrInvalidLayout, i)
		}
		if i == 0 || c.Len() < minLen {
			minLen = c.Len()
		}
	}
	if length < 0 {
		length = minLen
	} else if length > minLen {
		return nil, fmt.Errorf("%w: record length %d exceeds shortest content length %d",
			ErrInvalidLayout, length, minLen)
	}
	r := &Record{
		contents: slices.Clone(contents),
		length:   length,
	}
	if fields != nil {
		r.fields = slices.Clone(fields)
	}
	return r, nil
}

// Kind is part of interface Content.
func (r *Record) Kind() Kind { return KindRecord }

// Len is part of interface Content.
func (r *Record) Len() int { return r.length }

func (r *Record) isContent() {}

// IsTuple reports whether the record has no field names.
func (r *Record) IsTuple() bool {
	return r.fields == nil
}

// Fields returns a copy of the field names, nil for tuples.
func (r *Record) Fields() []string {
	if r.fields == nil {
		return nil
	}
	return slices.Clone(r.fields)
}

// Contents returns a copy of the list of field contents.
func (r *Record) Contents() []Content {
	return slices.Clone(r.contents)
}

// Field returns the content of a named field.
func (r *Record) Field(name string) (Content, bool) {
	i := slices.Index(r.fields, name)
	if i < 0 {
		return nil, false
	}
	return r.contents[i], true
}
