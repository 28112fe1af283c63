package ragged

import (
	"fmt"
	"slices"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
)

// RecordPolicy controls the layout drawn for a record.
type RecordPolicy struct {
	AllowTuple bool // permit records without field names
	MaxLength  int  // cap of the record length; negative for no cap
}

const (
	maxFieldNameLength = 3
	fieldNameTries     = 8
)

var fieldLetters = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// WrapRecord combines children into a record, drawing whether it is a tuple
// and, if not, unique field names. The record length is the length of the
// shortest child, capped by p.MaxLength, or 0 without children.
func WrapRecord(s sampler.Sampler, children []content.Content, p RecordPolicy) (*content.Record, error) {
	var fields []string
	if !p.AllowTuple || !s.Bool() {
		fields = fieldNames(s, len(children))
	}
	length := 0
	for i, c := range children {
		if i == 0 || c.Len() < length {
			length = c.Len()
		}
	}
	if p.MaxLength >= 0 {
		length = min(length, p.MaxLength)
	}
	return content.NewRecord(fields, children, length)
}

// fieldNames draws n unique names of up to three ASCII letters, the empty
// name included. A name which keeps colliding after a couple of draws is
// replaced by "f<i>"; drawn names never contain digits, so the replacement
// is unique.
func fieldNames(s sampler.Sampler, n int) []string {
	names := make([]string, 0, n)
	for i := range n {
		name, found := "", false
		for range fieldNameTries {
			if name = fieldName(s); !slices.Contains(names, name) {
				found = true
				break
			}
		}
		if !found {
			name = fmt.Sprintf("f%d", i)
		}
		names = append(names, name)
	}
	return names
}

func fieldName(s sampler.Sampler) string {
	b := make([]byte, s.Int(0, maxFieldNameLength))
	for i := range b {
		b[i] = fieldLetters[s.Choice(len(fieldLetters))]
	}
	return string(b)
}
