package virtual

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Form classes.
const (
	ClassNumpy      = "NumpyArray"
	ClassEmpty      = "EmptyArray"
	ClassRegular    = "RegularArray"
	ClassListOffset = "ListOffsetArray"
	ClassList       = "ListArray"
	ClassRecord     = "RecordArray"
	ClassUnion      = "UnionArray"
)

// Parameter key marking list nodes which represent strings.
const ParamArray = "__array__"

// Form describes one node of a serialized content tree.
type Form struct {
	Class      string            `yaml:"class"`
	Primitive  string            `yaml:"primitive,omitempty"`
	Parameters map[string]string `yaml:"parameters,omitempty"`
	Fields     []string          `yaml:"fields,omitempty"`
	Tuple      bool              `yaml:"tuple,omitempty"`
	Size       int               `yaml:"size,omitempty"`
	Length     int               `yaml:"length"`
	FormKey    string            `yaml:"form_key"`
	Content    *Form             `yaml:"content,omitempty"`
	Contents   []*Form           `yaml:"contents,omitempty"`
}

// Key returns the buffer key of role for this node.
func (f *Form) Key(role string) string {
	return f.FormKey + "-" + role
}

// Walk calls fn for f and all its descendants in pre-order.
func (f *Form) Walk(fn func(*Form)) {
	fn(f)
	if f.Content != nil {
		f.Content.Walk(fn)
	}
	for _, c := range f.Contents {
		c.Walk(fn)
	}
}

// YAML encodes the form.
func (f *Form) YAML() ([]byte, error) {
	return yaml.Marshal(f)
}

// ParseForm decodes a form from YAML.
func ParseForm(data []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProjection, err)
	}
	return &f, nil
}
