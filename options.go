package ragged

import (
	"fmt"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/dtype"
)

// Default values of the generator options.
const (
	DefaultMaxWeight       = 10
	DefaultMaxDepth        = 5
	DefaultMaxFields       = 5
	DefaultMaxVariants     = 4
	DefaultMaxListLength   = 5
	DefaultMaxFixedSize    = 5
	DefaultMaxStringLength = 10
)

// Option customizes a generator.
//
// Option constructors panic on meaningless input such as negative sizes;
// these are programmer errors. Contradictory combinations of otherwise valid
// options are reported as a ConfigurationError by the generator.
type Option func(*config)

type config struct {
	maxWeight       int
	maxDepth        int
	allowed         [content.KindUnion + 1]bool
	dtypes          dtype.Policy
	allowNaN        bool
	allowVirtual    bool
	maxFields       int
	maxVariants     int
	maxListLength   int
	maxFixedSize    int
	maxStringLength int
	recordMaxLength int // < 0: unlimited
	allowTuple      bool
	scattered       bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		maxWeight:       DefaultMaxWeight,
		maxDepth:        DefaultMaxDepth,
		dtypes:          dtype.Any(),
		allowVirtual:    true,
		maxFields:       DefaultMaxFields,
		maxVariants:     DefaultMaxVariants,
		maxListLength:   DefaultMaxListLength,
		maxFixedSize:    DefaultMaxFixedSize,
		maxStringLength: DefaultMaxStringLength,
		recordMaxLength: -1,
		allowTuple:      true,
	}
	for _, k := range content.Kinds() {
		cfg.allowed[k] = true
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *config) leafKinds() []content.Kind {
	return cfg.kinds(func(k content.Kind) bool { return k.IsLeaf() })
}

func (cfg *config) wrapperKinds() []content.Kind {
	return cfg.kinds(func(k content.Kind) bool { return !k.IsLeaf() })
}

func (cfg *config) kinds(pred func(content.Kind) bool) []content.Kind {
	var kinds []content.Kind
	for _, k := range content.Kinds() {
		if pred(k) && cfg.allowed[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func nonNegative(name string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("ragged: %s(%d) with negative value", name, n))
	}
}

func allow(k content.Kind, on bool) Option {
	return func(cfg *config) {
		cfg.allowed[k] = on
	}
}

// WithMaxWeight sets the budget of leaf scalars of a tree. Default is 10.
func WithMaxWeight(n int) Option {
	nonNegative("WithMaxWeight", n)
	return func(cfg *config) {
		cfg.maxWeight = n
	}
}

// WithMaxDepth sets the maximum number of wrapper layers. Default is 5.
func WithMaxDepth(n int) Option {
	nonNegative("WithMaxDepth", n)
	return func(cfg *config) {
		cfg.maxDepth = n
	}
}

// AllowNumeric enables or disables numeric leaves.
func AllowNumeric(on bool) Option { return allow(content.KindNumeric, on) }

// AllowEmpty enables or disables empty leaves.
func AllowEmpty(on bool) Option { return allow(content.KindEmpty, on) }

// AllowString enables or disables string leaves.
func AllowString(on bool) Option { return allow(content.KindStrings, on) }

// AllowByteString enables or disables byte-string leaves.
func AllowByteString(on bool) Option { return allow(content.KindByteStrings, on) }

// AllowFixedList enables or disables fixed-size list wrappers.
func AllowFixedList(on bool) Option { return allow(content.KindFixedList, on) }

// AllowOffsetList enables or disables offset list wrappers.
func AllowOffsetList(on bool) Option { return allow(content.KindOffsetList, on) }

// AllowStartStopList enables or disables start/stop list wrappers.
func AllowStartStopList(on bool) Option { return allow(content.KindStartStopList, on) }

// AllowRecord enables or disables record wrappers.
func AllowRecord(on bool) Option { return allow(content.KindRecord, on) }

// AllowUnion enables or disables union wrappers.
func AllowUnion(on bool) Option { return allow(content.KindUnion, on) }

// WithDTypes restricts numeric leaves to the given primitive types.
// Panics if no type is given.
func WithDTypes(dts ...dtype.DType) Option {
	if len(dts) == 0 {
		panic("ragged: WithDTypes() without types")
	}
	for _, dt := range dts {
		if !dt.IsValid() {
			panic("ragged: WithDTypes() with invalid type")
		}
	}
	return WithDTypePolicy(dtype.OneOf(dts...))
}

// WithDTypePolicy sets the sampler for primitive types of numeric leaves.
// Panics on nil.
func WithDTypePolicy(p dtype.Policy) Option {
	if p == nil {
		panic("ragged: WithDTypePolicy(nil)")
	}
	return func(cfg *config) {
		cfg.dtypes = p
	}
}

// AllowNaN permits NaN and NaT values in numeric leaves. Default is false.
func AllowNaN(on bool) Option {
	return func(cfg *config) {
		cfg.allowNaN = on
	}
}

// AllowVirtual enables lazy buffers in projections created by Arrays.
// Default is true.
func AllowVirtual(on bool) Option {
	return func(cfg *config) {
		cfg.allowVirtual = on
	}
}

// WithMaxFields sets the maximum number of fields of a record. Default is 5.
// Panics if n < 1.
func WithMaxFields(n int) Option {
	if n < 1 {
		panic("ragged: WithMaxFields(n<1)")
	}
	return func(cfg *config) {
		cfg.maxFields = n
	}
}

// WithMaxVariants sets the maximum number of contents of a union.
// Default is 4. Panics if n < 2 or n exceeds content.MaxVariants.
func WithMaxVariants(n int) Option {
	if n < 2 || n > content.MaxVariants {
		panic(fmt.Sprintf("ragged: WithMaxVariants(%d) out of range", n))
	}
	return func(cfg *config) {
		cfg.maxVariants = n
	}
}

// WithMaxListLength sets the maximum length of offset and start/stop lists.
// Default is 5.
func WithMaxListLength(n int) Option {
	nonNegative("WithMaxListLength", n)
	return func(cfg *config) {
		cfg.maxListLength = n
	}
}

// WithMaxFixedSize sets the maximum sublist size of fixed lists, as well as
// the maximum length of zero-size fixed lists. Default is 5.
func WithMaxFixedSize(n int) Option {
	nonNegative("WithMaxFixedSize", n)
	return func(cfg *config) {
		cfg.maxFixedSize = n
	}
}

// WithMaxStringLength sets the maximum number of characters (or bytes) of an
// element of a string leaf. Default is 10.
func WithMaxStringLength(n int) Option {
	nonNegative("WithMaxStringLength", n)
	return func(cfg *config) {
		cfg.maxStringLength = n
	}
}

// WithRecordMaxLength caps the length of records below the length of their
// shortest field. Default is no cap.
func WithRecordMaxLength(n int) Option {
	nonNegative("WithRecordMaxLength", n)
	return func(cfg *config) {
		cfg.recordMaxLength = n
	}
}

// AllowTuple permits records without field names. Default is true.
func AllowTuple(on bool) Option {
	return func(cfg *config) {
		cfg.allowTuple = on
	}
}

// ScatteredRanges lets start/stop lists draw every range independently,
// producing overlapping ranges and gaps. By default start/stop lists
// partition their child contiguously, like offset lists do.
func ScatteredRanges(on bool) Option {
	return func(cfg *config) {
		cfg.scattered = on
	}
}
