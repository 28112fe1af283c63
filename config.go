package ragged

import (
	"fmt"
	"math"
	"os"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/dtype"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of generator options. Absent entries
// keep their defaults.
//
//	max_weight: 20
//	max_depth: 3
//	leaves:   { numeric: true, empty: true, string: false, bytestring: false }
//	wrappers: { union: false }
//	dtypes: [int64, float64, datetime64[s]]
type Config struct {
	MaxWeight       *int     `yaml:"max_weight"`
	MaxDepth        *int     `yaml:"max_depth"`
	Leaves          Kinds    `yaml:"leaves"`
	Wrappers        Kinds    `yaml:"wrappers"`
	DTypes          []string `yaml:"dtypes"`
	AllowNaN        *bool    `yaml:"allow_nan"`
	AllowVirtual    *bool    `yaml:"allow_virtual"`
	MaxFields       *int     `yaml:"max_fields"`
	MaxVariants     *int     `yaml:"max_variants"`
	MaxListLength   *int     `yaml:"max_list_length"`
	MaxFixedSize    *int     `yaml:"max_fixed_size"`
	MaxStringLength *int     `yaml:"max_string_length"`
	RecordMaxLength *int     `yaml:"record_max_length"`
	AllowTuple      *bool    `yaml:"allow_tuple"`
	ScatteredRanges *bool    `yaml:"scattered_ranges"`
}

// Kinds switches content kinds on or off by name. Leaf names are numeric,
// empty, string and bytestring; wrapper names are fixed_list, offset_list,
// start_stop_list, record and union.
type Kinds map[string]bool

var kindOptions = map[string]func(bool) Option{
	"numeric":         AllowNumeric,
	"empty":           AllowEmpty,
	"string":          AllowString,
	"bytestring":      AllowByteString,
	"fixed_list":      AllowFixedList,
	"offset_list":     AllowOffsetList,
	"start_stop_list": AllowStartStopList,
	"record":          AllowRecord,
	"union":           AllowUnion,
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the configuration to generator options. Values an option
// constructor would panic on are reported as ConfigurationError instead.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	ints := []struct {
		name string
		v    *int
		min  int
		max  int
		opt  func(int) Option
	}{
		{"max_weight", c.MaxWeight, 0, math.MaxInt, WithMaxWeight},
		{"max_depth", c.MaxDepth, 0, math.MaxInt, WithMaxDepth},
		{"max_fields", c.MaxFields, 1, math.MaxInt, WithMaxFields},
		{"max_variants", c.MaxVariants, 2, content.MaxVariants, WithMaxVariants},
		{"max_list_length", c.MaxListLength, 0, math.MaxInt, WithMaxListLength},
		{"max_fixed_size", c.MaxFixedSize, 0, math.MaxInt, WithMaxFixedSize},
		{"max_string_length", c.MaxStringLength, 0, math.MaxInt, WithMaxStringLength},
		{"record_max_length", c.RecordMaxLength, 0, math.MaxInt, WithRecordMaxLength},
	}
	for _, i := range ints {
		if i.v == nil {
			continue
		}
		if *i.v < i.min || *i.v > i.max {
			tracer().Errorf("configuration: %s = %d out of range", i.name, *i.v)
			return nil, fmt.Errorf("%w: %s = %d", ErrInvalidOption, i.name, *i.v)
		}
		opts = append(opts, i.opt(*i.v))
	}
	bools := []struct {
		v   *bool
		opt func(bool) Option
	}{
		{c.AllowNaN, AllowNaN},
		{c.AllowVirtual, AllowVirtual},
		{c.AllowTuple, AllowTuple},
		{c.ScatteredRanges, ScatteredRanges},
	}
	for _, b := range bools {
		if b.v != nil {
			opts = append(opts, b.opt(*b.v))
		}
	}
	for _, kinds := range []Kinds{c.Leaves, c.Wrappers} {
		for name, on := range kinds {
			opt, ok := kindOptions[name]
			if !ok {
				tracer().Errorf("configuration: unknown content kind %q", name)
				return nil, fmt.Errorf("%w: unknown content kind %q", ErrInvalidOption, name)
			}
			opts = append(opts, opt(on))
		}
	}
	if len(c.DTypes) > 0 {
		dts := make([]dtype.DType, len(c.DTypes))
		for i, name := range c.DTypes {
			dt, err := dtype.Parse(name)
			if err != nil {
				tracer().Errorf("configuration: %v", err)
				return nil, fmt.Errorf("%w: %q", ErrUnknownDType, name)
			}
			dts[i] = dt
		}
		opts = append(opts, WithDTypes(dts...))
	}
	return opts, nil
}
