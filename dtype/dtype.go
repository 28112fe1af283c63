package dtype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/ragged/sampler"
)

// Kind classifies primitive types.
type Kind uint8

// Kinds of primitive types.
const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindDatetime
	KindTimedelta
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindDatetime:
		return "datetime64"
	case KindTimedelta:
		return "timedelta64"
	}
	return "<unknown kind>"
}

// Unit is the time unit of datetime and timedelta types.
type Unit uint8

// Time units, coarsest first. UnitNone is used for non-time types.
const (
	UnitNone Unit = iota
	UnitYear
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMilli
	UnitMicro
	UnitNano
	UnitPico
	UnitFemto
	UnitAtto
)

var unitNames = [...]string{"", "Y", "M", "W", "D", "h", "m", "s", "ms", "us", "ns", "ps", "fs", "as"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "?"
}

// DType is a primitive scalar type. The zero value is not a valid type.
type DType struct {
	kind Kind
	size uint8
	unit Unit
}

// Primitive types.
var (
	Bool       = DType{kind: KindBool, size: 1}
	Int8       = DType{kind: KindInt, size: 1}
	Int16      = DType{kind: KindInt, size: 2}
	Int32      = DType{kind: KindInt, size: 4}
	Int64      = DType{kind: KindInt, size: 8}
	Uint8      = DType{kind: KindUint, size: 1}
	Uint16     = DType{kind: KindUint, size: 2}
	Uint32     = DType{kind: KindUint, size: 4}
	Uint64     = DType{kind: KindUint, size: 8}
	Float16    = DType{kind: KindFloat, size: 2}
	Float32    = DType{kind: KindFloat, size: 4}
	Float64    = DType{kind: KindFloat, size: 8}
	Complex64  = DType{kind: KindComplex, size: 8}
	Complex128 = DType{kind: KindComplex, size: 16}
)

// ErrUnknownDType is returned by Parse for names outside the catalogue.
var ErrUnknownDType = errors.New("dtype: unknown type")

// Datetime64 returns the datetime type with unit u.
func Datetime64(u Unit) DType {
	return DType{kind: KindDatetime, size: 8, unit: u}
}

// Timedelta64 returns the timedelta type with unit u.
func Timedelta64(u Unit) DType {
	return DType{kind: KindTimedelta, size: 8, unit: u}
}

// Kind returns the kind of dt.
func (dt DType) Kind() Kind {
	return dt.kind
}

// Unit returns the time unit of dt, or UnitNone.
func (dt DType) Unit() Unit {
	return dt.unit
}

// ItemSize returns the number of bytes of one element.
func (dt DType) ItemSize() int {
	return int(dt.size)
}

// IsValid reports whether dt is a type of the catalogue.
func (dt DType) IsValid() bool {
	_, err := Parse(dt.Name())
	return dt.size > 0 && err == nil
}

// CanHoldNaN reports whether elements of dt may be NaN.
func (dt DType) CanHoldNaN() bool {
	return dt.kind == KindFloat || dt.kind == KindComplex
}

// CanHoldNaT reports whether elements of dt may be NaT.
func (dt DType) CanHoldNaT() bool {
	return dt.kind == KindDatetime || dt.kind == KindTimedelta
}

// Name returns the canonical name, e.g. "int32" or "datetime64[ns]".
func (dt DType) Name() string {
	switch dt.kind {
	case KindBool:
		return "bool"
	case KindInt, KindUint, KindFloat, KindComplex:
		return fmt.Sprintf("%s%d", dt.kind, int(dt.size)*8)
	case KindDatetime, KindTimedelta:
		return fmt.Sprintf("%s[%s]", dt.kind, dt.unit)
	}
	return "<invalid>"
}

func (dt DType) String() string {
	return dt.Name()
}

var supported = func() []DType {
	dts := []DType{
		Bool, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64,
		Float16, Float32, Float64, Complex64, Complex128,
	}
	for u := UnitYear; u <= UnitAtto; u++ {
		dts = append(dts, Datetime64(u))
	}
	for u := UnitYear; u <= UnitAtto; u++ {
		dts = append(dts, Timedelta64(u))
	}
	return dts
}()

var byName = func() map[string]DType {
	m := make(map[string]DType, len(supported))
	for _, dt := range supported {
		m[dt.Name()] = dt
	}
	return m
}()

// Supported returns all supported primitive types.
func Supported() []DType {
	return append([]DType(nil), supported...)
}

// Parse looks up a primitive type by its canonical name.
func Parse(name string) (DType, error) {
	dt, ok := byName[strings.TrimSpace(name)]
	if !ok {
		return DType{}, fmt.Errorf("%w: %q", ErrUnknownDType, name)
	}
	return dt, nil
}

// MustParse is like Parse but panics on unknown names.
func MustParse(name string) DType {
	dt, err := Parse(name)
	if err != nil {
		panic(err.Error())
	}
	return dt
}

// Policy selects the type of a numeric leaf.
type Policy func(sampler.Sampler) DType

// Any is the policy choosing uniformly among all supported types.
func Any() Policy {
	return OneOf(supported...)
}

// OneOf is the policy choosing uniformly among dts.
// Panics if dts is empty.
func OneOf(dts ...DType) Policy {
	if len(dts) == 0 {
		panic("dtype: OneOf() without types")
	}
	choices := append([]DType(nil), dts...)
	return func(s sampler.Sampler) DType {
		if len(choices) == 1 {
			return choices[0]
		}
		return choices[s.Choice(len(choices))]
	}
}
