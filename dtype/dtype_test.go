package dtype

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/ragged/sampler"
)

func TestNames(t *testing.T) {
	tests := []struct {
		dt   DType
		name string
		size int
	}{
		{Bool, "bool", 1},
		{Int8, "int8", 1},
		{Uint16, "uint16", 2},
		{Int64, "int64", 8},
		{Float16, "float16", 2},
		{Float64, "float64", 8},
		{Complex64, "complex64", 8},
		{Complex128, "complex128", 16},
		{Datetime64(UnitNano), "datetime64[ns]", 8},
		{Timedelta64(UnitYear), "timedelta64[Y]", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dt.Name() != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, tt.dt.Name())
			}
			if tt.dt.ItemSize() != tt.size {
				t.Errorf("expected item size %d, got %d", tt.size, tt.dt.ItemSize())
			}
			parsed, err := Parse(tt.name)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.name, err)
			}
			if parsed != tt.dt {
				t.Errorf("Parse(%q) = %v", tt.name, parsed)
			}
		})
	}
}

func TestSupportedCatalogue(t *testing.T) {
	dts := Supported()
	if len(dts) != 14+13+13 {
		t.Fatalf("expected 40 supported types, got %d", len(dts))
	}
	for _, dt := range dts {
		if !dt.IsValid() {
			t.Errorf("supported type %v is not valid", dt)
		}
	}
	if (DType{}).IsValid() {
		t.Errorf("zero DType must not be valid")
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("float128")
	if !errors.Is(err, ErrUnknownDType) {
		t.Fatalf("expected ErrUnknownDType, got %v", err)
	}
}

func TestSampleLength(t *testing.T) {
	s := sampler.NewRandom(11)
	for _, dt := range Supported() {
		data := Sample(s, dt, 7, true)
		if len(data) != 7*dt.ItemSize() {
			t.Errorf("%v: expected %d bytes, got %d", dt, 7*dt.ItemSize(), len(data))
		}
	}
}

func TestSampleWithoutNaN(t *testing.T) {
	s := sampler.NewRandom(5)
	for round := 0; round < 200; round++ {
		for _, dt := range Supported() {
			data := Sample(s, dt, 10, false)
			if HasNaN(dt, data) {
				t.Fatalf("round %d: %v sample contains NaN", round, dt)
			}
			if HasNaT(dt, data) {
				t.Fatalf("round %d: %v sample contains NaT", round, dt)
			}
		}
	}
}

func TestSampleCanProduceNaN(t *testing.T) {
	_, _, err := sampler.Find(1, 500, func(s sampler.Sampler) ([]byte, error) {
		return Sample(s, Float64, 10, true), nil
	}, func(data []byte) bool { return HasNaN(Float64, data) })
	if err != nil {
		t.Fatalf("no NaN found in float64 samples: %v", err)
	}
}

func TestSentinelDetection(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint64(data[8:], math.Float64bits(math.NaN()))
	if !HasNaN(Float64, data) {
		t.Errorf("expected NaN in float64 buffer")
	}
	if !HasNaN(Complex128, data) {
		t.Errorf("expected NaN in imaginary part of complex128")
	}
	if HasNaN(Int64, data) {
		t.Errorf("int64 cannot hold NaN")
	}
	nat := make([]byte, 8)
	binary.LittleEndian.PutUint64(nat, uint64(1)<<63)
	if !HasNaT(Datetime64(UnitDay), nat) {
		t.Errorf("expected NaT in datetime buffer")
	}
	if !HasNaN(Float16, []byte{0x00, 0x7e}) {
		t.Errorf("expected half precision NaN")
	}
}

func TestFormatValue(t *testing.T) {
	b := []byte{0xff}
	if got := FormatValue(Int8, b, 0); got != "-1" {
		t.Errorf("int8 0xff: got %q", got)
	}
	if got := FormatValue(Uint8, b, 0); got != "255" {
		t.Errorf("uint8 0xff: got %q", got)
	}
	if got := FormatValue(Float16, []byte{0x00, 0x3c}, 0); got != "1" {
		t.Errorf("float16 1.0: got %q", got)
	}
	if got := FormatValue(Datetime64(UnitSecond), make([]byte, 8), 0); got != "0s" {
		t.Errorf("datetime zero: got %q", got)
	}
}

func TestOneOf(t *testing.T) {
	policy := OneOf(Int32, Float32)
	s := sampler.NewRandom(3)
	for i := 0; i < 50; i++ {
		dt := policy(s)
		if dt != Int32 && dt != Float32 {
			t.Fatalf("unexpected type %v", dt)
		}
	}
}
