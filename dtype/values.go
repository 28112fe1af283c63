package dtype

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/npillmayer/ragged/sampler"
)

// NaT is the "not a time" sentinel of datetime and timedelta types.
const NaT = math.MinInt64

// value sampling modes
const (
	modeSmall = iota
	modeSpecial
	modeBits
	modeCount
)

// Sample draws n raw values of type dt, encoded little-endian.
// With allowNaN false the result contains neither NaN nor NaT.
func Sample(s sampler.Sampler, dt DType, n int, allowNaN bool) []byte {
	size := dt.ItemSize()
	buf := make([]byte, n*size)
	for i := 0; i < n; i++ {
		putValue(s, dt, buf[i*size:(i+1)*size], allowNaN)
	}
	return buf
}

func putValue(s sampler.Sampler, dt DType, b []byte, allowNaN bool) {
	switch dt.kind {
	case KindBool:
		if s.Bool() {
			b[0] = 1
		} else {
			b[0] = 0
		}
	case KindInt:
		putUint(b, uint64(sampleInt(s, dt.size)))
	case KindUint:
		putUint(b, sampleUint(s, dt.size))
	case KindFloat:
		putFloat(s, b, allowNaN)
	case KindComplex:
		half := len(b) / 2
		putFloat(s, b[:half], allowNaN)
		putFloat(s, b[half:], allowNaN)
	case KindDatetime, KindTimedelta:
		v := sampleInt(s, 8)
		if v == NaT && !allowNaN {
			v = 0
		}
		putUint(b, uint64(v))
	default:
		panic("dtype: sample of invalid type")
	}
}

func sampleInt(s sampler.Sampler, size uint8) int64 {
	bits := uint(size) * 8
	lo, hi := int64(-1)<<(bits-1), int64(^uint64(0)>>(65-bits))
	switch s.Choice(modeCount) {
	case modeSmall:
		return int64(s.Int(-10, 10))
	case modeSpecial:
		return [...]int64{0, -1, 1, lo, hi}[s.Choice(5)]
	}
	v := s.Bits(bits)
	if bits < 64 && v&(1<<(bits-1)) != 0 {
		v |= ^mask(bits)
	}
	return int64(v)
}

func sampleUint(s sampler.Sampler, size uint8) uint64 {
	bits := uint(size) * 8
	switch s.Choice(modeCount) {
	case modeSmall:
		return uint64(s.Int(0, 20))
	case modeSpecial:
		return [...]uint64{0, 1, mask(bits)}[s.Choice(3)]
	}
	return s.Bits(bits)
}

func putFloat(s sampler.Sampler, b []byte, allowNaN bool) {
	switch len(b) {
	case 2:
		h := sampleHalf(s)
		if isHalfNaN(h) && !allowNaN {
			h = 0
		}
		binary.LittleEndian.PutUint16(b, h)
	case 4:
		f := float32(sampleFloat(s, allowNaN, math.MaxFloat32, math.SmallestNonzeroFloat32))
		if math.IsNaN(float64(f)) && !allowNaN {
			f = 0
		}
		if s.Choice(modeCount) == modeBits {
			if bits := uint32(s.Bits(32)); allowNaN || !math.IsNaN(float64(math.Float32frombits(bits))) {
				f = math.Float32frombits(bits)
			}
		}
		binary.LittleEndian.PutUint32(b, math.Float32bits(f))
	case 8:
		f := sampleFloat(s, allowNaN, math.MaxFloat64, math.SmallestNonzeroFloat64)
		if s.Choice(modeCount) == modeBits {
			if bits := s.Bits(64); allowNaN || !math.IsNaN(math.Float64frombits(bits)) {
				f = math.Float64frombits(bits)
			}
		}
		binary.LittleEndian.PutUint64(b, math.Float64bits(f))
	}
}

func sampleFloat(s sampler.Sampler, allowNaN bool, max, tiny float64) float64 {
	if s.Bool() {
		return float64(s.Int(-100, 100))
	}
	specials := []float64{0, math.Copysign(0, -1), 1, -1, 0.5,
		math.Inf(1), math.Inf(-1), max, -max, tiny}
	if allowNaN {
		specials = append(specials, math.NaN())
	}
	return specials[s.Choice(len(specials))]
}

var halfSpecials = [...]uint16{
	0x0000, 0x8000, 0x3c00, 0xbc00, 0x3800, 0x4000,
	0x7c00, 0xfc00, 0x7bff, 0xfbff, 0x0001, 0x7e00,
}

func sampleHalf(s sampler.Sampler) uint16 {
	if s.Bool() {
		return halfSpecials[s.Choice(len(halfSpecials))]
	}
	return uint16(s.Bits(16))
}

func isHalfNaN(h uint16) bool {
	return h&0x7c00 == 0x7c00 && h&0x03ff != 0
}

func halfToFloat32(h uint16) float32 {
	sign := uint32(h>>15) << 31
	exp := uint32(h>>10) & 0x1f
	frac := uint32(h & 0x3ff)
	switch exp {
	case 0x1f:
		return math.Float32frombits(sign | 0x7f800000 | frac<<13)
	case 0:
		f := float32(frac) / (1 << 24)
		if sign != 0 {
			f = -f
		}
		return f
	}
	return math.Float32frombits(sign | (exp+112)<<23 | frac<<13)
}

func putUint(b []byte, v uint64) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(b, v)
	}
}

func getUint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// isNaNAt checks a single float of width len(b).
func isNaNAt(b []byte) bool {
	switch len(b) {
	case 2:
		return isHalfNaN(binary.LittleEndian.Uint16(b))
	case 4:
		return math.IsNaN(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case 8:
		return math.IsNaN(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
	return false
}

// HasNaN reports whether a raw buffer of type dt contains a NaN.
func HasNaN(dt DType, data []byte) bool {
	if !dt.CanHoldNaN() {
		return false
	}
	size := dt.ItemSize()
	for i := 0; i+size <= len(data); i += size {
		if dt.kind == KindComplex {
			half := size / 2
			if isNaNAt(data[i:i+half]) || isNaNAt(data[i+half:i+size]) {
				return true
			}
		} else if isNaNAt(data[i : i+size]) {
			return true
		}
	}
	return false
}

// HasNaT reports whether a raw buffer of type dt contains a NaT.
func HasNaT(dt DType, data []byte) bool {
	if !dt.CanHoldNaT() {
		return false
	}
	for i := 0; i+8 <= len(data); i += 8 {
		if int64(binary.LittleEndian.Uint64(data[i:])) == NaT {
			return true
		}
	}
	return false
}

// FormatValue renders element i of a raw buffer of type dt.
func FormatValue(dt DType, data []byte, i int) string {
	size := dt.ItemSize()
	if size == 0 || (i+1)*size > len(data) {
		return "?"
	}
	b := data[i*size : (i+1)*size]
	switch dt.kind {
	case KindBool:
		return strconv.FormatBool(b[0] != 0)
	case KindInt:
		v := getUint(b)
		shift := 64 - uint(size)*8
		return strconv.FormatInt(int64(v<<shift)>>shift, 10)
	case KindUint:
		return strconv.FormatUint(getUint(b), 10)
	case KindFloat:
		return formatFloat(b)
	case KindComplex:
		half := size / 2
		return "(" + formatFloat(b[:half]) + "," + formatFloat(b[half:]) + ")"
	case KindDatetime, KindTimedelta:
		v := int64(binary.LittleEndian.Uint64(b))
		if v == NaT {
			return "NaT"
		}
		return strconv.FormatInt(v, 10) + dt.unit.String()
	}
	return "?"
}

func formatFloat(b []byte) string {
	switch len(b) {
	case 2:
		return strconv.FormatFloat(float64(halfToFloat32(binary.LittleEndian.Uint16(b))), 'g', -1, 32)
	case 4:
		return strconv.FormatFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), 'g', -1, 32)
	case 8:
		return strconv.FormatFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)), 'g', -1, 64)
	}
	return "?"
}
