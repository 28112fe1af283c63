package sampler

// Trace is a sequence of normalized draws. Integer draws are stored as
// offsets from their lower bound, booleans as 0 or 1, choices as indices.
type Trace []uint64

// Recorder wraps a Sampler and records every draw.
type Recorder struct {
	inner Sampler
	trace Trace
}

// Record creates a recorder drawing from s.
func Record(s Sampler) *Recorder {
	return &Recorder{inner: s}
}

// Trace returns a copy of the draws recorded so far.
func (r *Recorder) Trace() Trace {
	return append(Trace(nil), r.trace...)
}

// Int is part of interface Sampler.
func (r *Recorder) Int(min, max int) int {
	if max <= min {
		return min
	}
	v := r.inner.Int(min, max)
	r.trace = append(r.trace, uint64(v-min))
	return v
}

// Bool is part of interface Sampler.
func (r *Recorder) Bool() bool {
	b := r.inner.Bool()
	r.trace = append(r.trace, b2u(b))
	return b
}

// Choice is part of interface Sampler.
func (r *Recorder) Choice(n int) int {
	v := r.inner.Choice(n)
	r.trace = append(r.trace, uint64(v))
	return v
}

// More is part of interface Sampler.
func (r *Recorder) More() bool {
	b := r.inner.More()
	r.trace = append(r.trace, b2u(b))
	return b
}

// Bits is part of interface Sampler.
func (r *Recorder) Bits(n uint) uint64 {
	v := r.inner.Bits(n)
	r.trace = append(r.trace, v)
	return v
}

// Replay plays back a recorded trace. Once the trace is exhausted every
// draw returns its simplest value.
type Replay struct {
	trace Trace
	pos   int
}

// NewReplay creates a sampler replaying trace.
func NewReplay(trace Trace) *Replay {
	return &Replay{trace: trace}
}

// Exhausted reports whether all recorded draws have been consumed.
func (r *Replay) Exhausted() bool {
	return r.pos >= len(r.trace)
}

func (r *Replay) next() uint64 {
	if r.pos >= len(r.trace) {
		return 0
	}
	v := r.trace[r.pos]
	r.pos++
	return v
}

// Int is part of interface Sampler. Out-of-range values are clamped to max.
func (r *Replay) Int(min, max int) int {
	if max <= min {
		return min
	}
	v, span := r.next(), uint64(max-min)
	if v > span {
		v = span
	}
	return min + int(v)
}

// Bool is part of interface Sampler.
func (r *Replay) Bool() bool {
	return r.next() != 0
}

// Choice is part of interface Sampler.
func (r *Replay) Choice(n int) int {
	if n <= 0 {
		panic("sampler: Choice(n) with n <= 0")
	}
	v := r.next()
	if v >= uint64(n) {
		return n - 1
	}
	return int(v)
}

// More is part of interface Sampler.
func (r *Replay) More() bool {
	return r.next() != 0
}

// Bits is part of interface Sampler.
func (r *Replay) Bits(n uint) uint64 {
	return r.next() & mask(n)
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

var (
	_ Sampler = (*Recorder)(nil)
	_ Sampler = (*Replay)(nil)
)
