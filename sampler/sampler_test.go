package sampler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIntWithinBounds(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		v := r.Int(-3, 4)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 4)
	}
	assert.Equal(t, 5, r.Int(5, 5))
	assert.Equal(t, 5, r.Int(5, 2))
}

func TestRandomIsSeeded(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
		require.Equal(t, a.Bits(13), b.Bits(13))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestContinueProbabilityExtremes(t *testing.T) {
	never := NewRandom(1, WithContinueProbability(0))
	always := NewRandom(1, WithContinueProbability(1))
	for i := 0; i < 100; i++ {
		require.False(t, never.More())
		require.True(t, always.More())
	}
	assert.Panics(t, func() { WithContinueProbability(1.5) })
}

func TestBitsMask(t *testing.T) {
	r := NewRandom(3)
	for i := 0; i < 100; i++ {
		require.Less(t, r.Bits(5), uint64(32))
	}
}

func TestRecordReplayReproducesDraws(t *testing.T) {
	rec := Record(NewRandom(99))
	var want []int
	for i := 0; i < 50; i++ {
		want = append(want, rec.Int(2, 9), rec.Choice(4), int(b2u(rec.Bool())),
			int(b2u(rec.More())), int(rec.Bits(8)))
	}
	rep := NewReplay(rec.Trace())
	var got []int
	for i := 0; i < 50; i++ {
		got = append(got, rep.Int(2, 9), rep.Choice(4), int(b2u(rep.Bool())),
			int(b2u(rep.More())), int(rep.Bits(8)))
	}
	assert.Equal(t, want, got)
	assert.True(t, rep.Exhausted())
}

func TestEmptyReplayIsSimplest(t *testing.T) {
	rep := NewReplay(nil)
	assert.Equal(t, 3, rep.Int(3, 10))
	assert.Equal(t, 0, rep.Choice(5))
	assert.False(t, rep.Bool())
	assert.False(t, rep.More())
	assert.Zero(t, rep.Bits(64))
}

func TestReplayClampsOutOfRange(t *testing.T) {
	rep := NewReplay(Trace{100, 100})
	assert.Equal(t, 5, rep.Int(0, 5))
	assert.Equal(t, 2, rep.Choice(3))
}

func TestFind(t *testing.T) {
	v, seed, err := Find(1, 100, func(s Sampler) (int, error) {
		return s.Int(0, 9), nil
	}, func(v int) bool { return v == 7 })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, NewRandom(seed).Int(0, 9))

	_, _, err = Find(1, 10, func(s Sampler) (int, error) {
		return s.Int(0, 9), nil
	}, func(v int) bool { return v > 9 })
	assert.True(t, errors.Is(err, ErrNotFound))
}
