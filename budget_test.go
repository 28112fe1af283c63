package ragged

import (
	"errors"
	"testing"

	"github.com/npillmayer/ragged/sampler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct{ lo, hi int }

func TestAllocateRespectsBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	for seed := int64(1); seed <= 200; seed++ {
		s := sampler.NewRandom(seed)
		a := Allocation{Budget: int(seed % 13), MinDraws: 1, MaxDraws: 4}
		items, total, err := Allocate(s, a, func(lo, hi int) (span, int, error) {
			return span{lo, hi}, s.Int(lo, hi), nil
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, total, a.Budget, "seed %d", seed)
		assert.GreaterOrEqual(t, len(items), a.MinDraws, "seed %d", seed)
		assert.LessOrEqual(t, len(items), a.MaxDraws, "seed %d", seed)
	}
}

func TestAllocateIsBoundedForZeroWeightDraws(t *testing.T) {
	s := sampler.NewRandom(1, sampler.WithContinueProbability(1))
	calls := 0
	items, total, err := Allocate(s, Allocation{Budget: 10, MaxDraws: 7}, func(lo, hi int) (int, int, error) {
		calls++
		return calls, 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Len(t, items, 7)
	assert.Equal(t, 7, calls)
}

func TestAllocateForcesMinimumDraws(t *testing.T) {
	s := sampler.NewRandom(1, sampler.WithContinueProbability(0))
	var spans []span
	items, total, err := Allocate(s, Allocation{Budget: 0, MinDraws: 2, MaxDraws: 4}, func(lo, hi int) (span, int, error) {
		spans = append(spans, span{lo, hi})
		return span{lo, hi}, 0, nil
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 0, total)
	assert.Equal(t, []span{{0, 0}, {0, 0}}, spans)
}

func TestAllocateStopsBelowMinimumSize(t *testing.T) {
	s := sampler.NewRandom(1, sampler.WithContinueProbability(1))
	items, total, err := Allocate(s, Allocation{Budget: 5, MinEach: 3, MaxDraws: 5}, func(lo, hi int) (span, int, error) {
		return span{lo, hi}, lo, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []span{{3, 5}}, items)
	assert.Equal(t, 3, total)
}

func TestAllocateCapsEachDraw(t *testing.T) {
	s := sampler.NewRandom(1, sampler.WithContinueProbability(1))
	items, total, err := Allocate(s, Allocation{Budget: 10, MaxEach: 4, MaxDraws: 5}, func(lo, hi int) (span, int, error) {
		return span{lo, hi}, hi, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []span{{0, 4}, {0, 4}, {0, 2}}, items)
	assert.Equal(t, 10, total)
}

func TestAllocatePanicsOnOvershoot(t *testing.T) {
	s := sampler.NewRandom(1)
	assert.Panics(t, func() {
		_, _, _ = Allocate(s, Allocation{Budget: 3, MinDraws: 1, MaxDraws: 1}, func(lo, hi int) (int, int, error) {
			return 0, hi + 1, nil
		})
	})
}

func TestAllocatePropagatesErrors(t *testing.T) {
	s := sampler.NewRandom(1)
	_, _, err := Allocate(s, Allocation{Budget: 3, MinDraws: 1, MaxDraws: 2}, func(lo, hi int) (int, int, error) {
		return 0, 0, ErrNoLeafKind
	})
	assert.True(t, errors.Is(err, ErrNoLeafKind))
}
