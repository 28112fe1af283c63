package ragged

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/sampler"
	"github.com/npillmayer/ragged/virtual"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestTreeRandomizedProperty -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzTreeProperties -fuzztime=10s

type profile struct {
	name      string
	maxWeight int
	maxDepth  int
	opts      []Option
	disabled  []content.Kind
}

var profiles = []profile{
	{name: "defaults", maxWeight: DefaultMaxWeight, maxDepth: DefaultMaxDepth},
	{name: "large", maxWeight: 40, maxDepth: 6, opts: []Option{WithMaxVariants(6), WithMaxFields(6)}},
	{name: "shallow", maxWeight: 20, maxDepth: 1},
	{name: "no-unions", maxWeight: 20, maxDepth: 5,
		opts: []Option{AllowUnion(false)}, disabled: []content.Kind{content.KindUnion}},
	{name: "lists-only", maxWeight: 15, maxDepth: 4,
		opts: []Option{AllowRecord(false), AllowUnion(false), AllowEmpty(false)},
		disabled: []content.Kind{content.KindRecord, content.KindUnion, content.KindEmpty}},
	{name: "strings", maxWeight: 12, maxDepth: 3,
		opts: []Option{AllowNumeric(false), AllowFixedList(false), ScatteredRanges(true)},
		disabled: []content.Kind{content.KindNumeric, content.KindFixedList}},
	{name: "nan", maxWeight: 30, maxDepth: 3, opts: []Option{AllowNaN(true), AllowTuple(false)}},
	{name: "capped-records", maxWeight: 20, maxDepth: 3,
		opts: []Option{WithRecordMaxLength(1), AllowOffsetList(false), AllowStartStopList(false)},
		disabled: []content.Kind{content.KindOffsetList, content.KindStartStopList}},
}

func (p profile) options() []Option {
	return append([]Option{WithMaxWeight(p.maxWeight), WithMaxDepth(p.maxDepth)}, p.opts...)
}

func (p profile) allowNaN() bool {
	return newConfig(p.options()).allowNaN
}

func assertTreeProperties(t *testing.T, p profile, seed int64, c content.Content) {
	t.Helper()
	if err := content.Check(c); err != nil {
		t.Fatalf("%s/seed %d: invalid tree: %v", p.name, seed, err)
	}
	if w := content.Weight(c); w > p.maxWeight {
		t.Fatalf("%s/seed %d: weight %d exceeds %d", p.name, seed, w, p.maxWeight)
	}
	if d := content.Depth(c); d > p.maxDepth {
		t.Fatalf("%s/seed %d: depth %d exceeds %d", p.name, seed, d, p.maxDepth)
	}
	for _, k := range p.disabled {
		if n := content.Count(c, k); n > 0 {
			t.Fatalf("%s/seed %d: %d nodes of disabled kind %s", p.name, seed, n, k)
		}
	}
	if !p.allowNaN() && (content.AnyNaN(c) || content.AnyNaT(c)) {
		t.Fatalf("%s/seed %d: NaN or NaT in tree", p.name, seed)
	}
	for n := range content.Walk(c) {
		switch n := n.(type) {
		case *content.Union:
			for _, v := range n.Contents() {
				if v.Kind() == content.KindUnion {
					t.Fatalf("%s/seed %d: union directly contains a union", p.name, seed)
				}
			}
		case *content.FixedList:
			if n.Size() > 0 && (n.Child().Len()%n.Size() != 0 || n.Len() != n.Child().Len()/n.Size()) {
				t.Fatalf("%s/seed %d: invalid fixed list", p.name, seed)
			}
		case *content.Record:
			if limit := newConfig(p.options()).recordMaxLength; limit >= 0 && n.Len() > limit {
				t.Fatalf("%s/seed %d: record length %d exceeds cap %d", p.name, seed, n.Len(), limit)
			}
		}
	}
}

func TestTreeRandomizedProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	for _, p := range profiles {
		for seed := int64(1); seed <= 150; seed++ {
			c, err := Contents(sampler.NewRandom(seed), p.options()...)
			if err != nil {
				t.Fatalf("%s/seed %d: %v", p.name, seed, err)
			}
			assertTreeProperties(t, p, seed, c)
		}
	}
}

func TestReplayReproducesTree(t *testing.T) {
	for _, p := range profiles {
		for seed := int64(1); seed <= 40; seed++ {
			rec := sampler.Record(sampler.NewRandom(seed))
			c, err := Contents(rec, p.options()...)
			require.NoError(t, err)
			replay := sampler.NewReplay(rec.Trace())
			again, err := Contents(replay, p.options()...)
			require.NoError(t, err)
			if !content.Equal(c, again) {
				t.Fatalf("%s/seed %d: replay produced a different tree", p.name, seed)
			}
			if !replay.Exhausted() {
				t.Fatalf("%s/seed %d: replay did not consume the complete trace", p.name, seed)
			}
		}
	}
}

func TestEmptyTraceYieldsMinimalTree(t *testing.T) {
	c, err := Contents(sampler.NewReplay(nil))
	require.NoError(t, err)
	if !c.Kind().IsLeaf() || c.Len() != 0 {
		t.Errorf("expected an empty leaf, got %s of length %d", c.Kind(), c.Len())
	}
}

func TestZeroWeightYieldsEmptyLeaf(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		c, err := Contents(sampler.NewRandom(seed), WithMaxWeight(0))
		require.NoError(t, err)
		if !c.Kind().IsLeaf() || c.Len() != 0 {
			t.Fatalf("seed %d: expected length-0 leaf, got %s of length %d", seed, c.Kind(), c.Len())
		}
	}
}

func TestZeroDepthYieldsLeaf(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		c, err := Contents(sampler.NewRandom(seed), WithMaxDepth(0), WithMaxWeight(20))
		require.NoError(t, err)
		if !c.Kind().IsLeaf() {
			t.Fatalf("seed %d: expected a leaf, got %s", seed, c.Kind())
		}
	}
}

func TestNoWrappersYieldsLeaf(t *testing.T) {
	opts := []Option{AllowFixedList(false), AllowOffsetList(false), AllowStartStopList(false),
		AllowRecord(false), AllowUnion(false)}
	for seed := int64(1); seed <= 30; seed++ {
		c, err := Contents(sampler.NewRandom(seed), opts...)
		require.NoError(t, err)
		if !c.Kind().IsLeaf() {
			t.Fatalf("seed %d: expected a leaf, got %s", seed, c.Kind())
		}
	}
}

func hasNestedUnion(c content.Content) bool {
	for n := range content.Walk(c) {
		u, ok := n.(*content.Union)
		if !ok {
			continue
		}
		for _, v := range u.Contents() {
			for d := range content.Walk(v) {
				if d != v && d.Kind() == content.KindUnion {
					return true
				}
			}
		}
	}
	return false
}

func TestFindNestedUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	build := func(s sampler.Sampler) (content.Content, error) {
		return Contents(s, AllowUnion(true), WithMaxWeight(20), WithMaxDepth(5))
	}
	c, seed, err := sampler.Find(1, 5000, build, hasNestedUnion)
	require.NoError(t, err, "no tree with a union below a union")
	t.Logf("nested union found with seed %d", seed)
	require.NoError(t, content.Check(c))
}

func TestFindFixedListOfSizeTwo(t *testing.T) {
	build := func(s sampler.Sampler) (content.Content, error) {
		return Contents(s, WithMaxWeight(6), AllowOffsetList(false), AllowStartStopList(false),
			AllowRecord(false), AllowUnion(false))
	}
	pred := func(c content.Content) bool {
		for n := range content.Walk(c) {
			if l, ok := n.(*content.FixedList); ok && l.Size() == 2 && l.Child().Len() == 6 && l.Len() == 3 {
				return true
			}
		}
		return false
	}
	_, seed, err := sampler.Find(1, 5000, build, pred)
	require.NoError(t, err, "no fixed list of size 2 over 6 elements")
	t.Logf("fixed list found with seed %d", seed)
}

func TestArraysRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	lazy := 0
	for seed := int64(1); seed <= 60; seed++ {
		c, err := Contents(sampler.NewRandom(seed), WithMaxWeight(15))
		require.NoError(t, err)
		p, err := Arrays(sampler.NewRandom(seed), WithMaxWeight(15))
		require.NoError(t, err)
		lazy += len(p.Lazy())
		plain, err := Arrays(sampler.NewRandom(seed), WithMaxWeight(15), AllowVirtual(false))
		require.NoError(t, err)
		if len(plain.Lazy()) != 0 {
			t.Fatalf("seed %d: lazy buffers although virtual arrays are disabled", seed)
		}
		if diff := cmp.Diff(plain.Form, p.Form); diff != "" {
			t.Fatalf("seed %d: virtualization changed the form (-plain +virtual):\n%s", seed, diff)
		}
		if p.Length != c.Len() {
			t.Fatalf("seed %d: length %d, tree has %d", seed, p.Length, c.Len())
		}
		back, err := virtual.FromBuffers(p)
		require.NoError(t, err)
		if !content.Equal(c, back) {
			t.Fatalf("seed %d: projection does not reproduce the tree", seed)
		}
	}
	if lazy == 0 {
		t.Errorf("expected some lazy buffers over 60 seeds")
	}
}

func FuzzTreeProperties(f *testing.F) {
	f.Add(int64(1), uint8(10), uint8(5))
	f.Add(int64(7), uint8(0), uint8(3))
	f.Add(int64(42), uint8(40), uint8(0))
	f.Add(int64(99), uint8(25), uint8(8))
	f.Fuzz(func(t *testing.T, seed int64, weight, depth uint8) {
		p := profile{name: "fuzz", maxWeight: int(weight % 64), maxDepth: int(depth % 10)}
		if seed == 0 {
			seed = 1
		}
		c, err := Contents(sampler.NewRandom(seed), p.options()...)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		assertTreeProperties(t, p, seed, c)
	})
}
