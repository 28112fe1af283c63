package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	opts := &Options{Seed: 7, Format: "yaml"}
	var out bytes.Buffer
	require.NoError(t, run(&out, opts))
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "length: "), s)
	assert.Contains(t, s, "form:\n")
	assert.Contains(t, s, "buffers:\n")
	//
	var again bytes.Buffer
	require.NoError(t, run(&again, opts))
	assert.Equal(t, s, again.String(), "same seed must print the same array")
}

func TestRunConsole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	for seed := 1; seed <= 20; seed++ {
		for _, virt := range []bool{false, true} {
			var out bytes.Buffer
			require.NoError(t, run(&out, &Options{Seed: seed, Format: "console", Virtual: virt}),
				"seed %d, virtual %v", seed, virt)
			assert.True(t, strings.HasSuffix(out.String(), "\n"), out.String())
			assert.Contains(t, out.String(), " len=")
		}
	}
	var out bytes.Buffer
	require.NoError(t, run(&out, &Options{Seed: 1}), "console is the default format")
	assert.NotEmpty(t, out.String())
}

func TestRunVirtualDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	var out bytes.Buffer
	require.NoError(t, run(&out, &Options{Seed: 11, Format: "dot", Virtual: true}))
	assert.True(t, strings.HasPrefix(out.String(), "strict digraph"), out.String())
}

func TestRunErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	var out bytes.Buffer
	assert.Error(t, run(&out, &Options{Seed: 1, Format: "pdf"}))
	assert.Error(t, run(&out, &Options{Seed: 1, Format: "yaml", Config: "/does/not/exist.yaml"}))
}

func TestMainCommandDeclaresOptions(t *testing.T) {
	assert.NotNil(t, MainCommand())
}
