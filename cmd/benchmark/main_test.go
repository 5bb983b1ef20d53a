package main

import (
	"math/rand/v2"
	"testing"

	"github.com/limaJavier/npreductions/pkg/reduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	primary, second, err := parseHeader("33 70\n\n[SOURCE]")
	require.NoError(t, err)
	assert.Equal(t, 33, primary)
	assert.Equal(t, 70, second)

	_, _, err = parseHeader("33\n")
	assert.Error(t, err)
	_, _, err = parseHeader("a 1")
	assert.Error(t, err)
}

func TestFits(t *testing.T) {
	small := TestMetadata{Name: "small", Variables: 10, Clauses: 20}
	large := TestMetadata{Name: "large", Variables: 20, Clauses: 40}
	tsp := Pipeline{reduction.SatToHamCycleKind, reduction.HamCycleToHamCircuitKind, reduction.HamCircuitToTspKind}
	circuit := Pipeline{reduction.SatToHamCycleKind, reduction.HamCycleToHamCircuitKind}

	assert.True(t, fits(tsp, small, 10))
	assert.False(t, fits(tsp, large, 10))
	assert.True(t, fits(circuit, large, 10))
}

func TestMeasure(t *testing.T) {
	tests := getTests(rand.New(rand.NewPCG(1, 1)), 1)
	require.Len(t, tests, 4)

	for _, pipeline := range pipelines {
		result, err := measure(pipeline, tests[0])

		require.NoError(t, err)
		assert.Positive(t, result.Primary)
		assert.Positive(t, result.Second)
	}
}
