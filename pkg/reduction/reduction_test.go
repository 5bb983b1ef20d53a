package reduction

import (
	"errors"
	"fmt"
	"testing"

	"github.com/limaJavier/npreductions/pkg/graph"
	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Run("Every kind is supported", func(t *testing.T) {
		for _, kind := range Kinds() {
			assert.True(t, kind.Supported(), kind)

			reducer, err := NewReducer(kind)
			require.NoError(t, err)
			assert.NotNil(t, reducer)
		}
	})

	t.Run("Unsupported kind", func(t *testing.T) {
		_, err := Reduce(Kind("3SAT-Clique"), exampleInstance(t))

		var unsupported *UnsupportedReductionError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, Kind("3SAT-Clique"), unsupported.Kind)
	})

	t.Run("Malformed input", func(t *testing.T) {
		inputs := map[Kind]string{
			SatToHamCycleKind:        "0 0",
			SatToSubsetSumKind:       "1 1\n\na\n\nb",
			SatTo3dmKind:             "",
			HamCycleToHamCircuitKind: "1 1\n\na\n\na b",
			HamCircuitToTspKind:      "2 0\n\na\na",
		}

		for kind, input := range inputs {
			_, err := Reduce(kind, input)

			var formatError *instance.FormatError
			assert.True(t, errors.As(err, &formatError), "kind %v", kind)
		}
	})
}

func TestChain(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Act
		output, err := Chain(exampleInstance(t), SatToHamCycleKind, HamCycleToHamCircuitKind, HamCircuitToTspKind)

		//** Assert
		require.NoError(t, err)
		complete, err := graph.ParseInstance(output)
		require.NoError(t, err)
		assert.Len(t, complete.Vertices, 3*33)
		assert.Len(t, complete.Edges, 99*98/2)
	})

	t.Run("No reductions", func(t *testing.T) {
		output, err := Chain("anything")

		require.NoError(t, err)
		assert.Equal(t, "anything", output)
	})

	t.Run("Incompatible chain", func(t *testing.T) {
		_, err := Chain(exampleInstance(t), SatToSubsetSumKind, HamCircuitToTspKind)

		var incompatible *IncompatibleChainError
		require.True(t, errors.As(err, &incompatible))
		assert.Equal(t, SatToSubsetSumKind, incompatible.Previous)
		assert.Equal(t, HamCircuitToTspKind, incompatible.Next)
	})

	t.Run("Unsupported kind", func(t *testing.T) {
		_, err := Chain(exampleInstance(t), SatToHamCycleKind, Kind("HamCycle-Clique"))

		var unsupported *UnsupportedReductionError
		assert.True(t, errors.As(err, &unsupported))
	})
}

func TestReduceAll(t *testing.T) {
	//** Arrange
	inputs := make([]string, 0)
	for variables := 1; variables <= 8; variables++ {
		lines := ""
		for i := range variables {
			lines += fmt.Sprintf("v%d\n", i)
		}
		inputs = append(inputs, fmt.Sprintf("%d 1\n\n%v\nv0", variables, lines))
	}
	inputs = append(inputs, "not an instance")

	for _, workers := range []int{0, 1, 3} {
		//** Act
		results := ReduceAll(SatToHamCycleKind, inputs, workers)

		//** Assert
		require.Len(t, results, len(inputs))
		for i, result := range results[:len(results)-1] {
			require.NoError(t, result.Err)
			g, err := graph.ParseInstance(result.Output)
			require.NoError(t, err)

			n := i + 1
			assert.Len(t, g.Vertices, n*6+(n-1)+2+1)
		}
		assert.Error(t, results[len(results)-1].Err)
	}
}

func TestInvariantViolation(t *testing.T) {
	assert.PanicsWithError(t, "invariant violated in 3SAT-3DM: tip a[T][9] does not exist", func() {
		invariant(SatTo3dmKind, false, "tip %v does not exist", "a[T][9]")
	})
	assert.NotPanics(t, func() {
		invariant(SatTo3dmKind, true, "unreachable")
	})
}
