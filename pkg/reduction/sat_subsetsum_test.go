package reduction

import (
	"testing"

	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/limaJavier/npreductions/pkg/subsetsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatToSubsetSum(t *testing.T) {
	t.Run("Example formula", func(t *testing.T) {
		output, err := Reduce(SatToSubsetSumKind, exampleInstance(t))

		require.NoError(t, err)
		assert.Equal(t, "10 5\n\n11133\n\n"+
			"10010\n10001\n01011\n01000\n00110\n00101\n"+
			"00010\n00010\n00001\n00001", output)
	})

	t.Run("Both polarities in one clause", func(t *testing.T) {
		expression := sat.Expression{
			Variables: []string{"a"},
			Clauses:   []sat.Clause{{{Name: "a"}, {Name: "a", Negated: true}}},
		}

		subsetSum, err := SatToSubsetSum(expression)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 1}, subsetSum.Numbers[0])
		assert.Equal(t, []int{1, 1}, subsetSum.Numbers[1])
	})

	t.Run("Random expressions", func(t *testing.T) {
		for _, expression := range randomExpressions(30) {
			//** Act
			output, err := Reduce(SatToSubsetSumKind, sat.FormatInstance(expression))
			require.NoError(t, err)
			subsetSum, err := subsetsum.ParseInstance(output)
			require.NoError(t, err)

			//** Assert
			n, m := len(expression.Variables), len(expression.Clauses)
			assert.Len(t, subsetSum.Numbers, 2*n+2*m)
			for _, number := range subsetSum.Numbers {
				assert.Len(t, number, n+m)
			}
			for i, digit := range subsetSum.Target {
				if i < n {
					assert.Equal(t, 1, digit)
				} else {
					assert.Equal(t, 3, digit)
				}
			}
		}
	})
}
