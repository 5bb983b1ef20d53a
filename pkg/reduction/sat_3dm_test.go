package reduction

import (
	"strings"
	"testing"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/limaJavier/npreductions/pkg/tdm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatTo3dm(t *testing.T) {
	t.Run("Example formula", func(t *testing.T) {
		//** Act
		output, err := Reduce(SatTo3dmKind, exampleInstance(t))
		require.NoError(t, err)
		matching, err := tdm.ParseInstance(output)
		require.NoError(t, err)

		//** Assert
		k, n, unusedTips := 2, 3, 2*2*3-6
		assert.Len(t, matching.Vertices, 4*k*n+2*k+2*unusedTips)
		assert.Len(t, matching.Triplets, 4*k*n)
		assert.Contains(t, matching.Triplets, tdm.Triplet{"a[C][3]", "a[C][0]", "a[T][3]"})
		assert.Contains(t, matching.Triplets, tdm.Triplet{"[C][0]", "[C'][0]", "b[T][0]"})
		assert.Contains(t, matching.Triplets, tdm.Triplet{"[C][1]", "[C'][1]", "c[T][3]"})
		assert.Contains(t, matching.Triplets, tdm.Triplet{"a[T][1]", "a[T][1][Q]", "a[T][1][Q']"})
	})

	t.Run("Matching property", func(t *testing.T) {
		for _, expression := range randomExpressions(30) {
			//** Act
			matching, err := SatTo3dm(expression)
			require.NoError(t, err)

			//** Assert
			k, n := len(expression.Clauses), len(expression.Variables)
			unusedTips := 2*k*n - expression.Literals()
			assert.GreaterOrEqual(t, len(matching.Vertices), 4*k*n+2*k+2*unusedTips)
			assert.Len(t, matching.Triplets, 4*k*n)

			occurrences := matching.Occurrences()
			for _, vertex := range matching.Vertices {
				switch {
				case strings.HasSuffix(vertex, "[Q]") || strings.HasSuffix(vertex, "[Q']"):
					assert.Equal(t, 1, occurrences[vertex], vertex)
				case strings.Contains(vertex, "[T]"):
					// One assignment triplet plus exactly one clause or garbage triplet
					assert.Equal(t, 2, occurrences[vertex], vertex)
				case strings.Contains(vertex, "]["):
					assert.GreaterOrEqual(t, occurrences[vertex], 1, vertex)
				}
			}
		}
	})

	t.Run("Repeated literal", func(t *testing.T) {
		expression := sat.Expression{
			Variables: []string{"a", "b"},
			Clauses:   []sat.Clause{{{Name: "a"}, {Name: "a"}, {Name: "b"}}},
		}

		_, err := SatTo3dm(expression)

		var formatError *instance.FormatError
		assert.ErrorAs(t, err, &formatError)
	})
}
