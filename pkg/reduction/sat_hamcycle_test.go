package reduction

import (
	"strings"
	"testing"

	"github.com/limaJavier/npreductions/pkg/gadget"
	"github.com/limaJavier/npreductions/pkg/graph"
	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatToHamCycle(t *testing.T) {
	t.Run("Single literal", func(t *testing.T) {
		//** Act
		output, err := Reduce(SatToHamCycleKind, "1 1\n\na\n\na")

		//** Assert
		require.NoError(t, err)
		expected := strings.Join([]string{
			"9 17", "",
			"[SOURCE]", "a[0]", "a[1]", "a[2]", "a[3]", "a[4]", "a[5]", "[TARGET]", "[CLAUSE][0]", "",
			"[SOURCE] a[0]", "[SOURCE] a[5]",
			"a[0] a[1]", "a[1] a[0]", "a[1] a[2]", "a[2] a[1]", "a[2] a[3]", "a[3] a[2]", "a[3] a[4]", "a[4] a[3]", "a[4] a[5]", "a[5] a[4]",
			"a[0] [TARGET]", "a[5] [TARGET]", "[TARGET] [SOURCE]",
			"a[2] [CLAUSE][0] [T]", "[CLAUSE][0] a[3] [T]",
		}, "\n")
		assert.Equal(t, expected, output)
	})

	t.Run("Example formula", func(t *testing.T) {
		//** Arrange
		expression, err := sat.ParseInstance(exampleInstance(t))
		require.NoError(t, err)

		//** Act
		g, err := SatToHamCycle(expression)

		//** Assert
		require.NoError(t, err)
		assert.Len(t, g.Vertices, 3*9+2+2+2)
		assert.Contains(t, g.Vertices, "[BETWEEN][a,b]")
		assert.Contains(t, g.Vertices, "[BETWEEN][b,c]")
		assert.Contains(t, g.Vertices, "[CLAUSE][1]")
		assert.Equal(t, 2, lo.CountBy(g.Vertices, func(vertex string) bool { return strings.HasPrefix(vertex, "[CLAUSE]") }))

		// Between-vertices are fed by the row-ends above and feed the row-ends below
		assert.Contains(t, g.Edges, graph.Edge(graph.SimpleEdge{From: "a[8]", To: "[BETWEEN][a,b]"}))
		assert.Contains(t, g.Edges, graph.Edge(graph.SimpleEdge{From: "[BETWEEN][a,b]", To: "b[0]"}))
		assert.Contains(t, g.Edges, graph.Edge(graph.SimpleEdge{From: "c[0]", To: "[TARGET]"}))

		// Negated literals jump in reverse through the clause
		assert.Contains(t, g.Edges, graph.Edge(graph.LabeledEdge{From: "a[6]", To: "[CLAUSE][1]", Label: gadget.FalseLabel}))
		assert.Contains(t, g.Edges, graph.Edge(graph.LabeledEdge{From: "[CLAUSE][1]", To: "a[5]", Label: gadget.FalseLabel}))
		assert.Contains(t, g.Edges, graph.Edge(graph.LabeledEdge{From: "b[5]", To: "[CLAUSE][1]", Label: gadget.TrueLabel}))
	})

	t.Run("Random expressions", func(t *testing.T) {
		for _, expression := range randomExpressions(30) {
			//** Act
			g, err := SatToHamCycle(expression)
			require.NoError(t, err)

			//** Assert
			n, k := len(expression.Variables), len(expression.Clauses)
			assert.Len(t, g.Vertices, n*(3*k+3)+(n-1)+2+k)
			assert.NoError(t, g.Validate())

			for _, variable := range expression.Variables {
				for j := range 3*k + 3 {
					vertex := gadget.Variable{Name: variable, Index: j}.String()
					assert.GreaterOrEqual(t, g.OutDegree(vertex), 2, vertex)
				}
			}
		}
	})
}
