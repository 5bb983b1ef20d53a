package reduction

import (
	"math/rand/v2"
	"testing"

	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/stretchr/testify/require"
)

const exampleFormula = "(a or b or c) and (not a or b or not c)"

func exampleInstance(t *testing.T) string {
	t.Helper()
	expression, err := sat.ParseFormula(exampleFormula, sat.DefaultParseOptions())
	require.NoError(t, err)
	return sat.FormatInstance(expression)
}

// randomExpressions generates reproducible expressions of up to six variables and six clauses
func randomExpressions(count int) []sat.Expression {
	rng := rand.New(rand.NewPCG(42, 7))
	expressions := make([]sat.Expression, 0, count)
	for range count {
		expressions = append(expressions, sat.Generate(rng.IntN(6)+1, rng.IntN(6)+1, rng))
	}
	return expressions
}
