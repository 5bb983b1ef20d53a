package sat

import (
	"fmt"
	"math/rand/v2"
)

// Generate builds a random 3-CNF expression over variables x1..xn whose clauses hold one to three literals,
// each on a distinct variable
func Generate(variables, clauses int, rng *rand.Rand) Expression {
	expression := Expression{
		Variables: make([]string, variables),
		Clauses:   make([]Clause, clauses),
	}
	for i := range variables {
		expression.Variables[i] = fmt.Sprintf("x%d", i+1)
	}
	if variables == 0 {
		expression.Clauses = []Clause{}
		return expression
	}

	for i := range clauses {
		size := min(rng.IntN(3)+1, variables)
		chosen := rng.Perm(variables)[:size]

		expression.Clauses[i] = make(Clause, 0, size)
		for _, variable := range chosen {
			expression.Clauses[i] = append(expression.Clauses[i], Literal{
				Name:    expression.Variables[variable],
				Negated: rng.Float32() < 0.5,
			})
		}
	}

	return expression
}
