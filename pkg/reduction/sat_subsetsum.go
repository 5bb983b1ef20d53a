package reduction

import (
	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/limaJavier/npreductions/pkg/subsetsum"
	"github.com/samber/lo"
)

const (
	variableTargetDigit = 1 // Exactly one of x and not-x is chosen
	clauseTargetDigit   = 3 // One to three true literals plus slack
)

type satToSubsetSumReducer struct{}

func NewSatToSubsetSumReducer() Reducer {
	return &satToSubsetSumReducer{}
}

func (reducer *satToSubsetSumReducer) Reduce(input string) (string, error) {
	expression, err := parseExpression(input)
	if err != nil {
		return "", err
	}

	subsetSum, err := SatToSubsetSum(expression)
	if err != nil {
		return "", err
	}
	return subsetsum.FormatInstance(subsetSum)
}

// SatToSubsetSum encodes n variables and m clauses as numbers of n+m digits. Each variable i yields x and not-x,
// both with a 1 at digit i and a 1 at digit n+j for every clause j holding the respective literal. Each clause j
// yields two slack numbers with a single 1 at digit n+j. The target has 1 at every variable digit and 3 at every
// clause digit
func SatToSubsetSum(expression sat.Expression) (subsetsum.SubsetSum, error) {
	if err := validateExpression(expression); err != nil {
		return subsetsum.SubsetSum{}, err
	}

	n, m := len(expression.Variables), len(expression.Clauses)
	width := n + m
	numbers := make([][]int, 0, 2*n+2*m)

	for i, variable := range expression.Variables {
		positive, negative := make([]int, width), make([]int, width)
		positive[i], negative[i] = 1, 1

		for j, clause := range expression.Clauses {
			if clause.Contains(sat.Literal{Name: variable}) {
				positive[n+j] = 1
			}
			if clause.Contains(sat.Literal{Name: variable, Negated: true}) {
				negative[n+j] = 1
			}
		}
		numbers = append(numbers, positive, negative)
	}

	for j := range m {
		slack := make([]int, width)
		slack[n+j] = 1
		numbers = append(numbers, slack, append([]int{}, slack...))
	}

	target := make([]int, width)
	for i := range width {
		target[i] = lo.Ternary(i < n, variableTargetDigit, clauseTargetDigit)
	}

	invariant(SatToSubsetSumKind, len(numbers) == 2*n+2*m,
		"there should be two numbers for every variable and clause, got %d for n=%d, m=%d", len(numbers), n, m)
	invariant(SatToSubsetSumKind, lo.EveryBy(numbers, func(number []int) bool { return len(number) == width }),
		"every number must have %d digits", width)

	return subsetsum.SubsetSum{Target: target, Numbers: numbers}, nil
}
