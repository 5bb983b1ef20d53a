package sat

import (
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

// FormatInstance writes the expression in the canonical instance format: variable and clause counts,
// one variable per line and one space-separated clause per line
func FormatInstance(expression Expression) string {
	return instance.Encode(
		len(expression.Variables),
		len(expression.Clauses),
		expression.Variables,
		lo.Map(expression.Clauses, func(clause Clause, _ int) string { return clause.String() }),
	)
}

// ParseInstance reads an expression written by FormatInstance, variables keep the given order
func ParseInstance(text string) (Expression, error) {
	document, err := instance.Decode(kind, text)
	if err != nil {
		return Expression{}, err
	}

	variables, clauseLines, err := document.Split()
	if err != nil {
		return Expression{}, err
	}

	clauses := make([]Clause, 0, len(clauseLines))
	for _, line := range clauseLines {
		clause := make(Clause, 0, 3)
		for _, token := range strings.Fields(line) {
			literal, err := ParseLiteral(token)
			if err != nil {
				return Expression{}, err
			}
			clause = append(clause, literal)
		}
		clauses = append(clauses, clause)
	}

	return Expression{
		Variables: lo.Map(variables, func(variable string, _ int) string { return strings.TrimSpace(variable) }),
		Clauses:   clauses,
	}, nil
}
