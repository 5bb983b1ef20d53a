package sat

import (
	"slices"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

type ParseOptions struct {
	IncludeNegations        bool `mapstructure:"includeNegations"`        // Keep the negation marker on extracted variable names
	RemoveDuplicateLiterals bool `mapstructure:"removeDuplicateLiterals"` // Drop repeated literals within a clause
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		IncludeNegations:        false,
		RemoveDuplicateLiterals: true,
	}
}

// ValidFormula checks whether the text is a well-formed formula
func ValidFormula(text string) bool {
	return formulaGrammar.Matches(text)
}

// ParseFormula builds an expression out of a free-form formula such as "(a or b or !c) and (not a || b)".
// Variables come out sorted and unique
func ParseFormula(text string, options ParseOptions) (Expression, error) {
	if !formulaGrammar.Matches(text) {
		return Expression{}, instance.NewFormatError(kind, "formula %q is not a conjunction of clauses of one to three literals", text)
	}

	clauses := formulaGrammar.Clauses(text)
	if options.RemoveDuplicateLiterals {
		clauses = lo.Map(clauses, func(clause Clause, _ int) Clause { return Clause(lo.Uniq(clause)) })
	}

	variables := make([]string, 0)
	for _, clause := range clauses {
		for _, literal := range clause {
			variable := literal.Name
			if options.IncludeNegations {
				variable = literal.String()
			}
			variables = append(variables, variable)
		}
	}
	variables = lo.Uniq(variables)
	slices.Sort(variables)

	return Expression{
		Variables: variables,
		Clauses:   clauses,
	}, nil
}
