package sat

import (
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

const (
	kind           = "sat"
	NegationMarker = "!"
)

type Literal struct {
	Name    string
	Negated bool
}

func (literal Literal) String() string {
	if literal.Negated {
		return NegationMarker + literal.Name
	}
	return literal.Name
}

// ParseLiteral reads a literal in its canonical form, i.e. a name optionally prefixed by the negation marker
func ParseLiteral(token string) (Literal, error) {
	name, negated := strings.CutPrefix(token, NegationMarker)
	if name == "" || strings.ContainsAny(name, " \t") {
		return Literal{}, instance.NewFormatError(kind, "invalid literal %q", token)
	}
	return Literal{Name: name, Negated: negated}, nil
}

type Clause []Literal

func (clause Clause) String() string {
	return strings.Join(lo.Map(clause, func(literal Literal, _ int) string { return literal.String() }), " ")
}

// Contains checks whether the clause holds the exact literal (same name and polarity)
func (clause Clause) Contains(literal Literal) bool {
	return lo.Contains(clause, literal)
}

type Expression struct {
	Variables []string
	Clauses   []Clause
}

// Validate checks that variables are unique, clauses are not empty and every literal refers to a declared variable
func (expression Expression) Validate() error {
	declared := make(map[string]bool, len(expression.Variables))
	for _, variable := range expression.Variables {
		if declared[variable] {
			return instance.NewFormatError(kind, "variable %q is declared more than once", variable)
		}
		declared[variable] = true
	}

	for i, clause := range expression.Clauses {
		if len(clause) == 0 {
			return instance.NewFormatError(kind, "clause %d is empty", i)
		}
		if literal, ok := lo.Find(clause, func(literal Literal) bool { return !declared[literal.Name] }); ok {
			return instance.NewFormatError(kind, "clause %d refers to undeclared variable %q", i, literal.Name)
		}
	}
	return nil
}

// Literals returns the total amount of literals across all clauses
func (expression Expression) Literals() int {
	return lo.SumBy(expression.Clauses, func(clause Clause) int { return len(clause) })
}
