package sat

import (
	"regexp"
	"strings"
)

// Building blocks of the free-form formula grammar
const (
	negationPattern = `(?:not\s+|!\s*)`
	literalPattern  = `(?:` + negationPattern + `?\w+)`
	orPattern       = `(?:\s+or\s+|\s*\|\|\s*)`
	andPattern      = `(?:\s*(?:and|&&)\s*)`
	clauseBody      = `(?:` + literalPattern + orPattern + `)?(?:` + literalPattern + orPattern + `)?` + literalPattern
	clausePattern   = `\(\s*(` + clauseBody + `)\s*\)`
)

// grammar recognizes formulas made of one or more parenthesized clauses of one to three literals
// joined by "and"/"&&", where literals are joined by "or"/"||" and may be negated by "not"/"!".
// Matching is case-insensitive and whitespace tolerant.
type grammar struct {
	formula *regexp.Regexp
	clause  *regexp.Regexp
	or      *regexp.Regexp
	literal *regexp.Regexp
}

var formulaGrammar = newGrammar()

func newGrammar() *grammar {
	return &grammar{
		formula: regexp.MustCompile(`(?i)^\s*(?:` + clausePattern + andPattern + `)*` + clausePattern + `\s*$`),
		clause:  regexp.MustCompile(`(?i)` + clausePattern),
		or:      regexp.MustCompile(`(?i)` + orPattern),
		literal: regexp.MustCompile(`(?i)^(not\s+|!\s*)?(\w+)$`),
	}
}

func (grammar *grammar) Matches(text string) bool {
	return grammar.formula.MatchString(text)
}

// Clauses returns the literals of every clause in order of appearance, the text must match the grammar
func (grammar *grammar) Clauses(text string) []Clause {
	clauses := make([]Clause, 0)
	for _, match := range grammar.clause.FindAllStringSubmatch(text, -1) {
		clause := make(Clause, 0, 3)
		for _, token := range grammar.or.Split(strings.TrimSpace(match[1]), -1) {
			parts := grammar.literal.FindStringSubmatch(strings.TrimSpace(token))
			if parts == nil {
				continue
			}
			clause = append(clause, Literal{Name: parts[2], Negated: parts[1] != ""})
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
