package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
)

// Longest DIMACS line accepted, a single clause may list every variable
const maxDIMACSLine = 64 * 1024 * 1024

// ToDIMACS numbers variables from 1 in declaration order and writes the expression in DIMACS-CNF
func (expression Expression) ToDIMACS() (string, error) {
	if err := expression.Validate(); err != nil {
		return "", err
	}

	indices := make(map[string]int64, len(expression.Variables))
	for i, variable := range expression.Variables {
		indices[variable] = int64(i + 1)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", len(expression.Variables), len(expression.Clauses))
	for _, clause := range expression.Clauses {
		for _, literal := range clause {
			index := indices[literal.Name]
			if literal.Negated {
				index = -index
			}
			fmt.Fprintf(&builder, "%d ", index)
		}
		builder.WriteString("0\n")
	}
	return builder.String(), nil
}

// ParseDIMACS reads a DIMACS-CNF formula naming its variables x1..xn. Comment lines may appear
// anywhere and clauses may span several lines until their terminating 0
func ParseDIMACS(reader io.Reader) (Expression, error) {
	var (
		variables   int64 = -1
		maxVariable int64
		clauses     []Clause
		clause      Clause
	)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDIMACSLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip comments and empty lines
		if len(line) == 0 || line[0] == 'c' || line == "%" {
			continue
		}
		// Problem line
		if line[0] == 'p' {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return Expression{}, instance.NewFormatError("dimacs", "invalid problem line %q", line)
			}
			count, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || count < 0 {
				return Expression{}, instance.NewFormatError("dimacs", "invalid variable count %q", fields[2])
			}
			variables = count
			continue
		}
		// Clause line
		for _, field := range strings.Fields(line) {
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return Expression{}, instance.NewFormatError("dimacs", "invalid literal %q", field)
			}
			if value == 0 {
				if len(clause) > 0 {
					clauses = append(clauses, clause)
				}
				clause = nil
				continue
			}
			index := max(value, -value)
			maxVariable = max(maxVariable, index)
			clause = append(clause, Literal{Name: dimacsName(index), Negated: value < 0})
		}
	}
	if err := scanner.Err(); err != nil {
		return Expression{}, fmt.Errorf("cannot read dimacs: %w", err)
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if variables < 0 {
		variables = maxVariable
	} else if maxVariable > variables {
		return Expression{}, instance.NewFormatError("dimacs", "literal %d exceeds the declared %d variables", maxVariable, variables)
	}

	names := make([]string, variables)
	for i := range names {
		names[i] = dimacsName(int64(i + 1))
	}
	return Expression{Variables: names, Clauses: clauses}, nil
}

func dimacsName(index int64) string {
	return "x" + strconv.FormatInt(index, 10)
}
