package reduction

import (
	"github.com/limaJavier/npreductions/pkg/gadget"
	"github.com/limaJavier/npreductions/pkg/graph"
	"github.com/limaJavier/npreductions/pkg/sat"
)

type satToHamCycleReducer struct{}

func NewSatToHamCycleReducer() Reducer {
	return &satToHamCycleReducer{}
}

func (reducer *satToHamCycleReducer) Reduce(input string) (string, error) {
	expression, err := parseExpression(input)
	if err != nil {
		return "", err
	}

	g, err := SatToHamCycle(expression)
	if err != nil {
		return "", err
	}
	return graph.FormatInstance(g), nil
}

// SatToHamCycle builds a directed graph with one two-way row of 3k+3 vertices per variable, where traversing
// a row forward stands for true and backwards for false. Consecutive rows are linked through a between-vertex,
// the first row is entered from the source, the last row exits into the target and the target closes the cycle
// back into the source. Each clause gets a vertex that literal jumps detour through on the matching traversal direction
func SatToHamCycle(expression sat.Expression) (graph.Graph, error) {
	if err := validateExpression(expression); err != nil {
		return graph.Graph{}, err
	}

	n, k := len(expression.Variables), len(expression.Clauses)
	rowVertexCount := 3*k + 3
	lastRowIndex := rowVertexCount - 1

	vertices := make([]gadget.ID, 0, n*rowVertexCount+n+1+k)
	edges := make([]graph.Edge, 0)

	connect := func(from, to gadget.ID) {
		edges = append(edges, graph.SimpleEdge{From: from.String(), To: to.String()})
	}
	jump := func(from, to gadget.ID, label string) {
		edges = append(edges, graph.LabeledEdge{From: from.String(), To: to.String(), Label: label})
	}
	rowStart := func(layer int) gadget.ID {
		return gadget.Variable{Name: expression.Variables[layer], Index: 0}
	}
	rowEnd := func(layer int) gadget.ID {
		return gadget.Variable{Name: expression.Variables[layer], Index: lastRowIndex}
	}

	for i, variable := range expression.Variables {
		//** Wire the vertex above the row into both row-ends
		var above gadget.ID = gadget.Source{}
		if i > 0 {
			above = gadget.Between{Above: expression.Variables[i-1], Below: variable}
			// The previous row leaves through either of its ends into the between-vertex
			connect(rowStart(i-1), above)
			connect(rowEnd(i-1), above)
		}
		vertices = append(vertices, above)
		connect(above, rowStart(i))
		connect(above, rowEnd(i))

		//** Build the row, consecutive vertices are connected both ways
		for j := range rowVertexCount {
			vertices = append(vertices, gadget.Variable{Name: variable, Index: j})
		}
		for j := range rowVertexCount - 1 {
			current, next := gadget.Variable{Name: variable, Index: j}, gadget.Variable{Name: variable, Index: j + 1}
			connect(current, next)
			connect(next, current)
		}
	}

	//** Exit the last row into the target and close the cycle
	vertices = append(vertices, gadget.Target{})
	connect(rowStart(n-1), gadget.Target{})
	connect(rowEnd(n-1), gadget.Target{})
	connect(gadget.Target{}, gadget.Source{})

	//** Add the clause vertices and the literal jumps through them
	for i, clause := range expression.Clauses {
		clauseVertex := gadget.Clause{Index: i}
		vertices = append(vertices, clauseVertex)

		for _, literal := range clause {
			left := gadget.Variable{Name: literal.Name, Index: 3*i + 2}
			right := gadget.Variable{Name: literal.Name, Index: 3*i + 3}
			if !literal.Negated {
				jump(left, clauseVertex, gadget.TrueLabel)
				jump(clauseVertex, right, gadget.TrueLabel)
			} else {
				jump(right, clauseVertex, gadget.FalseLabel)
				jump(clauseVertex, left, gadget.FalseLabel)
			}
		}
	}

	g := graph.Graph{
		Vertices: gadget.Strings(vertices),
		Edges:    edges,
	}

	invariant(SatToHamCycleKind, len(g.Vertices) == n*rowVertexCount+(n-1)+2+k,
		"|V| = n(3k+3) + (n-1) + 2 + k, got %d for n=%d, k=%d", len(g.Vertices), n, k)
	invariant(SatToHamCycleKind, len(g.Edges) == 2*n*(rowVertexCount-1)+4*(n-1)+5+2*expression.Literals(),
		"|E| = 2n(3k+2) + 4(n-1) + 5 + 2L, got %d", len(g.Edges))

	degrees := outDegrees(g)
	for _, variable := range expression.Variables {
		for j := range rowVertexCount {
			vertex := gadget.Variable{Name: variable, Index: j}.String()
			invariant(SatToHamCycleKind, degrees[vertex] >= 2, "row vertex %v has out-degree %d", vertex, degrees[vertex])
		}
	}

	return g, nil
}
