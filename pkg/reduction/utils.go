package reduction

import (
	"github.com/limaJavier/npreductions/pkg/graph"
	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/limaJavier/npreductions/pkg/sat"
)

// parseExpression reads a SAT instance that reductions can build gadgets for
func parseExpression(input string) (sat.Expression, error) {
	expression, err := sat.ParseInstance(input)
	if err != nil {
		return sat.Expression{}, err
	}
	return expression, validateExpression(expression)
}

func validateExpression(expression sat.Expression) error {
	if err := expression.Validate(); err != nil {
		return err
	}
	if len(expression.Variables) == 0 {
		return instance.NewFormatError("sat", "expression has no variables")
	}
	return nil
}

func parseGraph(input string) (graph.Graph, error) {
	g, err := graph.ParseInstance(input)
	if err != nil {
		return graph.Graph{}, err
	}
	return g, g.Validate()
}

func outDegrees(g graph.Graph) map[string]int {
	degrees := make(map[string]int, len(g.Vertices))
	for _, edge := range g.Edges {
		source, _ := edge.Endpoints()
		degrees[source]++
	}
	return degrees
}
