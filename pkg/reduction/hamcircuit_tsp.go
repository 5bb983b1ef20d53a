package reduction

import (
	"strconv"

	"github.com/limaJavier/npreductions/pkg/graph"
	"github.com/samber/lo"
)

const (
	circuitWeight = 1 // Weight of the pairs joined in the circuit graph
	detourWeight  = 2 // Weight of every other pair
)

type hamCircuitToTspReducer struct{}

func NewHamCircuitToTspReducer() Reducer {
	return &hamCircuitToTspReducer{}
}

func (reducer *hamCircuitToTspReducer) Reduce(input string) (string, error) {
	g, err := parseGraph(input)
	if err != nil {
		return "", err
	}

	complete, err := HamCircuitToTsp(g)
	if err != nil {
		return "", err
	}
	return graph.FormatInstance(complete), nil
}

// unorderedPair identifies an undirected edge regardless of the order of its endpoints
type unorderedPair [2]string

func newUnorderedPair(u, v string) unorderedPair {
	if v < u {
		u, v = v, u
	}
	return unorderedPair{u, v}
}

// HamCircuitToTsp completes the graph on the same vertex set, weighting 1 the pairs joined in the input and 2
// every other pair, so that a tour of cost |V| exists if and only if the input has a Hamiltonian circuit
func HamCircuitToTsp(g graph.Graph) (graph.Graph, error) {
	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}

	joined := make(map[unorderedPair]bool, len(g.Edges))
	for _, edge := range g.Edges {
		if source, target := edge.Endpoints(); source != target {
			joined[newUnorderedPair(source, target)] = true
		}
	}

	// Make a complete graph, vertices are unique so every pair i < j is emitted once in first-seen order
	edges := make([]graph.Edge, 0, len(g.Vertices)*(len(g.Vertices)-1)/2)
	for i, u := range g.Vertices {
		for _, v := range g.Vertices[i+1:] {
			pair := newUnorderedPair(u, v)
			weight := detourWeight
			if joined[pair] {
				weight = circuitWeight
			}
			edges = append(edges, graph.LabeledEdge{From: pair[0], To: pair[1], Label: strconv.Itoa(weight)})
		}
	}

	complete := graph.Graph{
		Vertices: append([]string{}, g.Vertices...),
		Edges:    edges,
	}

	vertexCount := len(complete.Vertices)
	invariant(HamCircuitToTspKind, len(complete.Edges) == vertexCount*(vertexCount-1)/2,
		"|E| = |V|(|V|-1)/2, got %d for %d vertices", len(complete.Edges), vertexCount)
	invariant(HamCircuitToTspKind, lo.EveryBy(complete.Edges, func(edge graph.Edge) bool {
		label := edge.Fields()[2]
		return label == strconv.Itoa(circuitWeight) || label == strconv.Itoa(detourWeight)
	}), "every weight must be %d or %d", circuitWeight, detourWeight)
	invariant(HamCircuitToTspKind, lo.CountBy(complete.Edges, func(edge graph.Edge) bool {
		return edge.Fields()[2] == strconv.Itoa(circuitWeight)
	}) == len(joined), "there must be one weight-%d edge for every joined pair", circuitWeight)

	return complete, nil
}
