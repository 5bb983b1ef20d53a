package reduction

import (
	"github.com/limaJavier/npreductions/pkg/gadget"
	"github.com/limaJavier/npreductions/pkg/graph"
)

type hamCycleToHamCircuitReducer struct{}

func NewHamCycleToHamCircuitReducer() Reducer {
	return &hamCycleToHamCircuitReducer{}
}

func (reducer *hamCycleToHamCircuitReducer) Reduce(input string) (string, error) {
	g, err := parseGraph(input)
	if err != nil {
		return "", err
	}

	circuit, err := HamCycleToHamCircuit(g)
	if err != nil {
		return "", err
	}
	return graph.FormatInstance(circuit), nil
}

// HamCycleToHamCircuit splits every vertex v into the path v[In] - v[Mid] - v[Out] and rewires every
// directed edge (u, v) into u[Out] - v[In], so that an undirected circuit must cross each triplet in order
func HamCycleToHamCircuit(g graph.Graph) (graph.Graph, error) {
	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}

	// Group the targets of the edges by their source, keeping the edges' order
	successors := make(map[string][]string, len(g.Vertices))
	for _, edge := range g.Edges {
		source, target := edge.Endpoints()
		successors[source] = append(successors[source], target)
	}

	vertices := make([]gadget.ID, 0, 3*len(g.Vertices))
	edges := make([]graph.Edge, 0, 2*len(g.Vertices)+len(g.Edges))
	connect := func(from, to gadget.ID) {
		edges = append(edges, graph.SimpleEdge{From: from.String(), To: to.String()})
	}

	for _, vertex := range g.Vertices {
		in := gadget.Split{Vertex: vertex, Part: gadget.In}
		mid := gadget.Split{Vertex: vertex, Part: gadget.Mid}
		out := gadget.Split{Vertex: vertex, Part: gadget.Out}

		// Add a triplet for each vertex and connect it
		vertices = append(vertices, in, mid, out)
		connect(in, mid)
		connect(mid, out)

		// Connect this[Out] to other[In] for every edge leaving the vertex
		for _, successor := range successors[vertex] {
			connect(out, gadget.Split{Vertex: successor, Part: gadget.In})
		}
	}

	circuit := graph.Graph{
		Vertices: gadget.Strings(vertices),
		Edges:    edges,
	}

	invariant(HamCycleToHamCircuitKind, len(circuit.Vertices) == 3*len(g.Vertices),
		"|V(out)| = 3|V(in)|, got %d for %d", len(circuit.Vertices), len(g.Vertices))
	invariant(HamCycleToHamCircuitKind, len(circuit.Edges) == 2*len(g.Vertices)+len(g.Edges),
		"|E(out)| = 2|V(in)| + |E(in)|, got %d for %d vertices and %d edges", len(circuit.Edges), len(g.Vertices), len(g.Edges))

	return circuit, nil
}
