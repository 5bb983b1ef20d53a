package graph

import (
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

const kind = "graph"

// Edge is either a SimpleEdge or a LabeledEdge, the variant is chosen explicitly by whoever builds the edge
type Edge interface {
	// Returns the source and the target vertices
	Endpoints() (source, target string)
	// Returns the edge as the fields of an instance row
	Fields() []string
}

type SimpleEdge struct {
	From string
	To   string
}

func (edge SimpleEdge) Endpoints() (string, string) {
	return edge.From, edge.To
}

func (edge SimpleEdge) Fields() []string {
	return []string{edge.From, edge.To}
}

// LabeledEdge carries a third field used by reductions to annotate polarity or weight
type LabeledEdge struct {
	From  string
	To    string
	Label string
}

func (edge LabeledEdge) Endpoints() (string, string) {
	return edge.From, edge.To
}

func (edge LabeledEdge) Fields() []string {
	return []string{edge.From, edge.To, edge.Label}
}

type Graph struct {
	Vertices []string
	Edges    []Edge
}

// Validate checks that vertices are unique and every edge joins declared vertices
func (graph Graph) Validate() error {
	declared := make(map[string]bool, len(graph.Vertices))
	for _, vertex := range graph.Vertices {
		if declared[vertex] {
			return instance.NewFormatError(kind, "vertex %q is declared more than once", vertex)
		}
		declared[vertex] = true
	}

	for _, edge := range graph.Edges {
		source, target := edge.Endpoints()
		if !declared[source] || !declared[target] {
			return instance.NewFormatError(kind, "edge %q refers to an undeclared vertex", strings.Join(edge.Fields(), " "))
		}
	}
	return nil
}

// OutDegree counts the edges leaving the vertex
func (graph Graph) OutDegree(vertex string) int {
	return lo.CountBy(graph.Edges, func(edge Edge) bool {
		source, _ := edge.Endpoints()
		return source == vertex
	})
}

// InDegree counts the edges entering the vertex
func (graph Graph) InDegree(vertex string) int {
	return lo.CountBy(graph.Edges, func(edge Edge) bool {
		_, target := edge.Endpoints()
		return target == vertex
	})
}
