package graph

import (
	"slices"
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

// ParseLines reads a free-form graph where every non-empty line is either a singleton vertex
// or an edge "u v" that implicitly declares both endpoints. Vertices come out sorted and edges
// keep their first-seen order without duplicates
func ParseLines(text string) (Graph, error) {
	vertices := make([]string, 0)
	edges := make([]Edge, 0)

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		switch len(words) {
		case 0:
			continue
		case 1:
			vertices = append(vertices, words[0])
		case 2:
			vertices = append(vertices, words[0], words[1])
			edges = append(edges, SimpleEdge{From: words[0], To: words[1]})
		default:
			return Graph{}, instance.NewFormatError(kind, "line %q has %d words: not supported outside canonical 3-tuple instance formats", line, len(words))
		}
	}

	vertices = lo.Uniq(vertices)
	slices.Sort(vertices)

	return Graph{
		Vertices: vertices,
		Edges:    lo.Uniq(edges),
	}, nil
}

// FormatInstance writes the graph in the canonical instance format keeping its vertex and edge order
func FormatInstance(graph Graph) string {
	return instance.Encode(
		len(graph.Vertices),
		len(graph.Edges),
		graph.Vertices,
		lo.Map(graph.Edges, func(edge Edge, _ int) string { return strings.Join(edge.Fields(), " ") }),
	)
}

// ParseInstance reads a graph written by FormatInstance, rows with two fields become simple edges
// and rows with three fields become labeled edges
func ParseInstance(text string) (Graph, error) {
	document, err := instance.Decode(kind, text)
	if err != nil {
		return Graph{}, err
	}

	vertices, rows, err := document.Split()
	if err != nil {
		return Graph{}, err
	}

	edges := make([]Edge, 0, len(rows))
	for _, row := range rows {
		fields := strings.Fields(row)
		switch len(fields) {
		case 2:
			edges = append(edges, SimpleEdge{From: fields[0], To: fields[1]})
		case 3:
			edges = append(edges, LabeledEdge{From: fields[0], To: fields[1], Label: fields[2]})
		default:
			return Graph{}, instance.NewFormatError(kind, "edge row %q must have two or three fields", row)
		}
	}

	return Graph{
		Vertices: lo.Map(vertices, func(vertex string, _ int) string { return strings.TrimSpace(vertex) }),
		Edges:    edges,
	}, nil
}
