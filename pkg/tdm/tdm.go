package tdm

import (
	"strings"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/samber/lo"
)

const kind = "3dm"

type Triplet [3]string

// Matching is a 3-dimensional matching instance: a vertex set and the triplets a perfect matching may choose from
type Matching struct {
	Vertices []string
	Triplets []Triplet
}

// Occurrences counts, for every vertex, the triplets it belongs to
func (matching Matching) Occurrences() map[string]int {
	occurrences := make(map[string]int, len(matching.Vertices))
	for _, triplet := range matching.Triplets {
		for _, vertex := range triplet {
			occurrences[vertex]++
		}
	}
	return occurrences
}

func FormatInstance(matching Matching) string {
	return instance.Encode(
		len(matching.Vertices),
		len(matching.Triplets),
		matching.Vertices,
		lo.Map(matching.Triplets, func(triplet Triplet, _ int) string { return strings.Join(triplet[:], " ") }),
	)
}

func ParseInstance(text string) (Matching, error) {
	document, err := instance.Decode(kind, text)
	if err != nil {
		return Matching{}, err
	}

	vertices, rows, err := document.Split()
	if err != nil {
		return Matching{}, err
	}

	triplets := make([]Triplet, 0, len(rows))
	for _, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != 3 {
			return Matching{}, instance.NewFormatError(kind, "triplet row %q must have three fields", row)
		}
		triplets = append(triplets, Triplet{fields[0], fields[1], fields[2]})
	}

	return Matching{
		Vertices: lo.Map(vertices, func(vertex string, _ int) string { return strings.TrimSpace(vertex) }),
		Triplets: triplets,
	}, nil
}
