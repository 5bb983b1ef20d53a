package reduction

import (
	"github.com/limaJavier/npreductions/pkg/gadget"
	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/limaJavier/npreductions/pkg/tdm"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

type satTo3dmReducer struct{}

func NewSatTo3dmReducer() Reducer {
	return &satTo3dmReducer{}
}

func (reducer *satTo3dmReducer) Reduce(input string) (string, error) {
	expression, err := parseExpression(input)
	if err != nil {
		return "", err
	}

	matching, err := SatTo3dm(expression)
	if err != nil {
		return "", err
	}
	return tdm.FormatInstance(matching), nil
}

type triplet [3]gadget.ID

// SatTo3dm builds, for every variable, a necklace of 2k core and 2k tip vertices joined by the triplets
// (core[j], core[j+1 mod 2k], tip[j]); even tips stand for true and odd tips for false. Clause i gets the vertices
// c[i] and c'[i] and a triplet (c[i], c'[i], tip) for each of its literals, using the even tip 2i of an unnegated
// literal's variable or the odd tip 2i+1 of a negated one. Every tip no clause consumed is covered by a triplet
// with two fresh garbage-collector vertices
func SatTo3dm(expression sat.Expression) (tdm.Matching, error) {
	if err := validateExpression(expression); err != nil {
		return tdm.Matching{}, err
	}
	for i, clause := range expression.Clauses {
		if len(lo.Uniq(clause)) != len(clause) {
			return tdm.Matching{}, instance.NewFormatError("sat", "clause %d (%v) repeats a literal", i, clause)
		}
	}

	k, n := len(expression.Clauses), len(expression.Variables)
	vertices := make([]gadget.ID, 0, 4*k*n+2*k)
	triplets := make([]triplet, 0, 4*k*n)
	tips := make([]gadget.Tip, 0, 2*k*n)
	used := make(map[gadget.Tip]bool, 2*k*n)

	//** Boolean assignment gadgets
	for i, variable := range expression.Variables {
		for j := range 2 * k {
			vertices = append(vertices, gadget.Core{Variable: variable, Index: j})
		}
		for j := range 2 * k {
			tip := gadget.Tip{Variable: variable, Index: j}
			vertices = append(vertices, tip)
			triplets = append(triplets, triplet{
				gadget.Core{Variable: variable, Index: j},
				gadget.Core{Variable: variable, Index: (j + 1) % (2 * k)},
				tip,
			})
			tips = append(tips, tip)
			used[tip] = false
		}

		invariant(SatTo3dmKind, 4*k*(i+1) == len(vertices) && 2*k*(i+1) == len(triplets),
			"there should be 4k vertices (2k core + 2k tips) and 2k triplets for every variable")
	}
	assignmentTriplets := len(triplets)

	//** Satisfiability gadgets
	for i, clause := range expression.Clauses {
		left, right := gadget.ClauseLeft{Index: i}, gadget.ClauseRight{Index: i}
		vertices = append(vertices, left, right)

		for _, literal := range clause {
			// Take the even tip for a true literal and the odd tip for a false one
			tip := gadget.Tip{Variable: literal.Name, Index: lo.Ternary(literal.Negated, 2*i+1, 2*i)}
			_, exists := used[tip]
			invariant(SatTo3dmKind, exists, "tip %v does not exist", tip)

			triplets = append(triplets, triplet{left, right, tip})
			used[tip] = true
		}
	}

	//** Garbage collection, unused tips are covered with two new vertices
	unusedTips := lo.Filter(tips, func(tip gadget.Tip, _ int) bool { return !used[tip] })
	for _, tip := range unusedTips {
		q, qDash := gadget.Garbage{Tip: tip, Seq: 0}, gadget.Garbage{Tip: tip, Seq: 1}
		vertices = append(vertices, q, qDash)
		triplets = append(triplets, triplet{tip, q, qDash})
	}

	invariant(SatTo3dmKind, len(vertices) >= 4*k*n+2*k+2*len(unusedTips),
		"there should be at least 4kn assignment vertices, 2k clause vertices and 2 garbage vertices per unused tip")
	invariant(SatTo3dmKind, len(triplets) == 4*k*n,
		"there should be 2kn assignment triplets and 2kn clause or garbage triplets, got %d", len(triplets))
	checkTipCover(tips, triplets[:assignmentTriplets], triplets[assignmentTriplets:])

	return tdm.Matching{
		Vertices: gadget.Strings(vertices),
		Triplets: lo.Map(triplets, func(t triplet, _ int) tdm.Triplet {
			return tdm.Triplet{t[0].String(), t[1].String(), t[2].String()}
		}),
	}, nil
}

// checkTipCover checks that every tip lies in exactly one assignment triplet and that the tips of each variable
// match perfectly onto the clause and garbage triplets holding them
func checkTipCover(tips []gadget.Tip, assignment, covering []triplet) {
	contains := func(t triplet, tip gadget.Tip) bool {
		return lo.Contains(t[:], gadget.ID(tip))
	}

	for _, tip := range tips {
		count := lo.CountBy(assignment, func(t triplet) bool { return contains(t, tip) })
		invariant(SatTo3dmKind, count == 1, "tip %v lies in %d assignment triplets", tip, count)
	}

	coveringByVariable := lo.GroupBy(covering, func(t triplet) string {
		tip, _ := lo.Find(t[:], func(id gadget.ID) bool {
			_, ok := id.(gadget.Tip)
			return ok
		})
		return tip.(gadget.Tip).Variable
	})

	for variable, variableTips := range lo.GroupBy(tips, func(tip gadget.Tip) string { return tip.Variable }) {
		candidates := coveringByVariable[variable]
		invariant(SatTo3dmKind, len(candidates) == len(variableTips),
			"variable %v has %d tips but %d covering triplets", variable, len(variableTips), len(candidates))

		// Build neighbors predicate based on membership
		neighbors := func(tipAny any, tripletAny any) (bool, error) {
			return contains(tripletAny.(triplet), tipAny.(gadget.Tip)), nil
		}

		tipsAny := lo.Map(variableTips, func(tip gadget.Tip, _ int) any { return tip })
		candidatesAny := lo.Map(candidates, func(t triplet, _ int) any { return t })

		graph, err := bipartitegraph.NewBipartiteGraph(tipsAny, candidatesAny, neighbors)
		invariant(SatTo3dmKind, err == nil, "cannot build the tip cover graph of %v: %v", variable, err)

		matching := graph.LargestMatching()
		invariant(SatTo3dmKind, len(matching) == len(variableTips),
			"only %d of the %d tips of %v are covered", len(matching), len(variableTips), variable)
	}
}
