// Package gadget names the vertices reductions build. Identifiers are structured values that render
// to a stable string only when an instance is written out
package gadget

import "fmt"

// ID identifies a gadget vertex
type ID interface {
	fmt.Stringer
	gadget()
}

// Polarity labels of the literal jumps in the Hamiltonian-cycle reduction
const (
	TrueLabel  = "[T]"
	FalseLabel = "[F]"
)

// Variable is the vertex at a position of a variable's row
type Variable struct {
	Name  string
	Index int
}

// Clause is the vertex a clause's literal jumps detour through
type Clause struct {
	Index int
}

// Between links the row-ends of two consecutive variables
type Between struct {
	Above string
	Below string
}

type Source struct{}

type Target struct{}

type Part int

const (
	In Part = iota
	Mid
	Out
)

// Split is one vertex of the triplet a vertex is expanded into
type Split struct {
	Vertex string
	Part   Part
}

type Core struct {
	Variable string
	Index    int
}

// Tip is an outer vertex of a variable's necklace, even tips stand for true and odd tips for false
type Tip struct {
	Variable string
	Index    int
}

type ClauseLeft struct {
	Index int
}

type ClauseRight struct {
	Index int
}

// Garbage is a filler vertex covering an unused tip
type Garbage struct {
	Tip Tip
	Seq int
}

func (id Variable) String() string    { return fmt.Sprintf("%v[%d]", id.Name, id.Index) }
func (id Clause) String() string      { return fmt.Sprintf("[CLAUSE][%d]", id.Index) }
func (id Between) String() string     { return fmt.Sprintf("[BETWEEN][%v,%v]", id.Above, id.Below) }
func (Source) String() string         { return "[SOURCE]" }
func (Target) String() string         { return "[TARGET]" }
func (id Split) String() string       { return id.Vertex + id.Part.String() }
func (id Core) String() string        { return fmt.Sprintf("%v[C][%d]", id.Variable, id.Index) }
func (id Tip) String() string         { return fmt.Sprintf("%v[T][%d]", id.Variable, id.Index) }
func (id ClauseLeft) String() string  { return fmt.Sprintf("[C][%d]", id.Index) }
func (id ClauseRight) String() string { return fmt.Sprintf("[C'][%d]", id.Index) }

func (id Garbage) String() string {
	if id.Seq == 0 {
		return id.Tip.String() + "[Q]"
	}
	return id.Tip.String() + "[Q" + primes(id.Seq) + "]"
}

func (part Part) String() string {
	switch part {
	case In:
		return "[In]"
	case Mid:
		return "[Mid]"
	case Out:
		return "[Out]"
	default:
		return fmt.Sprintf("[Part%d]", int(part))
	}
}

func primes(count int) string {
	marks := make([]byte, count)
	for i := range marks {
		marks[i] = '\''
	}
	return string(marks)
}

func (Variable) gadget()    {}
func (Clause) gadget()      {}
func (Between) gadget()     {}
func (Source) gadget()      {}
func (Target) gadget()      {}
func (Split) gadget()       {}
func (Core) gadget()        {}
func (Tip) gadget()         {}
func (ClauseLeft) gadget()  {}
func (ClauseRight) gadget() {}
func (Garbage) gadget()     {}

// Strings renders identifiers in order
func Strings[T ID](ids []T) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
