package reduction

import (
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type Problem string

const (
	SAT        Problem = "3-SAT"
	HamCycle   Problem = "Hamiltonian cycle"
	HamCircuit Problem = "Hamiltonian circuit"
	TSP        Problem = "TSP"
	SubsetSum  Problem = "Subset-Sum"
	ThreeDM    Problem = "3DM"
)

type Kind string

const (
	SatToHamCycleKind        Kind = "3SAT-HamCycle"
	HamCycleToHamCircuitKind Kind = "HamCycle-HamCircuit"
	SatToSubsetSumKind       Kind = "3SAT-SSP"
	HamCircuitToTspKind      Kind = "HamCircuit-TSP"
	SatTo3dmKind             Kind = "3SAT-3DM"
)

// Reducer transforms an instance of one problem, written in its canonical text format, into an instance of another
type Reducer interface {
	Reduce(input string) (string, error)
}

type registration struct {
	source, target Problem
	newReducer     func() Reducer
}

var registry = map[Kind]registration{
	SatToHamCycleKind:        {SAT, HamCycle, NewSatToHamCycleReducer},
	HamCycleToHamCircuitKind: {HamCycle, HamCircuit, NewHamCycleToHamCircuitReducer},
	SatToSubsetSumKind:       {SAT, SubsetSum, NewSatToSubsetSumReducer},
	HamCircuitToTspKind:      {HamCircuit, TSP, NewHamCircuitToTspReducer},
	SatTo3dmKind:             {SAT, ThreeDM, NewSatTo3dmReducer},
}

// Kinds lists every implemented reduction in a stable order
func Kinds() []Kind {
	return []Kind{SatToHamCycleKind, HamCycleToHamCircuitKind, HamCircuitToTspKind, SatToSubsetSumKind, SatTo3dmKind}
}

func (kind Kind) Supported() bool {
	_, ok := registry[kind]
	return ok
}

// Source returns the problem consumed by the reduction, or an empty problem if unsupported
func (kind Kind) Source() Problem {
	return registry[kind].source
}

// Target returns the problem produced by the reduction, or an empty problem if unsupported
func (kind Kind) Target() Problem {
	return registry[kind].target
}

func NewReducer(kind Kind) (Reducer, error) {
	registration, ok := registry[kind]
	if !ok {
		return nil, &UnsupportedReductionError{Kind: kind}
	}
	return registration.newReducer(), nil
}

// Reduce reduces the input instance of the kind's source problem to an instance of its target problem
func Reduce(kind Kind, input string) (string, error) {
	reducer, err := NewReducer(kind)
	if err != nil {
		return "", err
	}

	start := time.Now()
	output, err := reducer.Reduce(input)
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"kind":     string(kind),
		"input":    len(input),
		"output":   len(output),
		"duration": time.Since(start),
	}).Debug("reduced instance")
	return output, nil
}

// Chain applies the reductions in order, feeding each output into the next one
func Chain(input string, kinds ...Kind) (string, error) {
	if unsupported, ok := lo.Find(kinds, func(kind Kind) bool { return !kind.Supported() }); ok {
		return "", &UnsupportedReductionError{Kind: unsupported}
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1].Target() != kinds[i].Source() {
			return "", &IncompatibleChainError{Previous: kinds[i-1], Next: kinds[i]}
		}
	}

	output := input
	for _, kind := range kinds {
		var err error
		if output, err = Reduce(kind, output); err != nil {
			return "", err
		}
	}
	return output, nil
}
