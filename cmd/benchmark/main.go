package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/limaJavier/npreductions/pkg/instance"
	"github.com/limaJavier/npreductions/pkg/reduction"
	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/samber/lo"
)

type TestMetadata struct {
	Name      string
	Variables int
	Clauses   int
	Literals  int
}

// Pipeline is a sequence of reductions applied to a SAT instance
type Pipeline []reduction.Kind

func (pipeline Pipeline) String() string {
	return strings.Join(lo.Map(pipeline, func(kind reduction.Kind, _ int) string { return string(kind) }), " > ")
}

type BenchmarkResult struct {
	Pipeline Pipeline
	Test     TestMetadata
	Duration int64
	Primary  int // Vertices or numbers of the output instance
	Second   int // Edges, triplets or digit width of the output instance
}

var pipelines = []Pipeline{
	{reduction.SatToHamCycleKind},
	{reduction.SatToHamCycleKind, reduction.HamCycleToHamCircuitKind},
	{reduction.SatToHamCycleKind, reduction.HamCycleToHamCircuitKind, reduction.HamCircuitToTspKind},
	{reduction.SatToSubsetSumKind},
	{reduction.SatTo3dmKind},
}

func main() {
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	seedPtr := flag.Uint64("seed", 1, "Seed of the random instance generator")
	repetitionsPtr := flag.Int("repetitions", 3, "Instances generated for each size")
	maxTspVariablesPtr := flag.Int("max-tsp-variables", 10, "Largest amount of variables reduced down to TSP, the complete graph grows quadratically")
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seedPtr, *seedPtr))
	tests := getTests(rng, *repetitionsPtr)
	results := make([]BenchmarkResult, 0, len(tests)*len(pipelines))

	for _, test := range tests {
		for _, pipeline := range pipelines {
			if !fits(pipeline, test, *maxTspVariablesPtr) {
				fmt.Printf("Skipping test \"%v\" with pipeline \"%v\"\n", test.Name, pipeline)
				continue
			}
			fmt.Printf("Benchmarking test \"%v\" with pipeline \"%v\"\n", test.Name, pipeline)

			result, err := measure(pipeline, test)
			if err != nil {
				log.Fatalf("an error occurred during the reduction of test \"%v\" using pipeline \"%v\": %v", test.Name, pipeline, err)
			}
			results = append(results, result)
		}
	}

	toCsv(*outFilePtr, results)
}

var testInstances = make(map[string]string)

func getTests(rng *rand.Rand, repetitions int) []TestMetadata {
	tests := make([]TestMetadata, 0)
	for _, tuple := range lo.Zip2([]int{3, 5, 10, 20}, []int{4, 10, 20, 40}) {
		variables, clauses := tuple.A, tuple.B
		for repetition := range repetitions {
			expression := sat.Generate(variables, clauses, rng)
			name := fmt.Sprintf("random-%d-%d-%d", variables, clauses, repetition)
			testInstances[name] = sat.FormatInstance(expression)

			tests = append(tests, TestMetadata{
				Name:      name,
				Variables: variables,
				Clauses:   clauses,
				Literals:  expression.Literals(),
			})
		}
	}
	return tests
}

// fits checks whether the pipeline's output for the test stays within the TSP size limit
func fits(pipeline Pipeline, test TestMetadata, maxTspVariables int) bool {
	return !lo.Contains(pipeline, reduction.HamCircuitToTspKind) || test.Variables <= maxTspVariables
}

func measure(pipeline Pipeline, test TestMetadata) (BenchmarkResult, error) {
	start := time.Now()
	output, err := reduction.Chain(testInstances[test.Name], pipeline...)
	duration := time.Since(start)
	if err != nil {
		return BenchmarkResult{}, err
	}

	primary, second, err := parseHeader(output)
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		Pipeline: pipeline,
		Test:     test,
		Duration: duration.Microseconds(),
		Primary:  primary,
		Second:   second,
	}, nil
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Pipeline", "Test", "Variables", "Clauses", "Literals", "Duration(us)", "Primary", "Secondary"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Pipeline.String(),
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Variables),
			fmt.Sprintf("%d", result.Test.Clauses),
			fmt.Sprintf("%d", result.Test.Literals),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.Primary),
			fmt.Sprintf("%d", result.Second),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

// parseHeader extracts the two counts on the first line of a canonical instance
func parseHeader(output string) (int, int, error) {
	document, err := instance.Decode("output", output)
	if err != nil {
		return 0, 0, err
	}
	return document.Counts[0], document.Counts[1], nil
}
