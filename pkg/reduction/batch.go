package reduction

type Result struct {
	Output string
	Err    error
}

// ReduceAll reduces independent inputs concurrently and returns their results in input order.
// At most workers reductions run at once, a non-positive value runs them all at once
func ReduceAll(kind Kind, inputs []string, workers int) []Result {
	if workers <= 0 || workers > len(inputs) {
		workers = len(inputs)
	}

	type indexedResult struct {
		index  int
		result Result
	}

	results := make([]Result, len(inputs))
	resultsChannel := make(chan indexedResult) // Channel to collect results
	slots := make(chan struct{}, max(workers, 1))

	// Execute reductions on different goroutines, each input is owned by a single goroutine
	for i, input := range inputs {
		go func(index int, input string) {
			slots <- struct{}{}
			defer func() { <-slots }()

			output, err := Reduce(kind, input)
			resultsChannel <- indexedResult{index, Result{Output: output, Err: err}}
		}(i, input)
	}

	for range inputs {
		collected := <-resultsChannel
		results[collected.index] = collected.result
	}
	close(resultsChannel)

	return results
}
