package query

import "strings"

// evaluatePipeline splits the query on the pipe separator and threads
// each stage's result into the next, left to right. The pipe is not
// valid inside the bracket or identifier grammar, so a plain split is
// sufficient.
func evaluatePipeline(document any, expression string) (Result, error) {
	current := Result{Value: document}

	for stage := range strings.SplitSeq(expression, "|") {
		next, err := applyStage(current, stage)
		if err != nil {
			return Result{}, err
		}
		current = next
	}
	return current, nil
}

// applyStage evaluates one stage, element-wise when the pipeline is
// already broadcasting over an iterated list. Broadcasting is one level
// deep: elements of the broadcast list are plain values even when they
// are lists themselves, and the broadcast persists for later stages.
func applyStage(current Result, stage string) (Result, error) {
	if !current.Iterated {
		return evaluateStage(current.Value, stage, false)
	}

	elems, _ := current.Value.([]any)
	out := make([]any, 0, len(elems))
	for _, elem := range elems {
		r, err := evaluateStage(elem, stage, false)
		if err != nil {
			return Result{}, err
		}
		out = append(out, r.Value)
	}
	return Result{Value: out, Iterated: true}, nil
}
