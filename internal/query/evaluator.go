// Package query implements a small path-query language over document
// trees of mappings (map[string]any), sequences ([]any) and scalars.
//
// A query is a pipe-separated sequence of stage expressions such as
// .a.b[0], .items[].name or .missing?, optionally wrapped in outer
// brackets to collect the final result into a list. The evaluator is a
// pure function of (document, query): it never mutates the document and
// holds no state between calls.
package query

import (
	"fmt"
	"strings"
)

// Result is the outcome of one stage evaluation. Iterated marks a list
// produced by an iterate marker, which later pipeline stages broadcast
// over element by element.
type Result struct {
	Value    any
	Iterated bool
}

// Evaluate runs a full query expression against a document tree and
// returns the selected value, a list of values, or nil for a suppressed
// optional lookup.
func Evaluate(document any, expression string) (any, error) {
	expression = strings.TrimSpace(expression)

	if inner, ok := collectForm(expression); ok {
		res, err := evaluatePipeline(document, inner)
		if err != nil {
			return nil, err
		}
		return collect(res.Value), nil
	}

	res, err := evaluatePipeline(document, expression)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// collectForm reports whether the full query is wrapped in collection
// brackets with interior content, and returns the interior if so.
// A bare "[]" has no interior and is an iterate stage, not a collector.
func collectForm(expression string) (string, bool) {
	if len(expression) < 3 || expression[0] != '[' || expression[len(expression)-1] != ']' {
		return "", false
	}
	return expression[1 : len(expression)-1], true
}

// collect coerces a final pipeline result to list form.
func collect(v any) any {
	switch value := v.(type) {
	case nil:
		return []any{}
	case []any:
		return value
	default:
		return []any{value}
	}
}

// evaluateStage applies one stage expression to the current value.
// inherited carries the optional flag across suffix recursion so
// per-element failures under a stage like .key[].field? still resolve
// to null.
func evaluateStage(value any, stage string, inherited bool) (Result, error) {
	stage = strings.TrimSpace(stage)
	if stage == "" || stage == "." {
		return Result{Value: value}, nil
	}
	if stage[0] == '[' {
		stage = "." + stage
	}

	a, ok := parseAtom(stage)
	if !ok {
		if inherited || strings.HasSuffix(stage, "?") {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("%w: %q", ErrMalformedQuery, stage)
	}
	optional := a.optional || inherited

	if a.quoted {
		return lookupVerbatim(value, a.rawKey, optional)
	}
	return evaluateKey(value, a.rawKey, optional)
}

// lookupVerbatim resolves a quoted bracket key as a single literal
// mapping lookup, without dot-walking or bracket decomposition.
func lookupVerbatim(value any, name string, optional bool) (Result, error) {
	mapping, ok := value.(map[string]any)
	if !ok {
		return nullOr(optional, fmt.Errorf("%w: cannot index %s with %q", ErrTypeMismatch, kindOf(value), name))
	}
	v, found := mapping[name]
	if !found {
		return nullOr(optional, fmt.Errorf("%w: %q", ErrKeyNotFound, name))
	}
	return Result{Value: v}, nil
}

// evaluateKey resolves one decomposed raw key against the current value.
func evaluateKey(value any, rawKey string, optional bool) (Result, error) {
	k, err := decomposeKey(rawKey)
	if err != nil {
		return Result{}, err
	}

	// A pure iterate stage (".[]" or "[]") applies to the current
	// value directly.
	if k.name == "" {
		seq, ok := value.([]any)
		if !ok {
			return nullOr(optional, fmt.Errorf("%w: cannot iterate over %s", ErrTypeMismatch, kindOf(value)))
		}
		return iterateSeq(seq, k.suffix, optional)
	}

	mapping, ok := value.(map[string]any)
	if !ok {
		return nullOr(optional, fmt.Errorf("%w: cannot index %s with %q", ErrTypeMismatch, kindOf(value), k.name))
	}

	v, err := walk(mapping, k.name)
	if err != nil {
		return nullOr(optional, err)
	}

	switch k.kind {
	case indexIterate:
		seq, ok := v.([]any)
		if !ok {
			return nullOr(optional, fmt.Errorf("%w: cannot iterate over %s", ErrTypeMismatch, kindOf(v)))
		}
		return iterateSeq(seq, k.suffix, optional)
	case indexAt:
		seq, ok := v.([]any)
		if !ok {
			return nullOr(optional, fmt.Errorf("%w: cannot index %s with %d", ErrTypeMismatch, kindOf(v), k.at))
		}
		if k.at >= len(seq) {
			return nullOr(optional, fmt.Errorf("%w: index %d out of range (length %d)", ErrOutOfRange, k.at, len(seq)))
		}
		if k.suffix != "" {
			return evaluateStage(seq[k.at], withLeadingDot(k.suffix), optional)
		}
		return Result{Value: seq[k.at]}, nil
	default:
		return Result{Value: v}, nil
	}
}

// walk resolves a dotted plain name through nested mappings.
func walk(mapping map[string]any, name string) (any, error) {
	var current any = mapping
	for part := range strings.SplitSeq(name, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: cannot index %s with %q", ErrTypeMismatch, kindOf(current), part)
		}
		v, found := m[part]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, part)
		}
		current = v
	}
	return current, nil
}

// iterateSeq applies the trailing sub-path to every element in order,
// or returns the sequence itself when there is none. The result is
// flagged so the pipeline broadcasts over it.
func iterateSeq(seq []any, suffix string, optional bool) (Result, error) {
	if suffix == "" {
		return Result{Value: seq, Iterated: true}, nil
	}

	out := make([]any, 0, len(seq))
	for _, elem := range seq {
		r, err := evaluateStage(elem, withLeadingDot(suffix), optional)
		if err != nil {
			return Result{}, err
		}
		out = append(out, r.Value)
	}
	return Result{Value: out, Iterated: true}, nil
}

func withLeadingDot(s string) string {
	if strings.HasPrefix(s, ".") {
		return s
	}
	return "." + s
}

func nullOr(optional bool, err error) (Result, error) {
	if optional {
		return Result{}, nil
	}
	return Result{}, err
}

// kindOf names a document node kind for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case nil:
		return "null"
	default:
		return "scalar"
	}
}
