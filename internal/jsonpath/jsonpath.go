// Package jsonpath evaluates RFC 9535 JSONPath expressions against a
// decoded document tree, as the alternative query engine.
package jsonpath

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

// ErrInvalidPath indicates a JSONPath expression that fails to compile.
var ErrInvalidPath = errors.New("jsonpath: invalid path expression")

// Select evaluates a JSONPath expression against decoded document data
// and returns every match in document order.
func Select(data any, expression string) ([]any, error) {
	path, err := jsonpath.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return path.Select(data), nil
}

// Evaluate returns a query-style result: nil for no match, the value
// itself for exactly one, and the full match list otherwise.
func Evaluate(data any, expression string) (any, error) {
	matches, err := Select(data, expression)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return matches, nil
	}
}
