package query

import "errors"

var (
	// ErrMalformedQuery indicates a stage expression that matches none of
	// the atom grammar alternatives.
	ErrMalformedQuery = errors.New("query: malformed query")

	// ErrMalformedKey indicates mismatched brackets, brackets in the
	// wrong order, or an empty key name.
	ErrMalformedKey = errors.New("query: malformed key")

	// ErrInvalidIndex indicates a bracket interior that is not a valid
	// non-negative integer.
	ErrInvalidIndex = errors.New("query: invalid index")

	// ErrKeyNotFound indicates a non-optional lookup of an absent mapping key.
	ErrKeyNotFound = errors.New("query: key not found")

	// ErrOutOfRange indicates an integer index beyond sequence bounds.
	ErrOutOfRange = errors.New("query: index out of range")

	// ErrTypeMismatch indicates indexing or iterating a value of the wrong kind.
	ErrTypeMismatch = errors.New("query: type mismatch")
)
