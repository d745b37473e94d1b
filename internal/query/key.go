package query

import (
	"fmt"
	"strconv"
	"strings"
)

type indexKind int

const (
	indexNone indexKind = iota
	indexAt
	indexIterate
)

// key is the decomposition of an atom's raw key into a base name, an
// index-or-iterate marker, and any trailing sub-path after the bracket.
type key struct {
	name   string
	kind   indexKind
	at     int
	suffix string
}

// decomposeKey splits raw key text on its first bracket pair. Bracket
// and index errors here are structural and are never suppressed by the
// optional marker.
func decomposeKey(raw string) (key, error) {
	openIdx := strings.IndexByte(raw, '[')
	closeIdx := strings.IndexByte(raw, ']')

	switch {
	case openIdx == -1 && closeIdx == -1:
		return key{name: raw}, nil
	case openIdx == -1 || closeIdx == -1:
		return key{}, fmt.Errorf("%w: missing bracket in %q", ErrMalformedKey, raw)
	case closeIdx < openIdx:
		return key{}, fmt.Errorf("%w: brackets in wrong order in %q", ErrMalformedKey, raw)
	}

	name := raw[:openIdx]
	interior := raw[openIdx+1 : closeIdx]
	suffix := raw[closeIdx+1:]

	if interior == "" {
		return key{name: name, kind: indexIterate, suffix: suffix}, nil
	}
	if name == "" {
		return key{}, fmt.Errorf("%w: empty key name in %q", ErrMalformedKey, raw)
	}

	n, err := strconv.Atoi(interior)
	if err != nil || n < 0 {
		return key{}, fmt.Errorf("%w: %q", ErrInvalidIndex, interior)
	}

	return key{name: name, kind: indexAt, at: n, suffix: suffix}, nil
}
