// Package document loads YAML input into the generic tree form the
// query engine operates on: map[string]any for mappings, []any for
// sequences, and Go scalars for leaf values.
package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// Parse decodes raw YAML text into a document tree.
func Parse(payload []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return doc, nil
}

// Load reads and decodes a YAML document from r.
func Load(r io.Reader) (any, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(payload)
}

// LoadFile reads and decodes a YAML file.
func LoadFile(name string) (any, error) {
	payload, err := os.ReadFile(name)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("file %s does not exist", name)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("You are not permitted to access this file : %s", name)
		default:
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return Parse(payload)
}
