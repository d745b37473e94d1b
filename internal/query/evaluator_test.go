package query

import (
	"errors"
	"reflect"
	"testing"
)

func quotesDocument() map[string]any {
	return map[string]any{
		"quotes": []any{
			map[string]any{"id": 1, "q": "a"},
			map[string]any{"id": 2, "q": "b"},
		},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document any
		query    string
		want     any
	}{
		{
			name:     "identity_dot",
			document: map[string]any{"a": 1},
			query:    ".",
			want:     map[string]any{"a": 1},
		},
		{
			name:     "identity_empty",
			document: map[string]any{"a": 1},
			query:    "",
			want:     map[string]any{"a": 1},
		},
		{
			name:     "mapping_key",
			document: map[string]any{"a": "value"},
			query:    ".a",
			want:     "value",
		},
		{
			name:     "nested_mapping_key",
			document: map[string]any{"a": map[string]any{"b": 5}},
			query:    ".a.b",
			want:     5,
		},
		{
			name:     "deep_dotted_chain",
			document: map[string]any{"a": map[string]any{"b": map[string]any{"c": "deep"}}},
			query:    ".a.b.c",
			want:     "deep",
		},
		{
			name:     "optional_missing_key",
			document: map[string]any{"a": 1},
			query:    ".missing?",
			want:     nil,
		},
		{
			name:     "optional_missing_nested_key",
			document: map[string]any{"a": map[string]any{"b": 5}},
			query:    ".a.missing?",
			want:     nil,
		},
		{
			name:     "sequence_index",
			document: map[string]any{"items": []any{10, 20, 30}},
			query:    ".items[1]",
			want:     20,
		},
		{
			name:     "sequence_index_with_suffix",
			document: map[string]any{"items": []any{map[string]any{"id": 7}}},
			query:    ".items[0].id",
			want:     7,
		},
		{
			name:     "iterate_without_suffix_returns_sequence",
			document: map[string]any{"a": []any{1, 2, 3}},
			query:    ".a[]",
			want:     []any{1, 2, 3},
		},
		{
			name:     "iterate_with_suffix",
			document: quotesDocument(),
			query:    ".quotes[].q",
			want:     []any{"a", "b"},
		},
		{
			name:     "iterate_with_deep_suffix",
			document: map[string]any{"a": []any{map[string]any{"b": map[string]any{"c": 1}}, map[string]any{"b": map[string]any{"c": 2}}}},
			query:    ".a[].b.c",
			want:     []any{1, 2},
		},
		{
			name:     "iterate_root_sequence",
			document: []any{1, 2},
			query:    "[]",
			want:     []any{1, 2},
		},
		{
			name:     "iterate_root_sequence_dotted",
			document: []any{1, 2},
			query:    ".[]",
			want:     []any{1, 2},
		},
		{
			name:     "quoted_key_with_dot",
			document: map[string]any{"a.b": "literal", "a": map[string]any{"b": "walked"}},
			query:    `.["a.b"]`,
			want:     "literal",
		},
		{
			name:     "dotted_chain_beats_quoted_form",
			document: map[string]any{"a.b": "literal", "a": map[string]any{"b": "walked"}},
			query:    ".a.b",
			want:     "walked",
		},
		{
			name:     "quoted_key_with_brackets",
			document: map[string]any{"x[0]": "bracketed"},
			query:    `.["x[0]"]`,
			want:     "bracketed",
		},
		{
			name:     "single_quoted_key",
			document: map[string]any{"spaced key": true},
			query:    `.['spaced key']`,
			want:     true,
		},
		{
			name:     "unquoted_bracket_key",
			document: map[string]any{"name": "web"},
			query:    ".[name]",
			want:     "web",
		},
		{
			name:     "optional_index_on_scalar",
			document: map[string]any{"a": 5},
			query:    ".a[0]?",
			want:     nil,
		},
		{
			name:     "optional_iterate_on_scalar",
			document: map[string]any{"a": 5},
			query:    ".a[]?",
			want:     nil,
		},
		{
			name:     "optional_out_of_range",
			document: map[string]any{"a": []any{1}},
			query:    ".a[5]?",
			want:     nil,
		},
		{
			name:     "optional_unmatched_grammar",
			document: map[string]any{"a": 1},
			query:    ".9bad?",
			want:     nil,
		},
		{
			name:     "collect_single_value",
			document: map[string]any{"a": map[string]any{"b": 5}},
			query:    "[.a.b]",
			want:     []any{5},
		},
		{
			name:     "collect_indexed_value",
			document: map[string]any{"items": []any{10, 20, 30}},
			query:    "[.items[1]]",
			want:     []any{20},
		},
		{
			name:     "collect_iterated_list_is_idempotent",
			document: quotesDocument(),
			query:    "[.quotes[].q]",
			want:     []any{"a", "b"},
		},
		{
			name:     "collect_null_yields_empty_list",
			document: map[string]any{"a": 1},
			query:    "[.missing?]",
			want:     []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Evaluate(tt.document, tt.query)
			if err != nil {
				t.Fatalf("Evaluate(%q) unexpected error: %v", tt.query, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) = %#v, want %#v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document any
		query    string
		wantErr  error
	}{
		{
			name:     "missing_key",
			document: map[string]any{"a": 1},
			query:    ".missing",
			wantErr:  ErrKeyNotFound,
		},
		{
			name:     "missing_nested_key",
			document: map[string]any{"a": map[string]any{"b": 5}},
			query:    ".a.missing",
			wantErr:  ErrKeyNotFound,
		},
		{
			name:     "index_out_of_range",
			document: map[string]any{"a": map[string]any{"b": []any{1, 2, 3}}},
			query:    ".a.b[5]",
			wantErr:  ErrOutOfRange,
		},
		{
			name:     "index_scalar",
			document: map[string]any{"a": 5},
			query:    ".a[0]",
			wantErr:  ErrTypeMismatch,
		},
		{
			name:     "iterate_mapping",
			document: map[string]any{"a": map[string]any{"b": 1}},
			query:    ".a[]",
			wantErr:  ErrTypeMismatch,
		},
		{
			name:     "key_lookup_on_scalar",
			document: map[string]any{"a": 5},
			query:    ".a.b",
			wantErr:  ErrTypeMismatch,
		},
		{
			name:     "key_lookup_on_sequence",
			document: map[string]any{"a": []any{1}},
			query:    ".a.b",
			wantErr:  ErrTypeMismatch,
		},
		{
			name:     "unmatched_grammar",
			document: map[string]any{"a": 1},
			query:    ".9bad",
			wantErr:  ErrMalformedQuery,
		},
		{
			name:     "invalid_index_text",
			document: map[string]any{"a": []any{1}},
			query:    ".a[x]",
			wantErr:  ErrInvalidIndex,
		},
		{
			name:     "negative_index",
			document: map[string]any{"a": []any{1}},
			query:    ".a[-1]",
			wantErr:  ErrInvalidIndex,
		},
		{
			name:     "invalid_index_survives_optional",
			document: map[string]any{"a": []any{1}},
			query:    ".a[x]?",
			wantErr:  ErrInvalidIndex,
		},
		{
			name:     "missing_closing_bracket",
			document: map[string]any{"a": 1},
			query:    ".[a[0]",
			wantErr:  ErrMalformedKey,
		},
		{
			name:     "brackets_in_wrong_order",
			document: map[string]any{"a": 1},
			query:    ".[a]b[c]",
			wantErr:  ErrMalformedKey,
		},
		{
			name:     "empty_key_name",
			document: map[string]any{"a": 1},
			query:    ".[[5]]",
			wantErr:  ErrMalformedKey,
		},
		{
			name:     "malformed_key_survives_optional",
			document: map[string]any{"a": 1},
			query:    ".[a[0]?",
			wantErr:  ErrMalformedKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Evaluate(tt.document, tt.query)
			if err == nil {
				t.Fatalf("Evaluate(%q) expected error, got none", tt.query)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Evaluate(%q) error = %v, want %v", tt.query, err, tt.wantErr)
			}
		})
	}
}

func TestEvaluateDoesNotMutateDocument(t *testing.T) {
	t.Parallel()

	document := quotesDocument()
	want := quotesDocument()

	if _, err := Evaluate(document, ".quotes[].q"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Evaluate(document, "[.quotes[].id]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(document, want) {
		t.Errorf("document mutated during evaluation: %#v", document)
	}
}

func TestEvaluateReturnsSameSequence(t *testing.T) {
	t.Parallel()

	sequence := []any{1, 2, 3}
	document := map[string]any{"a": sequence}

	got, err := Evaluate(document, ".a[]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := got.([]any)
	if !ok {
		t.Fatalf("Evaluate(.a[]) = %T, want []any", got)
	}
	if len(seq) != len(sequence) || &seq[0] != &sequence[0] {
		t.Error("Evaluate(.a[]) should return the original sequence, not a copy")
	}
}
