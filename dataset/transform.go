// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"fmt"
	"strings"

	"github.com/ivaxi0s/llm-in-context-bias/types"
)

// Record transforms rewrite one provider record into template-ready shape.
// Every transform clones its input and returns the modified copy; the
// records a provider handed out are never touched. Adapter construction
// composes them per dataset and applies the chain eagerly to every row, so
// schema drift surfaces as a [*types.MissingFieldError] before any prompt is
// built.

// RenameField returns a copy of rec with the src field moved to dst.
func RenameField(rec types.Record, src, dst string) (types.Record, error) {
	if !rec.Has(src) {
		return nil, &types.MissingFieldError{Field: src}
	}
	out, err := rec.Clone()
	if err != nil {
		return nil, err
	}
	if src == dst {
		return out, nil
	}
	out[dst] = out[src]
	delete(out, src)
	return out, nil
}

// MapField returns a copy of rec with dst holding the string mapping[rec[src]],
// where src is an integer enumeration field. The src field is kept.
//
// A src value outside the mapping is a schema failure: the enumeration is
// documented per dataset, so an unknown value means the provider's schema
// drifted, and the error aborts adapter construction.
func MapField(rec types.Record, src, dst string, mapping map[int64]string) (types.Record, error) {
	v, err := rec.Int(src)
	if err != nil {
		return nil, err
	}
	mapped, ok := mapping[v]
	if !ok {
		return nil, &types.MissingFieldError{Field: src, Reason: fmt.Sprintf("has value %d outside the documented enumeration", v)}
	}
	out, err := rec.Clone()
	if err != nil {
		return nil, err
	}
	out[dst] = mapped
	return out, nil
}

// JoinStrings returns a copy of rec with dst holding the src list-of-strings
// field joined by sep. src and dst may name the same field.
func JoinStrings(rec types.Record, src, dst, sep string) (types.Record, error) {
	l, err := rec.Strings(src)
	if err != nil {
		return nil, err
	}
	out, err := rec.Clone()
	if err != nil {
		return nil, err
	}
	out[dst] = strings.Join(l, sep)
	return out, nil
}

// FirstString returns a copy of rec with dst holding the first element of
// the src list field. An empty list is a schema failure.
func FirstString(rec types.Record, src, dst string) (types.Record, error) {
	l, err := rec.Strings(src)
	if err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, &types.MissingFieldError{Field: src, Reason: "is empty, want at least one element"}
	}
	out, err := rec.Clone()
	if err != nil {
		return nil, err
	}
	out[dst] = l[0]
	return out, nil
}

// ExtractStrings returns a copy of rec with dst holding the list-of-strings
// key lifted out of the nested src field. The GEM wiki_cat_sum summary
// arrives as {"text": [...], ...}; this flattens it for [JoinStrings].
func ExtractStrings(rec types.Record, src, key, dst string) (types.Record, error) {
	v, ok := rec[src]
	if !ok {
		return nil, &types.MissingFieldError{Field: src}
	}
	nested, ok := v.(map[string]any)
	if !ok {
		return nil, &types.MissingFieldError{Field: src, Reason: fmt.Sprintf("has type %T, want nested record", v)}
	}
	l, err := types.Record(nested).Strings(key)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", src, err)
	}
	out, err := rec.Clone()
	if err != nil {
		return nil, err
	}
	out[dst] = l
	return out, nil
}
