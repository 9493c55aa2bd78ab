// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"

	deepcopy "github.com/tiendc/go-deepcopy"
)

// Record is one labeled dataset example: a mapping from field name to value.
//
// Values are strings, integers, or short lists of strings. A Record is never
// mutated in place; transforms clone it and return the modified copy, so
// records held by a [Pool] stay stable for the process lifetime.
type Record map[string]any

// Clone returns a deep copy of the record.
func (r Record) Clone() (Record, error) {
	dst := make(Record, len(r))
	if err := deepcopy.Copy(&dst, r); err != nil {
		return nil, fmt.Errorf("clone record: %w", err)
	}
	return dst, nil
}

// Has reports whether the record carries the field.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns the string value of field.
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MissingFieldError{Field: field, Reason: fmt.Sprintf("has type %T, want string", v)}
	}
	return s, nil
}

// Int returns the integer value of field.
//
// JSON decoding surfaces numbers as float64, so both native integers and
// integral floats are accepted.
func (r Record) Int(field string) (int64, error) {
	v, ok := r[field]
	if !ok {
		return 0, &MissingFieldError{Field: field}
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	}
	return 0, &MissingFieldError{Field: field, Reason: fmt.Sprintf("has type %T, want integer", v)}
}

// Strings returns the list-of-strings value of field.
func (r Record) Strings(field string) ([]string, error) {
	v, ok := r[field]
	if !ok {
		return nil, &MissingFieldError{Field: field}
	}
	switch l := v.(type) {
	case []string:
		return l, nil
	case []any:
		out := make([]string, len(l))
		for i, e := range l {
			s, ok := e.(string)
			if !ok {
				return nil, &MissingFieldError{Field: field, Reason: fmt.Sprintf("element %d has type %T, want string", i, e)}
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, &MissingFieldError{Field: field, Reason: fmt.Sprintf("has type %T, want list of strings", v)}
}
